package regexgen

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByLength(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"single", []string{"GET"}, []string{"GET"}},
		{"descending", []string{"if", "let", "otherwise"}, []string{"otherwise", "let", "if"}},
		{"ties keep input order", []string{"in", "if", "let", "try"}, []string{"let", "try", "in", "if"}},
		{"runes not bytes", []string{"ab", "äöü", "abcd"}, []string{"abcd", "äöü", "ab"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SortByLength(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("SortByLength mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortByLengthDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "bbb", "cc"}
	_ = SortByLength(in)
	assert.Equal(t, []string{"a", "bbb", "cc"}, in)
}

func TestSortByLengthOrderingProperty(t *testing.T) {
	in := []string{"each", "else", "error", "if", "in", "let", "otherwise", "then", "try"}
	got := SortByLength(in)
	for i := 0; i < len(got); i++ {
		for j := i + 1; j < len(got); j++ {
			require.GreaterOrEqual(t, utf8.RuneCountInString(got[i]), utf8.RuneCountInString(got[j]),
				"%q placed before %q", got[i], got[j])
		}
	}
}

func TestBuild(t *testing.T) {
	assert.Equal(t, `\\b((GET))\\b`, Build([]string{"GET"}))
	assert.Equal(t, `\\b((let)|(if))\\b`, Build([]string{"let", "if"}))
	assert.Equal(t, `\\b((Foo.Bar))\\b`, Build([]string{"Foo.Bar"}))
}

func TestAlternationAndWrap(t *testing.T) {
	assert.Equal(t, "(a)|(b)", Alternation([]string{"a", "b"}))
	assert.Equal(t, "", Alternation(nil))
	assert.Equal(t, `\\b(x)\\b`, Wrap("x"))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, `\b((and)|(or))\b`, Unescape(Build([]string{"and", "or"})))
}

func TestVerifyAcceptsSortedLiterals(t *testing.T) {
	literals := SortByLength([]string{"Foo", "Foo.Bar", "Foo.Bar.Baz"})
	require.NoError(t, Verify("entity.name.function", Build(literals), literals))
}

func TestVerifyReportsShadowedLiteral(t *testing.T) {
	literals := []string{"Foo", "Foo.Bar"}
	err := Verify("entity.name.function", Build(literals), literals)
	require.Error(t, err)

	var unmatched *UnmatchedLiteralError
	require.True(t, errors.As(err, &unmatched))
	assert.Equal(t, "Foo.Bar", unmatched.Literal)
	assert.Equal(t, "Foo", unmatched.Matched)
	assert.Contains(t, err.Error(), "shadowed")
}

func TestVerifyReportsLiteralWithoutWordBoundary(t *testing.T) {
	literals := []string{"#date"}
	err := Verify("keyword.other", Build(literals), literals)

	var unmatched *UnmatchedLiteralError
	require.True(t, errors.As(err, &unmatched))
	assert.Empty(t, unmatched.Matched)
}

func TestVerifyCompileError(t *testing.T) {
	literals := []string{"a(b"}
	err := Verify("broken", Build(literals), literals)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile pattern")
}
