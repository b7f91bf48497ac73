package keywords

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/grammargen/internal/output"
	"github.com/phyten/grammargen/internal/regexgen"
)

func TestDefaultListsAreDisjoint(t *testing.T) {
	require.NoError(t, CheckDisjoint(DefaultLists()))
}

func TestGenerateDefaultListsMatchesGolden(t *testing.T) {
	blocks, err := Generate(DefaultLists())
	require.NoError(t, err)
	require.Len(t, blocks, 4, "check-only lists must not be emitted")

	var buf bytes.Buffer
	require.NoError(t, output.WriteText(&buf, blocks))
	want, err := os.ReadFile(filepath.Join("testdata", "keywords.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())

	again, err := Generate(DefaultLists())
	require.NoError(t, err)
	var second bytes.Buffer
	require.NoError(t, output.WriteText(&second, again))
	assert.Equal(t, buf.String(), second.String(), "generation must be idempotent")
}

func TestGenerateKeepsDeclarationOrder(t *testing.T) {
	lists := []List{
		{Name: "control", Literals: []string{"if", "let"}},
		{Name: "operator", Literals: []string{"and"}},
	}
	blocks, err := Generate(lists)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "control", blocks[0].Category)
	assert.Equal(t, `\\b((let)|(if))\\b`, blocks[0].Pattern)
	assert.Equal(t, "operator", blocks[1].Category)
	assert.Equal(t, `\\b((and))\\b`, blocks[1].Pattern)
}

func TestGeneratedPatternsMatchEveryLiteral(t *testing.T) {
	blocks, err := Generate(DefaultLists())
	require.NoError(t, err)
	for _, b := range blocks {
		assert.NoError(t, regexgen.Verify(b.Category, b.Pattern, b.Literals))
	}
}

func TestCheckDisjointReportsOverlap(t *testing.T) {
	lists := []List{
		{Name: "control", Literals: []string{"if", "let", "type"}},
		{Name: "operator", Literals: []string{"and"}},
		{Name: "other", Literals: []string{"type", "meta", "let"}},
	}
	err := CheckDisjoint(lists)
	require.Error(t, err)

	var overlap *CategoryOverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, "control", overlap.Left)
	assert.Equal(t, "other", overlap.Right)
	assert.Equal(t, []string{"let", "type"}, overlap.Overlap)
	assert.Equal(t, []string{"if", "let", "type"}, overlap.LeftLiterals)
	assert.Equal(t, []string{"let", "meta", "type"}, overlap.RightLiterals)
	assert.Contains(t, err.Error(), "control")
	assert.Contains(t, err.Error(), "other")
	assert.Contains(t, err.Error(), `"overlap"`)

	_, err = Generate(lists)
	assert.Error(t, err)
}

func TestCheckDisjointIncludesCheckOnlyLists(t *testing.T) {
	lists := DefaultLists()
	lists[0].Literals = append(lists[0].Literals, "date")

	blocks, err := Generate(lists)
	assert.Nil(t, blocks)

	var overlap *CategoryOverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, "keyword.control.powerquery", overlap.Left)
	assert.Equal(t, "keyword.other.hash.powerquery", overlap.Right)
	assert.Equal(t, []string{"date"}, overlap.Overlap)
}

func TestCheckDisjointJoinsEveryPair(t *testing.T) {
	lists := []List{
		{Name: "a", Literals: []string{"x"}},
		{Name: "b", Literals: []string{"x"}},
		{Name: "c", Literals: []string{"x"}},
	}
	err := CheckDisjoint(lists)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Len(t, joined.Unwrap(), 3)
}
