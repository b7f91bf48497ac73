package model

import "testing"

func TestBlockLongest(t *testing.T) {
	cases := []struct {
		literals []string
		want     string
	}{
		{nil, ""},
		{[]string{"if"}, "if"},
		{[]string{"let", "try", "in"}, "let"},
		{[]string{"ab", "éèà", "abcd"}, "abcd"},
		{[]string{"éèà", "abc"}, "éèà"},
	}
	for _, tc := range cases {
		if got := (Block{Literals: tc.literals}).Longest(); got != tc.want {
			t.Errorf("Longest(%q) = %q, want %q", tc.literals, got, tc.want)
		}
	}
}
