package mongo

import "testing"

func TestSearchPattern_EscapesRegexMetacharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"gatsby", "gatsby"},
		{"c++ primer", `c\+\+ primer`},
		{"(unbalanced", `\(unbalanced`},
		{".*", `\.\*`},
	}
	for _, c := range cases {
		got := searchPattern(c.in)
		if got.Pattern != c.want {
			t.Errorf("searchPattern(%q).Pattern = %q, want %q", c.in, got.Pattern, c.want)
		}
		if got.Options != "i" {
			t.Errorf("searchPattern(%q).Options = %q, want i", c.in, got.Options)
		}
	}
}
