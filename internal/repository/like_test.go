package repository

import "testing"

func TestContainsPattern(t *testing.T) {
	cases := []struct {
		query, want string
	}{
		{"Smith", "%smith%"},
		{"555-123", "%555-123%"},
		{"100%", "%100!%%"},
		{"a_b", "%a!_b%"},
		{"wow!", "%wow!!%"},
	}
	for _, c := range cases {
		if got := containsPattern(c.query); got != c.want {
			t.Errorf("containsPattern(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}

func TestLowerLike(t *testing.T) {
	if got := lowerLike("name"); got != "LOWER(name) LIKE ? ESCAPE '!'" {
		t.Errorf("unexpected clause %q", got)
	}
}
