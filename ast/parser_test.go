package ast

import "testing"

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ErrorKind
	}{
		{"unbalanced open", "(ab", UnbalancedParen},
		{"unbalanced close", "ab)", UnbalancedParen},
		{"unbalanced bracket", "[abc", UnbalancedBracket},
		{"trailing escape", `ab\`, TrailingEscape},
		{"bad range", "[z-a]", InvalidRange},
		{"unknown escape", `\q`, UnknownEscape},
		{"leading quantifier", "*ab", InvalidQuantifier},
		{"stacked quantifier", "a*+", InvalidQuantifier},
		{"bad counted", "a{3,1}", InvalidQuantifier},
		{"unterminated counted", "a{3", InvalidQuantifier},
		{"lookahead rejected", "(?=ab)", UnsupportedFeature},
		{"named group rejected", "(?P<x>ab)", UnsupportedFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.pattern, NoFlag)
			if err == nil {
				t.Fatalf("Parse(%q) = nil error, want %v", tt.pattern, tt.want)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", tt.pattern, err)
			}
			if pe.Kind != tt.want {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.pattern, pe.Kind, tt.want)
			}
		})
	}
}

func TestParseGroupCount(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"abc", 0},
		{"(ab)", 1},
		{"(a)(b)(c)", 3},
		{"(?:ab)", 0},
		{"((a)(b))", 3},
		{"(ab)+", 1},
		{"s()?e", 1},
	}

	for _, tt := range tests {
		_, n, err := Parse(tt.pattern, NoFlag)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
		}
		if n != tt.want {
			t.Errorf("Parse(%q) groups = %d, want %d", tt.pattern, n, tt.want)
		}
	}
}

func TestParseShape(t *testing.T) {
	root, _, err := Parse("ab|c*", NoFlag)
	if err != nil {
		t.Fatal(err)
	}
	if root.Kind != KindAlternation || len(root.Sub) != 2 {
		t.Fatalf("root = %+v, want 2-branch alternation", root)
	}
	left := root.Sub[0]
	if left.Kind != KindConcatenation || len(left.Sub) != 2 {
		t.Fatalf("left branch = %+v, want 2-element concatenation", left)
	}
	right := root.Sub[1]
	if right.Kind != KindQuantified || right.Min != 0 || right.Max != Unbounded {
		t.Fatalf("right branch = %+v, want c*", right)
	}
}

func TestParseEmptyGroup(t *testing.T) {
	root, groups, err := Parse("s()?e", NoFlag)
	if err != nil {
		t.Fatal(err)
	}
	if groups != 1 {
		t.Fatalf("groups = %d, want 1", groups)
	}
	if root.Kind != KindConcatenation || len(root.Sub) != 3 {
		t.Fatalf("root = %+v, want 3-element concatenation", root)
	}
	q := root.Sub[1]
	if q.Kind != KindQuantified || q.Min != 0 || q.Max != 1 {
		t.Fatalf("middle = %+v, want ()?", q)
	}
	group := q.Sub[0]
	if group.Kind != KindGroup || group.Sub[0].Kind != KindEpsilon {
		t.Fatalf("group body = %+v, want epsilon", group.Sub[0])
	}
}
