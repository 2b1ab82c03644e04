package allowexpr

import "testing"

func TestRuleAllows(t *testing.T) {
	cases := []struct {
		expr  string
		entry string
		want  bool
	}{
		{`entry.endsWith(".example.com")`, "api.example.com", true},
		{`entry.endsWith(".example.com")`, "example.org", false},
		{`entry == "localhost" || entry.startsWith("10.")`, "10.0.0.1", true},
		{`entry.matches("^[a-z]+-[0-9]+$")`, "build-42", true},
		{`entry.split(".").size() == 3`, "a.b.c", true},
		{`entry.contains("admin")`, "user", false},
	}
	for _, c := range cases {
		r, err := Compile(c.expr)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.expr, err)
		}
		got, err := r.Allows(c.entry)
		if err != nil {
			t.Fatalf("%q.Allows(%q): %v", c.expr, c.entry, err)
		}
		if got != c.want {
			t.Fatalf("%q.Allows(%q) = %v, want %v", c.expr, c.entry, got, c.want)
		}
	}
}

func TestCompile_Errors(t *testing.T) {
	cases := []string{
		"",
		"   ",
		`entry +`,
		`entry.size()`,
		`unknown == "x"`,
	}
	for _, expr := range cases {
		if _, err := Compile(expr); err == nil {
			t.Fatalf("Compile(%q) expected error", expr)
		}
	}
}

func TestRuleString(t *testing.T) {
	r, err := Compile(`  entry == "x"  `)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != `entry == "x"` {
		t.Fatalf("String() = %q", r.String())
	}
}
