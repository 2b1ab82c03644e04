package allowlist

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		strip   *Pattern
		want    []string
	}{
		{
			name:    "drops empty and whitespace entries keeping order",
			entries: Strings([]string{"Foo", "", "BAR", " "}),
			want:    []string{"foo", "bar"},
		},
		{
			name:    "strips literal prefix",
			entries: Strings([]string{"user-Alice", "user-BOB"}),
			strip:   Prefix("user-"),
			want:    []string{"alice", "bob"},
		},
		{
			name:    "mixed numbers and strings",
			entries: []Entry{Int(42), String("Widget"), String("")},
			want:    []string{"42", "widget"},
		},
		{
			name:    "trims before lowercasing",
			entries: Strings([]string{"  Example.COM\t", "\nHost\n"}),
			want:    []string{"example.com", "host"},
		},
		{
			name:    "trims before stripping so anchored prefix still matches",
			entries: Strings([]string{"  user-Carol "}),
			strip:   Prefix("user-"),
			want:    []string{"carol"},
		},
		{
			name:    "prefix only removed at start",
			entries: Strings([]string{"admin-user-x"}),
			strip:   Prefix("user-"),
			want:    []string{"admin-user-x"},
		},
		{
			name:    "entry reduced to empty by pattern is kept",
			entries: Strings([]string{"user-"}),
			strip:   Prefix("user-"),
			want:    []string{""},
		},
		{
			name:    "non-global pattern removes first match only",
			entries: Strings([]string{"a-b-c"}),
			strip:   MustCompile("-", false),
			want:    []string{"ab-c"},
		},
		{
			name:    "global pattern removes every match",
			entries: Strings([]string{"a-b-c"}),
			strip:   MustCompile("-", true),
			want:    []string{"abc"},
		},
		{
			name:    "literal pattern matches anywhere",
			entries: Strings([]string{"Mail.corp.Example.com"}),
			strip:   Literal(".corp"),
			want:    []string{"mail.example.com"},
		},
		{
			name:    "unicode lowercase",
			entries: Strings([]string{"ÄÖÜ", "ÉCOLE"}),
			want:    []string{"äöü", "école"},
		},
		{
			name:    "floats use plain decimal form",
			entries: []Entry{Float(1.5), Float(42), Float(1e6), Float(-0.25)},
			want:    []string{"1.5", "42", "1000000", "-0.25"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Normalize(c.entries, c.strip)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_EmptyInputReturnsEmptySlice(t *testing.T) {
	for _, in := range [][]Entry{nil, {}, Strings([]string{"", "  ", "\t\n"})} {
		got := Normalize(in, nil)
		if got == nil {
			t.Fatalf("Normalize(%v) returned nil", in)
		}
		if len(got) != 0 {
			t.Fatalf("Normalize(%v) = %v, want empty", in, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first := NormalizeStrings([]string{" Foo ", "BAR", "", "baz.Example.org", "10"}, nil)
	second := NormalizeStrings(first, nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass changed output (-first +second):\n%s", diff)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := Strings([]string{" Foo ", "BAR"})
	_ = Normalize(in, Prefix("f"))
	if in[0].String() != " Foo " || in[1].String() != "BAR" {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestNormalizeValues(t *testing.T) {
	in := []any{42, "Widget", "", int64(7), uint8(3), 2.5, json.Number("12"), true}
	got := NormalizeValues(in, nil)
	want := []string{"42", "widget", "7", "3", "2.5", "12", "true"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NormalizeValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryKind(t *testing.T) {
	cases := []struct {
		in   Entry
		want EntryKind
	}{
		{Entry{}, KindString},
		{String("x"), KindString},
		{Int(1), KindInt},
		{Float(1), KindFloat},
		{Value(uint64(1 << 63)), KindString},
		{Value(json.Number("1.25")), KindFloat},
	}
	for _, c := range cases {
		if got := c.in.Kind(); got != c.want {
			t.Fatalf("%v.Kind() = %s, want %s", c.in, got, c.want)
		}
	}
}
