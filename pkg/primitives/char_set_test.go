package primitives

import "testing"

func TestCharSet(t *testing.T) {
	c := NewCharSet()
	if c.Count() != 0 {
		t.Fatalf("new set is not empty: %s", c)
	}
	for _, r := range "hello" {
		if err := c.Add(r); err != nil {
			t.Fatalf("Add(%c) error = %v", r, err)
		}
	}
	if c.Count() != 4 {
		t.Errorf("Count() = %d, want 4", c.Count())
	}
	if err := c.Add('A'); err == nil {
		t.Errorf("Add('A') error = nil, want out of range")
	}
	if got, want := c.String(), "letters ['e', 'h', 'l', 'o'] (4/26)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCharSetOfIgnoresOtherRunes(t *testing.T) {
	c := CharSetOf("it's a Zoo")
	if got, want := c.String(), "letters ['a', 'i', 'o', 's', 't'] (5/26)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCharSetContainsAll(t *testing.T) {
	phrase := CharSetOf("poultryoutwitsants")
	tests := []struct {
		word string
		want bool
	}{
		{"printout", true},
		{"yawls", true},
		{"this", false},
		{"", true},
		{"it's", true},
	}
	for _, tt := range tests {
		word := CharSetOf(tt.word)
		if got := phrase.ContainsAll(&word); got != tt.want {
			t.Errorf("ContainsAll(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
