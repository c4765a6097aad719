package cnf

import "testing"

func TestLiteral(t *testing.T) {
	l := NewLiteral(3, true)
	if l.Atom() != 3 {
		t.Errorf("Atom() = %d, want 3", l.Atom())
	}
	if !l.Positive() {
		t.Errorf("Positive() = false, want true")
	}
	if l.Negation().Positive() {
		t.Errorf("Negation().Positive() = true, want false")
	}
	if l.Negation().Atom() != 3 {
		t.Errorf("Negation().Atom() = %d, want 3", l.Negation().Atom())
	}

	neg := NewLiteral(3, false)
	if neg.Positive() {
		t.Errorf("Positive() = true, want false")
	}
	if int(neg) != -3 {
		t.Errorf("int(neg) = %d, want -3", int(neg))
	}
}

func TestClauseString(t *testing.T) {
	c := Clause{NewLiteral(1, true), NewLiteral(2, false)}
	const want = "[1 -2]"
	if got := c.String(); got != want {
		t.Errorf("Clause.String() = %q, want %q", got, want)
	}
}
