package propositional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexity(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	assert.Equal(t, 0, Complexity(a))
	assert.Equal(t, 1, Complexity(Not(a)))
	assert.Equal(t, 1, Complexity(And(a, b)))
	assert.Equal(t, 4, Complexity(And(Not(a), Or(b, Not(a)))))
}

func TestString(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	f := And(Or(a, Not(b)), Not(a))
	const want = "((a | ~b) & ~a)"
	assert.Equal(t, want, f.String())
}

func TestEqual(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	f1 := And(a, Or(b, Not(a)))
	f2 := And(Atom("a"), Or(Atom("b"), Not(Atom("a"))))
	f3 := And(a, Or(b, a))

	assert.True(t, Equal(f1, f2))
	assert.False(t, Equal(f1, f3))
	assert.False(t, Equal(True, False))
	assert.True(t, Equal(True, True))
}

func TestGetAtoms(t *testing.T) {
	f := And(Atom("a"), Or(Atom("b"), Not(Atom("a"))))
	atoms := GetAtoms(f)
	assert.Equal(t, AtomSet{"a": {}, "b": {}}, atoms)
}

func TestAtomPanicsOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { Atom("") })
}
