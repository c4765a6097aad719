package propositional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteReplacesEveryOccurrence(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	// substitute a -> b inside (a & (a | a)): every occurrence of a is
	// replaced.
	f := And(a, Or(a, a))
	got := Substitute(f, a, b)
	want := And(b, Or(b, b))
	assert.True(t, Equal(want, got))
}

func TestSubstituteNoReentry(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	what := And(a, b)
	with := Or(a, b)
	// what itself contains a and b, but substitution is one pass:
	// replacing `what` by `with` must not recurse back into `with`
	// looking for more matches of `what`.
	f := And(what, a)
	got := Substitute(f, what, with)
	want := And(with, a)
	assert.True(t, Equal(want, got))
}

// For all f, what, with, v such that evaluate(what, v) = evaluate(with, v):
// evaluate(substitute(f, what, with), v) = evaluate(f, v) (property #5).
func TestSubstitutePreservesSemanticsWhenEquivalent(t *testing.T) {
	a, b, c := Atom("a"), Atom("b"), Atom("c")
	f := And(Or(a, b), Implies(c, a))
	what := a
	with := Eq(a, a) // tautology, same truth value as `a` only when a=true

	v := Valuation{"a": true, "b": false, "c": false}
	wv, err := Evaluate(what, v)
	require.NoError(t, err)
	ww, err := Evaluate(with, v)
	require.NoError(t, err)
	require.Equal(t, wv, ww)

	got := Substitute(f, what, with)
	want, err := Evaluate(f, v)
	require.NoError(t, err)
	gotVal, err := Evaluate(got, v)
	require.NoError(t, err)
	assert.Equal(t, want, gotVal)
}
