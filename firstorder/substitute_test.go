package firstorder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowUnexported = cmp.AllowUnexported(
	variableTerm{}, functionTerm{},
	atomFormula{}, notFormula{}, binaryFormula{}, quantifierFormula{},
)

func TestSubstituteTermSimple(t *testing.T) {
	got := SubstituteTerm(Function("f", Variable("x"), Variable("y")), "x", Function("g"))
	want := Function("f", Function("g"), Variable("y"))
	if diff := cmp.Diff(want, got, allowUnexported); diff != "" {
		t.Errorf("SubstituteTerm mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteQuantifierBindingSameVarIsNoOp(t *testing.T) {
	// Ax P(x) [x -> f(y)] = Ax P(x): x is bound, so it is not free and
	// the substitution must leave the quantifier untouched.
	f := Quantifier(All, "x", Atom("P", Variable("x")))
	got := Substitute(f, "x", Function("f", Variable("y")))
	if diff := cmp.Diff(f, got, allowUnexported); diff != "" {
		t.Errorf("Substitute mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteAlphaRenamesToAvoidCapture(t *testing.T) {
	// Ey (even(x) & ~even(x)) [x -> y + 1] must alpha-rename the bound
	// y before substituting, since y occurs free in the replacement
	// term y+1: otherwise y+1 would be captured by the "Ey" binder.
	evenX := Atom("even", Variable("x"))
	evenAndOddX := And(evenX, Not(evenX))
	existsY := Quantifier(Exists, "y", evenAndOddX)

	yPlusOne := Function("+", Variable("y"), Function("1"))
	got := Substitute(existsY, "x", yPlusOne)

	q, ok := got.(quantifierFormula)
	require.True(t, ok)
	assert.Equal(t, Exists, q.kind)
	assert.NotEqual(t, "y", q.v)

	// x must be gone from the body (replaced by y+1), and the fresh
	// bound variable must not collide with the free y in y+1.
	body := q.sub
	assert.False(t, FreeVariables(body).Contains("x"))
	assert.Equal(t, "(even(+(y, 1)) & ~even(+(y, 1)))", PrintFormula(body))
}

// Capture avoidance (testable property #6): for every formula phi,
// variable x, term t and structure S with valuation rho, when x is
// free in phi and rho is defined on every free variable of both
// sides,
//
//	eval(substitute(phi, x, t), S, rho) == eval(phi, S, rho[x -> eval(t, S, rho)]).
func TestSubstituteCaptureAvoidanceSemantics(t *testing.T) {
	L := mod4Structure()

	evenX := Atom("even", Variable("x"))
	phi := Quantifier(Exists, "y", And(evenX, Not(Atom("even", Variable("y")))))
	term := Function("+", Variable("y"), Function("1"))

	rho := Valuation{"y": 2}
	tVal, err := EvaluateTerm(term, L, rho)
	require.NoError(t, err)

	lhs, err := Evaluate(Substitute(phi, "x", term), L, rho)
	require.NoError(t, err)
	rhs, err := Evaluate(phi, L, rho.With("x", tVal))
	require.NoError(t, err)

	assert.Equal(t, rhs, lhs)
}
