package sat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idrecun/ar-logika/cnf"
)

func lit(a int) cnf.Literal {
	if a < 0 {
		return cnf.NewLiteral(cnf.Atom(-a), false)
	}
	return cnf.NewLiteral(cnf.Atom(a), true)
}

func clause(lits ...int) cnf.Clause {
	c := make(cnf.Clause, len(lits))
	for i, l := range lits {
		c[i] = lit(l)
	}
	return c
}

func TestSolveSatisfiable(t *testing.T) {
	pb := cnf.Problem{
		NbAtoms: 2,
		Clauses: cnf.CNF{clause(1, 2), clause(-1, 2)},
	}
	s := New(pb)
	require.Equal(t, Sat, s.Solve())

	model := s.Model()
	ok := checkModel(pb, model)
	assert.True(t, ok, "model %v does not satisfy problem", model)
}

func TestSolveUnsatisfiable(t *testing.T) {
	pb := cnf.Problem{
		NbAtoms: 1,
		Clauses: cnf.CNF{clause(1), clause(-1)},
	}
	s := New(pb)
	require.Equal(t, Unsat, s.Solve())
}

func TestSolveUnitPropagation(t *testing.T) {
	pb := cnf.Problem{
		NbAtoms: 3,
		Clauses: cnf.CNF{clause(1), clause(-1, 2), clause(-2, 3)},
	}
	s := New(pb)
	require.Equal(t, Sat, s.Solve())
	model := s.Model()
	assert.True(t, model[1])
	assert.True(t, model[2])
	assert.True(t, model[3])
}

func TestSolveTrace(t *testing.T) {
	pb := cnf.Problem{
		NbAtoms: 1,
		Clauses: cnf.CNF{clause(1)},
	}
	var buf bytes.Buffer
	s := New(pb)
	s.Trace = &buf
	require.Equal(t, Sat, s.Solve())
	assert.Contains(t, buf.String(), "c ")
}

func TestModelPanicsBeforeSolve(t *testing.T) {
	pb := cnf.Problem{NbAtoms: 1, Clauses: cnf.CNF{clause(1)}}
	s := New(pb)
	assert.Panics(t, func() { s.Model() })
}

// checkModel verifies testable property #7: every clause of pb has
// at least one literal assigned true under model.
func checkModel(pb cnf.Problem, model map[cnf.Atom]bool) bool {
	for _, c := range pb.Clauses {
		satisfied := false
		for _, l := range c {
			if model[l.Atom()] == l.Positive() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "SAT", Sat.String())
	assert.Equal(t, "UNSAT", Unsat.String())
	assert.Equal(t, "INDETERMINATE", Indet.String())
}
