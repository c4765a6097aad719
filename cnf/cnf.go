package cnf

import "fmt"

// Atom is a 1-based propositional variable index.
type Atom int

// Literal is a nonzero signed integer. Its sign carries polarity
// (positive means the atom unnegated) and its absolute value is the
// Atom it refers to.
type Literal int

// NewLiteral builds the Literal for atom a with the given polarity.
// It panics if a is not strictly positive, since atom 0 does not
// exist in the 1-based DIMACS convention.
func NewLiteral(a Atom, positive bool) Literal {
	if a <= 0 {
		panic(fmt.Sprintf("cnf: invalid atom index %d", a))
	}
	if positive {
		return Literal(a)
	}
	return Literal(-a)
}

// Atom returns the atom this literal refers to, stripping polarity.
func (l Literal) Atom() Atom {
	if l < 0 {
		return Atom(-l)
	}
	return Atom(l)
}

// Positive reports whether l is an unnegated occurrence of its atom.
func (l Literal) Positive() bool {
	return l > 0
}

// Negation returns the literal for the same atom with the opposite
// polarity.
func (l Literal) Negation() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

// Clause is a disjunction of literals. Order is preserved for
// reproducibility; it carries no semantic weight.
type Clause []Literal

// CNF is a conjunction of clauses.
type CNF []Clause

// Problem pairs a CNF with the number of distinct atoms it was
// declared over.
type Problem struct {
	NbAtoms int
	Clauses CNF
}

func (c Clause) String() string {
	s := "["
	for i, l := range c {
		if i > 0 {
			s += " "
		}
		s += l.String()
	}
	return s + "]"
}
