package firstorder

import "fmt"

// Formula is a first-order formula: an Atom (relation application),
// a Not, a Binary connective, or a Quantifier. Sealed to this
// package for the same reason Term is.
type Formula interface {
	formulaNode()
}

// BinOp is the connective of a Binary node, shared in spirit with
// propositional.BinOp but kept separate: the two packages have no
// dependency on each other.
type BinOp int

const (
	// OpAnd is conjunction.
	OpAnd BinOp = iota
	// OpOr is disjunction.
	OpOr
	// OpImpl is material implication, left -> right.
	OpImpl
	// OpEq is logical equivalence.
	OpEq
)

func (op BinOp) sign() string {
	switch op {
	case OpAnd:
		return " & "
	case OpOr:
		return " | "
	case OpImpl:
		return " -> "
	case OpEq:
		return " <-> "
	default:
		panic(fmt.Sprintf("firstorder: invalid binary operator %d", int(op)))
	}
}

// QuantKind distinguishes universal from existential quantification.
type QuantKind int

const (
	// All is universal quantification.
	All QuantKind = iota
	// Exists is existential quantification.
	Exists
)

func (k QuantKind) sign() string {
	switch k {
	case All:
		return "A"
	case Exists:
		return "E"
	default:
		panic(fmt.Sprintf("firstorder: invalid quantifier kind %d", int(k)))
	}
}

// atomFormula is a relation application: symbol(args...).
type atomFormula struct {
	symbol string
	args   []Term
}

// Atom builds the atomic formula symbol(args...).
func Atom(symbol string, args ...Term) Formula {
	return atomFormula{symbol: symbol, args: args}
}

func (atomFormula) formulaNode() {}

// notFormula negates its subformula.
type notFormula struct {
	sub Formula
}

// Not negates f.
func Not(f Formula) Formula {
	return notFormula{sub: f}
}

func (notFormula) formulaNode() {}

// binaryFormula applies a BinOp to two subformulas.
type binaryFormula struct {
	op          BinOp
	left, right Formula
}

// Binary builds the formula left op right.
func Binary(op BinOp, left, right Formula) Formula {
	return binaryFormula{op: op, left: left, right: right}
}

func (binaryFormula) formulaNode() {}

// And builds the conjunction of left and right.
func And(left, right Formula) Formula { return Binary(OpAnd, left, right) }

// Or builds the disjunction of left and right.
func Or(left, right Formula) Formula { return Binary(OpOr, left, right) }

// Implies builds left -> right.
func Implies(left, right Formula) Formula { return Binary(OpImpl, left, right) }

// Eq builds left <-> right.
func Eq(left, right Formula) Formula { return Binary(OpEq, left, right) }

// quantifierFormula binds var in sub with the given kind.
type quantifierFormula struct {
	kind QuantKind
	v    string
	sub  Formula
}

// Quantifier builds kind var sub, e.g. Quantifier(All, "x", phi) for
// "A x phi".
func Quantifier(kind QuantKind, v string, sub Formula) Formula {
	return quantifierFormula{kind: kind, v: v, sub: sub}
}

func (quantifierFormula) formulaNode() {}
