package propositional

import "fmt"

// Lit is a named literal: an atom together with a polarity. It is
// the name-indexed counterpart of cnf.Literal, used by the
// distributive and Tseitin encoders before atom names are resolved
// to DIMACS indices.
type Lit struct {
	Name     string
	Positive bool
}

func (l Lit) String() string {
	if l.Positive {
		return l.Name
	}
	return "~" + l.Name
}

// Clause is a disjunction of literals.
type Clause []Lit

// CNF is a conjunction of clauses. The empty CNF is true; a CNF
// holding one empty clause is false.
type CNF []Clause

// ToCNF computes the classical distributive conjunctive-normal form
// of n: And becomes clause-list concatenation, Or becomes the
// cross-product of clause lists. n must be in negation-normal form,
// which the NF type guarantees by construction, so the Impl/Eq arms
// of the underlying Formula never arise; reaching one regardless is
// an invariant violation and ToCNF panics.
func ToCNF(n NF) CNF {
	return cnfRec(n.f)
}

func cnfRec(f Formula) CNF {
	switch f := f.(type) {
	case falseConst:
		return CNF{Clause{}}
	case trueConst:
		return CNF{}
	case atomNode:
		return CNF{Clause{{Name: f.name, Positive: true}}}
	case notNode:
		a, ok := f.sub.(atomNode)
		if !ok {
			panic("propositional: ToCNF given a tree not in negation-normal form")
		}
		return CNF{Clause{{Name: a.name, Positive: false}}}
	case binaryNode:
		switch f.op {
		case OpAnd:
			return append(cnfRec(f.left), cnfRec(f.right)...)
		case OpOr:
			return crossProduct(cnfRec(f.left), cnfRec(f.right))
		default:
			panic(fmt.Sprintf("propositional: ToCNF given a tree not in negation-normal form (operator %v)", f.op))
		}
	default:
		panic("propositional: unknown formula node")
	}
}

func crossProduct(left, right CNF) CNF {
	result := make(CNF, 0, len(left)*len(right))
	for _, c := range left {
		for _, d := range right {
			merged := make(Clause, 0, len(c)+len(d))
			merged = append(merged, c...)
			merged = append(merged, d...)
			result = append(result, merged)
		}
	}
	return result
}
