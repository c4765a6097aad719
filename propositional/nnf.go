package propositional

// NF is a formula known, by construction, to be in negation-normal
// form: built only from And, Or, constants and literals (an atom or
// the negation of one). The only way to obtain one is ToNNF, which
// turns the "Impl/Eq is unreachable in NNF" invariant from a runtime
// assertion buried in cnf's type switch into a fact the type checker
// can lean on: ToCNF takes an NF, not a bare Formula, so a caller
// cannot feed it a tree that still contains Impl or Eq. (Tseitin
// takes a plain Formula, since it encodes every connective directly.)
type NF struct {
	f Formula
}

// Formula unwraps n back to a plain Formula, e.g. to print or
// evaluate it.
func (n NF) Formula() Formula { return n.f }

// ToNNF computes the negation-normal form of f via the mutually
// recursive nnf/nnfNot transformations.
func ToNNF(f Formula) NF {
	return NF{f: nnf(f)}
}

func nnf(f Formula) Formula {
	switch f := f.(type) {
	case falseConst, trueConst, atomNode:
		return f
	case notNode:
		return nnfNot(f.sub)
	case binaryNode:
		switch f.op {
		case OpAnd:
			return binaryNode{op: OpAnd, left: nnf(f.left), right: nnf(f.right)}
		case OpOr:
			return binaryNode{op: OpOr, left: nnf(f.left), right: nnf(f.right)}
		case OpImpl:
			return binaryNode{op: OpOr, left: nnfNot(f.left), right: nnf(f.right)}
		case OpEq:
			return binaryNode{
				op: OpAnd,
				left: binaryNode{op: OpOr, left: nnfNot(f.left), right: nnf(f.right)},
				right: binaryNode{op: OpOr, left: nnf(f.left), right: nnfNot(f.right)},
			}
		default:
			panic("propositional: invalid binary operator")
		}
	default:
		panic("propositional: unknown formula node")
	}
}

// nnfNot computes the NNF of Not(f).
func nnfNot(f Formula) Formula {
	switch f := f.(type) {
	case falseConst:
		return True
	case trueConst:
		return False
	case atomNode:
		return notNode{sub: f}
	case notNode:
		return nnf(f.sub)
	case binaryNode:
		switch f.op {
		case OpAnd:
			return binaryNode{op: OpOr, left: nnfNot(f.left), right: nnfNot(f.right)}
		case OpOr:
			return binaryNode{op: OpAnd, left: nnfNot(f.left), right: nnfNot(f.right)}
		case OpImpl:
			return binaryNode{op: OpAnd, left: nnf(f.left), right: nnfNot(f.right)}
		case OpEq:
			return binaryNode{
				op: OpOr,
				left: binaryNode{op: OpAnd, left: nnf(f.left), right: nnfNot(f.right)},
				right: binaryNode{op: OpAnd, left: nnfNot(f.left), right: nnf(f.right)},
			}
		default:
			panic("propositional: invalid binary operator")
		}
	default:
		panic("propositional: unknown formula node")
	}
}
