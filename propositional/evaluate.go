package propositional

import "fmt"

// Valuation maps atom names to a boolean. Evaluate never mutates its
// valuation and never inserts a default for a name it cannot find.
type Valuation map[string]bool

// Evaluate computes the truth value of f under v using standard
// inductive boolean semantics: Impl(l,r) is ~l | r, Eq(l,r) is l = r.
// It returns an error, rather than assuming a default, the first
// time it encounters an atom absent from v.
func Evaluate(f Formula, v Valuation) (bool, error) {
	switch f := f.(type) {
	case falseConst:
		return false, nil
	case trueConst:
		return true, nil
	case atomNode:
		b, ok := v[f.name]
		if !ok {
			return false, fmt.Errorf("propositional: valuation has no entry for atom %q", f.name)
		}
		return b, nil
	case notNode:
		b, err := Evaluate(f.sub, v)
		if err != nil {
			return false, err
		}
		return !b, nil
	case binaryNode:
		l, err := Evaluate(f.left, v)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(f.right, v)
		if err != nil {
			return false, err
		}
		switch f.op {
		case OpAnd:
			return l && r, nil
		case OpOr:
			return l || r, nil
		case OpImpl:
			return !l || r, nil
		case OpEq:
			return l == r, nil
		default:
			panic(fmt.Sprintf("propositional: invalid binary operator %d", int(f.op)))
		}
	default:
		panic(fmt.Sprintf("propositional: unknown formula node %T", f))
	}
}
