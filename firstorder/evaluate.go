package firstorder

import "fmt"

// EvaluateTerm evaluates t against structure s under valuation v: a
// Variable looks itself up in v (an error if absent); a Function
// evaluates its arguments and applies the structure's implementation
// of its symbol.
func EvaluateTerm(t Term, s LStructure, v Valuation) (Elem, error) {
	switch t := t.(type) {
	case variableTerm:
		e, ok := v[t.name]
		if !ok {
			return 0, fmt.Errorf("firstorder: valuation has no entry for variable %q", t.name)
		}
		return e, nil
	case functionTerm:
		args, err := evaluateArgs(t.args, s, v)
		if err != nil {
			return 0, err
		}
		fn, ok := s.Functions[t.symbol]
		if !ok {
			return 0, fmt.Errorf("firstorder: structure has no implementation for function %q", t.symbol)
		}
		return fn(args), nil
	default:
		panic("firstorder: unknown term node")
	}
}

func evaluateArgs(terms []Term, s LStructure, v Valuation) ([]Elem, error) {
	args := make([]Elem, len(terms))
	for i, t := range terms {
		e, err := EvaluateTerm(t, s, v)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	return args, nil
}

// Evaluate computes the truth value of f against structure s under
// valuation v. Quantifiers iterate s.Domain in its given order,
// which must be deterministic for a given structure; All requires
// every element to satisfy the body, Exists requires at least one.
func Evaluate(f Formula, s LStructure, v Valuation) (bool, error) {
	switch f := f.(type) {
	case atomFormula:
		args, err := evaluateArgs(f.args, s, v)
		if err != nil {
			return false, err
		}
		rel, ok := s.Relations[f.symbol]
		if !ok {
			return false, fmt.Errorf("firstorder: structure has no implementation for relation %q", f.symbol)
		}
		return rel(args), nil
	case notFormula:
		b, err := Evaluate(f.sub, s, v)
		if err != nil {
			return false, err
		}
		return !b, nil
	case binaryFormula:
		l, err := Evaluate(f.left, s, v)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(f.right, s, v)
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
			panic(fmt.Sprintf("firstorder: invalid binary operator %d", int(f.op)))
		}
	case quantifierFormula:
		switch f.kind {
		case All:
			for _, e := range s.Domain {
				ok, err := Evaluate(f.sub, s, v.With(f.v, e))
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			}
			return true, nil
		case Exists:
			for _, e := range s.Domain {
				ok, err := Evaluate(f.sub, s, v.With(f.v, e))
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			return false, nil
		default:
			panic(fmt.Sprintf("firstorder: invalid quantifier kind %d", int(f.kind)))
		}
	default:
		panic("firstorder: unknown formula node")
	}
}
