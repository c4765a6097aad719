package propositional

import "fmt"

// Tseitin returns a CNF that is equisatisfiable with f (not
// logically equivalent: the fresh auxiliary atoms it introduces may
// take values a model of f itself never constrains). Every
// subformula gets a name: an atom keeps its own name, anything else
// is given a fresh auxiliary s1, s2, ... whose defining clauses
// force it to agree with the truth value of the subformula it
// stands for. A final unit clause asserts the root's name.
func Tseitin(f Formula) CNF {
	enc := &tseitinEncoder{}
	root := enc.encode(f)
	enc.clauses = append(enc.clauses, Clause{{Name: root, Positive: true}})
	return enc.clauses
}

type tseitinEncoder struct {
	next    int
	clauses CNF
}

func (enc *tseitinEncoder) fresh() string {
	enc.next++
	return fmt.Sprintf("s%d", enc.next)
}

func (enc *tseitinEncoder) emit(clauses ...Clause) {
	enc.clauses = append(enc.clauses, clauses...)
}

// encode returns the name standing for the truth value of f, emitting
// whatever defining clauses are needed to pin that name down.
func (enc *tseitinEncoder) encode(f Formula) string {
	switch f := f.(type) {
	case falseConst:
		s := enc.fresh()
		enc.emit(Clause{neg(s)})
		return s
	case trueConst:
		s := enc.fresh()
		enc.emit(Clause{pos(s)})
		return s
	case atomNode:
		return f.name
	case notNode:
		l := enc.encode(f.sub)
		s := enc.fresh()
		enc.emit(
			Clause{neg(s), neg(l)},
			Clause{pos(s), pos(l)},
		)
		return s
	case binaryNode:
		l := enc.encode(f.left)
		r := enc.encode(f.right)
		s := enc.fresh()
		switch f.op {
		case OpAnd:
			enc.emit(
				Clause{neg(s), pos(l)},
				Clause{neg(s), pos(r)},
				Clause{pos(s), neg(l), neg(r)},
			)
		case OpOr:
			enc.emit(
				Clause{pos(s), neg(l)},
				Clause{pos(s), neg(r)},
				Clause{neg(s), pos(l), pos(r)},
			)
		case OpImpl:
			enc.emit(
				Clause{neg(s), neg(l), pos(r)},
				Clause{pos(s), pos(l)},
				Clause{pos(s), neg(r)},
			)
		case OpEq:
			enc.emit(
				Clause{neg(s), neg(l), pos(r)},
				Clause{neg(s), pos(l), neg(r)},
				Clause{pos(s), pos(l), pos(r)},
				Clause{pos(s), neg(l), neg(r)},
			)
		default:
			panic("propositional: invalid binary operator")
		}
		return s
	default:
		panic("propositional: unknown formula node")
	}
}

func pos(name string) Lit { return Lit{Name: name, Positive: true} }
func neg(name string) Lit { return Lit{Name: name, Positive: false} }
