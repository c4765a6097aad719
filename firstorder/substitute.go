package firstorder

import "fmt"

// FreshGen generates the u1, u2, ... names used to alpha-rename a
// bound variable during capture-avoiding substitution. Its zero value
// is ready to use. A FreshGen is scoped to one logical build (one top
// -level Substitute call and everything it recurses into); it is not
// meant to be shared across independent substitutions, which is why
// Substitute allocates its own rather than reaching for package-level
// state.
type FreshGen struct {
	counter int
}

// Next returns a name absent from every set in taken, trying
// u1, u2, ... in order.
func (g *FreshGen) Next(taken ...VarSet) string {
	for {
		g.counter++
		name := fmt.Sprintf("u%d", g.counter)
		clash := false
		for _, vs := range taken {
			if vs.Contains(name) {
				clash = true
				break
			}
		}
		if !clash {
			return name
		}
	}
}

// SubstituteTerm replaces every occurrence of variable x in t with
// term with.
func SubstituteTerm(t Term, x string, with Term) Term {
	switch t := t.(type) {
	case variableTerm:
		if t.name == x {
			return with
		}
		return t
	case functionTerm:
		args := make([]Term, len(t.args))
		for i, arg := range t.args {
			args[i] = SubstituteTerm(arg, x, with)
		}
		return functionTerm{symbol: t.symbol, args: args}
	default:
		panic("firstorder: unknown term node")
	}
}

// Substitute replaces every free occurrence of variable x in f with
// term t, avoiding capture: when a quantifier binds a variable y that
// occurs in t, the bound variable is first alpha-renamed to a fresh
// name that occurs nowhere in that quantified subformula or in t
// before the substitution proceeds under it.
func Substitute(f Formula, x string, t Term) Formula {
	gen := &FreshGen{}
	return substitute(f, x, t, gen)
}

func substitute(f Formula, x string, t Term, gen *FreshGen) Formula {
	switch f := f.(type) {
	case atomFormula:
		args := make([]Term, len(f.args))
		for i, arg := range f.args {
			args[i] = SubstituteTerm(arg, x, t)
		}
		return atomFormula{symbol: f.symbol, args: args}
	case notFormula:
		return notFormula{sub: substitute(f.sub, x, t, gen)}
	case binaryFormula:
		return binaryFormula{op: f.op, left: substitute(f.left, x, t, gen), right: substitute(f.right, x, t, gen)}
	case quantifierFormula:
		if f.v == x {
			return f
		}
		if TermVariables(t).Contains(f.v) {
			u := gen.Next(AllVariables(f), TermVariables(t))
			renamed := substitute(f.sub, f.v, Variable(u), gen)
			return quantifierFormula{kind: f.kind, v: u, sub: substitute(renamed, x, t, gen)}
		}
		return quantifierFormula{kind: f.kind, v: f.v, sub: substitute(f.sub, x, t, gen)}
	default:
		panic("firstorder: unknown formula node")
	}
}
