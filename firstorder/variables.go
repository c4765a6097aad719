package firstorder

// VarSet is a set of variable names.
type VarSet map[string]struct{}

// Contains reports whether name is in the set.
func (vs VarSet) Contains(name string) bool {
	_, ok := vs[name]
	return ok
}

// TermVariables returns the set of variable names occurring in t.
func TermVariables(t Term) VarSet {
	vars := make(VarSet)
	collectTermVars(t, vars)
	return vars
}

func collectTermVars(t Term, vars VarSet) {
	switch t := t.(type) {
	case variableTerm:
		vars[t.name] = struct{}{}
	case functionTerm:
		for _, arg := range t.args {
			collectTermVars(arg, vars)
		}
	default:
		panic("firstorder: unknown term node")
	}
}

// GetVariables accumulates, into vars, the variable names occurring
// in f. When includeBound is true every occurrence counts, bound or
// free. When it is false, only free occurrences count: entering
// Quantifier(_, x, phi), it records whether x was already present
// from some outer context, recurses into phi, and then removes x
// again unless it was already present before the recursion -- this
// correctly keeps a free occurrence of x outside this subformula
// even though the subformula itself binds x.
func GetVariables(f Formula, vars VarSet, includeBound bool) {
	switch f := f.(type) {
	case atomFormula:
		for _, arg := range f.args {
			collectTermVars(arg, vars)
		}
	case notFormula:
		GetVariables(f.sub, vars, includeBound)
	case binaryFormula:
		GetVariables(f.left, vars, includeBound)
		GetVariables(f.right, vars, includeBound)
	case quantifierFormula:
		if includeBound {
			GetVariables(f.sub, vars, includeBound)
			vars[f.v] = struct{}{}
			return
		}
		hadFreeOccurrence := vars.Contains(f.v)
		GetVariables(f.sub, vars, includeBound)
		if !hadFreeOccurrence {
			delete(vars, f.v)
		}
	default:
		panic("firstorder: unknown formula node")
	}
}

// FreeVariables returns the set of variables free in f.
func FreeVariables(f Formula) VarSet {
	vars := make(VarSet)
	GetVariables(f, vars, false)
	return vars
}

// AllVariables returns the set of every variable occurring in f,
// bound or free.
func AllVariables(f Formula) VarSet {
	vars := make(VarSet)
	GetVariables(f, vars, true)
	return vars
}

// ContainsVariable reports whether name occurs (bound, if
// includeBound, or only free otherwise) in f.
func ContainsVariable(f Formula, name string, includeBound bool) bool {
	vars := make(VarSet)
	GetVariables(f, vars, includeBound)
	return vars.Contains(name)
}
