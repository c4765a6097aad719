package propositional

import (
	"sort"

	"github.com/idrecun/ar-logika/cnf"
	"github.com/idrecun/ar-logika/sat"
)

// Encode resolves the atom names of c to DIMACS-style indices,
// assigning each distinct name the next unused index in sorted
// order, and returns the resulting cnf.Problem together with the
// name assigned to each index.
func Encode(c CNF) (cnf.Problem, []string) {
	names := make(map[string]struct{})
	for _, clause := range c {
		for _, l := range clause {
			names[l.Name] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	index := make(map[string]cnf.Atom, len(sorted))
	for i, name := range sorted {
		index[name] = cnf.Atom(i + 1)
	}

	clauses := make(cnf.CNF, len(c))
	for i, clause := range c {
		lits := make(cnf.Clause, len(clause))
		for j, l := range clause {
			lits[j] = cnf.NewLiteral(index[l.Name], l.Positive)
		}
		clauses[i] = lits
	}
	return cnf.Problem{NbAtoms: len(sorted), Clauses: clauses}, sorted
}

// Solve builds a CNF for f via simplify -> nnf -> cnf, encodes it to
// a cnf.Problem, and runs the DPLL solver. It returns the model as a
// Valuation over f's original atom names when satisfiable.
func Solve(f Formula) (sat.Status, Valuation) {
	simplified := Simplify(f)
	n := ToNNF(simplified)
	c := ToCNF(n)
	pb, names := Encode(c)
	s := sat.New(pb)
	status := s.Solve()
	if status != sat.Sat {
		return status, nil
	}
	model := s.Model()
	v := make(Valuation, len(names))
	for i, name := range names {
		v[name] = model[cnf.Atom(i+1)]
	}
	return status, v
}

// SolveTseitin is the Tseitin-encoding counterpart of Solve: it
// skips simplify/nnf/cnf and instead asks whether f is satisfiable
// via its equisatisfiable Tseitin encoding. The returned Valuation,
// when satisfiable, includes both f's original atoms and the
// auxiliary atoms Tseitin introduced.
func SolveTseitin(f Formula) (sat.Status, Valuation) {
	c := Tseitin(f)
	pb, names := Encode(c)
	s := sat.New(pb)
	status := s.Solve()
	if status != sat.Sat {
		return status, nil
	}
	model := s.Model()
	v := make(Valuation, len(names))
	for i, name := range names {
		v[name] = model[cnf.Atom(i+1)]
	}
	return status, v
}
