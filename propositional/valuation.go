package propositional

import (
	"fmt"
	"io"
	"sort"
)

// SortedNames returns the names of atoms in atoms, in the total
// order the enumeration and printing code relies on: sorted,
// case-sensitive.
func (atoms AtomSet) SortedNames() []string {
	names := make([]string, 0, len(atoms))
	for name := range atoms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllFalse returns the valuation over names with every atom set to
// false, the starting point for enumeration.
func AllFalse(names []string) Valuation {
	v := make(Valuation, len(names))
	for _, name := range names {
		v[name] = false
	}
	return v
}

// Next advances v to the next valuation over names, treating v as a
// binary counter in the order of names (least significant first):
// bits that are true are flipped to false, until a false bit is
// found and flipped to true. It reports false when every bit was
// true (the counter is exhausted) and leaves v at all-false again.
func Next(v Valuation, names []string) bool {
	for _, name := range names {
		if v[name] {
			v[name] = false
			continue
		}
		v[name] = true
		return true
	}
	return false
}

// IsSatisfiable performs brute-force enumeration over every
// valuation of f's atoms (sorted order) looking for one that
// satisfies f. It returns the satisfying valuation (or nil) and
// whether one was found.
func IsSatisfiable(f Formula) (Valuation, bool) {
	names := GetAtoms(f).SortedNames()
	v := AllFalse(names)
	for {
		ok, err := Evaluate(f, v)
		if err != nil {
			panic("propositional: evaluate failed over a valuation built from f's own atoms: " + err.Error())
		}
		if ok {
			model := make(Valuation, len(v))
			for k, b := range v {
				model[k] = b
			}
			return model, true
		}
		if !Next(v, names) {
			return nil, false
		}
	}
}

// TableRow is one row of a truth table: the valuation of f's atoms
// for that row, and f's value under it.
type TableRow struct {
	Valuation Valuation
	Result    bool
}

// Table enumerates every valuation of f's atoms (sorted order) and
// returns one TableRow per valuation, in enumeration order.
func Table(f Formula) []TableRow {
	names := GetAtoms(f).SortedNames()
	v := AllFalse(names)
	var rows []TableRow
	for {
		ok, err := Evaluate(f, v)
		if err != nil {
			panic("propositional: evaluate failed over a valuation built from f's own atoms: " + err.Error())
		}
		row := make(Valuation, len(v))
		for k, b := range v {
			row[k] = b
		}
		rows = append(rows, TableRow{Valuation: row, Result: ok})
		if !Next(v, names) {
			return rows
		}
	}
}

// PrintTable writes f's truth table to w: a header naming the atoms
// in sorted order, then one line per row giving each atom's value
// followed by "| " and f's value under it.
func PrintTable(w io.Writer, f Formula) {
	names := GetAtoms(f).SortedNames()
	for _, name := range names {
		fmt.Fprintf(w, "%s ", name)
	}
	fmt.Fprintln(w)
	for _, row := range Table(f) {
		for _, name := range names {
			fmt.Fprintf(w, "%t ", row.Valuation[name])
		}
		fmt.Fprintf(w, "| %t\n", row.Result)
	}
}
