package firstorder

import "strings"

func printTerm(t Term) string {
	switch t := t.(type) {
	case variableTerm:
		return t.name
	case functionTerm:
		if len(t.args) == 0 {
			return t.symbol
		}
		return t.symbol + "(" + joinTerms(t.args) + ")"
	default:
		panic("firstorder: unknown term node")
	}
}

func joinTerms(args []Term) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = printTerm(a)
	}
	return strings.Join(parts, ", ")
}

// PrintTerm renders t in the grammar
// term := name | name "(" term ("," term)* ")".
func PrintTerm(t Term) string { return printTerm(t) }

// PrintFormula renders f in the grammar
//
//	formula := name "(" term ("," term)* ")"
//	         | "~" formula | "(" formula op formula ")"
//	         | ("A" | "E") var " " formula
//
// with op in {" & ", " | ", " -> ", " <-> "}. Every binary subformula
// is wrapped in parentheses, mirroring the propositional printer.
func PrintFormula(f Formula) string {
	switch f := f.(type) {
	case atomFormula:
		if len(f.args) == 0 {
			return f.symbol
		}
		return f.symbol + "(" + joinTerms(f.args) + ")"
	case notFormula:
		return "~" + PrintFormula(f.sub)
	case binaryFormula:
		return "(" + PrintFormula(f.left) + f.op.sign() + PrintFormula(f.right) + ")"
	case quantifierFormula:
		return f.kind.sign() + f.v + " " + PrintFormula(f.sub)
	default:
		panic("firstorder: unknown formula node")
	}
}
