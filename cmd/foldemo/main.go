// Command foldemo evaluates first-order formulas against the
// structure of integers mod 4 under +, * and evenness, and
// demonstrates capture-avoiding substitution: substituting y+1 for x
// inside "Ey (even(x) & ~even(x))" must alpha-rename the bound y
// before it can proceed, since y occurs free in the replacement term.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idrecun/ar-logika/firstorder"
)

var log = logrus.New()

func mod4Structure() firstorder.LStructure {
	sig := firstorder.NewSignature()
	sig.Functions["0"] = 0
	sig.Functions["1"] = 0
	sig.Functions["+"] = 2
	sig.Functions["*"] = 2
	sig.Relations["even"] = 1
	sig.Relations["="] = 2

	return firstorder.LStructure{
		Signature: sig,
		Domain:    []firstorder.Elem{0, 1, 2, 3},
		Functions: map[string]firstorder.DomainFunc{
			"0": func(args []firstorder.Elem) firstorder.Elem { return 0 },
			"1": func(args []firstorder.Elem) firstorder.Elem { return 1 },
			"+": func(args []firstorder.Elem) firstorder.Elem { return (args[0] + args[1]) % 4 },
			"*": func(args []firstorder.Elem) firstorder.Elem { return (args[0] * args[1]) % 4 },
		},
		Relations: map[string]firstorder.DomainRelation{
			"even": func(args []firstorder.Elem) bool { return args[0]%2 == 0 },
			"=":    func(args []firstorder.Elem) bool { return args[0] == args[1] },
		},
	}
}

func main() {
	cmd := &cobra.Command{
		Use:   "foldemo",
		Short: "Evaluate a first-order formula against the integers-mod-4 structure",
		RunE: func(cmd *cobra.Command, args []string) error {
			run()
			return nil
		},
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() {
	L := mod4Structure()

	x := firstorder.Variable("x")
	evenX := firstorder.Atom("even", x)
	oddX := firstorder.Not(evenX)
	evenAndOddX := firstorder.And(evenX, oddX)
	existsEvenAndOddX := firstorder.Quantifier(firstorder.Exists, "x", evenAndOddX)

	if !firstorder.CheckFormula(existsEvenAndOddX, L.Signature) {
		log.Error("signature mismatch")
		return
	}
	fmt.Println(firstorder.PrintFormula(existsEvenAndOddX))
	result, err := firstorder.Evaluate(existsEvenAndOddX, L, firstorder.Valuation{})
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	fmt.Println(result)

	// Ey (even(x) & ~even(x)) [x -> y + 1]
	// capture-avoiding substitution must alpha-rename the bound y
	// to some fresh u before substituting, since y occurs in y+1.
	one := firstorder.Function("1")
	y := firstorder.Variable("y")
	yPlusOne := firstorder.Function("+", y, one)
	existsY := firstorder.Quantifier(firstorder.Exists, "y", evenAndOddX)
	fmt.Println(firstorder.PrintFormula(existsY))

	substituted := firstorder.Substitute(existsY, "x", yPlusOne)
	if !firstorder.CheckFormula(substituted, L.Signature) {
		log.Error("signature mismatch")
		return
	}
	fmt.Println(firstorder.PrintFormula(substituted))
}
