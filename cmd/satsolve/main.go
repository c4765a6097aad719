// Command satsolve reads a DIMACS CNF file and reports SAT or UNSAT.
// On SAT it prints the model as one signed literal per atom, in atom
// order, followed by 0. It does not print the solver's trail; the
// trail appears only in the "c "-prefixed per-step trace lines that
// --verbose turns on.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idrecun/ar-logika/cnf"
	"github.com/idrecun/ar-logika/sat"
)

var log = logrus.New()

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "satsolve <file.cnf>",
		Short: "Solve a DIMACS CNF file with the DPLL solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(args[0], verbose)
		},
	}
	var flags *pflag.FlagSet = cmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print the solver's decision trail")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open CNF file")
	}
	defer f.Close()

	log.Debugf("parsing %s", path)
	pb, err := cnf.Parse(f)
	if err != nil {
		return errors.Wrap(err, "could not parse DIMACS input")
	}
	log.Infof("parsed %d atoms, %d clauses", pb.NbAtoms, len(pb.Clauses))

	s := sat.New(pb)
	if verbose {
		s.Trace = os.Stdout
	}

	switch status := s.Solve(); status {
	case sat.Sat:
		fmt.Println("SAT")
		model := s.Model()
		for a := cnf.Atom(1); int(a) <= pb.NbAtoms; a++ {
			fmt.Printf("%d ", cnf.NewLiteral(a, model[a]))
		}
		fmt.Println("0")
	case sat.Unsat:
		fmt.Println("UNSAT")
	default:
		return errors.Errorf("solver returned unexpected status %v", status)
	}
	return nil
}
