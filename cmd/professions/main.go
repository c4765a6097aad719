// Command professions encodes the classic Smith/Baker/Carpenter/Taylor
// riddle as DIMACS CNF: four surnames, each belonging to a father and
// a son, each holding one of the four professions named by the
// surnames, subject to: everyone has exactly one profession; nobody's
// profession is their own surname; no father and son share a
// profession; the baker's father and the carpenter's son share a
// profession; and Smith's son is a baker.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idrecun/ar-logika/cnf"
)

var log = logrus.New()

const names = "SBCT"

// professionEncoder lazily allocates one atom per (surname,
// profession) pair, once for the fathers' generation (x) and once
// for the sons' (y).
type professionEncoder struct {
	atomCount int
	x, y      map[[2]byte]cnf.Atom
	clauses   cnf.CNF
}

func newProfessionEncoder() *professionEncoder {
	return &professionEncoder{x: make(map[[2]byte]cnf.Atom), y: make(map[[2]byte]cnf.Atom)}
}

func (e *professionEncoder) lazy(i, j byte, m map[[2]byte]cnf.Atom) cnf.Atom {
	key := [2]byte{i, j}
	if a, ok := m[key]; ok {
		return a
	}
	e.atomCount++
	a := cnf.Atom(e.atomCount)
	m[key] = a
	return a
}

func (e *professionEncoder) X(i, j byte) cnf.Atom { return e.lazy(i, j, e.x) }
func (e *professionEncoder) Y(i, j byte) cnf.Atom { return e.lazy(i, j, e.y) }

func (e *professionEncoder) clause(lits ...cnf.Literal) {
	e.clauses = append(e.clauses, append(cnf.Clause{}, lits...))
}

func lit(a cnf.Atom, positive bool) cnf.Literal { return cnf.NewLiteral(a, positive) }

func buildProfessionsPuzzle() cnf.Problem {
	e := newProfessionEncoder()

	// 1. everyone has at least one of the professions
	for i := 0; i < len(names); i++ {
		surname := names[i]
		e.clause(
			lit(e.X(surname, 'S'), true), lit(e.X(surname, 'B'), true),
			lit(e.X(surname, 'C'), true), lit(e.X(surname, 'T'), true),
		)
		e.clause(
			lit(e.Y(surname, 'S'), true), lit(e.Y(surname, 'B'), true),
			lit(e.Y(surname, 'C'), true), lit(e.Y(surname, 'T'), true),
		)
	}

	// 2. everyone has at most one of the professions
	for i := 0; i < len(names); i++ {
		surname := names[i]
		for j := 0; j < len(names); j++ {
			for k := 0; k < len(names); k++ {
				p1, p2 := names[j], names[k]
				if p1 == p2 {
					continue
				}
				e.clause(lit(e.X(surname, p1), false), lit(e.X(surname, p2), false))
				e.clause(lit(e.Y(surname, p1), false), lit(e.Y(surname, p2), false))
			}
		}
	}

	// 3. nobody's profession matches their own surname
	for i := 0; i < len(names); i++ {
		surname := names[i]
		e.clause(lit(e.X(surname, surname), false))
		e.clause(lit(e.Y(surname, surname), false))
	}

	// 4. a father and his son never share a profession
	for i := 0; i < len(names); i++ {
		surname := names[i]
		for j := 0; j < len(names); j++ {
			profession := names[j]
			e.clause(lit(e.X(surname, profession), false), lit(e.Y(surname, profession), false))
		}
	}

	// 5. the baker's father and the carpenter's son share a profession
	for j := 0; j < len(names); j++ {
		profession := names[j]
		e.clause(lit(e.X('B', profession), false), lit(e.Y('C', profession), true))
		e.clause(lit(e.X('B', profession), true), lit(e.Y('C', profession), false))
	}

	// 6. Smith's son is a baker
	e.clause(lit(e.Y('S', 'B'), true))

	return cnf.Problem{NbAtoms: e.atomCount, Clauses: e.clauses}
}

func main() {
	var outPath string

	cmd := &cobra.Command{
		Use:   "professions",
		Short: "Emit the Smith/Baker/Carpenter/Taylor puzzle as DIMACS CNF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "file to write (default: stdout)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outPath string) error {
	pb := buildProfessionsPuzzle()
	log.Infof("encoded professions puzzle: %d atoms, %d clauses", pb.NbAtoms, len(pb.Clauses))

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "could not create output file")
		}
		defer f.Close()
		out = f
	}
	if err := cnf.Write(out, pb); err != nil {
		return errors.Wrap(err, "could not write DIMACS output")
	}
	return nil
}
