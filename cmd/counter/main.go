// Command counter encodes a two-bit counter as DIMACS CNF: five
// positions, each holding a value 0..3 encoded as two bits p (high)
// and q (low); each of positions 2..5 holds the value of the previous
// position plus one, mod 4 (relate), and positions 1 and 5 must hold
// different values (notJoined). Four increments bring a two-bit
// counter back to its start, so the emitted CNF is unsatisfiable.
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

// puzzleEncoder lazily allocates a fresh atom index the first time a
// position's bit is requested, mirroring the course C++'s
// memoizing p(i)/q(i) helpers.
type puzzleEncoder struct {
	atomCount int
	p, q      map[int]cnf.Atom
	clauses   cnf.CNF
}

func newPuzzleEncoder() *puzzleEncoder {
	return &puzzleEncoder{p: make(map[int]cnf.Atom), q: make(map[int]cnf.Atom)}
}

func (e *puzzleEncoder) lazy(i int, m map[int]cnf.Atom) cnf.Atom {
	if a, ok := m[i]; ok {
		return a
	}
	e.atomCount++
	a := cnf.Atom(e.atomCount)
	m[i] = a
	return a
}

func (e *puzzleEncoder) P(i int) cnf.Atom { return e.lazy(i, e.p) }
func (e *puzzleEncoder) Q(i int) cnf.Atom { return e.lazy(i, e.q) }

func (e *puzzleEncoder) clause(lits ...cnf.Literal) {
	e.clauses = append(e.clauses, append(cnf.Clause{}, lits...))
}

func lit(a cnf.Atom, positive bool) cnf.Literal { return cnf.NewLiteral(a, positive) }

// relate encodes "position j holds the value of position i plus one,
// mod 4" over the 2-bit codes: the low bit flips (qj = ~qi) and the
// high bit takes the carry (pj = pi xor qi).
func (e *puzzleEncoder) relate(i, j int) {
	pi, pj := e.P(i), e.P(j)
	qi, qj := e.Q(i), e.Q(j)
	e.clause(lit(qj, false), lit(qi, false))
	e.clause(lit(qj, true), lit(qi, true))
	e.clause(lit(pj, false), lit(pi, true), lit(qi, true))
	e.clause(lit(pj, false), lit(pi, false), lit(qi, false))
	e.clause(lit(pj, true), lit(pi, true), lit(qi, false))
	e.clause(lit(pj, true), lit(pi, false), lit(qi, true))
}

// notJoined encodes "position i and position j hold different
// values": the standard XOR-style 4-clause inequality over the two
// 2-bit codes.
func (e *puzzleEncoder) notJoined(i, j int) {
	pi, pj := e.P(i), e.P(j)
	qi, qj := e.Q(i), e.Q(j)
	e.clause(lit(pi, true), lit(pj, true), lit(qi, true), lit(qj, true))
	e.clause(lit(pi, true), lit(pj, true), lit(qi, false), lit(qj, false))
	e.clause(lit(pi, false), lit(pj, false), lit(qi, true), lit(qj, true))
	e.clause(lit(pi, false), lit(pj, false), lit(qi, false), lit(qj, false))
}

func buildRingPuzzle() cnf.Problem {
	e := newPuzzleEncoder()
	e.relate(1, 2)
	e.relate(2, 3)
	e.relate(3, 4)
	e.relate(4, 5)
	e.notJoined(1, 5)
	return cnf.Problem{NbAtoms: e.atomCount, Clauses: e.clauses}
}

func main() {
	var outPath string

	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Emit the ring-counting puzzle as DIMACS CNF",
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
	pb := buildRingPuzzle()
	log.Infof("encoded ring puzzle: %d atoms, %d clauses", pb.NbAtoms, len(pb.Clauses))

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
