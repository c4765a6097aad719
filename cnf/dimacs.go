package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a (possibly negated) int from r. b holds the last
// byte read, which may be a space, a '-' or a digit; all leading
// space is skipped first. Returns io.EOF when the input ends before
// any digit is read.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, fmt.Errorf("cnf: could not read digit: %v", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cnf: cannot read int: %v", err)
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("cnf: cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	res *= neg
	if err == io.EOF {
		// The number ran up to the end of input and is complete; the
		// next call reports io.EOF.
		*b = ' '
		return res, nil
	}
	return res, err
}

func parseHeader(r *bufio.Reader) (nbAtoms, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, fmt.Errorf("cnf: cannot read header: %v", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, fmt.Errorf("cnf: invalid p-line %q, expected \"p cnf <N> <M>\"", "p "+line)
	}
	nbAtoms, convErr := strconv.Atoi(fields[1])
	if convErr != nil {
		return 0, 0, fmt.Errorf("cnf: number of atoms not an int: %q", fields[1])
	}
	nbClauses, convErr = strconv.Atoi(fields[2])
	if convErr != nil {
		return 0, 0, fmt.Errorf("cnf: number of clauses not an int: %q", fields[2])
	}
	return nbAtoms, nbClauses, nil
}

// Parse reads a DIMACS CNF stream. c-lines are skipped as comments;
// the p-line declares the atom and clause counts; each clause is a
// sequence of nonzero signed integers terminated by 0 and may span
// several lines. Parse rejects input with no p-line, a clause that
// references an atom outside 1..N, or fewer clauses than declared.
func Parse(r io.Reader) (Problem, error) {
	br := bufio.NewReader(r)
	var (
		pb        Problem
		nbClauses int
		sawHeader bool
	)
	b, err := br.ReadByte()
	for err == nil {
		if b == 'c' { // comment line, skip it
			b, err = br.ReadByte()
			for err == nil && b != '\n' {
				b, err = br.ReadByte()
			}
		} else if b == 'p' { // header
			if pb.NbAtoms, nbClauses, err = parseHeader(br); err != nil {
				return Problem{}, fmt.Errorf("cnf: cannot parse DIMACS header: %v", err)
			}
			sawHeader = true
			pb.Clauses = make(CNF, 0, nbClauses)
		} else {
			if !sawHeader {
				return Problem{}, fmt.Errorf("cnf: clause data before \"p cnf\" header")
			}
			lits := make(Clause, 0, 3)
			for {
				val, rerr := readInt(&b, br)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return Problem{}, fmt.Errorf("cnf: unterminated clause at end of file")
					}
					break
				}
				if rerr != nil {
					return Problem{}, fmt.Errorf("cnf: cannot parse clause: %v", rerr)
				}
				if val == 0 {
					pb.Clauses = append(pb.Clauses, lits)
					break
				}
				if val > pb.NbAtoms || -val > pb.NbAtoms {
					return Problem{}, fmt.Errorf("cnf: literal %d out of range for %d atoms", val, pb.NbAtoms)
				}
				lits = append(lits, Literal(val))
			}
		}
		b, err = br.ReadByte()
	}
	if err != io.EOF {
		return Problem{}, err
	}
	if !sawHeader {
		return Problem{}, fmt.Errorf("cnf: missing \"p cnf\" header")
	}
	if len(pb.Clauses) < nbClauses {
		return Problem{}, fmt.Errorf("cnf: declared %d clauses but only %d were present", nbClauses, len(pb.Clauses))
	}
	return pb, nil
}

// Write emits pb as DIMACS CNF text.
func Write(w io.Writer, pb Problem) error {
	prefix := fmt.Sprintf("p cnf %d %d\n", pb.NbAtoms, len(pb.Clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("cnf: could not write DIMACS header: %v", err)
	}
	for _, clause := range pb.Clauses {
		strLits := make([]string, len(clause))
		for i, l := range clause {
			strLits[i] = strconv.Itoa(int(l))
		}
		line := fmt.Sprintf("%s 0\n", strings.Join(strLits, " "))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("cnf: could not write clause: %v", err)
		}
	}
	return nil
}
