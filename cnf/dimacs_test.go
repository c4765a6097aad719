package cnf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	const input = "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	pb, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, pb.NbAtoms)
	require.Equal(t, CNF{
		Clause{1, -2},
		Clause{2, 3},
	}, pb.Clauses)
}

func TestParseMultiLineClause(t *testing.T) {
	const input = "p cnf 2 1\n1\n-2\n0\n"
	pb, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, CNF{Clause{1, -2}}, pb.Clauses)
}

func TestParseMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	require.Error(t, err)
}

func TestParseFewerClausesThanDeclared(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 2\n1 2 0\n"))
	require.Error(t, err)
}

func TestParseAtomOutOfRange(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1 1\n2 0\n"))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	pb := Problem{
		NbAtoms: 3,
		Clauses: CNF{
			Clause{1, -2, 3},
			Clause{-1, 2},
		},
	}
	var buf strings.Builder
	require.NoError(t, Write(&buf, pb))

	got, err := Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, pb, got)
}
