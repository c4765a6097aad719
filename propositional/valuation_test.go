package propositional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextEnumeratesAllCombinations(t *testing.T) {
	names := []string{"a", "b"}
	v := AllFalse(names)
	seen := map[string]bool{}
	for {
		key := ""
		for _, n := range names {
			if v[n] {
				key += "1"
			} else {
				key += "0"
			}
		}
		seen[key] = true
		if !Next(v, names) {
			break
		}
	}
	assert.Len(t, seen, 4)
	for _, key := range []string{"00", "01", "10", "11"} {
		assert.Truef(t, seen[key], "combination %s not generated", key)
	}
}

func TestIsSatisfiable(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	model, ok := IsSatisfiable(And(a, Not(b)))
	assert.True(t, ok)
	assert.True(t, model["a"])
	assert.False(t, model["b"])

	_, ok = IsSatisfiable(And(a, Not(a)))
	assert.False(t, ok)

	model, ok = IsSatisfiable(True)
	assert.True(t, ok)
	assert.Empty(t, model)
}

// table((p & q)) produces four rows; exactly the row p=T,q=T is true.
func TestTablePAndQ(t *testing.T) {
	p, q := Atom("p"), Atom("q")
	rows := Table(And(p, q))
	assert.Len(t, rows, 4)

	trueRows := 0
	for _, row := range rows {
		if row.Result {
			trueRows++
			assert.True(t, row.Valuation["p"])
			assert.True(t, row.Valuation["q"])
		}
	}
	assert.Equal(t, 1, trueRows)
}
