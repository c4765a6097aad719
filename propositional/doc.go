/*
Package propositional represents propositional logic formulas as an
immutable tree and provides the algebra over them: complexity,
canonical printing, structural equality, evaluation against a
valuation, substitution, simplification, negation-normal form,
classical distributive CNF, and the Tseitin equisatisfiable CNF
encoding.

A Formula is built from the five constructors False, True, Atom, Not
and one of the binary constructors (And, Or, Implies, Eq). Formula
values are never mutated after construction; every transformation
(Simplify, ToNNF, Substitute, ...) returns a new tree, sharing whatever
subtrees did not change. This makes it safe for a subtree to be
referenced from more than one parent.

    p, q := propositional.Atom("p"), propositional.Atom("q")
    f := propositional.And(p, q)
    propositional.Complexity(f) // 1
    f.String()                 // "(p & q)"

Only Solve and SolveTseitin use package sat; the rest of the algebra
does not. They are convenience bridges that build a CNF via the nnf/cnf (or tseitin)
pipeline, resolve atom names to DIMACS indices with Encode, and hand
the result to package sat, the same way a caller could do by hand.
*/
package propositional
