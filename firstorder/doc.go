/*
Package firstorder represents first-order logic terms and formulas,
and evaluates them against a finite L-structure.

A Term is a Variable or a Function application; a Formula is an Atom
(relation application), a Not, a Binary connective, or a Quantifier.
As in package propositional, every tree is immutable after
construction and every transformation (Substitute) returns a new
tree.

A Signature declares the function and relation symbols a formula may
use, with their arities; CheckTerm and CheckFormula walk a term or
formula and report whether every application obeys it. An LStructure pairs a
Signature with a finite Domain and a Go implementation of each
function and relation symbol; Evaluate interprets a formula against
one, given a Valuation assigning domain elements to the formula's
free variables.

Substitute is capture-avoiding: substituting a term for a variable
under a quantifier that would otherwise capture one of the term's
variables first alpha-renames the bound variable to a fresh name.
*/
package firstorder
