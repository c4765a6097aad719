/*
Package cnf gives access to the wire-level representation of a
conjunctive normal form: atoms indexed 1..N, signed-integer literals,
clauses, and a CNF as an ordered list of clauses. It also parses and
emits the DIMACS CNF file format.

A literal is a nonzero signed integer: the sign is the polarity, the
absolute value is the atom index. This matches the convention used by
DIMACS files and by the specification of the DPLL solver in package
sat: there is no separate bit-packed representation to decode.

The empty CNF (no clauses) denotes the formula True. A CNF containing
one empty clause denotes False, since an empty disjunction is never
satisfied.
*/
package cnf
