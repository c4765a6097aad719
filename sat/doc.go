/*
Package sat gives access to a DPLL-style backtracking SAT solver. Its
input is a cnf.Problem: a CNF over atoms indexed 1..N. The solver is a
single-threaded, synchronous state machine built around a partial
valuation: a trail of assigned literals, with a sentinel marking each
decision, plus an atom-to-boolean map.

    s := sat.New(pb)
    status := s.Solve()
    if status == sat.Sat {
        model := s.Model()
    }

Decisions always try the positive polarity of the smallest
unassigned atom index first; a conflict flips the most recent
decision to its opposite polarity at the same trail position
(chronological backtracking), never learning a clause. This is
deliberately the simplest complete SAT procedure, not a competitive
CDCL engine: there is no clause learning, no restarts, and no
watched-literal indexing. Termination is bounded by 2^N assignments.
*/
package sat
