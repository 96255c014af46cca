package grammar

import (
	"fmt"

	"github.com/corazon/parsekit/graph"
	"github.com/corazon/parsekit/internal/util"
)

// CyclePath is one derivation A =>+ A found by Cycles or LeftRecursion: the
// non-terminal the derivation starts (and ends) at, and the sequence of
// steps -- each the Production that justified the step and the non-terminal
// it landed on -- that closes the loop.
type CyclePath struct {
	Start string
	Path  []CycleStep
}

// CycleStep is one hop of a CyclePath.
type CycleStep struct {
	Production  *Production
	NonTerminal string
}

// Members lists every non-terminal participating in the cycle, Start
// first, in the order they were visited. The closing step lands back on
// Start, so Start appears again as the last element.
func (c CyclePath) Members() []string {
	out := []string{c.Start}
	for _, s := range c.Path {
		out = append(out, s.NonTerminal)
	}
	return out
}

// String gives an operator-facing one-liner naming the non-terminals
// involved, e.g. "cycle among A, B, and C".
func (c CyclePath) String() string {
	members := c.Members()
	// drop the closing repeat of Start so JoinNames doesn't double it
	if len(members) > 1 && members[len(members)-1] == c.Start {
		members = members[:len(members)-1]
	}
	if len(members) <= 1 {
		return fmt.Sprintf("cycle at %s", c.Start)
	}
	return fmt.Sprintf("cycle among %s", util.JoinNames(members))
}

func fromGraphCycles(cycles []graph.Cycle[*Production]) []CyclePath {
	out := make([]CyclePath, len(cycles))
	for i, c := range cycles {
		steps := make([]CycleStep, len(c.Path))
		for j, s := range c.Path {
			steps[j] = CycleStep{Production: s.Label, NonTerminal: s.Node}
		}
		out[i] = CyclePath{Start: c.Start, Path: steps}
	}
	return out
}

// Cycles returns a covering set of minimal cycles: derivations A =>+ A of
// length >= 1 in which every intermediate step is a single non-terminal,
// possibly sandwiched between all-optional material.
//
// The edge functor: for non-terminal N with production N -> alpha Xi beta,
// an edge (Xi, production) is yielded iff alpha is all-optional (per
// OptionalTo(i-1)), beta is all-optional (per OptionalFrom(i+1)), and Xi is
// a non-terminal. Scanning a production stops as soon as a position fails
// the optional-prefix test, since OptionalTo can only get harder to satisfy
// moving right.
func (g *Grammar) Cycles() []CyclePath {
	nodes := make([]string, len(g.nonTermOrder))
	for i, nt := range g.nonTermOrder {
		nodes[i] = nt.name
	}

	walk := func(n string) []graph.Edge[*Production] {
		var out []graph.Edge[*Production]
		for _, p := range g.prods[n].All() {
			usages := p.Right.Usages()
			for i, u := range usages {
				if !p.Right.OptionalTo(i - 1) {
					break
				}
				if u.Symbol.IsNonTerminal() && p.Right.OptionalFrom(i+1) {
					out = append(out, graph.Edge[*Production]{To: u.Symbol.name, Label: p})
				}
			}
		}
		return out
	}

	return fromGraphCycles(graph.MinimalCycles(nodes, walk))
}
