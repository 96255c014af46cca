package grammar

import "github.com/corazon/parsekit/graph"

// LeftRecursion returns a covering set of minimal cycles in the
// left-recursion graph: derivations A =>+ A beta for some beta, found
// through a combination of direct recursion (A -> A alpha) and indirect
// recursion through nullable-marked prefixes (A -> B beta, B -> A gamma).
//
// The edge functor: for non-terminal N with production N -> X1 X2 .., walk
// left to right; yield (Xi, production) for each Xi that is a non-terminal,
// and continue past Xi to consider Xi+1 only if Xi itself is marked
// optional. A mandatory (non-optional) usage always absorbs the rest of the
// derivation, so nothing past it can ever be left-recursive through this
// production.
func (g *Grammar) LeftRecursion() []CyclePath {
	nodes := make([]string, len(g.nonTermOrder))
	for i, nt := range g.nonTermOrder {
		nodes[i] = nt.name
	}

	walk := func(n string) []graph.Edge[*Production] {
		var out []graph.Edge[*Production]
		for _, p := range g.prods[n].All() {
			for _, u := range p.Right.Usages() {
				if u.Symbol.IsNonTerminal() {
					out = append(out, graph.Edge[*Production]{To: u.Symbol.name, Label: p})
				}
				if !u.IsOptional() {
					break
				}
			}
		}
		return out
	}

	return fromGraphCycles(graph.MinimalCycles(nodes, walk))
}
