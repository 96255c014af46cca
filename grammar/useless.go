package grammar

import "github.com/corazon/parsekit/internal/util"

// RemoveUselessSymbols drops every non-terminal that cannot possibly
// contribute to a derivation from start (defaults to the grammar's start
// symbol), in two passes:
//
//  1. Terminating symbols: fixpoint the set of non-terminals that derive
//     some terminal string, and drop everything not in it.
//  2. Reachable symbols: BFS from start over every remaining production's
//     right-hand side, and drop everything not reached.
//
// Each pass is followed by removal of every production that references a
// dropped symbol.
func (g *Grammar) RemoveUselessSymbols(start ...string) error {
	startName := g.resolveStart(start...)

	derivesTerminal := g.derivesTerminalSet()
	g.removeNonTerminals(func(name string) bool { return !derivesTerminal.Has(name) })

	if startName != "" {
		reached := g.reachableSet(startName)
		g.removeNonTerminals(func(name string) bool { return !reached.Has(name) })
	}

	g.markModified()
	return nil
}

// derivesTerminalSet computes the fixpoint of "this non-terminal has a
// production whose every usage either is a terminal or is a non-terminal
// already known to derive a terminal string".
func (g *Grammar) derivesTerminalSet() util.StringSet {
	derives := util.NewStringSet()

	changed := true
	for changed {
		changed = false
		for _, nt := range g.nonTermOrder {
			if derives.Has(nt.name) {
				continue
			}
			for _, p := range g.prods[nt.name].All() {
				ok := true
				for _, u := range p.Right.Usages() {
					if u.Symbol.IsNonTerminal() && !derives.Has(u.Symbol.name) {
						ok = false
						break
					}
				}
				if ok {
					derives.Add(nt.name)
					changed = true
					break
				}
			}
		}
	}

	return derives
}

// reachableSet BFS's from start over every production's right-hand side
// usages, returning the set of non-terminals reached (including start
// itself).
func (g *Grammar) reachableSet(start string) util.StringSet {
	reached := util.NewStringSet()
	if _, ok := g.nonTerminals[start]; !ok {
		return reached
	}

	queue := []string{start}
	reached.Add(start)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		pl := g.prods[n]
		if pl == nil {
			continue
		}
		for _, p := range pl.All() {
			for _, u := range p.Right.Usages() {
				if u.Symbol.IsNonTerminal() && !reached.Has(u.Symbol.name) {
					reached.Add(u.Symbol.name)
					queue = append(queue, u.Symbol.name)
				}
			}
		}
	}

	return reached
}

// removeNonTerminals is the "removes(symbols, invert)" primitive: it drops
// every non-terminal matching match from both the name table and the
// registration-order index, and drops every production anywhere in the
// grammar whose right-hand side references a dropped symbol.
func (g *Grammar) removeNonTerminals(match func(name string) bool) {
	dropped := util.NewStringSet()
	var kept []*Symbol
	for _, nt := range g.nonTermOrder {
		if match(nt.name) {
			dropped.Add(nt.name)
			delete(g.nonTerminals, nt.name)
			delete(g.prods, nt.name)
		} else {
			kept = append(kept, nt)
		}
	}
	for i, nt := range kept {
		nt.index = i
	}
	g.nonTermOrder = kept

	for _, pl := range g.prods {
		pl.RemoveWhere(func(p *Production) bool {
			for _, u := range p.Right.Usages() {
				if dropped.Has(u.Symbol.name) {
					return true
				}
			}
			return false
		})
	}
}
