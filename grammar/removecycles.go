package grammar

import "github.com/corazon/parsekit/internal/util"

// RemoveCycles eliminates every derivation A =>+ A (a cycle, as reported by
// Cycles) from the grammar. Cycle elimination assumes a nullable-free
// grammar -- a production entirely made of optional/nullable material would
// otherwise manufacture a fresh cycle the moment an old one is closed -- so
// if the grammar still has nullable non-terminals, RemoveNullProductions is
// invoked first automatically rather than requiring the caller to sequence
// the two transformations themselves.
//
// For each minimal cycle found, every non-terminal participating in it is
// collapsed down to a single shared rule set: the union of every production
// belonging to a cycle member that is NOT itself just a bare reference to
// another cycle member (those are exactly the productions that go around
// the cycle, and once every member shares the same rule set they are
// redundant). That union is then retargeted onto each member in turn. The
// whole pass repeats -- new unions can create new cycles -- until Cycles
// reports none left.
func (g *Grammar) RemoveCycles() error {
	if !g.Nullables().Empty() {
		g.RemoveNullProductions()
	}

	for {
		cycles := g.Cycles()
		if len(cycles) == 0 {
			break
		}

		for _, cyc := range cycles {
			g.collapseCycle(cyc)
		}
	}

	g.markModified()
	return nil
}

// collapseCycle merges every non-terminal participating in cyc into a
// single shared rule set, as described on RemoveCycles.
func (g *Grammar) collapseCycle(cyc CyclePath) {
	members := util.NewStringSet()
	members.Add(cyc.Start)
	for _, step := range cyc.Path {
		members.Add(step.NonTerminal)
	}
	if members.Len() <= 1 {
		return
	}

	var union []*Production
	seen := util.NewStringSet()
	for _, name := range orderedMembers(g, members) {
		pl := g.prods[name]
		if pl == nil {
			continue
		}
		for _, p := range pl.All() {
			if isBareMemberReference(p, members) {
				continue
			}
			key := p.Right.String() + "\x00" + p.Handler
			if seen.Has(key) {
				continue
			}
			seen.Add(key)
			union = append(union, p)
		}
	}

	for _, name := range orderedMembers(g, members) {
		nt := g.nonTerminals[name]
		if nt == nil {
			continue
		}
		pl := newProductionList(name)
		for _, p := range union {
			pl.Add(p.retarget(nt))
		}
		g.prods[name] = pl
	}
}

// isBareMemberReference reports whether p's right-hand side is exactly one
// usage long and references another (or the same) cycle member -- the shape
// of the productions that close the cycle being collapsed, and therefore
// redundant once every member shares the same rule set.
func isBareMemberReference(p *Production, members util.StringSet) bool {
	if p.Right.Len() != 1 {
		return false
	}
	u := p.Right.At(0)
	return u.Symbol.IsNonTerminal() && members.Has(u.Symbol.name)
}

// orderedMembers returns members in the grammar's registration order, so
// collapseCycle's output is deterministic.
func orderedMembers(g *Grammar, members util.StringSet) []string {
	var out []string
	for _, nt := range g.nonTermOrder {
		if members.Has(nt.name) {
			out = append(out, nt.name)
		}
	}
	return out
}
