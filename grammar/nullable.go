package grammar

import "github.com/corazon/parsekit/internal/util"

// Nullables computes the set of non-terminals that can derive the empty
// string, memoized under the grammar's modified flag.
//
// It is a fixpoint over the predicate "some production's right-hand side is
// entirely usages that are either marked optional or whose symbol is already
// known nullable" (an empty right-hand side trivially satisfies this for the
// all-usages-vacuously-true case). Unrolling this into three ordered passes
// -- empty RHS, then a single nullable-or-optional usage, then an arbitrary
// number of them -- is one way to reach the same fixpoint; iterating the
// single general predicate to convergence gives the same set.
func (g *Grammar) Nullables() util.StringSet {
	if g.cache.valid && g.cache.nullables != nil {
		return g.cache.nullables.Copy()
	}

	nullable := util.NewStringSet()

	changed := true
	for changed {
		changed = false
		for _, nt := range g.nonTermOrder {
			if nullable.Has(nt.name) {
				continue
			}
			for _, p := range g.prods[nt.name].All() {
				if productionIsNullable(p, nullable) {
					nullable.Add(nt.name)
					changed = true
					break
				}
			}
		}
	}

	g.ensureCache()
	g.cache.nullables = nullable
	return nullable.Copy()
}

// productionIsNullable reports whether every usage in p's right-hand side is
// either marked optional or is a non-terminal already known to be nullable
// (an empty right-hand side is vacuously true).
func productionIsNullable(p *Production, nullable util.StringSet) bool {
	for _, u := range p.Right.Usages() {
		if u.IsOptional() {
			continue
		}
		if u.Symbol.IsNonTerminal() && nullable.Has(u.Symbol.Name()) {
			continue
		}
		return false
	}
	return true
}

func (g *Grammar) ensureCache() {
	if !g.cache.valid {
		g.cache = analysisCache{valid: true}
	}
}
