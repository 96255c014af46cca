package grammar

import "github.com/corazon/parsekit/internal/util"

// FirstSets computes FIRST(X) for every symbol X in the grammar, memoized
// under the grammar's modified flag. FIRST(t) = {t} for every terminal t.
// For a non-terminal A, FIRST(A) is seeded from every production whose first
// usage is a terminal and extended by walking each production's
// right-hand side left to right, adding FIRST(Xi) and stopping at the first
// Xi that is neither optional nor (by the nullable set) nullable.
func (g *Grammar) FirstSets() map[string]util.StringSet {
	if g.cache.valid && g.cache.first != nil {
		return copyFirstMap(g.cache.first)
	}

	nullable := g.Nullables()
	first := map[string]util.StringSet{}

	for _, t := range g.termOrder {
		first[t.name] = util.StringSetOf([]string{t.name})
	}
	for _, nt := range g.nonTermOrder {
		first[nt.name] = util.NewStringSet()
	}

	populated := map[string]bool{}
	var expand func(name string)
	expand = func(name string) {
		if populated[name] {
			return
		}
		populated[name] = true

		nt := g.nonTerminals[name]
		if nt == nil {
			return
		}

		for _, p := range g.prods[name].All() {
			for _, u := range p.Right.Usages() {
				sym := u.Symbol
				if sym.IsTerminal() {
					first[name].Add(sym.name)
				} else {
					expand(sym.name)
					first[name].AddAll(first[sym.name])
				}

				if !(u.IsOptional() || (sym.IsNonTerminal() && nullable.Has(sym.name))) {
					break
				}
			}
		}
	}

	for _, nt := range g.nonTermOrder {
		expand(nt.name)
	}

	g.ensureCache()
	g.cache.first = first
	return copyFirstMap(first)
}

// First returns FIRST(name) for a single symbol (terminal or non-terminal).
func (g *Grammar) First(name string) util.StringSet {
	return g.FirstSets()[name]
}

// firstOfString computes FIRST(usages[from:]) using the same nullable
// extension rule as FIRST of a non-terminal: walk left to right, adding
// FIRST of each usage's symbol, stopping at the first usage that is neither
// optional nor nullable.
func firstOfString(usages []SymbolUsage, from int, first map[string]util.StringSet, nullable util.StringSet) util.StringSet {
	out := util.NewStringSet()
	for i := from; i < len(usages); i++ {
		u := usages[i]
		out.AddAll(first[u.Symbol.name])
		if !(u.IsOptional() || (u.Symbol.IsNonTerminal() && nullable.Has(u.Symbol.name))) {
			break
		}
	}
	return out
}

// stringIsNullable reports whether usages[from:] is entirely optional or
// nullable non-terminals (vacuously true for the empty suffix).
func stringIsNullable(usages []SymbolUsage, from int, nullable util.StringSet) bool {
	for i := from; i < len(usages); i++ {
		u := usages[i]
		if u.IsOptional() {
			continue
		}
		if u.Symbol.IsNonTerminal() && nullable.Has(u.Symbol.name) {
			continue
		}
		return false
	}
	return true
}

func copyFirstMap(m map[string]util.StringSet) map[string]util.StringSet {
	out := make(map[string]util.StringSet, len(m))
	for k, v := range m {
		out[k] = v.Copy()
	}
	return out
}
