package grammar

import "github.com/corazon/parsekit/internal/util"

// FollowSets computes FOLLOW(X) for every symbol X, parameterized by a start
// non-terminal (defaults to the grammar's registered start symbol).
// FOLLOW(start) is seeded with {EOF}; every other symbol starts empty. The
// rule set below is iterated to a fixpoint over the whole grammar:
//
// for each production A -> X1 .. Xn, for each position i:
//   - if every Xj with j > i is nullable-or-optional, add FOLLOW(A) to
//     FOLLOW(Xi).
//   - add FIRST(Xi+1 .. Xn) to FOLLOW(Xi).
func (g *Grammar) FollowSets(start ...string) map[string]util.StringSet {
	startName := g.resolveStart(start...)

	if g.cache.valid && g.cache.follow != nil && g.cache.followStart == startName {
		return copyFirstMap(g.cache.follow)
	}

	nullable := g.Nullables()
	first := g.FirstSets()

	follow := map[string]util.StringSet{}
	for _, s := range g.termOrder {
		follow[s.name] = util.NewStringSet()
	}
	for _, s := range g.nonTermOrder {
		follow[s.name] = util.NewStringSet()
	}
	if startName != "" {
		follow[startName] = util.StringSetOf([]string{g.eof.name})
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.nonTermOrder {
			for _, p := range g.prods[nt.name].All() {
				usages := p.Right.Usages()
				for i, u := range usages {
					before := follow[u.Symbol.name].Len()

					if stringIsNullable(usages, i+1, nullable) {
						follow[u.Symbol.name].AddAll(follow[nt.name])
					}
					follow[u.Symbol.name].AddAll(firstOfString(usages, i+1, first, nullable))

					if follow[u.Symbol.name].Len() != before {
						changed = true
					}
				}
			}
		}
	}

	g.ensureCache()
	g.cache.follow = follow
	g.cache.followStart = startName
	return copyFirstMap(follow)
}

// Follow returns FOLLOW(name) computed from start (the default start symbol
// if none is given).
func (g *Grammar) Follow(name string, start ...string) util.StringSet {
	return g.FollowSets(start...)[name]
}

func (g *Grammar) resolveStart(start ...string) string {
	if len(start) > 0 && start[0] != "" {
		return start[0]
	}
	if s := g.StartSymbol(); s != nil {
		return s.name
	}
	return ""
}
