package grammar

import "strings"

// buildGrammar is a small test-only DSL for constructing a Grammar from a
// terse textual description, since exercising the public API call-by-call
// for every fixture in this package would dwarf the assertions around it.
//
// terms lists terminal names. rules is one entry per non-terminal, in the
// form "A -> alt1 | alt2 | ..."; a bare "." token denotes the empty
// alternative and a trailing "?" on a token marks that usage optional.
// Non-terminals are discovered as any token on a right-hand side that is
// also the left-hand side of some rule.
func buildGrammar(terms []string, rules []string) *Grammar {
	g := New()

	parsed := make([][2]string, 0, len(rules))
	for _, r := range rules {
		parts := strings.SplitN(r, "->", 2)
		parsed = append(parsed, [2]string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])})
	}

	for _, t := range terms {
		g.AddTerminal(t)
	}
	// register non-terminals in rule order so the first rule's LHS is the
	// start symbol; AddNonTerminal no-ops on repeats.
	for _, p := range parsed {
		g.AddNonTerminal(p[0])
	}

	for _, p := range parsed {
		lhs, rhs := p[0], p[1]
		for _, alt := range strings.Split(rhs, "|") {
			alt = strings.TrimSpace(alt)
			var usages []SymbolUsage
			if alt != "." {
				for _, tok := range strings.Fields(alt) {
					opt := false
					if strings.HasSuffix(tok, "?") {
						opt = true
						tok = strings.TrimSuffix(tok, "?")
					}
					sym, err := g.SymbolByName(tok)
					if err != nil {
						panic("buildGrammar: undeclared symbol " + tok)
					}
					usages = append(usages, SymbolUsage{Symbol: sym, Optional: opt})
				}
			}
			g.AddProduction(lhs, NewSymbolString(usages...), "")
		}
	}

	return g
}
