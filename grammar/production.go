package grammar

import "github.com/corazon/parsekit/internal/util"

// Production is a rewriting rule NonTerminal -> Right, plus the opaque
// Handler payload carried through from the loader (the semantic-action
// text; this core never interprets it) and the PredictSet slot that
// Grammar.EvalPredictSets stamps.
type Production struct {
	NonTerminal *Symbol
	Right       SymbolString
	Handler     string

	predictSet util.StringSet
}

// PredictSet returns the lookahead set last stamped on this production by
// EvalPredictSets, or nil if it has never been computed.
func (p *Production) PredictSet() util.StringSet {
	return p.predictSet
}

func (p *Production) String() string {
	return p.NonTerminal.Name() + " -> " + p.Right.String()
}

// equalForDedup reports whether p and o would be considered duplicate
// productions: equal length, equal handler, and identical Symbol identities
// pointwise. Varname and Optional on each usage are ignored, matching
// SymbolUsage.Equal.
func (p *Production) equalForDedup(o *Production) bool {
	if p.Handler != o.Handler {
		return false
	}
	return p.Right.Equal(o.Right)
}

// clone returns a shallow copy of p. The copy shares the underlying Symbol
// pointers (symbol identity is by name and symbols are immutable once
// classified) but has its own Right slice and a cleared PredictSet, since a
// clone is never created except as part of constructing a different
// production.
func (p *Production) clone() *Production {
	return &Production{
		NonTerminal: p.NonTerminal,
		Right:       NewSymbolString(p.Right.Usages()...),
		Handler:     p.Handler,
	}
}

// retarget returns a clone of p whose NonTerminal (left-hand side) has been
// changed to nt, keeping the same right-hand side and handler. Used when a
// transformation moves a production from one non-terminal's list to
// another's (cycle removal).
func (p *Production) retarget(nt *Symbol) *Production {
	c := p.clone()
	c.NonTerminal = nt
	return c
}

// ProductionList holds the productions for a single non-terminal, in
// insertion order, deduplicating on (RHS symbol sequence, handler).
type ProductionList struct {
	nonTerminal string
	prods       []*Production
}

func newProductionList(nonTerminal string) *ProductionList {
	return &ProductionList{nonTerminal: nonTerminal}
}

// Add inserts p unless an equivalent production (per equalForDedup) is
// already present, in which case it is a no-op. Reports whether p was
// actually added.
func (pl *ProductionList) Add(p *Production) bool {
	for _, existing := range pl.prods {
		if existing.equalForDedup(p) {
			return false
		}
	}
	pl.prods = append(pl.prods, p)
	return true
}

// Len is the number of productions in the list.
func (pl *ProductionList) Len() int {
	return len(pl.prods)
}

// All returns the productions in insertion order. The returned slice is a
// copy of the internal slice header but shares Production pointers; mutating
// a Production found this way mutates the stored one.
func (pl *ProductionList) All() []*Production {
	out := make([]*Production, len(pl.prods))
	copy(out, pl.prods)
	return out
}

// Reversed returns the productions in reverse insertion order.
func (pl *ProductionList) Reversed() []*Production {
	out := make([]*Production, len(pl.prods))
	for i, p := range pl.prods {
		out[len(pl.prods)-1-i] = p
	}
	return out
}

// Get returns the production at index i.
func (pl *ProductionList) Get(i int) *Production {
	return pl.prods[i]
}

// RemoveAt removes the production at index i.
func (pl *ProductionList) RemoveAt(i int) {
	pl.prods = append(pl.prods[:i], pl.prods[i+1:]...)
}

// Remove removes the first production equal (by equalForDedup) to p, if
// present.
func (pl *ProductionList) Remove(p *Production) bool {
	for i, existing := range pl.prods {
		if existing == p || existing.equalForDedup(p) {
			pl.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveWhere removes every production for which match returns true.
func (pl *ProductionList) RemoveWhere(match func(*Production) bool) {
	kept := pl.prods[:0]
	for _, p := range pl.prods {
		if !match(p) {
			kept = append(kept, p)
		}
	}
	pl.prods = kept
}

// removeEmptyRHS drops every production whose right-hand side is the empty
// string.
func (pl *ProductionList) removeEmptyRHS() {
	pl.RemoveWhere(func(p *Production) bool { return p.Right.Len() == 0 })
}

func (pl *ProductionList) clone() *ProductionList {
	c := newProductionList(pl.nonTerminal)
	c.prods = make([]*Production, len(pl.prods))
	for i, p := range pl.prods {
		c.prods[i] = p.clone()
	}
	return c
}

func (pl *ProductionList) String() string {
	s := pl.nonTerminal + " ->"
	for i, p := range pl.prods {
		if i > 0 {
			s += " |"
		}
		s += " " + p.Right.String()
	}
	return s
}
