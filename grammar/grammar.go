// Package grammar implements the in-memory representation of a context-free
// grammar plus the analyses (nullable, FIRST, FOLLOW, PREDICT, cycles,
// left-recursion) and transformations (useless-symbol removal, null
// production removal, cycle removal, left-recursion removal via Paull's
// algorithm) needed to turn it into a grammar an LL(1) parser generator can
// consume.
//
// The core never reads a grammar file and never emits parser code; it
// expects a Grammar already populated by a loader and hands either derived
// sets or a transformed Grammar back to whatever drives code generation.
package grammar

import (
	"github.com/corazon/parsekit/internal/diag"
	"github.com/corazon/parsekit/internal/util"
)

// DefaultEOFName is the name given to the EOF terminal a Grammar registers
// for itself unless SetEofToken overrides it.
const DefaultEOFName = "EOF"

// Grammar owns every Symbol and Production in a context-free grammar: the
// terminal and non-terminal name tables, the registration-order index used
// to pick a default start symbol, and the per-non-terminal production
// lists. It also owns the memoized analyses (nullables, FIRST, FOLLOW),
// invalidated lazily whenever the grammar is mutated.
type Grammar struct {
	terminals    map[string]*Symbol
	nonTerminals map[string]*Symbol
	termOrder    []*Symbol
	nonTermOrder []*Symbol
	prods        map[string]*ProductionList

	eof *Symbol

	modified bool
	cache    analysisCache
}

type analysisCache struct {
	valid     bool
	nullables util.StringSet
	first     map[string]util.StringSet
	// follow is keyed additionally by the start symbol used to compute it,
	// since FOLLOW(S) = {EOF} only seeds the grammar's actual start symbol.
	followStart string
	follow      map[string]util.StringSet
}

// New creates an empty Grammar with the default EOF terminal registered.
func New() *Grammar {
	g := &Grammar{
		terminals:    map[string]*Symbol{},
		nonTerminals: map[string]*Symbol{},
		prods:        map[string]*ProductionList{},
	}
	g.eof = g.registerTerminal(DefaultEOFName, "")
	return g
}

func (g *Grammar) markModified() {
	g.modified = true
	g.cache = analysisCache{}
}

// AddTerminal registers name as a terminal, creating it if it does not yet
// exist. It is an error to add a terminal under a name already classified
// as a non-terminal; use AddNonTerminal to reclassify deliberately.
func (g *Grammar) AddTerminal(name string, resultType ...string) (*Symbol, error) {
	if _, ok := g.nonTerminals[name]; ok {
		return nil, diag.New(diag.KindClassificationConflict,
			"%q is already registered as a non-terminal", name)
	}
	if existing, ok := g.terminals[name]; ok {
		return existing, nil
	}
	rt := ""
	if len(resultType) > 0 {
		rt = resultType[0]
	}
	sym := g.registerTerminal(name, rt)
	g.markModified()
	return sym, nil
}

func (g *Grammar) registerTerminal(name, resultType string) *Symbol {
	sym := &Symbol{name: name, resultType: resultType, kind: Terminal, index: len(g.termOrder)}
	g.terminals[name] = sym
	g.termOrder = append(g.termOrder, sym)
	return sym
}

// AddNonTerminal registers name as a non-terminal, creating it if it does
// not yet exist. If name was previously registered as a terminal, it is
// migrated: removed from the terminal tables and re-added to the
// non-terminal tables, with a fresh index. The first non-terminal ever
// registered becomes the grammar's default start symbol.
func (g *Grammar) AddNonTerminal(name string, resultType ...string) (*Symbol, error) {
	if existing, ok := g.nonTerminals[name]; ok {
		return existing, nil
	}

	rt := ""
	if len(resultType) > 0 {
		rt = resultType[0]
	}

	if old, ok := g.terminals[name]; ok {
		// Migrate old in place rather than registering a fresh *Symbol under
		// the same name: a loader may have already built a SymbolUsage
		// against old (having speculatively called AddTerminal before later
		// discovering a production for name), and that usage's Symbol
		// pointer must observe the reclassification too, since analysis
		// reads Kind() straight off the usage's own Symbol.
		g.removeFromTermOrder(old)
		delete(g.terminals, name)
		if rt == "" {
			rt = old.resultType
		}

		old.resultType = rt
		old.kind = NonTerminal
		old.index = len(g.nonTermOrder)

		g.nonTerminals[name] = old
		g.nonTermOrder = append(g.nonTermOrder, old)
		g.prods[name] = newProductionList(name)

		g.markModified()
		return old, nil
	}

	sym := &Symbol{name: name, resultType: rt, kind: NonTerminal, index: len(g.nonTermOrder)}
	g.nonTerminals[name] = sym
	g.nonTermOrder = append(g.nonTermOrder, sym)
	g.prods[name] = newProductionList(name)

	g.markModified()
	return sym, nil
}

func (g *Grammar) removeFromTermOrder(sym *Symbol) {
	for i, s := range g.termOrder {
		if s == sym {
			g.termOrder = append(g.termOrder[:i], g.termOrder[i+1:]...)
			break
		}
	}
	for i := range g.termOrder {
		g.termOrder[i].index = i
	}
}

// SetEofToken overrides the terminal used as the distinguished end-of-input
// marker. The symbol must already be registered as a terminal.
func (g *Grammar) SetEofToken(sym *Symbol) error {
	if sym == nil || sym.IsNonTerminal() {
		return diag.New(diag.KindClassificationConflict, "EOF token must be a registered terminal")
	}
	if _, ok := g.terminals[sym.name]; !ok {
		return diag.New(diag.KindUnknownSymbol, "%q is not a registered terminal", sym.name)
	}
	g.eof = sym
	g.markModified()
	return nil
}

// EOF returns the grammar's distinguished end-of-input terminal.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// SymbolByName looks up a symbol by name in either table.
func (g *Grammar) SymbolByName(name string) (*Symbol, error) {
	if s, ok := g.terminals[name]; ok {
		return s, nil
	}
	if s, ok := g.nonTerminals[name]; ok {
		return s, nil
	}
	return nil, diag.New(diag.KindUnknownSymbol, "no symbol named %q in grammar", name)
}

// Term returns the terminal named name, or nil if there is none.
func (g *Grammar) Term(name string) *Symbol {
	return g.terminals[name]
}

// NonTerm returns the non-terminal named name, or nil if there is none.
func (g *Grammar) NonTerm(name string) *Symbol {
	return g.nonTerminals[name]
}

// Terminals returns every terminal in registration order.
func (g *Grammar) Terminals() []*Symbol {
	out := make([]*Symbol, len(g.termOrder))
	copy(out, g.termOrder)
	return out
}

// NonTerminals returns every non-terminal in registration order.
func (g *Grammar) NonTerminals() []*Symbol {
	out := make([]*Symbol, len(g.nonTermOrder))
	copy(out, g.nonTermOrder)
	return out
}

// StartSymbol returns the first non-terminal ever registered, the grammar's
// default start symbol. Returns nil if the grammar has no non-terminals.
func (g *Grammar) StartSymbol() *Symbol {
	if len(g.nonTermOrder) == 0 {
		return nil
	}
	return g.nonTermOrder[0]
}

// Rule returns the ProductionList for the named non-terminal, or nil if name
// is not a registered non-terminal.
func (g *Grammar) Rule(nonTerminal string) *ProductionList {
	return g.prods[nonTerminal]
}

// AddProduction appends a production nonTerminal -> right to the grammar,
// deduplicating against any production already registered for
// nonTerminal. Returns the stored Production (which may be a
// pre-existing equal one) and whether it was newly added.
func (g *Grammar) AddProduction(nonTerminal string, right SymbolString, handler string) (*Production, bool, error) {
	nt, ok := g.nonTerminals[nonTerminal]
	if !ok {
		return nil, false, diag.New(diag.KindUnknownSymbol, "%q is not a registered non-terminal", nonTerminal)
	}

	p := &Production{NonTerminal: nt, Right: right, Handler: handler}
	pl := g.prods[nonTerminal]
	added := pl.Add(p)
	g.markModified()

	if !added {
		for _, existing := range pl.prods {
			if existing.equalForDedup(p) {
				return existing, false, nil
			}
		}
	}
	return p, added, nil
}

// Copy returns a deep copy of the grammar: every Symbol, SymbolUsage,
// SymbolString and Production is cloned and every cross-reference is
// rewired through the copy's own name tables, so no Symbol is ever shared
// between two Grammar instances.
func (g *Grammar) Copy() *Grammar {
	cp := &Grammar{
		terminals:    map[string]*Symbol{},
		nonTerminals: map[string]*Symbol{},
		prods:        map[string]*ProductionList{},
	}

	for _, s := range g.termOrder {
		ns := &Symbol{name: s.name, resultType: s.resultType, kind: Terminal, index: s.index}
		cp.terminals[s.name] = ns
		cp.termOrder = append(cp.termOrder, ns)
	}
	for _, s := range g.nonTermOrder {
		ns := &Symbol{name: s.name, resultType: s.resultType, kind: NonTerminal, index: s.index}
		cp.nonTerminals[s.name] = ns
		cp.nonTermOrder = append(cp.nonTermOrder, ns)
	}

	remap := func(sym *Symbol) *Symbol {
		if sym == nil {
			return nil
		}
		if sym.IsTerminal() {
			return cp.terminals[sym.name]
		}
		return cp.nonTerminals[sym.name]
	}

	for name, pl := range g.prods {
		npl := newProductionList(name)
		for _, p := range pl.prods {
			usages := make([]SymbolUsage, p.Right.Len())
			for i, u := range p.Right.Usages() {
				usages[i] = SymbolUsage{Symbol: remap(u.Symbol), Varname: u.Varname, Optional: u.Optional}
			}
			np := &Production{
				NonTerminal: remap(p.NonTerminal),
				Right:       NewSymbolString(usages...),
				Handler:     p.Handler,
			}
			npl.prods = append(npl.prods, np)
		}
		cp.prods[name] = npl
	}

	if g.eof != nil {
		cp.eof = cp.terminals[g.eof.name]
	}

	return cp
}

// Modified reports whether the grammar has been mutated since it was
// created (or since the last time this flag was meaningfully inspectable --
// there is no way to clear it short of building a fresh Copy, since the
// core has no notion of a grammar being "saved").
func (g *Grammar) Modified() bool {
	return g.modified
}
