package grammar

import (
	"fmt"

	"github.com/corazon/parsekit/internal/diag"
	"github.com/google/uuid"
)

// Orderer supplies the non-terminal processing order Paull's algorithm
// requires. The default orders non-terminals by registration order, which
// is deterministic but not guaranteed to produce the smallest result
// grammar; callers with domain knowledge of their grammar's structure can
// supply their own.
type Orderer func(g *Grammar) []string

// DefaultOrderer orders non-terminals by registration order.
func DefaultOrderer(g *Grammar) []string {
	names := make([]string, len(g.nonTermOrder))
	for i, nt := range g.nonTermOrder {
		names[i] = nt.name
	}
	return names
}

// NameGenerator mints a fresh, not-yet-registered non-terminal name derived
// from base, used when direct left recursion on base must be split into a
// new non-terminal.
type NameGenerator func(g *Grammar, base string) string

// DefaultNameGenerator appends an ascending integer suffix to base until the
// result names nothing already registered.
func DefaultNameGenerator(g *Grammar, base string) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if _, ok := g.nonTerminals[name]; !ok {
			return name
		}
	}
}

// UUIDNameGenerator mints a collision-proof non-terminal name by suffixing
// base with a random UUID instead of an ascending integer. Useful for
// callers merging several independently-generated grammars where
// DefaultNameGenerator's counter-based names could collide across merges.
func UUIDNameGenerator(g *Grammar, base string) string {
	for {
		name := base + "_" + uuid.NewString()
		if _, ok := g.nonTerminals[name]; !ok {
			return name
		}
	}
}

// RemoveLeftRecursion eliminates both direct and indirect left recursion
// from the grammar using Paull's algorithm, processing non-terminals in the
// given Orderer's sequence (DefaultOrderer if none is given) and naming any
// split-off non-terminal with DefaultNameGenerator. For i = 1..n:
//
//	for j = 1..i-1:
//	  replace each production Ai -> Aj gamma with Ai -> delta1 gamma | .. | deltak gamma
//	  where Aj -> delta1 | .. | deltak are Aj's current productions
//	then remove immediate left recursion on Ai, if any, by splitting Ai
//	into Ai and a fresh Ai' as the standard rewrite requires.
//
// Returns a precondition error (diag.KindPrecondition) if the grammar still
// has nullable non-terminals, optional-usage markers, or cycles, any of
// which can make the algorithm loop forever or produce a grammar that does
// not generate the same language: callers should run RemoveNullProductions
// and RemoveCycles first.
func (g *Grammar) RemoveLeftRecursion(order ...Orderer) error {
	if !g.Nullables().Empty() {
		return diag.New(diag.KindPrecondition, "grammar still has nullable non-terminals; run RemoveNullProductions first")
	}
	if g.hasOptionalUsages() {
		return diag.New(diag.KindPrecondition, "grammar still carries optional-usage markers; run RemoveNullProductions first")
	}
	if len(g.Cycles()) > 0 {
		return diag.New(diag.KindPrecondition, "grammar still has cycles; run RemoveCycles first")
	}

	orderer := DefaultOrderer
	if len(order) > 0 && order[0] != nil {
		orderer = order[0]
	}
	names := orderer(g)

	for i, ai := range names {
		for j := 0; j < i; j++ {
			g.substituteIndirect(ai, names[j])
		}
		g.splitDirectRecursion(ai, DefaultNameGenerator)
	}

	g.markModified()
	return nil
}

// RemoveLeftRecursionFor removes immediate (direct) left recursion on the
// single named non-terminal, splitting it against a fresh non-terminal named
// by gen (DefaultNameGenerator if none is given). It is the direct
// subroutine RemoveLeftRecursion's driver applies at each step, exposed for
// callers that know only one non-terminal is affected or that want a
// different naming scheme for the split. Indirect recursion through other
// non-terminals is not touched; use RemoveLeftRecursion for that.
func (g *Grammar) RemoveLeftRecursionFor(nonterm string, gen ...NameGenerator) error {
	if _, ok := g.nonTerminals[nonterm]; !ok {
		return diag.New(diag.KindUnknownSymbol, "%q is not a registered non-terminal", nonterm)
	}

	generator := DefaultNameGenerator
	if len(gen) > 0 && gen[0] != nil {
		generator = gen[0]
	}

	g.splitDirectRecursion(nonterm, generator)
	g.markModified()
	return nil
}

// hasOptionalUsages reports whether any production anywhere in the grammar
// still carries a `?`-marked usage. RemoveNullProductions strips every such
// marker, so a surviving one means the grammar never went through null
// removal -- and Paull's substitution step, which only ever looks at a
// production's first symbol, cannot eliminate recursion hiding behind an
// optional prefix.
func (g *Grammar) hasOptionalUsages() bool {
	for _, nt := range g.nonTermOrder {
		for _, p := range g.prods[nt.name].All() {
			for _, u := range p.Right.Usages() {
				if u.IsOptional() {
					return true
				}
			}
		}
	}
	return false
}

// substituteIndirect replaces every production ai -> aj gamma with one
// production per current production of aj, each the former's delta
// followed by gamma.
func (g *Grammar) substituteIndirect(ai, aj string) {
	pl := g.prods[ai]
	if pl == nil {
		return
	}
	ajProds := g.prods[aj]
	if ajProds == nil {
		return
	}

	nt := g.nonTerminals[ai]
	newList := newProductionList(ai)

	for _, p := range pl.All() {
		if p.Right.Len() == 0 || !p.Right.At(0).Symbol.IsNonTerminal() || p.Right.At(0).Symbol.name != aj {
			newList.Add(p)
			continue
		}

		gamma := p.Right.Usages()[1:]
		for _, ajp := range ajProds.All() {
			usages := append(append([]SymbolUsage{}, ajp.Right.Usages()...), gamma...)
			newList.Add(&Production{NonTerminal: nt, Right: NewSymbolString(usages...), Handler: p.Handler})
		}
	}

	g.prods[ai] = newList
}

// splitDirectRecursion removes immediate left recursion on ai, if any. Given
//
//	Ai -> Ai alpha1 | .. | Ai alpham | beta1 | .. | betan
//
// (with no beta itself starting with Ai), it rewrites to
//
//	Ai  -> beta1 Ai' | .. | betan Ai'
//	Ai' -> alpha1 Ai' | .. | alpham Ai' | epsilon
//
// registering the fresh Ai' via gen. The Ai' -> epsilon production carries
// no handler; it reintroduces one null production per split, which an LL
// driver handles through PREDICT against FOLLOW rather than another round
// of null removal.
func (g *Grammar) splitDirectRecursion(ai string, gen NameGenerator) {
	pl := g.prods[ai]
	if pl == nil {
		return
	}

	var alphas [][]SymbolUsage
	var betas [][]SymbolUsage
	var handlerAlpha, handlerBeta []string

	for _, p := range pl.All() {
		usages := p.Right.Usages()
		if len(usages) > 0 && usages[0].Symbol.IsNonTerminal() && usages[0].Symbol.name == ai {
			alphas = append(alphas, usages[1:])
			handlerAlpha = append(handlerAlpha, p.Handler)
		} else {
			betas = append(betas, usages)
			handlerBeta = append(handlerBeta, p.Handler)
		}
	}

	if len(alphas) == 0 {
		return
	}

	primeName := gen(g, ai)
	prime := &Symbol{name: primeName, kind: NonTerminal, index: len(g.nonTermOrder)}
	g.nonTerminals[primeName] = prime
	g.nonTermOrder = append(g.nonTermOrder, prime)

	nt := g.nonTerminals[ai]
	newAi := newProductionList(ai)
	for i, beta := range betas {
		usages := append(append([]SymbolUsage{}, beta...), usage(prime))
		newAi.Add(&Production{NonTerminal: nt, Right: NewSymbolString(usages...), Handler: handlerBeta[i]})
	}
	g.prods[ai] = newAi

	newPrime := newProductionList(primeName)
	for i, alpha := range alphas {
		usages := append(append([]SymbolUsage{}, alpha...), usage(prime))
		newPrime.Add(&Production{NonTerminal: prime, Right: NewSymbolString(usages...), Handler: handlerAlpha[i]})
	}
	newPrime.Add(&Production{NonTerminal: prime, Right: NewSymbolString()})
	g.prods[primeName] = newPrime
}
