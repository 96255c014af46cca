// Package ll is the generator shell consuming a grammar that has already
// been cleansed of cycles and left recursion: it asks the grammar for
// PREDICT sets and drives the dispatch structure a predictive top-down
// parser needs -- one routine per non-terminal, each testing the next
// lookahead token against its productions' PREDICT sets -- without itself
// emitting any target-language code. Production code emission is the
// concern of whatever calls Generate with the Plan it returns.
package ll

import (
	"fmt"

	"github.com/corazon/parsekit/grammar"
	"github.com/corazon/parsekit/internal/diag"
)

// Routine is the dispatch table for a single non-terminal: the ordered list
// of its productions, each paired with the PREDICT set that selects it.
type Routine struct {
	NonTerminal string
	Cases       []Case
}

// Case is one arm of a Routine's dispatch: descend into Production when the
// lookahead token is in Predict.
type Case struct {
	Production *grammar.Production
	Predict    []string
}

// Plan is the complete dispatch structure for a grammar: one Routine per
// reachable non-terminal, in the order Generate visited them from Start.
type Plan struct {
	Start    string
	Routines []Routine
}

// Generate builds the dispatch Plan for g, rooted at start (defaulting to
// g's registered start symbol). It asserts the precondition the LL
// generator requires -- no left recursion -- stamps PREDICT sets, and then
// walks the grammar depth-first from start, visiting each non-terminal at
// most once, emitting a Routine for it.
//
// Mirroring the reference generator's stack-based walk: a non-terminal is
// pushed when first referenced and popped (and turned into a Routine) when
// processed, so indirectly-recursive grammars terminate without a visited
// check degenerating into infinite descent.
func Generate(g *grammar.Grammar, start ...string) (*Plan, error) {
	if len(g.LeftRecursion()) > 0 {
		return nil, diag.New(diag.KindPrecondition, "grammar has left recursion; remove it before generating an LL parser")
	}

	startName := resolveStart(g, start...)
	if startName == "" {
		return nil, diag.New(diag.KindUnknownSymbol, "grammar has no non-terminals to generate from")
	}

	if err := g.EvalPredictSets(start...); err != nil {
		return nil, err
	}

	visited := map[string]bool{}
	stack := []string{startName}
	var routines []Routine

	for len(stack) > 0 {
		n := len(stack) - 1
		top := stack[n]
		stack = stack[:n]

		if visited[top] {
			continue
		}
		visited[top] = true

		pl := g.Rule(top)
		if pl == nil {
			continue
		}

		var cases []Case
		for _, p := range pl.All() {
			cases = append(cases, Case{Production: p, Predict: p.PredictSet().Elements()})
			for _, u := range p.Right.Usages() {
				if u.Symbol.IsNonTerminal() && !visited[u.Symbol.Name()] {
					stack = append(stack, u.Symbol.Name())
				}
			}
		}

		routines = append(routines, Routine{NonTerminal: top, Cases: cases})
	}

	return &Plan{Start: startName, Routines: routines}, nil
}

func resolveStart(g *grammar.Grammar, start ...string) string {
	if len(start) > 0 && start[0] != "" {
		return start[0]
	}
	if s := g.StartSymbol(); s != nil {
		return s.Name()
	}
	return ""
}

// Conflicts reports, for every Routine in p, any pair of Cases whose
// Predict sets overlap -- the LL(1) property violation that would make the
// dispatch ambiguous at generation time. An empty result means every
// Routine in the plan can be emitted as a single lookahead switch.
func (p *Plan) Conflicts() []Conflict {
	var out []Conflict
	for _, r := range p.Routines {
		for i := 0; i < len(r.Cases); i++ {
			for j := i + 1; j < len(r.Cases); j++ {
				if shared := intersect(r.Cases[i].Predict, r.Cases[j].Predict); len(shared) > 0 {
					out = append(out, Conflict{
						NonTerminal: r.NonTerminal,
						A:           r.Cases[i].Production,
						B:           r.Cases[j].Production,
						Shared:      shared,
					})
				}
			}
		}
	}
	return out
}

// Conflict describes two productions of the same non-terminal whose PREDICT
// sets overlap on Shared terminals, meaning a single token of lookahead
// cannot choose between them.
type Conflict struct {
	NonTerminal string
	A, B        *grammar.Production
	Shared      []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s: %q and %q both predict on %v", c.NonTerminal, c.A.String(), c.B.String(), c.Shared)
}

func intersect(a, b []string) []string {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	var out []string
	for _, t := range b {
		if set[t] {
			out = append(out, t)
		}
	}
	return out
}
