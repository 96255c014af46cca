package grammar

import "github.com/corazon/parsekit/internal/util"

// EvalPredictSets stamps PredictSet on every production in the grammar.
// For a production A -> alpha: PREDICT = FIRST(alpha) union (FOLLOW(A) if
// alpha is entirely nullable-or-optional, including the empty production).
func (g *Grammar) EvalPredictSets(start ...string) error {
	nullable := g.Nullables()
	first := g.FirstSets()
	follow := g.FollowSets(start...)

	for _, nt := range g.nonTermOrder {
		for _, p := range g.prods[nt.name].All() {
			usages := p.Right.Usages()

			predict := firstOfString(usages, 0, first, nullable)
			if stringIsNullable(usages, 0, nullable) {
				predict.AddAll(follow[nt.name])
			}

			p.predictSet = predict
		}
	}

	return nil
}

// Predict returns PREDICT(p), computing it on demand if it has not yet been
// stamped by EvalPredictSets.
func (g *Grammar) Predict(p *Production, start ...string) util.StringSet {
	if p.predictSet != nil {
		return p.predictSet
	}

	nullable := g.Nullables()
	first := g.FirstSets()
	follow := g.FollowSets(start...)

	usages := p.Right.Usages()
	predict := firstOfString(usages, 0, first, nullable)
	if stringIsNullable(usages, 0, nullable) {
		predict.AddAll(follow[p.NonTerminal.name])
	}
	return predict
}
