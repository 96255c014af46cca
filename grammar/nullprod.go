package grammar

import "github.com/corazon/parsekit/internal/util"

// RemoveNullProductions rewrites every production A -> X1 .. Xn into the set
// of productions obtained by deleting each non-empty subset of positions
// that are either marked optional or whose symbol is (by the grammar's
// nullable set, computed once up front) nullable. Deleting the full set of
// eligible positions from a production that is made up of nothing else
// yields an empty right-hand side, which is then pruned.
//
// Positions that survive a deletion have their `?` marker discarded in the
// generated production; after all subsets are generated, the marker is
// stripped grammar-wide, including on productions that were never touched
// by a deletion. This is deliberate: once nullability has been compiled out
// into explicit alternatives, the marker no longer carries information an
// LL driver can use, and a caller that wants it back must re-derive it
// before calling.
//
// This can change the language generated if S =>* epsilon: the empty string
// itself is no longer derivable once the empty productions that produced it
// are gone. Callers that need to accept empty input must special-case it
// before invoking this transformation.
func (g *Grammar) RemoveNullProductions() {
	nullable := g.Nullables()

	for _, nt := range g.nonTermOrder {
		pl := g.prods[nt.name]
		originals := pl.All()

		for _, prod := range originals {
			positions := eligiblePositions(prod, nullable)
			if len(positions) == 0 {
				continue
			}

			for mask := 1; mask < (1 << len(positions)); mask++ {
				drop := map[int]bool{}
				for bit, pos := range positions {
					if mask&(1<<bit) != 0 {
						drop[pos] = true
					}
				}
				newRHS := prod.Right.withoutPositions(drop)
				if newRHS.Len() == 0 {
					continue
				}
				pl.Add(&Production{NonTerminal: nt, Right: newRHS, Handler: prod.Handler})
			}
		}
	}

	for _, nt := range g.nonTermOrder {
		pl := g.prods[nt.name]
		for _, p := range pl.All() {
			p.Right = p.Right.stripOptionalMarkers()
		}
	}

	for _, nt := range g.nonTermOrder {
		g.prods[nt.name].removeEmptyRHS()
	}

	g.markModified()
}

// eligiblePositions returns the indices of p's right-hand side usages that
// are candidates for deletion: marked optional, or a non-terminal already
// known nullable.
func eligiblePositions(p *Production, nullable util.StringSet) []int {
	var positions []int
	for i, u := range p.Right.Usages() {
		if u.IsOptional() || (u.Symbol.IsNonTerminal() && nullable.Has(u.Symbol.name)) {
			positions = append(positions, i)
		}
	}
	return positions
}
