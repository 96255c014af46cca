package grammar

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/pterm/pterm"
)

// DumpPredictTable renders a one-row-per-production table of non-terminal,
// right-hand side, and PREDICT set, for use by whatever is driving the LL
// generator shell when it wants to show a human the table it is about to
// dispatch on. It stamps PREDICT sets first, recomputing them on every call.
//
// This does not belong to the analysis engine proper -- nothing here reads
// the result back in -- it exists purely as an operator-facing diagnostic.
func (g *Grammar) DumpPredictTable(start ...string) string {
	if err := g.EvalPredictSets(start...); err != nil {
		return ""
	}

	data := [][]string{{"NONTERM", "PRODUCTION", "PREDICT"}}
	for _, nt := range g.nonTermOrder {
		for _, p := range g.prods[nt.name].All() {
			data = append(data, []string{nt.name, p.Right.String(), p.predictSet.StringOrdered()})
		}
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders: true,
			TableBorders: true,
		}).
		String()
}

// DumpCycleTree renders a set of cycle (or left-recursion) paths as a tree,
// one root per path, labelled with its Start symbol, with each hop's production shown
// below the non-terminal it lands on. Unlike the table dumps above this is
// meant for the handful of cycles found in a single grammar rather than a
// full symbol table, where a tree reads better than a row-per-hop table.
func DumpCycleTree(paths []CyclePath) string {
	roots := make([]pterm.TreeNode, 0, len(paths))
	for _, c := range paths {
		node := pterm.TreeNode{Text: c.Start}
		cur := &node
		for _, step := range c.Path {
			child := pterm.TreeNode{Text: fmt.Sprintf("%s  (%s)", step.NonTerminal, step.Production.String())}
			cur.Children = append(cur.Children, child)
			cur = &cur.Children[len(cur.Children)-1]
		}
		roots = append(roots, node)
	}

	var out string
	for _, root := range roots {
		s, err := pterm.DefaultTree.WithRoot(root).Srender()
		if err != nil {
			continue
		}
		out += s
	}
	return out
}

// DumpFirstFollowTable renders a one-row-per-non-terminal table of FIRST and
// FOLLOW sets, in registration order.
func (g *Grammar) DumpFirstFollowTable(start ...string) string {
	first := g.FirstSets()
	follow := g.FollowSets(start...)

	data := [][]string{{"NONTERM", "FIRST", "FOLLOW"}}
	for _, nt := range g.nonTermOrder {
		data = append(data, []string{nt.name, first[nt.name].StringOrdered(), follow[nt.name].StringOrdered()})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders: true,
			TableBorders: true,
		}).
		String()
}
