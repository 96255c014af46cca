package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FollowSets_exprGrammar(t *testing.T) {
	g := exprGrammar()

	follow := g.FollowSets()

	assert.ElementsMatch(t, []string{"EOF", "RPAREN"}, follow["E"].Elements())
	assert.ElementsMatch(t, []string{"EOF", "RPAREN"}, follow["Eprime"].Elements())
	assert.ElementsMatch(t, []string{"EOF", "RPAREN", "PLUS"}, follow["T"].Elements())
	assert.ElementsMatch(t, []string{"EOF", "RPAREN", "PLUS"}, follow["Tprime"].Elements())
	assert.ElementsMatch(t, []string{"EOF", "RPAREN", "PLUS", "TIMES"}, follow["F"].Elements())
}

func Test_Follow_singleSymbol(t *testing.T) {
	g := exprGrammar()

	assert.ElementsMatch(t, []string{"EOF", "RPAREN"}, g.Follow("E").Elements())
}

func Test_FollowSets_explicitStart(t *testing.T) {
	g := buildGrammar([]string{"a"}, []string{
		"S -> A",
		"A -> a",
	})

	follow := g.FollowSets("A")

	assert.ElementsMatch(t, []string{"EOF"}, follow["A"].Elements())
	// S is not reachable from A, so nothing ever adds to its FOLLOW set when
	// A is used as start.
	assert.Empty(t, follow["S"].Elements())
}
