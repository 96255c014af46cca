package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Nullables(t *testing.T) {
	testCases := []struct {
		name   string
		terms  []string
		rules  []string
		expect []string
	}{
		{
			name:  "no nullable non-terminals",
			terms: []string{"a"},
			rules: []string{"S -> a"},
		},
		{
			name:  "direct epsilon production",
			terms: []string{"a"},
			rules: []string{
				"S -> a | .",
			},
			expect: []string{"S"},
		},
		{
			name:  "nullability propagates through unit and pair productions",
			terms: []string{"a", "b"},
			rules: []string{
				"S -> A C A | A a",
				"A -> B B | .",
				"B -> A | b C",
				"C -> b",
			},
			// A directly derives epsilon, B does through its unit production
			// to A; S never does, since both its alternatives contain a
			// mandatory non-nullable (C in one, a in the other).
			expect: []string{"A", "B"},
		},
		{
			name:  "fully nullable chain",
			terms: []string{"a", "b"},
			rules: []string{
				"S -> A B",
				"A -> a | .",
				"B -> b | .",
			},
			expect: []string{"S", "A", "B"},
		},
		{
			name:  "purple dragon book ex. 4.4.6",
			terms: []string{"a", "b"},
			rules: []string{
				"S -> a S b S | b S a S | .",
			},
			expect: []string{"S"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGrammar(tc.terms, tc.rules)

			actual := g.Nullables()

			assert.ElementsMatch(t, tc.expect, actual.Elements())
		})
	}
}

func Test_Nullables_isMemoized(t *testing.T) {
	g := buildGrammar([]string{"a"}, []string{"S -> a | ."})

	first := g.Nullables()
	second := g.Nullables()

	assert.Equal(t, first, second)

	g.AddNonTerminal("T")
	third := g.Nullables()
	assert.False(t, third.Has("T"))
}
