package grammar

import (
	"testing"

	"github.com/corazon/parsekit/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Grammar_AddTerminal_conflictsWithNonTerminal(t *testing.T) {
	g := New()
	g.AddNonTerminal("S")

	_, err := g.AddTerminal("S")

	assert.Error(t, err)
	assert.True(t, diag.Is(err, diag.KindClassificationConflict))
}

func Test_Grammar_AddNonTerminal_migratesFromTerminal(t *testing.T) {
	g := New()
	g.AddTerminal("a")

	_, err := g.AddNonTerminal("a")

	assert.NoError(t, err)
	assert.Nil(t, g.Term("a"))
	assert.NotNil(t, g.NonTerm("a"))
}

// Test_Grammar_AddNonTerminal_migratesInPlace covers a loader that
// speculatively calls AddTerminal, builds a SymbolUsage against the
// resulting *Symbol, and only later discovers the same name heads a
// production and reclassifies it with AddNonTerminal. The usage's Symbol
// pointer must observe the reclassification -- it is the same object
// NonTerm("a") returns afterward, not a stale terminal left behind.
func Test_Grammar_AddNonTerminal_migratesInPlace(t *testing.T) {
	g := New()
	aTerm, err := g.AddTerminal("a")
	require.NoError(t, err)

	stale := usage(aTerm)
	assert.True(t, stale.Symbol.IsTerminal())

	_, err = g.AddNonTerminal("a")
	require.NoError(t, err)

	assert.Same(t, g.NonTerm("a"), aTerm)
	assert.True(t, stale.Symbol.IsNonTerminal())
	assert.False(t, stale.Symbol.IsTerminal())
}

func Test_Grammar_SymbolByName_unknown(t *testing.T) {
	g := New()

	_, err := g.SymbolByName("nope")

	assert.Error(t, err)
	assert.True(t, diag.Is(err, diag.KindUnknownSymbol))
}

func Test_Grammar_StartSymbol_isFirstRegistered(t *testing.T) {
	g := New()
	g.AddNonTerminal("S")
	g.AddNonTerminal("A")

	assert.Equal(t, "S", g.StartSymbol().Name())
}

func Test_Grammar_AddProduction_dedups(t *testing.T) {
	g := buildGrammar([]string{"a"}, []string{"S -> a"})

	_, added, err := g.AddProduction("S", NewSymbolString(usage(g.Term("a"))), "")

	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, g.Rule("S").Len())
}

func Test_Grammar_Copy_isIndependent(t *testing.T) {
	g := buildGrammar([]string{"a"}, []string{"S -> a"})

	cp := g.Copy()
	cp.AddTerminal("b")

	assert.Nil(t, g.Term("b"))
	assert.NotNil(t, cp.Term("b"))

	// the copy's productions reference its own Symbol instances, not the
	// original's.
	origSym := g.Rule("S").Get(0).Right.At(0).Symbol
	copySym := cp.Rule("S").Get(0).Right.At(0).Symbol
	assert.NotSame(t, origSym, copySym)
	assert.Equal(t, origSym.name, copySym.name)
}

func Test_Grammar_Modified_tracksMutation(t *testing.T) {
	g := New()
	assert.False(t, g.Modified())

	g.AddNonTerminal("S")
	assert.True(t, g.Modified())
}
