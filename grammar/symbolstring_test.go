package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SymbolString_OptionalTo_OptionalFrom(t *testing.T) {
	a := &Symbol{name: "A", kind: NonTerminal}
	b := &Symbol{name: "B", kind: NonTerminal}
	c := &Symbol{name: "C", kind: NonTerminal}

	ss := NewSymbolString(
		SymbolUsage{Symbol: a, Optional: true},
		SymbolUsage{Symbol: b, Optional: true},
		SymbolUsage{Symbol: c, Optional: false},
	)

	assert.True(t, ss.OptionalTo(-1))
	assert.True(t, ss.OptionalTo(0))
	assert.True(t, ss.OptionalTo(1))
	assert.False(t, ss.OptionalTo(2))

	assert.False(t, ss.OptionalFrom(0))
	assert.False(t, ss.OptionalFrom(1))
	assert.False(t, ss.OptionalFrom(2))
	assert.True(t, ss.OptionalFrom(3))
}

func Test_SymbolString_AllOptional(t *testing.T) {
	a := &Symbol{name: "A", kind: NonTerminal}

	allOpt := NewSymbolString(SymbolUsage{Symbol: a, Optional: true})
	notAllOpt := NewSymbolString(SymbolUsage{Symbol: a, Optional: false})
	empty := NewSymbolString()

	assert.True(t, allOpt.AllOptional())
	assert.False(t, notAllOpt.AllOptional())
	assert.True(t, empty.AllOptional())
}

func Test_SymbolString_withoutPositions_stripsMarkers(t *testing.T) {
	a := &Symbol{name: "A", kind: NonTerminal}
	b := &Symbol{name: "B", kind: NonTerminal}
	c := &Symbol{name: "C", kind: NonTerminal}

	ss := NewSymbolString(
		SymbolUsage{Symbol: a, Optional: true},
		SymbolUsage{Symbol: b},
		SymbolUsage{Symbol: c},
	)

	out := ss.withoutPositions(map[int]bool{0: true})
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, "B", out.At(0).Symbol.Name())
	assert.False(t, out.At(0).Optional)
}

func Test_SymbolString_Equal_ignoresOptionalAndVarname(t *testing.T) {
	a := &Symbol{name: "A", kind: NonTerminal}

	s1 := NewSymbolString(SymbolUsage{Symbol: a, Optional: true, Varname: "x"})
	s2 := NewSymbolString(SymbolUsage{Symbol: a})

	assert.True(t, s1.Equal(s2))
}

func Test_SymbolString_String_emptyIsEpsilon(t *testing.T) {
	assert.Equal(t, Epsilon, NewSymbolString().String())
}
