package grammar

// Kind classifies a Symbol as either a terminal or a non-terminal. A Symbol
// has exactly one Kind at any given time; Grammar.AddNonTerminal is the only
// way to move a name from Terminal to NonTerminal, and it updates both sides
// of the grammar's indices atomically when it does.
type Kind int

const (
	Terminal Kind = iota
	NonTerminal
)

func (k Kind) String() string {
	if k == Terminal {
		return "TERMINAL"
	}
	return "NON_TERMINAL"
}

// Symbol is a named grammar atom with identity by name. ResultType is an
// opaque tag (read by codegen that lives outside this core) carrying the Go
// type a non-terminal's semantic value is expected to have; the core never
// interprets it.
type Symbol struct {
	name       string
	resultType string
	kind       Kind
	index      int
}

// Name is the symbol's unique name within the owning grammar.
func (s *Symbol) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// ResultType is the opaque codegen type tag associated with this symbol, if
// any was given when it was registered.
func (s *Symbol) ResultType() string {
	if s == nil {
		return ""
	}
	return s.resultType
}

// Kind gives the symbol's current classification.
func (s *Symbol) Kind() Kind {
	if s == nil {
		return Terminal
	}
	return s.kind
}

// IsTerminal reports whether the symbol is currently classified as a
// terminal.
func (s *Symbol) IsTerminal() bool {
	return s.Kind() == Terminal
}

// IsNonTerminal reports whether the symbol is currently classified as a
// non-terminal.
func (s *Symbol) IsNonTerminal() bool {
	return s.Kind() == NonTerminal
}

// Index is the position assigned to this symbol when it was registered into
// its current classification's table. Reclassification assigns a fresh
// index in the destination table.
func (s *Symbol) Index() int {
	if s == nil {
		return -1
	}
	return s.index
}

// Equal compares symbols by name, their only identity-bearing attribute.
func (s *Symbol) Equal(o any) bool {
	other, ok := o.(*Symbol)
	if !ok || other == nil || s == nil {
		return false
	}
	return s.name == other.name
}

func (s *Symbol) String() string {
	return s.Name()
}

// SymbolUsage is a reference to a Symbol as it appears in a production's
// right-hand side. Two usages are Equal iff they refer to the same Symbol;
// Varname and Optional are presentation/semantic-action attributes and take
// no part in identity or in production dedup.
type SymbolUsage struct {
	Symbol   *Symbol
	Varname  string
	Optional bool
}

// IsOptional reports whether this usage carries the `?` modifier -- i.e.
// whether this position may match the empty string.
func (u SymbolUsage) IsOptional() bool {
	return u.Optional
}

// Equal compares two usages by the Symbol they reference.
func (u SymbolUsage) Equal(o any) bool {
	other, ok := o.(SymbolUsage)
	if !ok {
		return false
	}
	return u.Symbol.Equal(other.Symbol)
}

func (u SymbolUsage) String() string {
	s := u.Symbol.Name()
	if u.Optional {
		s += "?"
	}
	return s
}

// usage builds a plain, non-optional SymbolUsage for sym. Most production
// construction does not need varnames or optionality, so this is the common
// case factored out.
func usage(sym *Symbol) SymbolUsage {
	return SymbolUsage{Symbol: sym}
}
