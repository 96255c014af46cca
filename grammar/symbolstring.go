package grammar

// SymbolString is an ordered sequence of SymbolUsages, with two derived
// bit-sequences kept in lockstep with structural mutation:
//
//   - optionalTo(i): every usage in [0, i] is marked optional.
//   - optionalFrom(i): every usage in [i, len) is marked optional.
//
// Both are queryable one position past either end of the string, where they
// are vacuously true (an empty prefix or suffix is optional by definition).
// Both consider only the `?` marker on each usage -- not whatever a grammar's
// nullable-set analysis later concludes about the usage's Symbol -- since a
// SymbolString has no access to the grammar that would let it ask that
// question.
type SymbolString struct {
	usages []SymbolUsage

	// optionalTo[i] / optionalFrom[i] mirror usages[i]; recomputed by
	// recompute() after every structural change.
	optionalTo   []bool
	optionalFrom []bool
}

// NewSymbolString builds a SymbolString from the given usages.
func NewSymbolString(usages ...SymbolUsage) SymbolString {
	ss := SymbolString{usages: append([]SymbolUsage{}, usages...)}
	ss.recompute()
	return ss
}

// Len is the number of usages in the string.
func (ss SymbolString) Len() int {
	return len(ss.usages)
}

// Usages gives the ordered usages of the string. The returned slice is a
// copy; mutating it has no effect on ss.
func (ss SymbolString) Usages() []SymbolUsage {
	out := make([]SymbolUsage, len(ss.usages))
	copy(out, ss.usages)
	return out
}

// At returns the usage at index i.
func (ss SymbolString) At(i int) SymbolUsage {
	return ss.usages[i]
}

// Append adds usages to the end of the string, updating the optional
// bitmaps.
func (ss *SymbolString) Append(usages ...SymbolUsage) {
	ss.usages = append(ss.usages, usages...)
	ss.recompute()
}

// OptionalTo reports whether every usage in positions [0, i] is optional.
// i may range from -1 (the empty prefix, always true) to Len()-1.
func (ss SymbolString) OptionalTo(i int) bool {
	if i < 0 {
		return true
	}
	if i >= len(ss.optionalTo) {
		i = len(ss.optionalTo) - 1
	}
	if i < 0 {
		return true
	}
	return ss.optionalTo[i]
}

// OptionalFrom reports whether every usage in positions [i, Len()) is
// optional. i may range from 0 to Len() (the empty suffix, always true).
func (ss SymbolString) OptionalFrom(i int) bool {
	if i >= len(ss.usages) {
		return true
	}
	if i < 0 {
		i = 0
	}
	return ss.optionalFrom[i]
}

// AllOptional reports whether every usage in the string is marked optional
// (vacuously true for the empty string).
func (ss SymbolString) AllOptional() bool {
	return ss.OptionalTo(len(ss.usages) - 1)
}

func (ss *SymbolString) recompute() {
	n := len(ss.usages)
	ss.optionalTo = make([]bool, n)
	ss.optionalFrom = make([]bool, n)

	running := true
	for i := 0; i < n; i++ {
		running = running && ss.usages[i].Optional
		ss.optionalTo[i] = running
	}

	running = true
	for i := n - 1; i >= 0; i-- {
		running = running && ss.usages[i].Optional
		ss.optionalFrom[i] = running
	}
}

// withoutPositions builds a new SymbolString that omits the usages at the
// given positions (a set given as a map for cheap membership tests) and
// strips the Optional marker from every usage that remains. Stripping the
// marker on survivors mirrors what RemoveNullProductions does grammar-wide:
// once nullability has been compiled out into explicit alternative
// productions, the `?` annotation no longer carries information.
func (ss SymbolString) withoutPositions(drop map[int]bool) SymbolString {
	var kept []SymbolUsage
	for i, u := range ss.usages {
		if drop[i] {
			continue
		}
		u.Optional = false
		kept = append(kept, u)
	}
	return NewSymbolString(kept...)
}

// stripOptionalMarkers returns a copy of ss with every usage's Optional flag
// cleared.
func (ss SymbolString) stripOptionalMarkers() SymbolString {
	out := make([]SymbolUsage, len(ss.usages))
	for i, u := range ss.usages {
		u.Optional = false
		out[i] = u
	}
	return NewSymbolString(out...)
}

func (ss SymbolString) String() string {
	if len(ss.usages) == 0 {
		return Epsilon
	}
	s := ""
	for i, u := range ss.usages {
		if i > 0 {
			s += " "
		}
		s += u.String()
	}
	return s
}

// Equal compares two SymbolStrings positionally by the Symbol each usage
// references -- Varname and Optional are not considered, matching
// SymbolUsage.Equal.
func (ss SymbolString) Equal(o SymbolString) bool {
	if len(ss.usages) != len(o.usages) {
		return false
	}
	for i := range ss.usages {
		if !ss.usages[i].Equal(o.usages[i]) {
			return false
		}
	}
	return true
}

// Epsilon is the conventional display string for an empty SymbolString.
const Epsilon = "ε"
