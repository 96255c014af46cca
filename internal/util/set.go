package util

import (
	"sort"
	"strings"
)

// StringSet is a set of strings. Every set the grammar engine ever builds --
// nullable non-terminals, a FIRST/FOLLOW/PREDICT terminal set, cycle or
// left-recursion membership -- is a set of symbol or terminal names, so this
// is the only set shape this package carries.
type StringSet map[string]bool

// NewStringSet builds a StringSet, optionally seeded from one or more
// existing string-keyed maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// StringSetOf builds a StringSet from a slice. Returns nil for a nil slice,
// matching the convention the analysis caches use for "never computed".
func StringSetOf(sl []string) StringSet {
	if sl == nil {
		return nil
	}
	s := StringSet{}
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

// Add adds value to the set. No effect if value is already present.
func (s StringSet) Add(value string) {
	s[value] = true
}

// AddAll adds every element of o to s.
func (s StringSet) AddAll(o StringSet) {
	for k := range o {
		s.Add(k)
	}
}

// Remove removes value from the set. No effect if value is not present.
func (s StringSet) Remove(value string) {
	delete(s, value)
}

// Has reports whether value is in the set.
func (s StringSet) Has(value string) bool {
	return s[value]
}

// Len is the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Empty reports whether the set has no elements.
func (s StringSet) Empty() bool {
	return len(s) == 0
}

// Any reports whether some element satisfies predicate.
func (s StringSet) Any(predicate func(v string) bool) bool {
	for k := range s {
		if predicate(k) {
			return true
		}
	}
	return false
}

// Copy returns an independent copy of s.
func (s StringSet) Copy() StringSet {
	return NewStringSet(s)
}

// Union returns a new set holding every element of s and o.
func (s StringSet) Union(o StringSet) StringSet {
	out := s.Copy()
	out.AddAll(o)
	return out
}

// Intersection returns a new set holding only elements present in both s and
// o.
func (s StringSet) Intersection(o StringSet) StringSet {
	out := NewStringSet()
	for k := range s {
		if o.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Difference returns a new set holding elements of s that are not in o.
func (s StringSet) Difference(o StringSet) StringSet {
	out := s.Copy()
	for k := range o {
		out.Remove(k)
	}
	return out
}

// DisjointWith reports whether s and o share no elements.
func (s StringSet) DisjointWith(o StringSet) bool {
	for k := range s {
		if o.Has(k) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o contain the same elements.
func (s StringSet) Equal(o StringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// Elements returns the set's members, in no particular order. Returns nil
// for a nil set.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}

// StringOrdered renders the set's contents alphabetized, e.g. "{a, b, c}".
func (s StringSet) StringOrdered() string {
	elems := s.Elements()
	sort.Strings(elems)
	return "{" + strings.Join(elems, ", ") + "}"
}

// String renders the set's contents in no particular order.
func (s StringSet) String() string {
	return "{" + strings.Join(s.Elements(), ", ") + "}"
}
