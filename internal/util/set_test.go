package util_test

import (
	"testing"

	"github.com/corazon/parsekit/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestStringSet_UnionIntersectionDifference(t *testing.T) {
	a := util.StringSetOf([]string{"x", "y", "z"})
	b := util.StringSetOf([]string{"y", "z", "w"})

	assert.True(t, a.Union(b).Equal(util.StringSetOf([]string{"x", "y", "z", "w"})))
	assert.True(t, a.Intersection(b).Equal(util.StringSetOf([]string{"y", "z"})))
	assert.True(t, a.Difference(b).Equal(util.StringSetOf([]string{"x"})))
}

func TestStringSet_DisjointWith(t *testing.T) {
	a := util.StringSetOf([]string{"x"})
	b := util.StringSetOf([]string{"y"})
	c := util.StringSetOf([]string{"x", "y"})

	assert.True(t, a.DisjointWith(b))
	assert.False(t, a.DisjointWith(c))
}

func TestStringSet_StringOrderedIsAlphabetized(t *testing.T) {
	s := util.StringSetOf([]string{"b", "a", "c"})
	assert.Equal(t, "{a, b, c}", s.StringOrdered())
}

func TestStringSet_EmptyAndAny(t *testing.T) {
	empty := util.NewStringSet()
	assert.True(t, empty.Empty())

	s := util.StringSetOf([]string{"foo", "bar"})
	assert.False(t, s.Empty())
	assert.True(t, s.Any(func(v string) bool { return v == "bar" }))
	assert.False(t, s.Any(func(v string) bool { return v == "baz" }))
}

func TestStringSet_CopyIsIndependent(t *testing.T) {
	s := util.StringSetOf([]string{"a"})

	cp := s.Copy()
	cp.Add("b")

	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("b"))
	assert.True(t, cp.Has("b"))
}

func TestStringSet_RemoveAndElements(t *testing.T) {
	s := util.StringSetOf([]string{"a", "b"})
	s.Remove("a")

	assert.False(t, s.Has("a"))
	assert.Equal(t, []string{"b"}, s.Elements())
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", util.JoinNames(nil))
	assert.Equal(t, "a", util.JoinNames([]string{"a"}))
	assert.Equal(t, "a and b", util.JoinNames([]string{"a", "b"}))
	assert.Equal(t, "a, b, and c", util.JoinNames([]string{"a", "b", "c"}))
}
