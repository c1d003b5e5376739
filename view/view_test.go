package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfAndOfString(t *testing.T) {
	a := Of([]byte("hello"))
	b := OfString("hello")

	require.Equal(t, 5, a.Len())
	require.Equal(t, 5, b.Len())
	require.Equal(t, "hello", a.String())
	require.Equal(t, byte('e'), b.At(1))
	require.True(t, OfString("").Empty())
}

func TestBytesReturnsCopy(t *testing.T) {
	backing := []byte("abc")
	v := Of(backing)

	c := v.Bytes()
	require.Equal(t, []byte("abc"), c)
	c[0] = 'X'
	require.Equal(t, byte('a'), v.At(0), "mutating the copy must not touch the viewed bytes")
}

func TestEqual(t *testing.T) {
	a := Of([]byte("same bytes"))
	b := OfString("same bytes")

	require.True(t, Equal(a, a), "reflexive")
	require.True(t, Equal(a, b), "different origin, identical bytes")
	require.True(t, Equal(b, a), "symmetric")

	require.False(t, Equal(a, OfString("same byteX")))
	require.False(t, Equal(a, OfString("same byte")), "length mismatch never compares equal")
	require.True(t, Equal(Of(nil), OfString("")))
}

func TestSliceClamping(t *testing.T) {
	v := OfString("0123456789")

	cases := []struct {
		name       string
		start, end int
		want       string
	}{
		{"interior", 2, 5, "234"},
		{"full", 0, 10, "0123456789"},
		{"empty", 4, 4, ""},
		{"start past end", 7, 3, ""},
		{"end past size", 6, 100, "6789"},
		{"start past size", 100, 200, ""},
		{"negative start", -3, 2, "01"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := v.Slice(c.start, c.end)
			require.Equal(t, c.want, got.String())
		})
	}

	require.True(t, Equal(v.Slice(0, v.Len()), v), "identity slice is content-equal")
}

func TestChopFound(t *testing.T) {
	v := OfString("key=value")

	key := v.Chop('=')
	require.Equal(t, "key", key.String())
	require.Equal(t, "value", v.String(), "receiver advances past the delimiter")
}

func TestChopNotFound(t *testing.T) {
	v := OfString("no delimiter here")

	out := v.Chop(';')
	require.Equal(t, "no delimiter here", out.String(), "whole content is returned")
	require.True(t, v.Empty(), "receiver is consumed")
}

func TestChopTokenizes(t *testing.T) {
	v := OfString("a,b,,c")
	var fields []string
	for !v.Empty() {
		fields = append(fields, v.Chop(',').String())
	}
	require.Equal(t, []string{"a", "b", "", "c"}, fields)
}

func TestChopLeadingAndTrailingDelimiter(t *testing.T) {
	v := OfString(",x")
	require.Equal(t, "", v.Chop(',').String())
	require.Equal(t, "x", v.String())

	v = OfString("x,")
	require.Equal(t, "x", v.Chop(',').String())
	require.Equal(t, "", v.String())
	// Chopping an already-empty view yields an empty view.
	require.Equal(t, "", v.Chop(',').String())
	require.True(t, v.Empty())
}

func TestTrim(t *testing.T) {
	cases := []struct {
		in                string
		left, right, both string
	}{
		{"  hello  ", "hello  ", "  hello", "hello"},
		{"\t\r\nword\v\f", "word\v\f", "\t\r\nword", "word"},
		{"no space", "no space", "no space", "no space"},
		{" inner stays ", "inner stays ", " inner stays", "inner stays"},
		{" \t\n ", "", "", ""},
		{"", "", "", ""},
	}
	for _, c := range cases {
		v := OfString(c.in)
		require.Equal(t, c.left, v.TrimLeft().String(), "TrimLeft(%q)", c.in)
		require.Equal(t, c.right, v.TrimRight().String(), "TrimRight(%q)", c.in)
		require.Equal(t, c.both, v.Trim().String(), "Trim(%q)", c.in)
	}
}

func TestTrimIdempotent(t *testing.T) {
	for _, s := range []string{"  a  ", "b", "", "   ", "\t x y \n"} {
		once := OfString(s).Trim()
		require.True(t, Equal(once.Trim(), once), "Trim(Trim(%q))", s)
	}
}

func TestTrimDoesNotCopy(t *testing.T) {
	backing := []byte("  abc  ")
	trimmed := Of(backing).Trim()
	require.Equal(t, "abc", trimmed.String())

	backing[2] = 'X'
	require.Equal(t, "Xbc", trimmed.String(), "trim narrows the range over the same bytes")
}

// bumpSource is a Source whose generation the test advances by hand.
type bumpSource struct {
	gen uint64
}

func (s *bumpSource) Generation() uint64 { return s.gen }

func TestBoundViewPanicsWhenStale(t *testing.T) {
	src := &bumpSource{}
	v := Bind([]byte("abc"), src)
	require.Equal(t, 3, v.Len())

	sub := v.Slice(0, 2)
	src.gen++

	require.Panics(t, func() { v.Len() })
	require.Panics(t, func() { _ = sub.String() }, "derived views inherit the binding")
	require.Panics(t, func() { Equal(v, OfString("abc")) })
	require.Panics(t, func() { v.Chop('b') })
	require.Panics(t, func() { v.Trim() })
}

func TestUnboundViewsNeverStale(t *testing.T) {
	v := OfString("stable")
	require.Equal(t, 6, v.Len())
	require.Equal(t, "stable", v.Trim().String())
}
