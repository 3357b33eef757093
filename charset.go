package msdfatlas

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// asciiTable covers the printable ASCII range.
var asciiTable = &unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: 0x20, Hi: 0x7e, Stride: 1}},
	LatinOffset: 1,
}

// latin1Table covers printable ASCII plus the Latin-1 supplement.
var latin1Table = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x20, Hi: 0x7e, Stride: 1},
		{Lo: 0xa0, Hi: 0xff, Stride: 1},
	},
	LatinOffset: 2,
}

// CharsetASCII returns the printable ASCII range (U+0020 to U+007E).
func CharsetASCII() *unicode.RangeTable {
	return asciiTable
}

// CharsetLatin1 returns printable ASCII plus the Latin-1 supplement
// (U+00A0 to U+00FF).
func CharsetLatin1() *unicode.RangeTable {
	return latin1Table
}

// CharsetRunes builds a charset from an explicit list of runes.
func CharsetRunes(runes ...rune) *unicode.RangeTable {
	return rangetable.New(runes...)
}

// CharsetString builds a charset from the distinct runes of s.
func CharsetString(s string) *unicode.RangeTable {
	return rangetable.New([]rune(s)...)
}

// MergeCharsets combines several charsets into one.
func MergeCharsets(tables ...*unicode.RangeTable) *unicode.RangeTable {
	return rangetable.Merge(tables...)
}

// visitCharset calls fn for every rune in the charset, in ascending
// order.
func visitCharset(table *unicode.RangeTable, fn func(rune)) {
	rangetable.Visit(table, fn)
}
