package msdfatlas

import (
	"testing"
	"unicode"
)

func TestCharsetASCII(t *testing.T) {
	cs := CharsetASCII()

	if !unicode.Is(cs, 'A') {
		t.Error("ASCII charset missing 'A'")
	}
	if !unicode.Is(cs, ' ') {
		t.Error("ASCII charset missing space")
	}
	if unicode.Is(cs, 'é') {
		t.Error("ASCII charset contains 'é'")
	}
	if unicode.Is(cs, 0x1f) {
		t.Error("ASCII charset contains a control character")
	}

	count := 0
	visitCharset(cs, func(rune) { count++ })
	if count != 95 {
		t.Errorf("ASCII charset has %d runes, want 95", count)
	}
}

func TestCharsetLatin1(t *testing.T) {
	cs := CharsetLatin1()

	if !unicode.Is(cs, 'A') {
		t.Error("Latin-1 charset missing 'A'")
	}
	if !unicode.Is(cs, 'é') {
		t.Error("Latin-1 charset missing 'é'")
	}
	if unicode.Is(cs, 0x7f) {
		t.Error("Latin-1 charset contains DEL")
	}

	count := 0
	visitCharset(cs, func(rune) { count++ })
	if count != 95+96 {
		t.Errorf("Latin-1 charset has %d runes, want %d", count, 95+96)
	}
}

func TestCharsetRunes(t *testing.T) {
	cs := CharsetRunes('A', 'Z', '0')

	for _, r := range []rune{'A', 'Z', '0'} {
		if !unicode.Is(cs, r) {
			t.Errorf("charset missing %q", r)
		}
	}
	if unicode.Is(cs, 'B') {
		t.Error("charset contains 'B'")
	}
}

func TestCharsetString(t *testing.T) {
	cs := CharsetString("Hello")

	got := []rune{}
	visitCharset(cs, func(r rune) { got = append(got, r) })

	// Distinct runes in ascending order.
	want := []rune{'H', 'e', 'l', 'o'}
	if len(got) != len(want) {
		t.Fatalf("runes = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("runes = %q, want %q", got, want)
			break
		}
	}
}

func TestMergeCharsets(t *testing.T) {
	merged := MergeCharsets(CharsetRunes('A'), CharsetRunes('B'), CharsetASCII())

	count := 0
	visitCharset(merged, func(rune) { count++ })
	if count != 95 {
		t.Errorf("merged charset has %d runes, want 95 (A, B already in ASCII)", count)
	}

	disjoint := MergeCharsets(CharsetRunes('A'), CharsetRunes('ß'))
	count = 0
	visitCharset(disjoint, func(rune) { count++ })
	if count != 2 {
		t.Errorf("disjoint merge has %d runes, want 2", count)
	}
}
