/*
Package numbering renders counter values as text, driven by compact
pattern strings.

A pattern consists of counting symbols with optional prefixes, plus a
trailing suffix, e.g. "1." or "(a)" or "I.1". Counting symbols are

    1   arabic numerals
    a/A bijective base-26 letters
    i/I roman numerals
    *   a cycle of footnote symbols

Applying a pattern to a list of counter values renders one symbol per
value: the i-th value uses piece i modulo the piece count, so the pieces
are cyclically reapplied when counters outnumber them. The suffix is
appended once at the end.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Kind is a counting symbol.
type Kind rune

const (
	Arabic Kind = '1'
	Alpha  Kind = 'a'
	Roman  Kind = 'i'
	Symbol Kind = '*'
)

// Pattern is a parsed numbering pattern. The zero pattern renders nothing;
// use Parse to obtain a valid one.
type Pattern struct {
	pieces []piece
	suffix string
}

type piece struct {
	prefix string
	kind   Kind
	upper  bool
}

// ParseError reports a pattern string without any counting symbol.
type ParseError struct {
	Pattern string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid numbering pattern %q", e.Pattern)
}

// Parse parses a pattern string. At least one counting symbol must be
// present, otherwise the pattern would render counters invisibly.
func Parse(pattern string) (Pattern, error) {
	var p Pattern
	var prefix strings.Builder
	for _, r := range pattern {
		kind, ok := kindOf(unicode.ToLower(r))
		if !ok {
			prefix.WriteRune(r)
			continue
		}
		p.pieces = append(p.pieces, piece{
			prefix: prefix.String(),
			kind:   kind,
			upper:  unicode.IsUpper(r),
		})
		prefix.Reset()
	}
	if len(p.pieces) == 0 {
		return Pattern{}, &ParseError{Pattern: pattern}
	}
	p.suffix = prefix.String()
	return p, nil
}

// MustParse parses a pattern known to be valid at compile time and panics
// otherwise.
func MustParse(pattern string) Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func kindOf(r rune) (Kind, bool) {
	switch Kind(r) {
	case Arabic, Alpha, Roman, Symbol:
		return Kind(r), true
	}
	return 0, false
}

// Apply renders counter values: one piece per value, with the pieces
// cycling for deeper levels, then the suffix.
func (p Pattern) Apply(numbers ...int) string {
	var b strings.Builder
	for i, n := range numbers {
		pc := p.pieces[i%len(p.pieces)]
		b.WriteString(pc.prefix)
		b.WriteString(pc.kind.Apply(n, pc.upper))
	}
	b.WriteString(p.suffix)
	return b.String()
}

// String reconstructs the pattern string.
func (p Pattern) String() string {
	var b strings.Builder
	for _, pc := range p.pieces {
		b.WriteString(pc.prefix)
		r := rune(pc.kind)
		if pc.upper {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	b.WriteString(p.suffix)
	return b.String()
}

// Apply renders a single counter value in this counting system.
func (k Kind) Apply(n int, upper bool) string {
	switch k {
	case Arabic:
		return strconv.Itoa(n)
	case Alpha:
		return alpha(n, upper)
	case Roman:
		return roman(n, upper)
	case Symbol:
		return symbol(n)
	}
	return ""
}

// alpha renders n in bijective base 26: 1 → a, 26 → z, 27 → aa.
func alpha(n int, upper bool) string {
	if n < 1 {
		return ""
	}
	letters := "abcdefghijklmnopqrstuvwxyz"
	if upper {
		letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	}
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{letters[n%26]}, out...)
		n /= 26
	}
	return string(out)
}

var romanDigits = []struct {
	value int
	text  string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// roman renders n as a roman numeral. Following convention, zero renders
// as "n" (nulla); negative values have no roman representation and render
// as arabic digits.
func roman(n int, upper bool) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	if n == 0 {
		b.WriteString("n")
	}
	for _, d := range romanDigits {
		for n >= d.value {
			b.WriteString(d.text)
			n -= d.value
		}
	}
	if upper {
		return strings.ToUpper(b.String())
	}
	return b.String()
}

var symbols = []string{"*", "†", "‡", "§", "¶", "‖"}

// symbol renders n in the footnote symbol cycle, with repetition beyond
// the sixth symbol: 7 → **.
func symbol(n int) string {
	if n < 1 {
		return "-"
	}
	s := symbols[(n-1)%len(symbols)]
	return strings.Repeat(s, (n-1)/len(symbols)+1)
}
