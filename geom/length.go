package geom

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	lengthNone uint32 = 0

	lengthAbsolute uint32 = 0x0001
	lengthAuto     uint32 = 0x0002
	kindMask       uint32 = 0x000f

	lengthEM      uint32 = 0x0100
	lengthPercent uint32 = 0x0200
	relativeMask  uint32 = 0xff00
)

// Length is an option type for layout lengths.
type Length struct {
	d       dimen.DU
	em      float64
	percent Percent
	flags   uint32
}

/*
type Length
	= Auto
	| Abs dimen
	| Em scale
	| Percentage Percent
*/

// Auto is a length to be determined by context.
func Auto() Length {
	return Length{flags: lengthAuto}
}

// Abs creates a length with a fixed value of x.
func Abs(x dimen.DU) Length {
	return Length{d: x, flags: lengthAbsolute}
}

// Em creates a length relative to the current font size.
func Em(scale float64) Length {
	return Length{em: scale, flags: lengthEM}
}

// Percentage creates a length with a %-relative value.
func Percentage(n Percent) Length {
	return Length{percent: n, flags: lengthPercent}
}

// Zero is the absolute length of 0.
func Zero() Length {
	return Length{flags: lengthAbsolute}
}

// IsAuto is a predicate wether a length is the auto sentinel.
func (l Length) IsAuto() bool {
	return l.flags&lengthAuto > 0
}

// At resolves a length against a font size: absolute lengths are returned
// as stored, em lengths are scaled by fontsize. Auto and percentage lengths
// have no intrinsic value and resolve to 0; callers gate those variants
// through the matcher.
func (l Length) At(fontsize dimen.DU) dimen.DU {
	switch {
	case l.flags&lengthAbsolute > 0:
		return l.d
	case l.flags&lengthEM > 0:
		return dimen.DU(l.em * float64(fontsize))
	}
	return 0
}

func (l Length) String() string {
	switch {
	case l.flags&lengthAuto > 0:
		return "auto"
	case l.flags&lengthEM > 0:
		return fmt.Sprintf("%gem", l.em)
	case l.flags&lengthPercent > 0:
		return fmt.Sprintf("%v", l.percent)
	}
	return l.d.String()
}

// ---------------------------------------------------------------------------

func (l Length) Match() *Matcher {
	return &Matcher{length: l}
}

// Matcher is a pointer-extraction pattern matcher for lengths.
type Matcher struct {
	length Length
}

func (m *Matcher) IsKind(l Length) *Matcher {
	switch {
	case (m.length.flags & kindMask) == (l.flags & kindMask):
		return m
	case (m.length.flags&relativeMask > 0) && (l.flags&relativeMask > 0):
		if (m.length.flags & relativeMask) != (l.flags & relativeMask) {
			return nil
		}
		return m
	}
	return nil
}

func (m *Matcher) Abs(du *dimen.DU) *Matcher {
	if m.length.flags&lengthAbsolute > 0 {
		if du != nil {
			*du = m.length.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Em(scale *float64) *Matcher {
	if m.length.flags&lengthEM > 0 {
		if scale != nil {
			*scale = m.length.em
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.length.flags&lengthPercent > 0 {
		if p != nil {
			*p = m.length.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// LengthPatterns is a pattern table for expression-level matching on lengths.
type LengthPatterns[T any] struct {
	Auto       T
	Abs        T
	Em         T
	Percentage T
	Default    T
}

// LengthPattern matches a length against a pattern table:
//
//     m := geom.LengthPattern[dimen.DU](l)
//     du := m.OneOf(geom.LengthPatterns[dimen.DU]{
//         Abs:     m.With(&d).Const(d),
//         Auto:    0,
//         Default: 0,
//     })
//
func LengthPattern[T any](l Length) *MatchExpr[T] {
	return &MatchExpr[T]{length: l}
}

type MatchExpr[T any] struct {
	length Length
}

func (m *MatchExpr[T]) OneOf(patterns LengthPatterns[T]) T {
	switch {
	case m.length.flags&lengthAuto > 0:
		return patterns.Auto
	case m.length.flags&lengthAbsolute > 0:
		return patterns.Abs
	case m.length.flags&lengthEM > 0:
		return patterns.Em
	case m.length.flags&lengthPercent > 0:
		return patterns.Percentage
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.length.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
