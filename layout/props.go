package layout

import (
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// Style properties shared by the basic layout nodes. Font-relative lengths
// resolve against the text size in effect at the styled node's position.
var (
	// TextSize is the font size used for text runs and for resolving
	// em-based lengths.
	TextSize = style.NewProp("text", "size", 10*dimen.PT)

	// Leading is the vertical distance between consecutive lines of a
	// paragraph.
	Leading = style.NewProp("par", "leading", geom.Em(0.65)).Resolving(resolveLength)

	// BlockBelow is the default spacing after a block-level element.
	BlockBelow = style.NewProp("block", "below", geom.Em(1.2)).Resolving(resolveLength)
)

// resolveLength turns a font-relative length into an absolute one, using
// the text size found at the position of the chain where the raw length
// was set.
func resolveLength(raw geom.Length, styles style.Chain) geom.Length {
	return geom.Abs(raw.At(style.Get(styles, TextSize)))
}

// ResolveLength resolves an arbitrary length value against the chain's
// text size. Absolute lengths pass through unchanged.
func ResolveLength(l geom.Length, styles style.Chain) dimen.DU {
	return l.At(style.Get(styles, TextSize))
}
