package geom

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// Axes is a generic pair of values, one per layout axis.
type Axes[T any] struct {
	X, Y T
}

// XY creates an axes pair from per-axis values.
func XY[T any](x, y T) Axes[T] {
	return Axes[T]{X: x, Y: y}
}

// Splat creates an axes pair with the same value on both axes.
func Splat[T any](v T) Axes[T] {
	return Axes[T]{X: v, Y: v}
}

// WithX creates an axes pair with a value on the horizontal axis only.
func WithX[T any](x T) Axes[T] {
	return Axes[T]{X: x}
}

// WithY creates an axes pair with a value on the vertical axis only.
func WithY[T any](y T) Axes[T] {
	return Axes[T]{Y: y}
}

// Point is a position in layout space.
type Point struct {
	X, Y dimen.DU
}

func (p Point) Shift(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Size is an extent in layout space.
type Size struct {
	W, H dimen.DU
}

// Fits is a predicate wether s fits into the space of other on both axes.
func (s Size) Fits(other Size) bool {
	return s.W <= other.W && s.H <= other.H
}

func (s Size) String() string {
	return fmt.Sprintf("%v×%v", s.W, s.H)
}

// Infty is a pseudo-infinite length used for unconstrained measuring.
const Infty dimen.DU = 1 << 30
