package layout

import (
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/tyse/core/dimen"
)

// Regions describes the layout space available to a node: the size of the
// current region, per-axis expand flags, and a backlog of sizes for
// subsequent regions (pages or columns). Regions is a value type; nodes
// receive their own copy and consume it locally.
type Regions struct {
	// Size of the current region.
	Size geom.Size
	// Expand tells, per axis, wether the node must fill the region (true)
	// or shrink to fit its content (false).
	Expand geom.Axes[bool]
	// Backlog holds the sizes of the regions following the current one.
	Backlog []geom.Size
}

// Finite creates a single bounded region with no backlog.
func Finite(size geom.Size) Regions {
	return Regions{Size: size}
}

// Unbounded creates a single pseudo-infinite region, used for measuring
// natural sizes.
func Unbounded() Regions {
	return Regions{Size: geom.Size{W: geom.Infty, H: geom.Infty}}
}

// Next consumes the first backlog entry and makes it the current region.
// ok is false if the backlog is exhausted.
func (r Regions) Next() (next Regions, ok bool) {
	if len(r.Backlog) == 0 {
		return r, false
	}
	next = r
	next.Size = r.Backlog[0]
	next.Backlog = r.Backlog[1:]
	return next, true
}

// WithHeight returns the regions with the current region's height reduced
// to h, leaving the backlog untouched. Containers use this to re-offer the
// remaining space of a partially filled region to the next child.
func (r Regions) WithHeight(h dimen.DU) Regions {
	r.Size.H = h
	return r
}
