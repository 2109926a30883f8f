package grid

import (
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/layout"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Node is a grid of cells, arranged in row-major order over column and row
// tracks. Missing row tracks default to auto; a grid without column tracks
// has a single auto column.
type Node struct {
	Tracks geom.Axes[[]TrackSizing]
	Gutter geom.Axes[[]TrackSizing]
	Cells  []model.Content
}

var gridInfo = &model.NodeInfo{
	Name:     "grid",
	Docs:     "A grid of cells over sized tracks.",
	Category: "layout",
	Construct: func(ctx *model.Context, args *model.Args) (model.Content, error) {
		columns, err := model.Named(args, "columns", TracksCaster())
		if err != nil {
			return model.Content{}, err
		}
		rows, err := model.Named(args, "rows", TracksCaster())
		if err != nil {
			return model.Content{}, err
		}
		gutter, err := model.Named(args, "gutter", TracksCaster())
		if err != nil {
			return model.Content{}, err
		}
		cells, err := model.All(args, model.ContentCaster())
		if err != nil {
			return model.Content{}, err
		}
		if err := args.Finish(); err != nil {
			return model.Content{}, err
		}
		g := &Node{
			Tracks: geom.Axes[[]TrackSizing]{X: columns.WithDefault(nil), Y: rows.WithDefault(nil)},
			Gutter: geom.Axes[[]TrackSizing]{X: gutter.WithDefault(nil), Y: gutter.WithDefault(nil)},
			Cells:  cells,
		}
		return model.Pack(g), nil
	},
}

// New creates a grid node.
func New(tracks, gutter geom.Axes[[]TrackSizing], cells ...model.Content) *Node {
	return &Node{Tracks: tracks, Gutter: gutter, Cells: cells}
}

func (g *Node) Info() *model.NodeInfo {
	return gridInfo
}

func (g *Node) Equals(other model.Node) bool {
	o, ok := other.(*Node)
	if !ok || len(g.Cells) != len(o.Cells) {
		return false
	}
	for i, c := range g.Cells {
		if !c.Equal(o.Cells[i]) {
			return false
		}
	}
	return tracksEqual(g.Tracks.X, o.Tracks.X) && tracksEqual(g.Tracks.Y, o.Tracks.Y) &&
		tracksEqual(g.Gutter.X, o.Gutter.X) && tracksEqual(g.Gutter.Y, o.Gutter.Y)
}

func tracksEqual(a, b []TrackSizing) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Layout sizes the column tracks, then lays out the cells row by row. Rows
// are atomic: a row that no longer fits moves wholesale to the next region.
func (g *Node) Layout(ctx *model.Context, styles style.Chain, regions layout.Regions) (layout.Fragment, error) {
	cols := g.Tracks.X
	if len(cols) == 0 {
		cols = []TrackSizing{Auto()}
	}
	ncols := len(cols)
	nrows := (len(g.Cells) + ncols - 1) / ncols
	colGap := gutterValues(g.Gutter.X, ncols-1, styles, regions.Size.W)
	rowGap := gutterValues(g.Gutter.Y, nrows-1, styles, regions.Size.H)

	widths, err := g.columnWidths(ctx, styles, regions, cols, colGap)
	if err != nil {
		return layout.Fragment{}, err
	}
	gridW := sum(colGap)
	for _, w := range widths {
		gridW += w
	}
	if regions.Expand.X {
		gridW = regions.Size.W
	}
	tracer().Debugf("grid with %d×%d cells, width %s", ncols, nrows, gridW.String())

	var frames []*layout.Frame
	region := regions
	cur := layout.NewFrame(geom.Size{})
	var y dimen.DU
	for r := 0; r < nrows; {
		var gap dimen.DU
		if y > 0 && r > 0 {
			gap = rowGap[r-1]
		}
		rowFrames, h, err := g.layoutRow(ctx, styles, region, r, cols, widths)
		if err != nil {
			return layout.Fragment{}, err
		}
		if y > 0 && y+gap+h > region.Size.H {
			frames = append(frames, finishGridFrame(cur, gridW, y, region))
			next, ok := region.Next()
			if !ok {
				return layout.Fragment{}, &layout.OverflowError{Span: model.Detached}
			}
			region = next
			cur, y = layout.NewFrame(geom.Size{}), 0
			continue
		}
		y += gap
		var x dimen.DU
		for c, f := range rowFrames {
			if f == nil {
				break
			}
			cur.PushFrame(geom.Point{X: x, Y: y}, f)
			x += widths[c]
			if c < ncols-1 {
				x += colGap[c]
			}
		}
		y += h
		r++
	}
	frames = append(frames, finishGridFrame(cur, gridW, y, region))
	return layout.FragmentOf(frames...), nil
}

// columnWidths resolves the column tracks against the first region's width:
// fixed tracks against the chain's text size, relative tracks as a fraction
// of the region width, auto tracks by their widest cell capped at the space
// left over. When the regions expand horizontally, leftover space goes to
// the relative tracks, weighted by their percentages.
func (g *Node) columnWidths(ctx *model.Context, styles style.Chain, regions layout.Regions,
	cols []TrackSizing, colGap []dimen.DU) ([]dimen.DU, error) {
	//
	ncols := len(cols)
	avail := regions.Size.W
	used := sum(colGap)
	widths := make([]dimen.DU, ncols)
	var relsum dimen.DU
	for i, ts := range cols {
		var l geom.Length
		var p percent.Percent
		switch m := ts.Match(); m {
		case m.Fixed(&l):
			widths[i] = layout.ResolveLength(l, styles)
			used += widths[i]
		case m.Relative(&p):
			widths[i] = relativeTo(p, avail)
			used += widths[i]
			relsum += dimen.DU(p)
		}
	}
	for i, ts := range cols {
		if ts.Match().Auto() == nil {
			continue
		}
		var w dimen.DU
		for idx := i; idx < len(g.Cells); idx += ncols {
			size, err := layout.Measure(ctx, g.Cells[idx], styles)
			if err != nil {
				return nil, err
			}
			if size.W > w {
				w = size.W
			}
		}
		if rem := avail - used; w > rem {
			w = rem
			if w < 0 {
				w = 0
			}
		}
		widths[i] = w
		used += w
	}
	if relsum > 0 && regions.Expand.X {
		if rem := avail - used; rem > 0 {
			for i, ts := range cols {
				var p percent.Percent
				if m := ts.Match(); m.Relative(&p) != nil {
					widths[i] += rem * dimen.DU(p) / relsum
				}
			}
		}
	}
	return widths, nil
}

// relativeTo resolves a container-relative fraction against the container's
// extent along the track's axis.
func relativeTo(p percent.Percent, container dimen.DU) dimen.DU {
	return container * dimen.DU(p) / 100
}

// layoutRow lays out the cells of row r at the resolved column widths and
// returns one frame per cell plus the row's height.
func (g *Node) layoutRow(ctx *model.Context, styles style.Chain, region layout.Regions,
	r int, cols []TrackSizing, widths []dimen.DU) ([]*layout.Frame, dimen.DU, error) {
	//
	ncols := len(cols)
	track := Auto()
	if r < len(g.Tracks.Y) {
		track = g.Tracks.Y[r]
	}
	var sizedH dimen.DU
	isSized := false
	var l geom.Length
	var p percent.Percent
	switch m := track.Match(); m {
	case m.Fixed(&l):
		sizedH = layout.ResolveLength(l, styles)
		isSized = true
	case m.Relative(&p):
		sizedH = relativeTo(p, region.Size.H)
		isSized = true
	}
	cellH := region.Size.H
	if isSized {
		cellH = sizedH
	}
	frames := make([]*layout.Frame, ncols)
	var h dimen.DU
	for c := 0; c < ncols; c++ {
		idx := r*ncols + c
		if idx >= len(g.Cells) {
			break
		}
		cellRegions := layout.Regions{
			Size:   geom.Size{W: widths[c], H: cellH},
			Expand: geom.Axes[bool]{X: cols[c].Match().Auto() == nil, Y: isSized},
		}
		frag, err := layout.Of(ctx, g.Cells[idx], styles, cellRegions)
		if err != nil {
			return nil, 0, err
		}
		frames[c] = frag.First()
		if frames[c].Height() > h {
			h = frames[c].Height()
		}
	}
	if isSized {
		h = sizedH
	}
	return frames, h, nil
}

// gutterValues resolves n gutters by cycling the gutter tracks, fixed ones
// against the text size, relative ones against the container's extent along
// the gutter's axis. Auto gutters collapse.
func gutterValues(tracks []TrackSizing, n int, styles style.Chain, container dimen.DU) []dimen.DU {
	if n < 0 {
		n = 0
	}
	gaps := make([]dimen.DU, n)
	if len(tracks) == 0 {
		return gaps
	}
	for i := range gaps {
		var l geom.Length
		var p percent.Percent
		switch m := tracks[i%len(tracks)].Match(); m {
		case m.Fixed(&l):
			gaps[i] = layout.ResolveLength(l, styles)
		case m.Relative(&p):
			gaps[i] = relativeTo(p, container)
		}
	}
	return gaps
}

func finishGridFrame(f *layout.Frame, w, used dimen.DU, r layout.Regions) *layout.Frame {
	size := geom.Size{W: w, H: used}
	if r.Expand.Y {
		size.H = r.Size.H
	}
	f.Resize(size)
	return f
}

func sum(ds []dimen.DU) dimen.DU {
	var total dimen.DU
	for _, d := range ds {
		total += d
	}
	return total
}

func init() {
	model.RegisterNode(gridInfo)
}
