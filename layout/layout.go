package layout

import (
	"fmt"

	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
)

// Layouter is the capability of node types that can lay themselves out.
// Layout must be a pure function of its inputs (plus the immutable world
// behind ctx): same content, same styles, same regions → same fragment.
type Layouter interface {
	Layout(ctx *model.Context, styles style.Chain, regions Regions) (Fragment, error)
}

// OverflowError reports content that did not fit the given regions even
// after the backlog was exhausted.
type OverflowError struct {
	Span model.Span
}

func (e *OverflowError) Error() string {
	return "content does not fit the available regions"
}

// Of lays out a piece of content against a style chain and regions. Styles
// attached to the content are pushed onto the chain before the node's
// Layout runs, so they are visible to the node and its descendants but not
// to its siblings. Empty content yields a single zero-sized frame.
func Of(ctx *model.Context, c model.Content, styles style.Chain, regions Regions) (Fragment, error) {
	if c.IsEmpty() {
		return FragmentOf(NewFrame(geom.Size{})), nil
	}
	if m := c.Styles(); m.Len() > 0 {
		styles = styles.Push(m)
	}
	l, ok := c.Node().(Layouter)
	if !ok {
		return Fragment{}, fmt.Errorf("node type %q cannot be laid out", c.NodeName())
	}
	tracer().Debugf("layout of %s node", c.NodeName())
	frag, err := l.Layout(ctx, styles, regions)
	if err != nil {
		var overflow *OverflowError
		if asOverflow(err, &overflow) && overflow.Span.IsDetached() {
			overflow.Span = c.Span()
		}
		return Fragment{}, err
	}
	return frag, nil
}

func asOverflow(err error, target **OverflowError) bool {
	if o, ok := err.(*OverflowError); ok {
		*target = o
		return true
	}
	return false
}

// Measure lays out content against a single pseudo-infinite region and
// returns the natural size of the resulting frame. Containers use it to
// probe the space requirements of children before committing to track or
// region sizes.
func Measure(ctx *model.Context, c model.Content, styles style.Chain) (geom.Size, error) {
	frag, err := Of(ctx, c, styles, Unbounded())
	if err != nil {
		return geom.Size{}, err
	}
	return frag.First().Size(), nil
}
