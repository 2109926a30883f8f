package layout

import (
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// FlowNode is a vertical container: children are laid out top to bottom,
// each against the space left over by its predecessors. Child frames that
// land in the same region are merged into a single output frame; a child
// that spills into backlog regions carries the flow along with it. The flow
// inserts no spacing of its own; composite nodes control spacing through
// their own layouts.
type FlowNode struct {
	Children []model.Content
}

var flowInfo = &model.NodeInfo{
	Name:     "flow",
	Docs:     "A vertical flow of content blocks.",
	Category: "layout",
	Construct: func(ctx *model.Context, args *model.Args) (model.Content, error) {
		children, err := model.All(args, model.ContentCaster())
		if err != nil {
			return model.Content{}, err
		}
		if err := args.Finish(); err != nil {
			return model.Content{}, err
		}
		return model.Pack(&FlowNode{Children: children}), nil
	},
}

// Flow packs children into a flow node.
func Flow(children ...model.Content) model.Content {
	return model.Pack(&FlowNode{Children: children})
}

func (f *FlowNode) Info() *model.NodeInfo {
	return flowInfo
}

func (f *FlowNode) Equals(other model.Node) bool {
	o, ok := other.(*FlowNode)
	if !ok || len(f.Children) != len(o.Children) {
		return false
	}
	for i, c := range f.Children {
		if !c.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Layout stacks the children, re-offering leftover region space to each
// next child and following children into the backlog.
func (f *FlowNode) Layout(ctx *model.Context, styles style.Chain, regions Regions) (Fragment, error) {
	var frames []*Frame
	region := regions
	cur := NewFrame(geom.Size{})
	var y, w dimen.DU
	for _, child := range f.Children {
		sub := Regions{
			Size:    geom.Size{W: region.Size.W, H: region.Size.H - y},
			Expand:  geom.Axes[bool]{X: region.Expand.X},
			Backlog: region.Backlog,
		}
		frag, err := Of(ctx, child, styles, sub)
		if err != nil {
			return Fragment{}, err
		}
		for i, fr := range frag.Frames() {
			if i > 0 {
				// the child finished our region and moved on
				frames = append(frames, finishFrame(cur, geom.Size{W: w, H: y}, region))
				next, ok := region.Next()
				if !ok {
					return Fragment{}, &OverflowError{Span: model.Detached}
				}
				region = next
				cur, y, w = NewFrame(geom.Size{}), 0, 0
			}
			cur.PushFrame(geom.Point{Y: y}, fr)
			y += fr.Height()
			if fr.Width() > w {
				w = fr.Width()
			}
		}
	}
	frames = append(frames, finishFrame(cur, geom.Size{W: w, H: y}, region))
	return FragmentOf(frames...), nil
}

// finishFrame sizes a frame for its region: used extent per axis, blown up
// to the region's extent where the regions demand expansion.
func finishFrame(f *Frame, used geom.Size, r Regions) *Frame {
	size := used
	if r.Expand.X {
		size.W = r.Size.W
	}
	if r.Expand.Y {
		size.H = r.Size.H
	}
	f.Resize(size)
	return f
}

func init() {
	model.RegisterNode(flowInfo)
}
