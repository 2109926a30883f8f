package layout

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/xlab/treeprint"
)

// A Frame is a finished rectangle of laid-out content: a size plus a list
// of positioned items. Items are either text runs or nested frames;
// positions are relative to the frame's top left corner.
type Frame struct {
	size  geom.Size
	items []FrameItem
}

// FrameItem is one positioned element of a frame. Exactly one of Run and
// Sub is set.
type FrameItem struct {
	At  geom.Point
	Run *TextRun
	Sub *Frame
}

// TextRun is a single line of text, placed at its baseline-less top left
// corner. Width is the advance width under the world's metrics.
type TextRun struct {
	Text     string
	FontSize dimen.DU
	Width    dimen.DU
}

// NewFrame creates an empty frame of the given size.
func NewFrame(size geom.Size) *Frame {
	return &Frame{size: size}
}

// Size of the frame.
func (f *Frame) Size() geom.Size {
	return f.size
}

// Width of the frame.
func (f *Frame) Width() dimen.DU {
	return f.size.W
}

// Height of the frame.
func (f *Frame) Height() dimen.DU {
	return f.size.H
}

// Resize sets the frame's size without touching its items.
func (f *Frame) Resize(size geom.Size) {
	f.size = size
}

// Items returns the positioned items of the frame.
func (f *Frame) Items() []FrameItem {
	return f.items
}

// PushRun places a text run at position at.
func (f *Frame) PushRun(at geom.Point, run TextRun) {
	f.items = append(f.items, FrameItem{At: at, Run: &run})
}

// PushFrame places a nested frame at position at.
func (f *Frame) PushFrame(at geom.Point, sub *Frame) {
	f.items = append(f.items, FrameItem{At: at, Sub: sub})
}

// String produces a tree-shaped dump of the frame, intended for tracing
// and test output.
func (f *Frame) String() string {
	tp := treeprint.New()
	tp.SetValue(fmt.Sprintf("frame %v", f.size))
	frameBranches(tp, f)
	return tp.String()
}

func frameBranches(tp treeprint.Tree, f *Frame) {
	for _, item := range f.items {
		switch {
		case item.Run != nil:
			tp.AddNode(fmt.Sprintf("%v text %q", item.At, item.Run.Text))
		case item.Sub != nil:
			branch := tp.AddBranch(fmt.Sprintf("%v frame %v", item.At, item.Sub.size))
			frameBranches(branch, item.Sub)
		}
	}
}

// A Fragment is the result of laying out one node: one frame per region
// the node consumed.
type Fragment struct {
	frames []*Frame
}

// FragmentOf wraps frames into a fragment.
func FragmentOf(frames ...*Frame) Fragment {
	return Fragment{frames: frames}
}

// Frames returns the frames of the fragment, one per consumed region.
func (f Fragment) Frames() []*Frame {
	return f.frames
}

// Len returns the number of frames, i.e., of consumed regions.
func (f Fragment) Len() int {
	return len(f.frames)
}

// First returns the fragment's first frame. Layouts never produce empty
// fragments, but a zero Fragment yields an empty frame rather than a panic.
func (f Fragment) First() *Frame {
	if len(f.frames) == 0 {
		return NewFrame(geom.Size{})
	}
	return f.frames[0]
}

func (f Fragment) String() string {
	var b strings.Builder
	for i, frame := range f.frames {
		fmt.Fprintf(&b, "[%d] %s", i, frame.String())
	}
	return b.String()
}
