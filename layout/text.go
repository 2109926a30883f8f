package layout

import (
	"strings"

	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/maybe"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// TextNode is a leaf of plain text. Layout breaks it into lines with a
// greedy first-fit word wrap over the world's metrics and stacks the lines
// by the leading in effect. Lines spill into backlog regions when a region
// fills up.
type TextNode struct {
	Text string
}

var textInfo = &model.NodeInfo{
	Name:       "text",
	Docs:       "A leaf of plain text.",
	Category:   "layout",
	FieldNames: []string{"text"},
	Props: []model.PropInfo{
		model.PropDecl(TextSize, fontSizeCaster(), "The font size."),
		model.PropDecl(Leading, model.LengthCaster(), "The distance between lines of a paragraph."),
	},
	Construct: func(ctx *model.Context, args *model.Args) (model.Content, error) {
		text, err := model.Expect(args, "text", model.StrCaster())
		if err != nil {
			return model.Content{}, err
		}
		if err := args.Finish(); err != nil {
			return model.Content{}, err
		}
		return model.Pack(&TextNode{Text: text}), nil
	},
}

// fontSizeCaster accepts a length and reduces it to an absolute dimension.
func fontSizeCaster() model.Caster[dimen.DU] {
	lc := model.LengthCaster()
	return model.Caster[dimen.DU]{
		Info: lc.Info,
		From: func(v model.Spanned[model.Value]) (dimen.DU, error) {
			l, err := lc.Cast(v)
			if err != nil {
				return 0, err
			}
			return l.At(0), nil
		},
	}
}

func (t *TextNode) Info() *model.NodeInfo {
	return textInfo
}

func (t *TextNode) Equals(other model.Node) bool {
	o, ok := other.(*TextNode)
	return ok && t.Text == o.Text
}

func (t *TextNode) Field(name string) maybe.Maybe[model.Value] {
	if name == "text" {
		return maybe.Just(model.Str(t.Text))
	}
	return maybe.Nothing[model.Value]()
}

// Layout breaks the text into lines and distributes them over the regions.
func (t *TextNode) Layout(ctx *model.Context, styles style.Chain, regions Regions) (Fragment, error) {
	size := style.Get(styles, TextSize)
	leading := ResolveLength(style.Get(styles, Leading), styles)
	world := ctx.World()
	lineHeight := world.LineHeight(size)
	words := strings.Fields(t.Text)

	var frames []*Frame
	region := regions
	cur := NewFrame(geom.Size{})
	var y, w dimen.DU
	for i := 0; i < len(words); {
		needed := lineHeight
		if y > 0 {
			needed += leading
		}
		// A line that does not fit moves to the next region. In the final
		// region a line taller than the region is placed anyway rather than
		// lost, but lines beyond it overflow.
		if y+needed > region.Size.H && (y > 0 || len(region.Backlog) > 0) {
			frames = append(frames, finishFrame(cur, geom.Size{W: w, H: y}, region))
			next, ok := region.Next()
			if !ok {
				return Fragment{}, &OverflowError{Span: model.Detached}
			}
			region = next
			cur, y, w = NewFrame(geom.Size{}), 0, 0
			continue
		}
		if y > 0 {
			y += leading
		}
		text, width, n := wrapLine(world, words[i:], size, region.Size.W)
		cur.PushRun(geom.Point{Y: y}, TextRun{Text: text, FontSize: size, Width: width})
		i += n
		y += lineHeight
		if width > w {
			w = width
		}
	}
	frames = append(frames, finishFrame(cur, geom.Size{W: w, H: y}, region))
	return FragmentOf(frames...), nil
}

// wrapLine greedily fills one line up to maxW and returns the line's text,
// its width and the number of words consumed. At least one word is always
// consumed, even if it exceeds maxW on its own.
func wrapLine(world model.World, words []string, size dimen.DU, maxW dimen.DU) (string, dimen.DU, int) {
	space := world.TextWidth(" ", size)
	width := world.TextWidth(words[0], size)
	n := 1
	for n < len(words) {
		next := world.TextWidth(words[n], size)
		if width+space+next > maxW {
			break
		}
		width += space + next
		n++
	}
	return strings.Join(words[:n], " "), width, n
}

func init() {
	model.RegisterNode(textInfo)
	model.RegisterTextMaker(func(s string) model.Content {
		return model.Pack(&TextNode{Text: s})
	})
}
