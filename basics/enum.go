package basics

import (
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/grid"
	"github.com/npillmayer/styled/layout"
	"github.com/npillmayer/styled/maybe"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/numbering"
	"github.com/npillmayer/styled/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// EnumItem is one item of an enumeration. An explicit number rebases the
// running counter: the following item continues from it.
type EnumItem struct {
	Number maybe.Maybe[int]
	Body   model.Content
}

// EnumNode is an ordered list of items. In tight enumerations the items are
// separated by the paragraph leading, otherwise by the enumeration spacing.
type EnumNode struct {
	Tight bool
	Items []EnumItem
}

// Style properties of enumerations.
var (
	// Numbering is how items are numbered: a pattern or a function.
	Numbering = style.NewProp("enum", "numbering",
		PatternNumbering(numbering.MustParse("1."))).ByReference()

	// Indent is the indentation of each item.
	Indent = style.NewProp("enum", "indent", geom.Zero()).Resolving(resolveLength)

	// BodyIndent is the space between the marker and the item's body.
	BodyIndent = style.NewProp("enum", "body-indent", geom.Em(0.5)).Resolving(resolveLength)

	// Spacing is the space between the items of a wide (non-tight)
	// enumeration; auto falls back to the block spacing.
	Spacing = style.NewProp("enum", "spacing", model.SmartAuto[geom.Length]())
)

func resolveLength(raw geom.Length, styles style.Chain) geom.Length {
	return geom.Abs(layout.ResolveLength(raw, styles))
}

var enumInfo = &model.NodeInfo{
	Name:       "enum",
	Docs:       "An ordered list of items with numbered markers.",
	Category:   "basics",
	FieldNames: []string{"tight", "items"},
	Props: []model.PropInfo{
		model.PropDecl(Numbering, NumberingCaster(), "How items are numbered."),
		model.PropDecl(Indent, model.LengthCaster(), "The indentation of each item."),
		model.PropDecl(BodyIndent, model.LengthCaster(), "The space between marker and body."),
		model.PropDecl(Spacing, model.AutoOr(model.LengthCaster()), "The spacing between the items."),
	},
	Construct: constructEnum,
}

// constructEnum builds an enumeration from arguments: the optional start
// number, the tight flag and the item bodies. Running numbers are assigned
// here, so the items of the constructed node all carry explicit numbers.
func constructEnum(ctx *model.Context, args *model.Args) (model.Content, error) {
	tight, err := model.Named(args, "tight", model.BoolCaster())
	if err != nil {
		return model.Content{}, err
	}
	start, err := model.Named(args, "start", model.PosIntCaster())
	if err != nil {
		return model.Content{}, err
	}
	items, err := model.All(args, enumItemCaster())
	if err != nil {
		return model.Content{}, err
	}
	if err := args.Finish(); err != nil {
		return model.Content{}, err
	}
	number := start.WithDefault(1)
	for i := range items {
		var explicit int
		if m := items[i].Number.Match(); m.Just(&explicit) != nil {
			number = explicit
		}
		items[i].Number = maybe.Just(number)
		number++
	}
	return model.Pack(&EnumNode{Tight: tight.WithDefault(true), Items: items}), nil
}

// enumItemCaster accepts item content; an enum.item node keeps its explicit
// number, any other content becomes an unnumbered item.
func enumItemCaster() model.Caster[EnumItem] {
	cc := model.ContentCaster()
	return model.Caster[EnumItem]{
		Info: cc.Info,
		From: func(v model.Spanned[model.Value]) (EnumItem, error) {
			c, err := cc.Cast(v)
			if err != nil {
				return EnumItem{}, err
			}
			if item, ok := c.Node().(*EnumItemNode); ok {
				return EnumItem{Number: item.Number, Body: item.Body}, nil
			}
			return EnumItem{Number: maybe.Nothing[int](), Body: c}, nil
		},
	}
}

func (e *EnumNode) Info() *model.NodeInfo {
	return enumInfo
}

func (e *EnumNode) Equals(other model.Node) bool {
	o, ok := other.(*EnumNode)
	if !ok || e.Tight != o.Tight || len(e.Items) != len(o.Items) {
		return false
	}
	for i, item := range e.Items {
		if item.Number != o.Items[i].Number || !item.Body.Equal(o.Items[i].Body) {
			return false
		}
	}
	return true
}

func (e *EnumNode) Field(name string) maybe.Maybe[model.Value] {
	switch name {
	case "tight":
		return maybe.Just(model.Bool(e.Tight))
	case "items":
		items := make([]model.Value, len(e.Items))
		for i, item := range e.Items {
			number := model.None()
			var n int
			if m := item.Number.Match(); m.Just(&n) != nil {
				number = model.Int(int64(n))
			}
			items[i] = model.Dict(
				model.KV{K: "number", V: number},
				model.KV{K: "body", V: model.ContentValue(item.Body)},
			)
		}
		return maybe.Just(model.Array(items...))
	}
	return maybe.Nothing[model.Value]()
}

// Layout numbers the items and lowers the enumeration onto a four-column
// grid of indent, marker, body indent and body, one row per item. The
// numbering in effect is resolved per item, so a scoped override affects
// exactly the items inside its scope.
func (e *EnumNode) Layout(ctx *model.Context, styles style.Chain, regions layout.Regions) (layout.Fragment, error) {
	indent := style.Get(styles, Indent).At(0)
	bodyIndent := style.Get(styles, BodyIndent).At(0)
	tracer().Debugf("enum with %d items, tight=%v", len(e.Items), e.Tight)

	number := 1
	cells := make([]model.Content, 0, 4*len(e.Items))
	for _, item := range e.Items {
		var explicit int
		if m := item.Number.Match(); m.Just(&explicit) != nil {
			number = explicit
		}
		itemStyles := styles
		itemMap := item.Body.Styles()
		if itemMap.Len() > 0 {
			itemStyles = styles.Push(itemMap)
		}
		marker, err := style.Get(itemStyles, Numbering).Apply(ctx, number)
		if err != nil {
			return layout.Fragment{}, err
		}
		// The item's style map scopes the marker too, not only the body.
		marker = marker.StyledWithMap(itemMap)
		cells = append(cells, model.Empty(), marker, model.Empty(), item.Body)
		number++
	}
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{
			grid.Fixed(indent), grid.Auto(), grid.Fixed(bodyIndent), grid.Auto(),
		}},
		geom.Axes[[]grid.TrackSizing]{Y: []grid.TrackSizing{grid.Fixed(itemGap(e.Tight, Spacing, styles))}},
		cells...,
	)
	return g.Layout(ctx, styles, regions)
}

// itemGap is the vertical distance between items: the paragraph leading
// for tight lists, the list's spacing otherwise, with auto spacing falling
// back to the block spacing.
func itemGap(tight bool, spacing style.Prop[model.Smart[geom.Length]], styles style.Chain) dimen.DU {
	if tight {
		return style.Get(styles, layout.Leading).At(0)
	}
	sm := style.Get(styles, spacing)
	if sm.IsAuto() {
		return style.Get(styles, layout.BlockBelow).At(0)
	}
	return layout.ResolveLength(sm.UnwrapOr(geom.Zero()), styles)
}

// --- Item shorthand --------------------------------------------------------

// EnumItemNode is the parser-facing shorthand for a single enumeration
// item, carrying an optional explicit number. Enumerations absorb these
// nodes during construction.
type EnumItemNode struct {
	Number maybe.Maybe[int]
	Body   model.Content
}

var enumItemInfo = &model.NodeInfo{
	Name:       "enum.item",
	Docs:       "An item of an enumeration.",
	Category:   "basics",
	FieldNames: []string{"number", "body"},
	Construct: func(ctx *model.Context, args *model.Args) (model.Content, error) {
		number, err := model.Named(args, "number", model.PosIntCaster())
		if err != nil {
			return model.Content{}, err
		}
		body, err := model.Expect(args, "body", model.ContentCaster())
		if err != nil {
			return model.Content{}, err
		}
		if err := args.Finish(); err != nil {
			return model.Content{}, err
		}
		return model.Pack(&EnumItemNode{Number: number, Body: body}), nil
	},
}

func (it *EnumItemNode) Info() *model.NodeInfo {
	return enumItemInfo
}

func (it *EnumItemNode) Equals(other model.Node) bool {
	o, ok := other.(*EnumItemNode)
	return ok && it.Number == o.Number && it.Body.Equal(o.Body)
}

func (it *EnumItemNode) Field(name string) maybe.Maybe[model.Value] {
	switch name {
	case "number":
		var n int
		if m := it.Number.Match(); m.Just(&n) != nil {
			return maybe.Just(model.Int(int64(n)))
		}
		return maybe.Just(model.None())
	case "body":
		return maybe.Just(model.ContentValue(it.Body))
	}
	return maybe.Nothing[model.Value]()
}

func init() {
	model.RegisterNode(enumInfo)
	model.RegisterNode(enumItemInfo)
}
