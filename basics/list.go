package basics

import (
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/grid"
	"github.com/npillmayer/styled/layout"
	"github.com/npillmayer/styled/maybe"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
)

// ListNode is an unordered list of items. Every item carries the same
// marker, taken from the marker style property.
type ListNode struct {
	Tight bool
	Items []model.Content
}

// Style properties of unordered lists.
var (
	// Marker is the text of the item marker.
	Marker = style.NewProp("list", "marker", "•").ByReference()

	// ListIndent is the indentation of each item.
	ListIndent = style.NewProp("list", "indent", geom.Zero()).Resolving(resolveLength)

	// ListBodyIndent is the space between the marker and the item's body.
	ListBodyIndent = style.NewProp("list", "body-indent", geom.Em(0.5)).Resolving(resolveLength)

	// ListSpacing is the space between the items of a wide (non-tight)
	// list; auto falls back to the block spacing.
	ListSpacing = style.NewProp("list", "spacing", model.SmartAuto[geom.Length]())
)

var listInfo = &model.NodeInfo{
	Name:       "list",
	Docs:       "An unordered list of items with a uniform marker.",
	Category:   "basics",
	FieldNames: []string{"tight", "items"},
	Props: []model.PropInfo{
		model.PropDecl(Marker, model.StrCaster(), "The marker text."),
		model.PropDecl(ListIndent, model.LengthCaster(), "The indentation of each item."),
		model.PropDecl(ListBodyIndent, model.LengthCaster(), "The space between marker and body."),
		model.PropDecl(ListSpacing, model.AutoOr(model.LengthCaster()), "The spacing between the items."),
	},
	Construct: func(ctx *model.Context, args *model.Args) (model.Content, error) {
		tight, err := model.Named(args, "tight", model.BoolCaster())
		if err != nil {
			return model.Content{}, err
		}
		items, err := model.All(args, model.ContentCaster())
		if err != nil {
			return model.Content{}, err
		}
		if err := args.Finish(); err != nil {
			return model.Content{}, err
		}
		return model.Pack(&ListNode{Tight: tight.WithDefault(true), Items: items}), nil
	},
}

func (l *ListNode) Info() *model.NodeInfo {
	return listInfo
}

func (l *ListNode) Equals(other model.Node) bool {
	o, ok := other.(*ListNode)
	if !ok || l.Tight != o.Tight || len(l.Items) != len(o.Items) {
		return false
	}
	for i, item := range l.Items {
		if !item.Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

func (l *ListNode) Field(name string) maybe.Maybe[model.Value] {
	switch name {
	case "tight":
		return maybe.Just(model.Bool(l.Tight))
	case "items":
		items := make([]model.Value, len(l.Items))
		for i, item := range l.Items {
			items[i] = model.ContentValue(item)
		}
		return maybe.Just(model.Array(items...))
	}
	return maybe.Nothing[model.Value]()
}

// Layout lowers the list onto the same four-column grid as enumerations.
// The marker is resolved per item, so a scoped override affects exactly
// the items inside its scope.
func (l *ListNode) Layout(ctx *model.Context, styles style.Chain, regions layout.Regions) (layout.Fragment, error) {
	indent := style.Get(styles, ListIndent).At(0)
	bodyIndent := style.Get(styles, ListBodyIndent).At(0)
	tracer().Debugf("list with %d items, tight=%v", len(l.Items), l.Tight)

	cells := make([]model.Content, 0, 4*len(l.Items))
	for _, item := range l.Items {
		itemStyles := styles
		itemMap := item.Styles()
		if itemMap.Len() > 0 {
			itemStyles = styles.Push(itemMap)
		}
		// The item's style map scopes the marker too, not only the body.
		marker := model.Text(style.Get(itemStyles, Marker)).StyledWithMap(itemMap)
		cells = append(cells, model.Empty(), marker, model.Empty(), item)
	}
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{
			grid.Fixed(indent), grid.Auto(), grid.Fixed(bodyIndent), grid.Auto(),
		}},
		geom.Axes[[]grid.TrackSizing]{Y: []grid.TrackSizing{grid.Fixed(itemGap(l.Tight, ListSpacing, styles))}},
		cells...,
	)
	return g.Layout(ctx, styles, regions)
}

func init() {
	model.RegisterNode(listInfo)
}
