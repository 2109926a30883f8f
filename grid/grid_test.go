package grid_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/grid"
	"github.com/npillmayer/styled/layout"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// testWorld provides flat monospaced metrics: every rune is half the font
// size wide, every line is as tall as the font size.
type testWorld struct{}

func (testWorld) Library() *model.Registry {
	return model.Library()
}

func (testWorld) TextWidth(s string, size dimen.DU) dimen.DU {
	return dimen.DU(len([]rune(s))) * size / 2
}

func (testWorld) LineHeight(size dimen.DU) dimen.DU {
	return size
}

func ctx() *model.Context {
	return model.NewContext(testWorld{})
}

func tight() style.Chain {
	m := style.NewMap().Set(layout.Leading.Key(), geom.Zero())
	return style.Chain{}.Push(m)
}

func noTracks() geom.Axes[[]grid.TrackSizing] {
	return geom.Axes[[]grid.TrackSizing]{}
}

// ---------------------------------------------------------------------------

func TestTrackSizingMatch(t *testing.T) {
	var l geom.Length
	var p percent.Percent
	switch m := grid.Fixed(10 * dimen.PT).Match(); m {
	case m.Fixed(&l):
		t.Logf("Fixed(%s)", l.String())
	case m.Relative(&p):
		t.Error("expected fixed track not to match Relative, did")
	}
	if l.At(0) != 10*dimen.PT {
		t.Errorf("expected extracted length 10pt, is %s", l.String())
	}
	if grid.Auto().Match().Auto() == nil {
		t.Error("expected auto track to match Auto, didn't")
	}
}

func TestTrackSizingFromLength(t *testing.T) {
	var p percent.Percent
	rel := grid.FromLength(geom.Percentage(percent.FromInt(50)))
	if rel.Match().Relative(&p) == nil || int(p) != 50 {
		t.Errorf("expected a percentage length to become a 50%% track, is %s", rel.String())
	}
	if rel.String() != "50%" {
		t.Errorf("expected relative track to print as 50%%, is %s", rel.String())
	}
	if grid.FromLength(geom.Auto()).Match().Auto() == nil {
		t.Error("expected the auto length to become an auto track, didn't")
	}
	var l geom.Length
	if grid.FromLength(geom.Em(2)).Match().Fixed(&l) == nil || l.At(10*dimen.PT) != 20*dimen.PT {
		t.Error("expected a 2em length to become a font-relative fixed track, didn't")
	}
}

func TestColumnSizing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	// Columns [fixed 20pt, auto, fixed 10pt, auto]. At the default 10pt text
	// size the auto columns size to their widest cell: "3." → 10pt and
	// "aa bb" → 25pt.
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{
			grid.Fixed(20 * dimen.PT), grid.Auto(), grid.Fixed(10 * dimen.PT), grid.Auto(),
		}},
		noTracks(),
		model.Empty(), model.Text("3."), model.Empty(), model.Text("aa bb"),
	)
	frag, err := layout.Of(ctx(), model.Pack(g), tight(),
		layout.Finite(geom.Size{W: 200 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	t.Logf("frame =\n%s", frame)
	if len(frame.Items()) != 4 {
		t.Fatalf("expected 4 cells, have %d", len(frame.Items()))
	}
	xs := []dimen.DU{0, 20 * dimen.PT, 30 * dimen.PT, 40 * dimen.PT}
	for i, item := range frame.Items() {
		if item.At.X != xs[i] {
			t.Errorf("expected cell %d at x=%s, is at %s", i, xs[i].String(), item.At.X.String())
		}
	}
	if frame.Width() != 65*dimen.PT {
		t.Errorf("expected grid width 65pt, is %s", frame.Width().String())
	}
}

func TestRelativeColumnResolvesAgainstRegion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	// A 50% column takes half the region width even without expanding
	// regions; the auto column next to it starts at the half-way mark.
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{
			grid.Relative(percent.FromInt(50)), grid.Auto(),
		}},
		noTracks(),
		model.Text("aa"), model.Text("bb"),
	)
	frag, err := layout.Of(ctx(), model.Pack(g), tight(),
		layout.Finite(geom.Size{W: 100 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	if got := frame.Items()[1].At.X; got != 50*dimen.PT {
		t.Errorf("expected the auto column to start at 50pt, is at %s", got.String())
	}
	if frame.Width() != 60*dimen.PT {
		t.Errorf("expected grid width 60pt, is %s", frame.Width().String())
	}
}

func TestFontRelativeColumnUsesTextSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	// A 2em column resolves against the 20pt text size set on the chain.
	styles := tight().Push(style.NewMap().Set(layout.TextSize.Key(), 20*dimen.PT))
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{
			grid.Sized(geom.Em(2)), grid.Auto(),
		}},
		noTracks(),
		model.Empty(), model.Text("bb"),
	)
	frag, err := layout.Of(ctx(), model.Pack(g), styles,
		layout.Finite(geom.Size{W: 200 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	if got := frame.Items()[1].At.X; got != 40*dimen.PT {
		t.Errorf("expected the second column at 40pt, is at %s", got.String())
	}
}

func TestExpandingRegionsGrowRelativeColumns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	// Columns [fixed 20pt, 25%, auto] in a 100pt expanding region: the
	// relative column resolves to 25pt, the auto column to its cell's 10pt,
	// and the 45pt remainder goes to the relative column.
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{
			grid.Fixed(20 * dimen.PT), grid.Relative(percent.FromInt(25)), grid.Auto(),
		}},
		noTracks(),
		model.Text("aa"), model.Text("bb"), model.Text("cc"),
	)
	regions := layout.Regions{
		Size:   geom.Size{W: 100 * dimen.PT, H: 100 * dimen.PT},
		Expand: geom.Axes[bool]{X: true},
	}
	frag, err := layout.Of(ctx(), model.Pack(g), tight(), regions)
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	if frame.Width() != 100*dimen.PT {
		t.Errorf("expected the grid to fill the region width, is %s", frame.Width().String())
	}
	if got := frame.Items()[1].At.X; got != 20*dimen.PT {
		t.Errorf("expected the relative column at 20pt, is at %s", got.String())
	}
	if got := frame.Items()[2].At.X; got != 90*dimen.PT {
		t.Errorf("expected the auto column pushed out to 90pt, is at %s", got.String())
	}
}

func TestRowGutter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{grid.Auto()}},
		geom.Axes[[]grid.TrackSizing]{Y: []grid.TrackSizing{grid.Fixed(5 * dimen.PT)}},
		model.Text("aa"), model.Text("bb"),
	)
	frag, err := layout.Of(ctx(), model.Pack(g), tight(),
		layout.Finite(geom.Size{W: 100 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	if got := frame.Items()[1].At.Y; got != 15*dimen.PT {
		t.Errorf("expected the second row below the gutter at 15pt, is at %s", got.String())
	}
	if frame.Height() != 25*dimen.PT {
		t.Errorf("expected grid height 25pt, is %s", frame.Height().String())
	}
}

func TestRowsPaginate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	page := geom.Size{W: 100 * dimen.PT, H: 25 * dimen.PT}
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{grid.Auto()}},
		noTracks(),
		model.Text("aa"), model.Text("bb"), model.Text("cc"),
	)
	regions := layout.Regions{Size: page, Backlog: []geom.Size{page}}
	frag, err := layout.Of(ctx(), model.Pack(g), tight(), regions)
	if err != nil {
		t.Fatal(err)
	}
	if frag.Len() != 2 {
		t.Fatalf("expected rows to spill onto 2 pages, are on %d", frag.Len())
	}
	if n := len(frag.Frames()[0].Items()); n != 2 {
		t.Errorf("expected 2 rows on page 1, have %d", n)
	}
	if n := len(frag.Frames()[1].Items()); n != 1 {
		t.Errorf("expected 1 row on page 2, have %d", n)
	}
}

func TestCellsDoNotOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{X: []grid.TrackSizing{grid.Auto(), grid.Auto()}},
		noTracks(),
		model.Text("aa"), model.Text("bb bb"),
		model.Text("cc cc"), model.Text("dd"),
	)
	frag, err := layout.Of(ctx(), model.Pack(g), tight(),
		layout.Finite(geom.Size{W: 200 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	items := frame.Items()
	if len(items) != 4 {
		t.Fatalf("expected 4 cells, have %d", len(items))
	}
	// second row starts below the tallest cell of the first row
	if items[2].At.Y < items[0].At.Y+items[0].Sub.Height() {
		t.Error("expected rows not to overlap, do")
	}
	// second column starts right of the first column's width
	if items[1].At.X < items[0].Sub.Width() {
		t.Error("expected columns not to overlap, do")
	}
}

func TestFixedRowHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.grid")
	defer teardown()
	//
	g := grid.New(
		geom.Axes[[]grid.TrackSizing]{
			X: []grid.TrackSizing{grid.Auto()},
			Y: []grid.TrackSizing{grid.Fixed(30 * dimen.PT)},
		},
		noTracks(),
		model.Text("aa"), model.Text("bb"),
	)
	frag, err := layout.Of(ctx(), model.Pack(g), tight(),
		layout.Finite(geom.Size{W: 100 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	if got := frame.Items()[1].At.Y; got != 30*dimen.PT {
		t.Errorf("expected the second row at the fixed 30pt offset, is at %s", got.String())
	}
}
