package layout_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/layout"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/style"
	"github.com/npillmayer/tyse/core/dimen"
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

// tight returns a style chain with zero leading, to keep the arithmetic in
// the tests plain: n lines measure n times the line height.
func tight() style.Chain {
	m := style.NewMap().Set(layout.Leading.Key(), geom.Zero())
	return style.Chain{}.Push(m)
}

// ---------------------------------------------------------------------------

func TestLayoutEmptyContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	frag, err := layout.Of(ctx(), model.Empty(), tight(), layout.Finite(geom.Size{W: 100 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	if frag.Len() != 1 {
		t.Fatalf("expected a single frame for empty content, have %d", frag.Len())
	}
	if frag.First().Width() != 0 || frag.First().Height() != 0 {
		t.Errorf("expected a zero-sized frame, is %v", frag.First().Size())
	}
}

func TestTextWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	// At the default 10pt size a rune is 5pt wide: "aa bb" measures exactly
	// 25pt and "cc" starts a second line.
	frag, err := layout.Of(ctx(), model.Text("aa bb cc"), tight(),
		layout.Finite(geom.Size{W: 25 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	frame := frag.First()
	t.Logf("frame =\n%s", frame)
	if len(frame.Items()) != 2 {
		t.Fatalf("expected 2 lines, have %d", len(frame.Items()))
	}
	if frame.Items()[0].Run.Text != "aa bb" || frame.Items()[1].Run.Text != "cc" {
		t.Errorf("expected lines 'aa bb' and 'cc', aren't")
	}
	want := geom.Size{W: 25 * dimen.PT, H: 20 * dimen.PT}
	if frame.Size() != want {
		t.Errorf("expected frame size %v, is %v", want, frame.Size())
	}
}

func TestTextExpandsToRegionWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	regions := layout.Regions{
		Size:   geom.Size{W: 80 * dimen.PT, H: 100 * dimen.PT},
		Expand: geom.Axes[bool]{X: true},
	}
	frag, err := layout.Of(ctx(), model.Text("aa"), tight(), regions)
	if err != nil {
		t.Fatal(err)
	}
	if frag.First().Width() != 80*dimen.PT {
		t.Errorf("expected the frame to fill the region width, is %v", frag.First().Width())
	}
}

func TestTextPaginates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	page := geom.Size{W: 25 * dimen.PT, H: 15 * dimen.PT}
	regions := layout.Regions{Size: page, Backlog: []geom.Size{page}}
	frag, err := layout.Of(ctx(), model.Text("aa bb cc dd"), tight(), regions)
	if err != nil {
		t.Fatal(err)
	}
	if frag.Len() != 2 {
		t.Fatalf("expected text to spill onto 2 pages, is on %d", frag.Len())
	}
	for i, frame := range frag.Frames() {
		if len(frame.Items()) != 1 {
			t.Errorf("expected 1 line on page %d, have %d", i, len(frame.Items()))
		}
	}
}

func TestTextOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	span := model.Span{Start: 3, End: 14}
	content := model.Text("aa bb cc dd").WithSpan(span)
	_, err := layout.Of(ctx(), content, tight(),
		layout.Finite(geom.Size{W: 25 * dimen.PT, H: 15 * dimen.PT}))
	var overflow *layout.OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected an overflow error, got %v", err)
	}
	if overflow.Span != span {
		t.Errorf("expected the overflow to carry the content's span, is %v", overflow.Span)
	}
}

func TestMeasureNaturalSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	size, err := layout.Measure(ctx(), model.Text("aa bb"), tight())
	if err != nil {
		t.Fatal(err)
	}
	want := geom.Size{W: 25 * dimen.PT, H: 10 * dimen.PT}
	if size != want {
		t.Errorf("expected natural size %v, is %v", want, size)
	}
}

func TestFlowMergesSameRegionFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	flow := layout.Flow(model.Text("aa"), model.Text("bb"))
	frag, err := layout.Of(ctx(), flow, tight(),
		layout.Finite(geom.Size{W: 100 * dimen.PT, H: 100 * dimen.PT}))
	if err != nil {
		t.Fatal(err)
	}
	if frag.Len() != 1 {
		t.Fatalf("expected both children in one frame, have %d frames", frag.Len())
	}
	frame := frag.First()
	t.Logf("frame =\n%s", frame)
	if len(frame.Items()) != 2 {
		t.Fatalf("expected 2 stacked children, have %d", len(frame.Items()))
	}
	if frame.Items()[1].At.Y != 10*dimen.PT {
		t.Errorf("expected the second child below the first, at %v", frame.Items()[1].At)
	}
	if frame.Height() != 20*dimen.PT {
		t.Errorf("expected flow height 20pt, is %v", frame.Height())
	}
}

func TestFlowFollowsChildIntoBacklog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	page := geom.Size{W: 25 * dimen.PT, H: 15 * dimen.PT}
	regions := layout.Regions{Size: page, Backlog: []geom.Size{page}}
	flow := layout.Flow(model.Text("aa"), model.Text("bb cc"))
	frag, err := layout.Of(ctx(), flow, tight(), regions)
	if err != nil {
		t.Fatal(err)
	}
	if frag.Len() != 2 {
		t.Fatalf("expected the flow to continue on page 2, have %d frames", frag.Len())
	}
	second := frag.Frames()[1]
	if len(second.Items()) != 1 {
		t.Fatalf("expected 1 child frame on page 2, have %d", len(second.Items()))
	}
	if second.Items()[0].At.Y != 0 {
		t.Errorf("expected page 2 to start at the top, is %v", second.Items()[0].At)
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	page := geom.Size{W: 25 * dimen.PT, H: 15 * dimen.PT}
	flow := layout.Flow(model.Text("aa bb cc"), model.Text("dd"))
	regions := layout.Regions{Size: page, Backlog: []geom.Size{page, page}}
	first, err := layout.Of(ctx(), flow, tight(), regions)
	if err != nil {
		t.Fatal(err)
	}
	second, err := layout.Of(ctx(), flow, tight(), regions)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical inputs to produce identical fragments, didn't")
	}
}

// opaqueNode has no layout capability.
type opaqueNode struct{}

var opaqueInfo = &model.NodeInfo{Name: "opaque"}

func (opaqueNode) Info() *model.NodeInfo { return opaqueInfo }

func (opaqueNode) Equals(o model.Node) bool {
	_, ok := o.(opaqueNode)
	return ok
}

func TestLayoutRequiresCapability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styled.layout")
	defer teardown()
	//
	_, err := layout.Of(ctx(), model.Pack(opaqueNode{}), tight(),
		layout.Finite(geom.Size{W: 100 * dimen.PT, H: 100 * dimen.PT}))
	if err == nil {
		t.Error("expected layout of a non-layoutable node to fail, didn't")
	}
}
