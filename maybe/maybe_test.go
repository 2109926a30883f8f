package maybe_test

import (
	"testing"

	. "github.com/npillmayer/styled/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7)
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Just(7) to match Just, didn't")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}
	if !x.IsJust() || y.IsJust() {
		t.Error("expected IsJust to discriminate Just from Nothing, doesn't")
	}
}

func TestMaybeMatchUncomparablePayload(t *testing.T) {
	// Matching must not depend on the payload type being comparable: the
	// switch compares matchers, never payload values.
	type record struct {
		items []int
	}
	var r record
	switch m := Just(record{items: []int{1, 2}}).Match(); m {
	case m.Just(&r):
		t.Logf("Just(%v)", r)
	case m.Nothing():
		t.Error("expected a slice-carrying value to match Just, didn't")
	}
	if len(r.items) != 2 {
		t.Errorf("expected extracted record with 2 items, has %d", len(r.items))
	}
	switch m := Nothing[record]().Match(); m {
	case m.Just(&r):
		t.Error("expected Nothing not to match Just, did")
	case m.Nothing():
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if Just(7).WithDefault(100) != 7 {
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	x := Just(7).Map(double)
	if x.WithDefault(0) != 14 {
		t.Errorf("expected Just(7).Map(double) to be 14, is %d", x.WithDefault(0))
	}
	y := Nothing[int]().Map(double)
	if y.IsJust() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
	s := Map(func(n int) int { return n + 1 }, Just(41))
	if s.WithDefault(0) != 42 {
		t.Errorf("expected Map(inc, Just 41) to be 42, is %d", s.WithDefault(0))
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, Nothing[int]()).IsJust() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}
