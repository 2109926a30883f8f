package grid

import (
	"github.com/npillmayer/styled/geom"
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	trackAuto     uint32 = 0x0001
	trackFixed    uint32 = 0x0002
	trackRelative uint32 = 0x0004
)

// TrackSizing is an option type for the sizing of one grid track (a column
// or a row).
type TrackSizing struct {
	l     geom.Length
	p     percent.Percent
	flags uint32
}

/*
type TrackSizing
	= Auto
	| Fixed length
	| Relative percent
*/

// Auto is a track sized by the largest natural size of its cells.
func Auto() TrackSizing {
	return TrackSizing{flags: trackAuto}
}

// Fixed is a track of invariable absolute size.
func Fixed(d dimen.DU) TrackSizing {
	return TrackSizing{l: geom.Abs(d), flags: trackFixed}
}

// Sized is a track of invariable size, given as an absolute or
// font-relative length.
func Sized(l geom.Length) TrackSizing {
	return TrackSizing{l: l, flags: trackFixed}
}

// Relative is a track sized as a fraction of the container along the
// track's axis. When the container expands along that axis, leftover space
// goes to the relative tracks as well, weighted by their percentages.
func Relative(p percent.Percent) TrackSizing {
	return TrackSizing{p: p, flags: trackRelative}
}

// FromLength maps a length onto the matching track variant: the auto
// sentinel stays auto, percentages become relative tracks, absolute and
// font-relative lengths become fixed tracks.
func FromLength(l geom.Length) TrackSizing {
	if l.IsAuto() {
		return Auto()
	}
	var p percent.Percent
	if m := l.Match(); m.Percentage(&p) != nil {
		return Relative(p)
	}
	return Sized(l)
}

func (ts TrackSizing) String() string {
	switch {
	case ts.flags&trackFixed > 0:
		return ts.l.String()
	case ts.flags&trackRelative > 0:
		return ts.p.String()
	}
	return "auto"
}

// ---------------------------------------------------------------------------

func (ts TrackSizing) Match() *Matcher {
	return &Matcher{ts: ts}
}

// Matcher is a pointer-extraction pattern matcher for track sizings.
type Matcher struct {
	ts TrackSizing
}

func (m *Matcher) Auto() *Matcher {
	if m.ts.flags&trackAuto > 0 {
		return m
	}
	return nil
}

func (m *Matcher) Fixed(l *geom.Length) *Matcher {
	if m.ts.flags&trackFixed > 0 {
		if l != nil {
			*l = m.ts.l
		}
		return m
	}
	return nil
}

func (m *Matcher) Relative(p *percent.Percent) *Matcher {
	if m.ts.flags&trackRelative > 0 {
		if p != nil {
			*p = m.ts.p
		}
		return m
	}
	return nil
}

// --- Casting ---------------------------------------------------------------

// TrackCaster accepts one track sizing: the auto sentinel or a length,
// where percentages map onto relative tracks and every other length onto a
// fixed track.
func TrackCaster() model.Caster[TrackSizing] {
	info := model.UnionInfo(
		model.TypeInfo("auto", "a track sized by its content"),
		model.TypeInfo("length", "a fixed or container-relative track"),
	)
	return model.Caster[TrackSizing]{
		Info: info,
		From: func(v model.Spanned[model.Value]) (TrackSizing, error) {
			var l geom.Length
			switch m := v.V.Match(); m {
			case m.Auto():
				return Auto(), nil
			case m.Length(&l):
				return FromLength(l), nil
			}
			return TrackSizing{}, model.FailedCast(info, v)
		},
	}
}

// TracksCaster accepts a whole track list: a single track sizing, an
// integer n as a shorthand for n auto tracks, or an array of track sizings.
func TracksCaster() model.Caster[[]TrackSizing] {
	single := TrackCaster()
	info := model.UnionInfo(
		model.TypeInfo("integer", "a number of auto tracks"),
		single.Info,
		model.TypeInfo("array", "a list of track sizings"),
	)
	return model.Caster[[]TrackSizing]{
		Info: info,
		From: func(v model.Spanned[model.Value]) ([]TrackSizing, error) {
			var n int64
			var items []model.Value
			switch m := v.V.Match(); m {
			case m.Int(&n):
				if n < 0 {
					return nil, model.FailedCast(info, v)
				}
				tracks := make([]TrackSizing, n)
				for i := range tracks {
					tracks[i] = Auto()
				}
				return tracks, nil
			case m.Array(&items):
				tracks := make([]TrackSizing, len(items))
				for i, item := range items {
					ts, err := single.Cast(model.At(item, v.Span))
					if err != nil {
						return nil, err
					}
					tracks[i] = ts
				}
				return tracks, nil
			}
			ts, err := single.Cast(v)
			if err != nil {
				return nil, model.FailedCast(info, v)
			}
			return []TrackSizing{ts}, nil
		},
	}
}
