package basics

import (
	"github.com/npillmayer/styled/model"
	"github.com/npillmayer/styled/numbering"
)

// EnumNumbering is how enumeration items are numbered: either a numbering
// pattern or a function receiving the item's number and returning the
// marker. Values are immutable and shared by reference through the style
// chain.
type EnumNumbering struct {
	pattern numbering.Pattern
	fn      model.Func
	isFunc  bool
}

// PatternNumbering numbers items through a numbering pattern.
func PatternNumbering(p numbering.Pattern) EnumNumbering {
	return EnumNumbering{pattern: p}
}

// FuncNumbering numbers items through a callback.
func FuncNumbering(f model.Func) EnumNumbering {
	return EnumNumbering{fn: f, isFunc: true}
}

// Apply produces the marker content for item number n. Callback errors
// propagate unchanged.
func (en EnumNumbering) Apply(ctx *model.Context, n int) (model.Content, error) {
	if !en.isFunc {
		return model.Text(en.pattern.Apply(n)), nil
	}
	res, err := ctx.Call(en.fn, model.NewArgs(model.Detached, model.Int(int64(n))))
	if err != nil {
		return model.Content{}, err
	}
	return model.ContentCaster().Cast(model.At(res, model.Detached))
}

// NumberingCaster accepts a numbering pattern string or a function. The
// string variant is declared first; a value acceptable to both variants
// casts as a pattern.
func NumberingCaster() model.Caster[EnumNumbering] {
	pattern := model.Caster[EnumNumbering]{
		Info: model.TypeInfo("string", "a numbering pattern"),
		From: func(v model.Spanned[model.Value]) (EnumNumbering, error) {
			s, err := model.StrCaster().Cast(v)
			if err != nil {
				return EnumNumbering{}, err
			}
			p, err := numbering.Parse(s)
			if err != nil {
				return EnumNumbering{}, err
			}
			return PatternNumbering(p), nil
		},
	}
	callback := model.Caster[EnumNumbering]{
		Info: model.TypeInfo("function", "a function from the item number to its marker"),
		From: func(v model.Spanned[model.Value]) (EnumNumbering, error) {
			f, err := model.FuncCaster().Cast(v)
			if err != nil {
				return EnumNumbering{}, err
			}
			return FuncNumbering(f), nil
		},
	}
	return model.OneOf(pattern, callback)
}
