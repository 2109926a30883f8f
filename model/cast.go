package model

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styled/geom"
)

// CastInfo describes the accepted shape of a value for a parameter, a
// property or a return: anything, a concrete type, a specific literal value
// with attached documentation, or a union of sub-descriptions. It drives
// both validation/conversion of actual values and the rendering of
// human-readable type documentation.
type CastInfo struct {
	kind  infoKind
	name  string // type name
	docs  string
	val   Value // literal
	union []CastInfo
}

type infoKind uint8

const (
	infoAny infoKind = iota
	infoType
	infoVal
	infoUnion
)

// AnyInfo accepts any value.
func AnyInfo() CastInfo {
	return CastInfo{kind: infoAny}
}

// TypeInfo accepts values of a concrete type, named by kind.
func TypeInfo(name string, docs string) CastInfo {
	return CastInfo{kind: infoType, name: name, docs: docs}
}

// ValInfo accepts one specific literal value.
func ValInfo(v Value, docs string) CastInfo {
	return CastInfo{kind: infoVal, val: v, docs: docs}
}

// UnionInfo accepts any of the given sub-descriptions. The order of
// variants is significant: casting tries them in declared order, and
// documentation lists them in the same order.
func UnionInfo(variants ...CastInfo) CastInfo {
	return CastInfo{kind: infoUnion, union: variants}
}

// Variants returns the flattened list of alternatives, in declared order.
func (ci CastInfo) Variants() []CastInfo {
	if ci.kind == infoUnion {
		return ci.union
	}
	return []CastInfo{ci}
}

// Docs returns the documentation attached to a type or literal description.
func (ci CastInfo) Docs() string {
	return ci.docs
}

// Matches is a predicate wether a value fits this description. For unions
// the variants are tried in declared order.
func (ci CastInfo) Matches(v Value) bool {
	switch ci.kind {
	case infoAny:
		return true
	case infoType:
		return v.Kind().String() == ci.name
	case infoVal:
		return ci.val.Equal(v)
	case infoUnion:
		for _, variant := range ci.union {
			if variant.Matches(v) {
				return true
			}
		}
	}
	return false
}

// Describe renders the description for error messages and documentation,
// e.g. "string or function".
func (ci CastInfo) Describe() string {
	switch ci.kind {
	case infoAny:
		return "anything"
	case infoType:
		return ci.name
	case infoVal:
		return ci.val.Repr()
	case infoUnion:
		parts := make([]string, len(ci.union))
		for i, variant := range ci.union {
			parts[i] = variant.Describe()
		}
		if len(parts) == 0 {
			return "nothing"
		}
		if len(parts) == 1 {
			return parts[0]
		}
		return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
	}
	return "unknown"
}

// --- Cast errors -----------------------------------------------------------

// CastError reports that a value did not match an expected CastInfo. It is
// recoverable and carries enough information to reconstruct "expected"
// vs. "got", together with the originating span.
type CastError struct {
	Expected string
	Found    string
	Span     Span
}

func (e *CastError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// FailedCast builds the error for a value rejected by a description.
func FailedCast(info CastInfo, v Spanned[Value]) error {
	return &CastError{
		Expected: info.Describe(),
		Found:    v.V.Kind().String(),
		Span:     v.Span,
	}
}

// --- Casters ---------------------------------------------------------------

// Caster converts runtime values to a concrete Go shape. Info doubles as
// the documentation of the accepted values.
type Caster[T any] struct {
	Info CastInfo
	From func(Spanned[Value]) (T, error)
}

// Cast attempts the conversion. Failure is a local, recoverable CastError.
func (c Caster[T]) Cast(v Spanned[Value]) (T, error) {
	return c.From(v)
}

// OneOf combines casters into a union. Variants are tried in declared
// order; the first successful conversion wins, matching the documentation
// order of the combined CastInfo.
func OneOf[T any](variants ...Caster[T]) Caster[T] {
	infos := make([]CastInfo, len(variants))
	for i, v := range variants {
		infos[i] = v.Info
	}
	info := UnionInfo(infos...)
	return Caster[T]{
		Info: info,
		From: func(v Spanned[Value]) (T, error) {
			for _, variant := range variants {
				if t, err := variant.From(v); err == nil {
					return t, nil
				}
			}
			var none T
			return none, FailedCast(info, v)
		},
	}
}

// BoolCaster accepts a boolean.
func BoolCaster() Caster[bool] {
	info := TypeInfo("boolean", "")
	return Caster[bool]{
		Info: info,
		From: func(v Spanned[Value]) (bool, error) {
			var b bool
			if m := v.V.Match(); m.Bool(&b) != nil {
				return b, nil
			}
			return false, FailedCast(info, v)
		},
	}
}

// IntCaster accepts an integer.
func IntCaster() Caster[int64] {
	info := TypeInfo("integer", "")
	return Caster[int64]{
		Info: info,
		From: func(v Spanned[Value]) (int64, error) {
			var i int64
			if m := v.V.Match(); m.Int(&i) != nil {
				return i, nil
			}
			return 0, FailedCast(info, v)
		},
	}
}

// PosIntCaster accepts a positive integer.
func PosIntCaster() Caster[int] {
	info := TypeInfo("integer", "a positive integer")
	return Caster[int]{
		Info: info,
		From: func(v Spanned[Value]) (int, error) {
			var i int64
			if m := v.V.Match(); m.Int(&i) == nil || i < 1 {
				return 0, FailedCast(info, v)
			}
			return int(i), nil
		},
	}
}

// StrCaster accepts a string.
func StrCaster() Caster[string] {
	info := TypeInfo("string", "")
	return Caster[string]{
		Info: info,
		From: func(v Spanned[Value]) (string, error) {
			var s string
			if m := v.V.Match(); m.Str(&s) != nil {
				return s, nil
			}
			return "", FailedCast(info, v)
		},
	}
}

// LengthCaster accepts a length.
func LengthCaster() Caster[geom.Length] {
	info := TypeInfo("length", "")
	return Caster[geom.Length]{
		Info: info,
		From: func(v Spanned[Value]) (geom.Length, error) {
			var l geom.Length
			if m := v.V.Match(); m.Length(&l) != nil {
				return l, nil
			}
			return geom.Length{}, FailedCast(info, v)
		},
	}
}

// ContentCaster accepts content, coercing plain strings to text content.
func ContentCaster() Caster[Content] {
	info := TypeInfo("content", "")
	return Caster[Content]{
		Info: info,
		From: func(v Spanned[Value]) (Content, error) {
			var c Content
			var s string
			switch m := v.V.Match(); m {
			case m.Content(&c):
				return c.WithSpan(v.Span), nil
			case m.Str(&s):
				return Text(s).WithSpan(v.Span), nil
			}
			return Content{}, FailedCast(info, v)
		},
	}
}

// FuncCaster accepts a function value.
func FuncCaster() Caster[Func] {
	info := TypeInfo("function", "")
	return Caster[Func]{
		Info: info,
		From: func(v Spanned[Value]) (Func, error) {
			var f Func
			if m := v.V.Match(); m.Func(&f) != nil {
				return f, nil
			}
			return Func{}, FailedCast(info, v)
		},
	}
}

// AutoOr wraps a caster to additionally accept the auto sentinel, yielding
// a smart value.
func AutoOr[T any](c Caster[T]) Caster[Smart[T]] {
	info := UnionInfo(TypeInfo("auto", ""), c.Info)
	return Caster[Smart[T]]{
		Info: info,
		From: func(v Spanned[Value]) (Smart[T], error) {
			if m := v.V.Match(); m.Auto() != nil {
				return SmartAuto[T](), nil
			}
			t, err := c.From(v)
			if err != nil {
				return SmartAuto[T](), FailedCast(info, v)
			}
			return Custom(t), nil
		},
	}
}
