package model

import (
	"sort"

	"github.com/npillmayer/styled/geom"
)

// Kind enumerates the closed set of value variants.
type Kind uint8

const (
	KNone Kind = iota
	KAuto
	KBool
	KInt
	KFloat
	KStr
	KLength
	KArray
	KDict
	KContent
	KFunc
	KType
	KSymbol
	KModule
)

// String returns the kind's name as used in cast descriptions and error
// messages ("expected X, found Y").
func (k Kind) String() string {
	switch k {
	case KNone:
		return "none"
	case KAuto:
		return "auto"
	case KBool:
		return "boolean"
	case KInt:
		return "integer"
	case KFloat:
		return "float"
	case KStr:
		return "string"
	case KLength:
		return "length"
	case KArray:
		return "array"
	case KDict:
		return "dictionary"
	case KContent:
		return "content"
	case KFunc:
		return "function"
	case KType:
		return "type"
	case KSymbol:
		return "symbol"
	case KModule:
		return "module"
	}
	return "unknown"
}

// Value is a runtime value with a closed set of variants. Values are
// immutable; the zero value is none.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string // string, symbol or type/module name
	length  geom.Length
	arr     []Value
	dict    []KV // sorted by key
	content Content
	fn      Func
	scope   []KV // module scope, sorted by key
}

// KV is an entry of a dictionary or module scope.
type KV struct {
	K string
	V Value
}

/*
type Value
	= None | Auto
	| Bool b | Int i | Float x | Str s | Length l | Symbol s
	| Array vs | Dict kvs
	| Content c | Func f
	| Type name | Module name scope
*/

// None is the absent value.
func None() Value { return Value{kind: KNone} }

// Auto is the smart-default sentinel value.
func Auto() Value { return Value{kind: KAuto} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KBool, b: b} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KInt, i: i} }

// Float wraps a float.
func Float(f float64) Value { return Value{kind: KFloat, f: f} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: KStr, s: s} }

// LengthValue wraps a layout length.
func LengthValue(l geom.Length) Value { return Value{kind: KLength, length: l} }

// Array wraps an ordered sequence of values.
func Array(vs ...Value) Value { return Value{kind: KArray, arr: vs} }

// Dict wraps a mapping. Entries are stored sorted by key, making equality,
// repr and iteration canonical.
func Dict(kvs ...KV) Value {
	sorted := make([]KV, len(kvs))
	copy(sorted, kvs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].K < sorted[j].K })
	return Value{kind: KDict, dict: sorted}
}

// ContentValue wraps a content node.
func ContentValue(c Content) Value { return Value{kind: KContent, content: c} }

// FuncValue wraps a first-class function.
func FuncValue(f Func) Value { return Value{kind: KFunc, fn: f} }

// TypeValue wraps a type, named by its kind name.
func TypeValue(name string) Value { return Value{kind: KType, s: name} }

// Symbol wraps a symbol.
func Symbol(s string) Value { return Value{kind: KSymbol, s: s} }

// ModuleValue wraps a named module with a scope of definitions.
func ModuleValue(name string, scope ...KV) Value {
	sorted := make([]KV, len(scope))
	copy(sorted, scope)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].K < sorted[j].K })
	return Value{kind: KModule, s: name, scope: sorted}
}

// Kind returns the variant tag of a value.
func (v Value) Kind() Kind {
	return v.kind
}

// Items returns the elements of an array value, or nil.
func (v Value) Items() []Value {
	return v.arr
}

// Entries returns the entries of a dictionary or module scope, sorted by
// key, or nil.
func (v Value) Entries() []KV {
	if v.kind == KModule {
		return v.scope
	}
	return v.dict
}

// Equal is structural equality over the closed variant set.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KNone, KAuto:
		return true
	case KBool:
		return v.b == other.b
	case KInt:
		return v.i == other.i
	case KFloat:
		return v.f == other.f
	case KStr, KSymbol, KType:
		return v.s == other.s
	case KLength:
		return v.length == other.length
	case KArray:
		return sliceEqual(v.arr, other.arr)
	case KDict:
		return kvsEqual(v.dict, other.dict)
	case KContent:
		return v.content.Equal(other.content)
	case KFunc:
		return v.fn.Name() == other.fn.Name()
	case KModule:
		return v.s == other.s && kvsEqual(v.scope, other.scope)
	}
	return false
}

func sliceEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func kvsEqual(a, b []KV) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].K != b[i].K || !a[i].V.Equal(b[i].V) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------

func (v Value) Match() *ValueMatcher {
	return &ValueMatcher{value: v}
}

// ValueMatcher is a pointer-extraction pattern matcher for values, in the
// manner of the maybe package:
//
//     var n int64
//     switch m := v.Match(); m {
//     case m.Int(&n):  …
//     case m.None():   …
//     }
//
type ValueMatcher struct {
	value Value
}

func (m *ValueMatcher) None() *ValueMatcher {
	if m.value.kind == KNone {
		return m
	}
	return nil
}

func (m *ValueMatcher) Auto() *ValueMatcher {
	if m.value.kind == KAuto {
		return m
	}
	return nil
}

func (m *ValueMatcher) Bool(b *bool) *ValueMatcher {
	if m.value.kind == KBool {
		if b != nil {
			*b = m.value.b
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Int(i *int64) *ValueMatcher {
	if m.value.kind == KInt {
		if i != nil {
			*i = m.value.i
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Float(f *float64) *ValueMatcher {
	if m.value.kind == KFloat {
		if f != nil {
			*f = m.value.f
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Str(s *string) *ValueMatcher {
	if m.value.kind == KStr {
		if s != nil {
			*s = m.value.s
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Length(l *geom.Length) *ValueMatcher {
	if m.value.kind == KLength {
		if l != nil {
			*l = m.value.length
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Array(vs *[]Value) *ValueMatcher {
	if m.value.kind == KArray {
		if vs != nil {
			*vs = m.value.arr
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Content(c *Content) *ValueMatcher {
	if m.value.kind == KContent {
		if c != nil {
			*c = m.value.content
		}
		return m
	}
	return nil
}

func (m *ValueMatcher) Func(f *Func) *ValueMatcher {
	if m.value.kind == KFunc {
		if f != nil {
			*f = m.value.fn
		}
		return m
	}
	return nil
}
