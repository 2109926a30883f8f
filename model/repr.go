package model

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Repr returns the canonical textual representation of a value. It is used
// for default-value display, for embedding literal defaults in generated
// documentation, and as the basis for hashing. Dictionary entries appear in
// sorted key order, so the representation is deterministic.
func (v Value) Repr() string {
	var b strings.Builder
	v.repr(&b)
	return b.String()
}

func (v Value) repr(b *strings.Builder) {
	switch v.kind {
	case KNone:
		b.WriteString("none")
	case KAuto:
		b.WriteString("auto")
	case KBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KFloat:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KStr:
		b.WriteString(strconv.Quote(v.s))
	case KLength:
		b.WriteString(v.length.String())
	case KArray:
		b.WriteByte('(')
		for i, item := range v.arr {
			if i > 0 {
				b.WriteString(", ")
			}
			item.repr(b)
		}
		if len(v.arr) == 1 {
			b.WriteByte(',')
		}
		b.WriteByte(')')
	case KDict:
		if len(v.dict) == 0 {
			b.WriteString("(:)")
			return
		}
		b.WriteByte('(')
		for i, kv := range v.dict {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(kv.K)
			b.WriteString(": ")
			kv.V.repr(b)
		}
		b.WriteByte(')')
	case KContent:
		b.WriteByte('[')
		b.WriteString(v.content.Repr())
		b.WriteByte(']')
	case KFunc:
		b.WriteString(v.fn.Name())
	case KType:
		b.WriteString(v.s)
	case KSymbol:
		b.WriteString(v.s)
	case KModule:
		b.WriteString("<module ")
		b.WriteString(v.s)
		b.WriteByte('>')
	}
}

// Hash returns a hash consistent with Equal, suitable as a cache key
// component for an external memoization layer.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(v.kind)})
	h.Write([]byte(v.Repr()))
	return h.Sum64()
}
