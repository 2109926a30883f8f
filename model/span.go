package model

import "fmt"

// Span is a byte range into the markup source a value or node originated
// from. Spans travel with arguments and errors so the host can present a
// source location to the user; this layer never interprets them.
type Span struct {
	Start, End int
}

// Detached is the span of values that have no source location.
var Detached = Span{-1, -1}

// IsDetached is a predicate wether the span points into source text.
func (s Span) IsDetached() bool {
	return s.Start < 0
}

func (s Span) String() string {
	if s.IsDetached() {
		return "(detached)"
	}
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Spanned pairs a value with its source span.
type Spanned[T any] struct {
	V    T
	Span Span
}

// At attaches a span to a value.
func At[T any](v T, s Span) Spanned[T] {
	return Spanned[T]{V: v, Span: s}
}
