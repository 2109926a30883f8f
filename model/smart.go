package model

// Smart is a value that is either a custom T or the auto sentinel, to be
// substituted by a context-dependent default.
type Smart[T any] struct {
	v    T
	auto bool
}

// SmartAuto is the auto sentinel for type T.
func SmartAuto[T any]() Smart[T] {
	return Smart[T]{auto: true}
}

// Custom wraps a concrete smart value.
func Custom[T any](v T) Smart[T] {
	return Smart[T]{v: v}
}

// IsAuto is a predicate wether the value is the auto sentinel.
func (s Smart[T]) IsAuto() bool {
	return s.auto
}

// UnwrapOr returns the custom value, or def for auto.
func (s Smart[T]) UnwrapOr(def T) T {
	if s.auto {
		return def
	}
	return s.v
}

// UnwrapOrElse returns the custom value, or the result of calling def.
func (s Smart[T]) UnwrapOrElse(def func() T) T {
	if s.auto {
		return def()
	}
	return s.v
}
