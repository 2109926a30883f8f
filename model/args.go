package model

import (
	"fmt"

	"github.com/npillmayer/styled/maybe"
)

// ArgError reports a construction error: a missing required parameter or an
// unexpected argument kind. It carries the argument list's source span.
type ArgError struct {
	Message string
	Span    Span
}

func (e *ArgError) Error() string {
	return e.Message
}

// Arg is one actual argument, positional (empty name) or named.
type Arg struct {
	Name string
	V    Spanned[Value]
}

// Args is a consumable list of positional and named actual values with
// source-span provenance, used to construct nodes. Binding order follows
// the call surface convention: named arguments are consumed by exact name
// first, positional arguments fill positional parameters in declaration
// order, and a variadic parameter absorbs all remaining positionals.
type Args struct {
	span  Span
	items []Arg
}

// NewArgs creates an argument list with positional values.
func NewArgs(span Span, positional ...Value) *Args {
	a := &Args{span: span}
	for _, v := range positional {
		a.items = append(a.items, Arg{V: At(v, span)})
	}
	return a
}

// Span returns the span of the whole argument list.
func (a *Args) Span() Span {
	return a.span
}

// Push appends a positional argument.
func (a *Args) Push(v Spanned[Value]) *Args {
	a.items = append(a.items, Arg{V: v})
	return a
}

// PushNamed appends a named argument.
func (a *Args) PushNamed(name string, v Spanned[Value]) *Args {
	a.items = append(a.items, Arg{Name: name, V: v})
	return a
}

// Len returns the number of arguments not yet consumed.
func (a *Args) Len() int {
	return len(a.items)
}

func (a *Args) take(i int) Spanned[Value] {
	v := a.items[i].V
	a.items = append(a.items[:i], a.items[i+1:]...)
	return v
}

// Finish flags all arguments left over after binding, with the offending
// argument's span.
func (a *Args) Finish() error {
	if len(a.items) == 0 {
		return nil
	}
	arg := a.items[0]
	what := "unexpected argument"
	if arg.Name != "" {
		what = fmt.Sprintf("unexpected argument %q", arg.Name)
	}
	return &ArgError{Message: what, Span: arg.V.Span}
}

// Named consumes the named argument with an exactly matching name, if
// present, and casts it. A failed cast aborts binding with a cast error
// carrying the argument's span.
func Named[T any](a *Args, name string, c Caster[T]) (maybe.Maybe[T], error) {
	for i, arg := range a.items {
		if arg.Name != name {
			continue
		}
		v := a.take(i)
		t, err := c.Cast(v)
		if err != nil {
			return maybe.Nothing[T](), err
		}
		return maybe.Just(t), nil
	}
	return maybe.Nothing[T](), nil
}

// Expect consumes the next positional argument for a required parameter.
// A missing argument is a construction error carrying the argument list's
// span.
func Expect[T any](a *Args, what string, c Caster[T]) (T, error) {
	for i, arg := range a.items {
		if arg.Name != "" {
			continue
		}
		return c.Cast(a.take(i))
	}
	var none T
	return none, &ArgError{
		Message: fmt.Sprintf("missing argument: %s", what),
		Span:    a.span,
	}
}

// All consumes every remaining positional argument, in order, for a
// variadic parameter.
func All[T any](a *Args, c Caster[T]) ([]T, error) {
	var collected []T
	rest := a.items[:0]
	for _, arg := range a.items {
		if arg.Name != "" {
			rest = append(rest, arg)
			continue
		}
		t, err := c.Cast(arg.V)
		if err != nil {
			a.items = rest
			return nil, err
		}
		collected = append(collected, t)
	}
	a.items = rest
	return collected, nil
}
