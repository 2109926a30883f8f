package model

// Func is a first-class function value. Invocation always goes through
// Context.Call so that the evaluation context is threaded explicitly into
// the callee; a callback may itself construct content or perform nested
// layout through that context.
type Func struct {
	name string
	fn   func(*Context, *Args) (Value, error)
}

// NewFunc creates a function value.
func NewFunc(name string, fn func(*Context, *Args) (Value, error)) Func {
	return Func{name: name, fn: fn}
}

// Name returns the function's name. Function values compare equal by name.
func (f Func) Name() string {
	return f.name
}

// IsValid is a predicate wether the function can be called.
func (f Func) IsValid() bool {
	return f.fn != nil
}
