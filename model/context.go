package model

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// World is the read-only external accessor for fonts and library metadata.
// Implementations must be immutable: independent layout calls may consult
// the world concurrently if a host chooses to parallelize sibling subtrees.
type World interface {
	// Library returns the registry of node types.
	Library() *Registry
	// TextWidth returns the advance width of a text run at a font size.
	// Glyph shaping is outside this layer; implementations supply flat
	// metrics.
	TextWidth(s string, size dimen.DU) dimen.DU
	// LineHeight returns the line height at a font size.
	LineHeight(size dimen.DU) dimen.DU
}

// Context is the evaluation context threaded through node construction,
// layout and user-callback invocation. It carries no mutable state of its
// own; everything reachable through it is read-only.
type Context struct {
	world World
}

// NewContext creates an evaluation context over a world.
func NewContext(w World) *Context {
	return &Context{world: w}
}

// World returns the immutable world accessor.
func (ctx *Context) World() World {
	return ctx.world
}

// Call invokes a function value, threading the context into the callee.
// Errors raised inside the callee propagate unchanged.
func (ctx *Context) Call(f Func, args *Args) (Value, error) {
	if !f.IsValid() {
		return None(), fmt.Errorf("call of invalid function value")
	}
	tracer().Debugf("calling function %s", f.Name())
	return f.fn(ctx, args)
}
