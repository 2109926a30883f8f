package style

// Chain is a cascading sequence of style scopes. The zero value is the
// empty chain, where every property resolves to its declared default.
//
// Chains are immutable: Push never modifies the receiver, it returns a new
// chain sharing the receiver as its tail. Lookup walks from the innermost
// (most recently pushed) scope outward.
type Chain struct {
	top *link
}

type link struct {
	scope *Map
	tail  *link
}

// Push returns a chain with one more scope on top. Pushing a nil or empty
// map returns the chain unchanged.
func (c Chain) Push(m *Map) Chain {
	if m.Len() == 0 {
		return c
	}
	return Chain{top: &link{scope: m, tail: c.top}}
}

// Lookup finds the nearest override for a property key, walking the scopes
// innermost-out. The second return value tells wether an override exists
// anywhere in the chain.
func (c Chain) Lookup(k Key) (any, bool) {
	for l := c.top; l != nil; l = l.tail {
		if v, ok := l.scope.Get(k); ok {
			return v, true
		}
	}
	return nil, false
}

// Depth returns the number of scopes in the chain; used for tracing and
// testing only.
func (c Chain) Depth() int {
	n := 0
	for l := c.top; l != nil; l = l.tail {
		n++
	}
	return n
}
