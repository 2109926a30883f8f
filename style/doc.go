/*
Package style implements cascading, scoped property storage.

Node types declare properties (see type Prop) with a static default and a
resolution mode. Concrete override values live in style maps, and maps are
stacked into style chains. A chain is a persistent, append-only sequence of
scopes with structural sharing: pushing a scope creates a new chain value
that shares its tail with the old one, so content subtrees can each see the
chain as of their attachment point without copying prior scopes. Since
chains are passed by value and scopes are never mutated in place, pushing a
scope for the duration of a call and "popping" it on return falls out of
ordinary Go value semantics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.style'.
func tracer() tracing.Trace {
	return tracing.Select("styled.style")
}
