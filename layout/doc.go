/*
Package layout implements the region/fragment layout protocol.

Every layout-capable node exposes

    Layout(ctx, styles, regions) → (fragment, error)

as a pure function of its three inputs; the only allowed external read goes
through the immutable world accessor of the evaluation context. A node that
produces more content than fits the current region consumes the region,
requests the next one from the backlog and continues, yielding one frame
per consumed region. Container nodes lay out each child against a copy of
the remaining regions, merge same-region child frames into one output frame
per region and re-offer leftover space to the next child. Multi-page and
multi-column flow emerges from this recursion alone; no node has global
page awareness.

The package also provides two basic node types: a text leaf with greedy
word-wrap over flat font metrics (shaping is an external collaborator) and
a vertical flow container.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.layout'.
func tracer() tracing.Trace {
	return tracing.Select("styled.layout")
}
