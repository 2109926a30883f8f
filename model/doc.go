/*
Package model implements the document model of the layout engine: runtime
values with a closed set of variants, the type-description/casting protocol,
immutable content nodes with capability dispatch, dynamic argument binding,
and the process-wide registry of node types.

Content is immutable post-construction. Layout later consumes content as a
pure function of (content, style chain, regions); the only external read
happens through the immutable World accessor carried by the evaluation
context.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package model

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.model'.
func tracer() tracing.Trace {
	return tracing.Select("styled.model")
}
