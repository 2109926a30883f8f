/*
Package basics provides the basic composite content nodes: ordered
enumerations and unordered lists.

Both node types lower themselves onto the grid layout: a four-column grid
of indent, marker, body indent and body, with one row per item. They own
no positioning logic of their own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package basics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.basics'.
func tracer() tracing.Trace {
	return tracing.Select("styled.basics")
}
