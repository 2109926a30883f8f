/*
Package grid implements a track-based table layout.

Columns and rows are described by track sizings: fixed lengths, automatic
tracks sized by their content, and relative tracks taking a fraction of the
container. Cells are laid out row by row; rows that no longer fit a region
move wholesale to the next region of the backlog. Composite nodes,
e.g. enumerations, lower themselves to a grid rather than positioning
content by hand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styled.grid'.
func tracer() tracing.Trace {
	return tracing.Select("styled.grid")
}
