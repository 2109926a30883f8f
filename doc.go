/*
Package styled is the layout core of a markup-to-document compiler.

It turns a tree of typed content nodes, annotated with cascading style
overrides, into paginated visual output. The module is organized leaves-first:

▪︎ maybe      – an option type in the spirit of Elm's Maybe

▪︎ geom       – lengths, axes and sizes, built on tyse/core/dimen

▪︎ style      – cascading, scoped property storage (style maps and chains)

▪︎ model      – runtime values, casting, content nodes, argument binding

▪︎ layout     – the regions/fragment layout protocol and basic nodes

▪︎ grid       – the generic track-sizing algorithm and grid container

▪︎ numbering  – pattern- and callback-based sequence labeling

▪︎ basics     – structural nodes (ordered and unordered lists) composing all of the above

Parsing, font shaping and rasterization are external collaborators; they
consume this module through narrow accessors (the node registry, content
metadata and rendered frames) and contribute no layout logic themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styled
