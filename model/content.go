package model

import (
	"hash/fnv"
	"reflect"
	"strings"

	"github.com/npillmayer/styled/maybe"
	"github.com/npillmayer/styled/style"
)

// Node is the interface of concrete node data. A node type implements Node
// plus whichever capability interfaces it declares (layout lives in package
// layout, field reflection is the Fielder interface below). Capabilities
// are queried by interface assertion on the node, never through open-ended
// subtype hierarchies.
type Node interface {
	// Info returns the static metadata record of the node's type.
	Info() *NodeInfo
	// Equals compares node data of the same type structurally.
	Equals(other Node) bool
}

// Fielder is the optional field-reflection capability: it exposes stored
// fields by name for scripted inspection and documentation generation.
// Unknown names yield Nothing, never an error.
type Fielder interface {
	Field(name string) maybe.Maybe[Value]
}

// Content is an immutable node instance in the document tree. The zero
// value is the empty content. A content node may carry an attached style
// map which is applied only to that subtree during layout.
type Content struct {
	node   Node
	styles *style.Map
	span   Span
}

// Pack wraps node data into content.
func Pack(n Node) Content {
	return Content{node: n, span: Detached}
}

// Empty is content that lays out to nothing.
func Empty() Content {
	return Content{span: Detached}
}

// IsEmpty is a predicate wether the content is the empty content.
func (c Content) IsEmpty() bool {
	return c.node == nil
}

// Node returns the wrapped node data, or nil for empty content.
func (c Content) Node() Node {
	return c.node
}

// NodeName returns the name of the content's node type.
func (c Content) NodeName() string {
	if c.node == nil {
		return "empty"
	}
	return c.node.Info().Name
}

// Span returns the content's source span.
func (c Content) Span() Span {
	return c.span
}

// WithSpan returns the content tagged with a source span.
func (c Content) WithSpan(s Span) Content {
	c.span = s
	return c
}

// Styles returns the attached style map, or nil.
func (c Content) Styles() *style.Map {
	return c.styles
}

// StyledWithMap attaches a style map to this subtree. During layout the map
// is pushed onto the chain for the duration of the subtree's layout call
// and goes out of scope when that call returns. Styling already-styled
// content merges the maps, with the earlier (inner) map winning on
// conflicting keys.
func (c Content) StyledWithMap(m *style.Map) Content {
	if m.Len() == 0 {
		return c
	}
	if c.styles.Len() == 0 {
		c.styles = m
		return c
	}
	merged := style.NewMap()
	for _, s := range m.Settings() {
		merged.Set(s.K, s.V)
	}
	for _, s := range c.styles.Settings() { // inner settings override outer ones
		merged.Set(s.K, s.V)
	}
	c.styles = merged
	return c
}

// Styled attaches a single property setting to this subtree.
func (c Content) Styled(s style.Setting) Content {
	m := style.NewMap()
	m.Set(s.K, s.V)
	return c.StyledWithMap(m)
}

// Field queries the field-reflection capability. Content without that
// capability, and unknown field names, yield Nothing.
func (c Content) Field(name string) maybe.Maybe[Value] {
	if f, ok := c.node.(Fielder); ok {
		return f.Field(name)
	}
	return maybe.Nothing[Value]()
}

// Equal is structural equality, well-defined so an external memoization
// layer can use content in cache keys. Attached style maps compare by
// their settings' keys and shallow value identity.
func (c Content) Equal(other Content) bool {
	if c.node == nil || other.node == nil {
		return c.node == nil && other.node == nil
	}
	if c.node.Info() != other.node.Info() {
		return false
	}
	if !c.node.Equals(other.node) {
		return false
	}
	return stylesEqual(c.styles, other.styles)
}

func stylesEqual(a, b *style.Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, bs := a.Settings(), b.Settings()
	for i := range as {
		if as[i].K != bs[i].K {
			return false
		}
		if !reflect.DeepEqual(as[i].V, bs[i].V) {
			return false
		}
	}
	return true
}

// Repr returns a canonical textual representation of the content: the node
// name plus its reflected fields, if the node exposes any.
func (c Content) Repr() string {
	if c.node == nil {
		return "empty"
	}
	var b strings.Builder
	b.WriteString(c.NodeName())
	if f, ok := c.node.(Fielder); ok {
		b.WriteByte('(')
		n := 0
		for _, name := range c.node.Info().FieldNames {
			var v Value
			switch m := f.Field(name).Match(); m {
			case m.Just(&v):
				if n > 0 {
					b.WriteString(", ")
				}
				n++
				b.WriteString(name)
				b.WriteString(": ")
				b.WriteString(v.Repr())
			case m.Nothing():
			}
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Hash returns a hash consistent with Equal for nodes whose fields are
// fully reflected.
func (c Content) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(c.Repr()))
	for _, s := range c.styles.Settings() {
		h.Write([]byte(s.K.String()))
	}
	return h.Sum64()
}
