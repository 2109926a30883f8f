package model

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/styled/style"
)

// NodeInfo is the static metadata record of a node type: its name, its
// constructor, its declared properties and the names of its reflected
// fields. One record exists per node type, registered at package
// initialization and frozen into the process-wide registry on first use.
type NodeInfo struct {
	// Name identifies the node type, e.g. "enum".
	Name string
	// Docs is the node type's documentation.
	Docs string
	// Category groups node types for documentation generation.
	Category string
	// Construct builds a node instance from dynamic arguments.
	Construct func(*Context, *Args) (Content, error)
	// Props lists the node type's declared style properties.
	Props []PropInfo
	// FieldNames lists the reflected fields, in declaration order.
	FieldNames []string
}

// PropInfo describes one declared style property for the style-setting
// surface and for documentation generation.
type PropInfo struct {
	Key  style.Key
	Docs string
	Info CastInfo
	// FromValue validates a runtime value against Info and produces the
	// typed stored value for a style map.
	FromValue func(Spanned[Value]) (any, error)
}

// PropDecl pairs a property declaration with its value caster, yielding
// the registry record for the property.
func PropDecl[T any](p style.Prop[T], c Caster[T], docs string) PropInfo {
	return PropInfo{
		Key:  p.Key(),
		Docs: docs,
		Info: c.Info,
		FromValue: func(v Spanned[Value]) (any, error) {
			t, err := c.Cast(v)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}

// --- Process-wide registry -------------------------------------------------

var registry = struct {
	sync.Mutex
	frozen   bool
	nodes    map[string]*NodeInfo
	makeText func(string) Content
}{nodes: make(map[string]*NodeInfo)}

// RegisterNode enters a node type into the process-wide registry. It is to
// be called from package init functions only; registration after the
// registry has been frozen by the first Library() call is a programming
// error and panics.
func RegisterNode(info *NodeInfo) {
	registry.Lock()
	defer registry.Unlock()
	if registry.frozen {
		panic(fmt.Sprintf("styled: node type %q registered after registry freeze", info.Name))
	}
	if _, dup := registry.nodes[info.Name]; dup {
		panic(fmt.Sprintf("styled: duplicate node type %q", info.Name))
	}
	registry.nodes[info.Name] = info
}

// RegisterTextMaker installs the constructor for plain text content. The
// text node type lives in the layout package; this hook lets the model
// coerce strings to content without a dependency cycle.
func RegisterTextMaker(f func(string) Content) {
	registry.Lock()
	defer registry.Unlock()
	if registry.frozen {
		panic("styled: text maker registered after registry freeze")
	}
	registry.makeText = f
}

// Text wraps a string into text content. It requires the layout package
// (or a test double) to have registered a text maker.
func Text(s string) Content {
	lib := Library()
	if lib.makeText == nil {
		panic("styled: no text node type registered")
	}
	return lib.makeText(s)
}

// Registry is the frozen, read-only library of node types.
type Registry struct {
	nodes    map[string]*NodeInfo
	names    []string
	makeText func(string) Content
}

var frozen *Registry
var freeze sync.Once

// Library freezes the registry on first call and returns the immutable
// snapshot. After this point RegisterNode panics; all lookups are
// lock-free reads.
func Library() *Registry {
	freeze.Do(func() {
		registry.Lock()
		defer registry.Unlock()
		registry.frozen = true
		names := make([]string, 0, len(registry.nodes))
		for name := range registry.nodes {
			names = append(names, name)
		}
		sort.Strings(names)
		frozen = &Registry{
			nodes:    registry.nodes,
			names:    names,
			makeText: registry.makeText,
		}
		tracer().Debugf("node registry frozen with %d node types", len(names))
	})
	return frozen
}

// Node looks up a node type by name.
func (r *Registry) Node(name string) (*NodeInfo, bool) {
	info, ok := r.nodes[name]
	return info, ok
}

// Names returns all registered node type names, sorted.
func (r *Registry) Names() []string {
	return r.names
}

// Construct builds a node instance of the named type from arguments.
func (r *Registry) Construct(ctx *Context, name string, args *Args) (Content, error) {
	info, ok := r.Node(name)
	if !ok {
		return Content{}, fmt.Errorf("unknown node type %q", name)
	}
	return info.Construct(ctx, args)
}

// SetStyle is the style-setting surface: it validates a runtime value
// against the named property's declared CastInfo (including the auto/none
// sentinels where the property accepts them) and enters the typed value
// into the style map.
func (r *Registry) SetStyle(m *style.Map, node, prop string, v Spanned[Value]) error {
	info, ok := r.Node(node)
	if !ok {
		return fmt.Errorf("unknown node type %q", node)
	}
	for _, p := range info.Props {
		if p.Key.Name != prop {
			continue
		}
		typed, err := p.FromValue(v)
		if err != nil {
			return err
		}
		m.Set(p.Key, typed)
		return nil
	}
	return fmt.Errorf("node type %q has no property %q", node, prop)
}
