package style

import "fmt"

// Key identifies a style property: the owning node type and the property
// name within that node type.
type Key struct {
	Node string
	Name string
}

func (k Key) String() string {
	return k.Node + "." + k.Name
}

// Setting is a single property override.
type Setting struct {
	K Key
	V any
}

// Map is one scope of property overrides. The zero value and nil are legal
// empty maps. Settings keep insertion order, so iteration and lookup are
// deterministic. A map must not be modified any more once it has been
// attached to a content subtree or pushed onto a chain.
type Map struct {
	settings []Setting
}

// NewMap returns a new empty style map.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of settings in this map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.settings)
}

// Get returns the override for a property key, if present.
func (m *Map) Get(k Key) (any, bool) {
	if m == nil {
		return nil, false
	}
	// reverse order: a later Set for the same key wins
	for i := len(m.settings) - 1; i >= 0; i-- {
		if m.settings[i].K == k {
			return m.settings[i].V, true
		}
	}
	return nil, false
}

// Set records an override. An existing setting for the same key is
// replaced. Set returns the map to allow chaining.
func (m *Map) Set(k Key, v any) *Map {
	for i := range m.settings {
		if m.settings[i].K == k {
			m.settings[i].V = v
			return m
		}
	}
	m.settings = append(m.settings, Setting{K: k, V: v})
	return m
}

// Settings returns the settings of this map in insertion order.
func (m *Map) Settings() []Setting {
	if m == nil {
		return nil
	}
	return m.settings
}

func (m *Map) String() string {
	if m == nil {
		return "styles{}"
	}
	s := "styles{"
	for i, kv := range m.settings {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s", kv.K)
	}
	return s + "}"
}
