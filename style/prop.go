package style

// Mode describes how a stored property value turns into the value a client
// of Get receives.
type Mode uint8

const (
	// Plain properties are returned as stored.
	Plain Mode = iota
	// Referenced properties are returned by shared reference, i.e. T is a
	// pointer or otherwise shared type and Get must not copy the value.
	Referenced
	// Resolve properties require a second pass against the chain itself,
	// e.g. resolving an em-length relative to the current font size.
	Resolve
)

// Prop is a declared style property of a node type, with a static default
// value and a resolution mode. Declarations are created once per node type
// at package initialization:
//
//     var Leading = style.NewProp("par", "leading", geom.Em(0.65)).
//         Resolving(resolveLength)
//
type Prop[T any] struct {
	key      Key
	dflt     T
	mode     Mode
	resolver func(T, Chain) T
}

// NewProp declares a property with a plain resolution mode.
func NewProp[T any](node, name string, dflt T) Prop[T] {
	return Prop[T]{key: Key{Node: node, Name: name}, dflt: dflt, mode: Plain}
}

// ByReference marks the property as referenced.
func (p Prop[T]) ByReference() Prop[T] {
	p.mode = Referenced
	return p
}

// Resolving marks the property as resolve-mode: Get passes the raw stored
// (or default) value through f together with the chain.
func (p Prop[T]) Resolving(f func(T, Chain) T) Prop[T] {
	p.mode = Resolve
	p.resolver = f
	return p
}

// Key returns the property's identifying key.
func (p Prop[T]) Key() Key {
	return p.key
}

// Mode returns the property's resolution mode.
func (p Prop[T]) Mode() Mode {
	return p.mode
}

// Default returns the property's declared default value, unresolved.
func (p Prop[T]) Default() T {
	return p.dflt
}

// Set produces an override setting for this property. It does not mutate
// anything; the setting is to be entered into a map which then is pushed
// onto a chain when styling a subtree.
func (p Prop[T]) Set(v T) Setting {
	return Setting{K: p.key, V: v}
}

// Get resolves a property against a chain: the nearest override wins, the
// declared default is the fallback, and the property's resolution mode is
// applied to the raw value.
func Get[T any](c Chain, p Prop[T]) T {
	raw := p.dflt
	if v, ok := c.Lookup(p.key); ok {
		if t, ok := v.(T); ok {
			raw = t
		} else {
			tracer().Errorf("style override for %s has wrong type %T", p.key, v)
		}
	}
	if p.mode == Resolve && p.resolver != nil {
		return p.resolver(raw, c)
	}
	return raw
}
