// Package layer provides configuration layer management for Stockshot.
//
// The layer package models the cascade of configuration sources. Layers
// are merged in a fixed order; values from later layers override values
// from earlier ones, recursively for nested mappings.
package layer

// Layer represents a single configuration layer.
type Layer struct {
	// Name identifies the layer (e.g., "user", "project", "defaults").
	Name string

	// Source indicates where this layer was loaded from.
	Source Source

	// Path is the file path the layer was read from, if any.
	// A path may be recorded even when the file does not exist yet.
	Path string

	// Data holds the configuration values as a nested map.
	Data map[string]any
}

// New creates an empty configuration layer.
func New(name string, source Source) *Layer {
	return &Layer{
		Name:   name,
		Source: source,
		Data:   make(map[string]any),
	}
}

// NewWithData creates a layer with initial data.
func NewWithData(name string, source Source, data map[string]any) *Layer {
	return &Layer{
		Name:   name,
		Source: source,
		Data:   data,
	}
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		Name:   l.Name,
		Source: l.Source,
		Path:   l.Path,
		Data:   cloneMap(l.Data),
	}
}

// Source indicates where a configuration layer came from.
// The zero value is the built-in default table; higher values are merged
// later and therefore override lower ones.
type Source uint8

const (
	// SourceBuiltin represents the built-in default table.
	SourceBuiltin Source = iota
	// SourceGeneral represents the site-wide general configuration.
	SourceGeneral
	// SourceProject represents the per-project configuration.
	SourceProject
	// SourceUser represents the per-user configuration.
	SourceUser
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "defaults"
	case SourceGeneral:
		return "general"
	case SourceProject:
		return "project"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// cloneMap creates a deep copy of a map.
func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for key, val := range src {
		switch v := val.(type) {
		case map[string]any:
			dst[key] = cloneMap(v)
		case []any:
			dst[key] = cloneSlice(v)
		default:
			dst[key] = val
		}
	}

	return dst
}

// cloneSlice creates a deep copy of a slice.
func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}

	dst := make([]any, len(src))
	for i, val := range src {
		switch v := val.(type) {
		case map[string]any:
			dst[i] = cloneMap(v)
		case []any:
			dst[i] = cloneSlice(v)
		default:
			dst[i] = val
		}
	}

	return dst
}
