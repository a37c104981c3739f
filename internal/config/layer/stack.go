package layer

// Stack holds configuration layers in cascade order and produces the
// merged effective configuration. The first layer added is the lowest in
// the cascade; each subsequent layer overrides it.
//
// Stack performs no locking. The configuration subsystem runs a
// single-threaded, synchronous model; callers that share a Stack across
// goroutines must serialize access themselves.
type Stack struct {
	layers []*Layer
}

// NewStack creates an empty layer stack.
func NewStack() *Stack {
	return &Stack{layers: make([]*Layer, 0, 4)}
}

// Add appends a layer to the top of the cascade.
func (s *Stack) Add(l *Layer) {
	s.layers = append(s.layers, l)
}

// Layer returns a layer by name, or nil if no such layer exists.
func (s *Stack) Layer(name string) *Layer {
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// BySource returns the first layer with the given source, or nil.
func (s *Stack) BySource(source Source) *Layer {
	for _, l := range s.layers {
		if l.Source == source {
			return l
		}
	}
	return nil
}

// Layers returns the layers in cascade order.
func (s *Stack) Layers() []*Layer {
	result := make([]*Layer, len(s.layers))
	copy(result, s.layers)
	return result
}

// Len returns the number of layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Merge folds every layer into a single configuration map, lowest layer
// first. The result is independent of the layers' data.
func (s *Stack) Merge() map[string]any {
	result := make(map[string]any)
	for _, l := range s.layers {
		result = DeepMerge(result, l.Data)
	}
	return result
}

// Clear removes all layers.
func (s *Stack) Clear() {
	s.layers = nil
}
