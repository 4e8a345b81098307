package vector

// State is the serialized form of a vector: the buffer kind tag plus a flat
// value snapshot. It round-trips value equality, never object identity.
type State struct {
	Kind string    `json:"kind"`
	Data []float64 `json:"data"`
}

// State exports the vector as a detached (kind, values) pair.
func (v *Vector) State() State {
	return State{
		Kind: v.buf.Kind(),
		Data: v.ToSlice(true),
	}
}

// FromState reconstructs a vector from a serialized state: a zero buffer of
// the recorded kind and length is allocated, then the values are copied in.
func FromState(st State) (*Vector, error) {
	return FromSlice(st.Kind, st.Data)
}
