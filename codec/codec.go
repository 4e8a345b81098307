// Package codec centralizes the encoding of serialized vector state.
//
// Codec selection is a breaking-change boundary: snapshots record the codec
// name in their header, and bytes written by one codec may not decode with
// another.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Self-describing persisted formats store the codec name in their header and
// resolve it here on load.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}
