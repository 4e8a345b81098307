package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// Vector state (kind tag plus flat float64 snapshot) encodes losslessly for
// finite values; NaN and infinities are not representable in JSON and fail
// to marshal.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
//
// Persisted files are self-describing (they store the codec name in their
// header), so changing the default never breaks existing files.
var Default Codec = JSON{}
