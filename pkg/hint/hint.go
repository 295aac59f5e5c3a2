package hint

import "fmt"

// Keys used by the built-in constraint helpers. The set is open: callers may
// invent their own keys and register formatters for them alongside these.
const (
	KeyAnnotation  = "annotation"
	KeyType        = "type"
	KeyBoolDefault = "bool-default"
	KeyLength      = "length"
	KeyLengthRange = "length-range"
	KeyNotEmpty    = "not-empty"
	KeyNotBlank    = "not-blank"
	KeyPath        = "path"
	KeyFilePath    = "file-path"
	KeyDirPath     = "dir-path"
	KeyRange       = "range"
	KeyFinite      = "finite"
	KeyNotInfinite = "not-infinite"
	KeyNotNaN      = "not-nan"
	KeyNotEqual    = "not-equal"
)

// Hint is an immutable descriptor of one active input constraint. Its display
// text is derived solely from the key/payload pair by a formatter looked up at
// render time, never stored on the hint itself.
type Hint struct {
	key     string
	payload any
}

// New builds a hint for key. Payload may be nil for keys that need none.
func New(key string, payload any) Hint {
	return Hint{key: key, payload: payload}
}

// Key returns the discriminator used for formatter lookup.
func (h Hint) Key() string { return h.key }

// Payload returns the optional payload supplied at construction.
func (h Hint) Payload() any { return h.payload }

// String renders a debug form. Display text comes from a Registry instead.
func (h Hint) String() string {
	if h.payload == nil {
		return h.key
	}
	return fmt.Sprintf("%s=%v", h.key, h.payload)
}

// Bounds carries pre-formatted numeric range endpoints for KeyRange payloads.
// An empty string marks an open end.
type Bounds struct {
	Min string
	Max string
}

// LengthBounds carries the endpoints of a string length constraint for
// KeyLengthRange payloads. Max is meaningful only when Bounded is true.
type LengthBounds struct {
	Min     int
	Max     int
	Bounded bool
}

// PathDetail qualifies the path-kind keys. Exists reports that the target must
// already be present on disk.
type PathDetail struct {
	Exists bool
}
