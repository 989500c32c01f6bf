// Package requestid generates and classifies the x-request-id values that
// carry Callisto's per-request trace decision.
//
// Request ids are canonical UUIDv4 strings. The trace status is encoded in
// the character at offset 14 (the UUID version nibble), so an id can be
// re-stamped in place without changing its length or uniqueness properties.
// Downstream trace tooling relies on this exact encoding.
package requestid

import "github.com/google/uuid"

// TraceStatus is the tracing disposition embedded in a request id.
type TraceStatus int

const (
	// NoTrace marks a request that should not be traced.
	NoTrace TraceStatus = iota
	// Sampled marks a request selected by random sampling.
	Sampled
	// Client marks a request the client asked to have traced.
	Client
	// Forced marks a request force-traced by service configuration.
	Forced
)

const uuidLength = 36

// Offset of the version nibble in a canonical UUID string
// ("xxxxxxxx-xxxx-Vxxx-..."). This is the byte that carries the status.
const statusOffset = 14

const (
	statusNoTrace = '4' // plain UUIDv4 version nibble
	statusSampled = 'a'
	statusClient  = '9'
	statusForced  = 'b'
)

// New returns a fresh request id with NoTrace status.
func New() string {
	return uuid.NewString()
}

// StatusOf classifies the trace status embedded in id. Ids that are not
// canonical UUID strings classify as NoTrace.
func StatusOf(id string) TraceStatus {
	if len(id) != uuidLength {
		return NoTrace
	}
	switch id[statusOffset] {
	case statusForced:
		return Forced
	case statusSampled:
		return Sampled
	case statusClient:
		return Client
	default:
		return NoTrace
	}
}

// SetStatus returns id re-stamped with the given status. The second return
// is false when id is not a canonical UUID string, in which case id is
// returned unchanged.
func SetStatus(id string, status TraceStatus) (string, bool) {
	if len(id) != uuidLength {
		return id, false
	}
	b := []byte(id)
	switch status {
	case Forced:
		b[statusOffset] = statusForced
	case Sampled:
		b[statusOffset] = statusSampled
	case Client:
		b[statusOffset] = statusClient
	case NoTrace:
		b[statusOffset] = statusNoTrace
	}
	return string(b), true
}
