package log

import "time"

// Event represents a safe log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// BootID identifies the process lifetime (UUID) that produced the event.
	BootID string `cbor:"2,keyasint"`

	// DeviceID is the configured device name.
	DeviceID string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	State  *StateChangeEvent `cbor:"10,keyasint,omitempty"` // Lock flag transitions
	Access *AccessEvent      `cbor:"11,keyasint,omitempty"` // Unlock decisions
	Code   *CodeEvent        `cbor:"12,keyasint,omitempty"` // Code reprogramming
	Error  *ErrorEventData   `cbor:"13,keyasint,omitempty"` // Storage faults
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a lock state change.
	CategoryState Category = 0
	// CategoryAccess indicates an unlock decision.
	CategoryAccess Category = 1
	// CategoryCode indicates the unlock code was reprogrammed.
	CategoryCode Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryAccess:
		return "ACCESS"
	case CategoryCode:
		return "CODE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a lock flag transition.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty on first write).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// AccessEvent captures the outcome of an unlock attempt.
type AccessEvent struct {
	// Granted is true when the safe was unlocked.
	Granted bool `cbor:"1,keyasint"`

	// Reason explains the decision.
	Reason AccessReason `cbor:"2,keyasint"`

	// AttemptLength is the number of characters entered.
	AttemptLength int `cbor:"3,keyasint"`
}

// AccessReason explains an unlock decision.
type AccessReason uint8

const (
	// ReasonNoCode: no code has been programmed, every attempt succeeds.
	ReasonNoCode AccessReason = 0
	// ReasonMaster: the master password was entered.
	ReasonMaster AccessReason = 1
	// ReasonMatch: the attempt matched the stored code.
	ReasonMatch AccessReason = 2
	// ReasonLengthMismatch: the attempt length differs from the stored code.
	ReasonLengthMismatch AccessReason = 3
	// ReasonMismatch: the attempt differs from the stored code.
	ReasonMismatch AccessReason = 4
)

// String returns the reason name.
func (r AccessReason) String() string {
	switch r {
	case ReasonNoCode:
		return "NO_CODE"
	case ReasonMaster:
		return "MASTER"
	case ReasonMatch:
		return "MATCH"
	case ReasonLengthMismatch:
		return "LENGTH_MISMATCH"
	case ReasonMismatch:
		return "MISMATCH"
	default:
		return "UNKNOWN"
	}
}

// CodeEvent captures an unlock code change.
type CodeEvent struct {
	// Length is the length of the new code.
	Length int `cbor:"1,keyasint"`
}

// ErrorEventData captures storage faults and rejected requests.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`

	// Addr is the storage address involved (if applicable).
	Addr *int `cbor:"3,keyasint,omitempty"`
}
