package safe

import (
	"fmt"

	"github.com/safebox-project/safebox-go/pkg/eeprom"
)

// Storage addresses.
const (
	AddrLocked  = 0
	AddrCodeLen = 1
	AddrCode    = 2
)

// MaxCodeLength is the longest code the length byte can describe.
// 0xFF is reserved for "no code set".
const MaxCodeLength = 254

// DefaultMasterPassword is the override password used unless configured otherwise.
const DefaultMasterPassword = "1111"

const (
	flagOpen   byte = 0
	flagLocked byte = 1

	codeLenUnset = eeprom.Erased
)

// State is the lock state of the safe.
type State uint8

const (
	// StateOpen means the safe is unlocked.
	StateOpen State = iota

	// StateLocked means the safe is locked.
	StateLocked
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "OPEN"
	case StateLocked:
		return "LOCKED"
	default:
		return "UNKNOWN"
	}
}

// CodeState describes the stored unlock code: either Unset or a code of a
// given length. The zero value is Unset.
type CodeState struct {
	set    bool
	length int
}

// Unset returns the CodeState of a safe that was never programmed.
func Unset() CodeState {
	return CodeState{}
}

// Length returns the CodeState of a programmed code of n bytes.
func Length(n int) CodeState {
	return CodeState{set: true, length: n}
}

// IsSet reports whether a code has been programmed.
func (c CodeState) IsSet() bool {
	return c.set
}

// Len returns the programmed code length and whether a code is set.
func (c CodeState) Len() (int, bool) {
	return c.length, c.set
}

// String returns a human-readable description.
func (c CodeState) String() string {
	if !c.set {
		return "unset"
	}
	return fmt.Sprintf("%d digits", c.length)
}

func decodeCodeLength(b byte) CodeState {
	if b == codeLenUnset {
		return Unset()
	}
	return Length(int(b))
}
