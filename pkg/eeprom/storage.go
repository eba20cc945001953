package eeprom

import (
	"errors"
	"fmt"
	"sync"
)

// Erased is the value every cell holds before its first write.
const Erased byte = 0xFF

// ErrOutOfRange is returned when an address lies outside the storage region.
var ErrOutOfRange = errors.New("address out of range")

// Storage is a byte-addressable persistent memory region.
type Storage interface {
	// ReadByteAt returns the byte stored at addr.
	ReadByteAt(addr int) (byte, error)

	// WriteByteAt stores v at addr. The write is durable when it returns nil.
	WriteByteAt(addr int, v byte) error

	// Size returns the number of addressable bytes.
	Size() int
}

// CheckRange returns ErrOutOfRange, annotated with the address, if addr is
// not within a region of the given size.
func CheckRange(addr, size int) error {
	if addr < 0 || addr >= size {
		return fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, addr, size)
	}
	return nil
}

// Memory is a volatile Storage backed by a byte slice.
// It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemory creates a factory-fresh region of size bytes, all set to Erased.
func NewMemory(size int) *Memory {
	data := make([]byte, size)
	for i := range data {
		data[i] = Erased
	}
	return &Memory{data: data}
}

// ReadByteAt implements Storage.
func (m *Memory) ReadByteAt(addr int) (byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := CheckRange(addr, len(m.data)); err != nil {
		return 0, err
	}
	return m.data[addr], nil
}

// WriteByteAt implements Storage.
func (m *Memory) WriteByteAt(addr int, v byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := CheckRange(addr, len(m.data)); err != nil {
		return err
	}
	m.data[addr] = v
	return nil
}

// Size implements Storage.
func (m *Memory) Size() int {
	return len(m.data)
}

// Snapshot returns a copy of the whole region.
func (m *Memory) Snapshot() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}

// Compile-time interface satisfaction check.
var _ Storage = (*Memory)(nil)
