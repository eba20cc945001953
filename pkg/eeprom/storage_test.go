package eeprom

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryIsErased(t *testing.T) {
	m := NewMemory(16)

	assert.Equal(t, 16, m.Size())
	for addr := 0; addr < m.Size(); addr++ {
		v, err := m.ReadByteAt(addr)
		require.NoError(t, err)
		assert.Equal(t, Erased, v, "addr %d", addr)
	}
}

func TestMemoryWriteThenRead(t *testing.T) {
	m := NewMemory(4)

	require.NoError(t, m.WriteByteAt(0, 0x01))
	require.NoError(t, m.WriteByteAt(3, '7'))

	v, err := m.ReadByteAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), v)

	v, err = m.ReadByteAt(3)
	require.NoError(t, err)
	assert.Equal(t, byte('7'), v)

	// Untouched cells keep the erased value
	v, err = m.ReadByteAt(1)
	require.NoError(t, err)
	assert.Equal(t, Erased, v)
}

func TestMemoryOutOfRange(t *testing.T) {
	m := NewMemory(4)

	tests := []struct {
		name string
		addr int
	}{
		{"negative", -1},
		{"at size", 4},
		{"far past end", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ReadByteAt(tt.addr)
			assert.True(t, errors.Is(err, ErrOutOfRange), "read err = %v", err)

			err = m.WriteByteAt(tt.addr, 0)
			assert.True(t, errors.Is(err, ErrOutOfRange), "write err = %v", err)
		})
	}
}

func TestMemorySnapshotIsCopy(t *testing.T) {
	m := NewMemory(2)
	require.NoError(t, m.WriteByteAt(0, 0x00))

	snap := m.Snapshot()
	assert.Equal(t, []byte{0x00, Erased}, snap)

	snap[0] = 0x42
	v, err := m.ReadByteAt(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), v, "mutating snapshot must not affect storage")
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory(64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				addr := base*8 + j
				_ = m.WriteByteAt(addr, byte(addr))
				_, _ = m.ReadByteAt(addr)
			}
		}(i)
	}
	wg.Wait()

	snap := m.Snapshot()
	for addr, v := range snap {
		assert.Equal(t, byte(addr), v)
	}
}
