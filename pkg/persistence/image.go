package persistence

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/safebox-project/safebox-go/pkg/eeprom"
)

// Image errors.
var (
	ErrInvalidSize  = errors.New("invalid image size")
	ErrSizeMismatch = errors.New("image size mismatch")
	ErrClosed       = errors.New("image closed")
)

// Options configures a FileStorage.
type Options struct {
	// Sync forces an fsync after every byte write.
	Sync bool
}

// FileStorage is an eeprom.Storage backed by an image file.
// It keeps a mirror of the image in memory and writes through to the file.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	image  []byte
	sync   bool
	closed bool
}

// Open opens the image at path, creating a factory-fresh (all 0xFF) image
// of size bytes if the file does not exist yet. An existing image must have
// exactly size bytes.
func Open(path string, size int, opts Options) (*FileStorage, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	image := make([]byte, size)
	switch info.Size() {
	case 0:
		fillErased(image)
		if _, err := f.WriteAt(image, 0); err != nil {
			f.Close()
			return nil, fmt.Errorf("initialize image: %w", err)
		}
		if err := f.Sync(); err != nil {
			f.Close()
			return nil, fmt.Errorf("initialize image: %w", err)
		}
	case int64(size):
		if _, err := f.ReadAt(image, 0); err != nil && err != io.EOF {
			f.Close()
			return nil, fmt.Errorf("read image: %w", err)
		}
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d", ErrSizeMismatch, path, info.Size(), size)
	}

	return &FileStorage{
		path:  path,
		file:  f,
		image: image,
		sync:  opts.Sync,
	}, nil
}

// ReadByteAt implements eeprom.Storage.
func (s *FileStorage) ReadByteAt(addr int) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}
	if err := eeprom.CheckRange(addr, len(s.image)); err != nil {
		return 0, err
	}
	return s.image[addr], nil
}

// WriteByteAt implements eeprom.Storage.
// The in-memory mirror is only updated once the file write succeeded.
func (s *FileStorage) WriteByteAt(addr int, v byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if err := eeprom.CheckRange(addr, len(s.image)); err != nil {
		return err
	}

	if _, err := s.file.WriteAt([]byte{v}, int64(addr)); err != nil {
		return fmt.Errorf("write image at %d: %w", addr, err)
	}
	if s.sync {
		if err := s.file.Sync(); err != nil {
			return fmt.Errorf("sync image: %w", err)
		}
	}

	s.image[addr] = v
	return nil
}

// Size implements eeprom.Storage.
func (s *FileStorage) Size() int {
	return len(s.image)
}

// Path returns the image file path.
func (s *FileStorage) Path() string {
	return s.path
}

// Snapshot returns a copy of the current image.
func (s *FileStorage) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]byte, len(s.image))
	copy(out, s.image)
	return out
}

// Clear restores the factory image (every byte 0xFF).
func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	erased := make([]byte, len(s.image))
	fillErased(erased)
	if _, err := s.file.WriteAt(erased, 0); err != nil {
		return fmt.Errorf("clear image: %w", err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("clear image: %w", err)
	}

	copy(s.image, erased)
	return nil
}

// Close closes the image file. It is safe to call Close multiple times.
func (s *FileStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}

func fillErased(b []byte) {
	for i := range b {
		b[i] = eeprom.Erased
	}
}

// Compile-time interface satisfaction check.
var _ eeprom.Storage = (*FileStorage)(nil)
