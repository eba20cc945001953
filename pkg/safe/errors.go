package safe

import (
	"errors"
	"fmt"
)

// Store errors.
var (
	// ErrStorageFault is matched by every *StorageError.
	ErrStorageFault = errors.New("storage fault")

	// ErrInvalidArgument is returned for requests the store refuses
	// without touching storage, such as an over-long code.
	ErrInvalidArgument = errors.New("invalid argument")
)

// StorageError reports a failed read or write of the persistent region.
type StorageError struct {
	// Op is the store operation that was running.
	Op string

	// Addr is the storage address involved.
	Addr int

	// Err is the error returned by the storage.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: storage fault at address %d: %v", e.Op, e.Addr, e.Err)
}

// Unwrap returns the underlying storage error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStorageFault.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFault
}
