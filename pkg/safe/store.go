package safe

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/safebox-project/safebox-go/pkg/eeprom"
	"github.com/safebox-project/safebox-go/pkg/log"
)

// Store is the lock-state manager. All reads of the lock state and all
// unlock decisions go through it.
//
// Every operation is serialized, so a Store may be shared between an input
// loop and other goroutines without interleaving partial code writes.
type Store struct {
	mu sync.Mutex

	storage eeprom.Storage
	locked  bool

	// staged holds the last code passed to SetCode. Unlock always reads the
	// code from storage.
	staged string

	master   string
	logger   log.Logger
	deviceID string
	bootID   string
	now      func() time.Time
}

// Config configures a Store.
type Config struct {
	// MasterPassword is accepted in place of the programmed code when its
	// length equals the code length.
	MasterPassword string

	// Logger receives safe events. Nil disables event logging.
	Logger log.Logger

	// DeviceID is the device name recorded in events.
	DeviceID string

	// BootID is recorded in every event. A random UUID is used when empty.
	BootID string
}

// DefaultConfig returns a Config with the factory master password.
func DefaultConfig() Config {
	return Config{
		MasterPassword: DefaultMasterPassword,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MasterPassword == "" {
		return fmt.Errorf("%w: empty master password", ErrInvalidArgument)
	}
	if len(c.MasterPassword) > MaxCodeLength {
		return fmt.Errorf("%w: master password longer than %d", ErrInvalidArgument, MaxCodeLength)
	}
	return nil
}

// New creates a Store over storage and restores the lock state from it.
// Only the lock flag is read; the code is read on demand.
func New(storage eeprom.Storage, config Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if storage == nil {
		return nil, fmt.Errorf("%w: nil storage", ErrInvalidArgument)
	}
	if storage.Size() < AddrCode {
		return nil, fmt.Errorf("%w: storage has %d bytes, need at least %d", ErrInvalidArgument, storage.Size(), AddrCode)
	}

	s := &Store{
		storage:  storage,
		master:   config.MasterPassword,
		logger:   config.Logger,
		deviceID: config.DeviceID,
		bootID:   config.BootID,
		now:      time.Now,
	}
	if s.logger == nil {
		s.logger = log.NoopLogger{}
	}
	if s.bootID == "" {
		s.bootID = uuid.NewString()
	}

	v, err := storage.ReadByteAt(AddrLocked)
	if err != nil {
		return nil, s.fault("load", AddrLocked, err)
	}
	s.locked = v == flagLocked

	s.emit(log.Event{
		Category: log.CategoryState,
		State: &log.StateChangeEvent{
			NewState: s.state().String(),
			Reason:   "restore",
		},
	})

	return s, nil
}

// BootID returns the identifier recorded in this store's events.
func (s *Store) BootID() string {
	return s.bootID
}

// MaxCodeLength returns the longest code SetCode accepts for this storage.
func (s *Store) MaxCodeLength() int {
	return min(MaxCodeLength, s.storage.Size()-AddrCode)
}

// Locked reports whether the safe is locked.
func (s *Store) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// State returns the lock state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

// Lock locks the safe. Locking an already locked safe rewrites the flag.
func (s *Store) Lock() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLock(true, "lock")
}

// HasCode reports whether an unlock code has been programmed.
func (s *Store) HasCode() (bool, error) {
	cs, err := s.CodeState()
	if err != nil {
		return false, err
	}
	return cs.IsSet(), nil
}

// CodeState reads the programmed code length from storage.
func (s *Store) CodeState() (CodeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.storage.ReadByteAt(AddrCodeLen)
	if err != nil {
		return Unset(), s.fault("code state", AddrCodeLen, err)
	}
	return decodeCodeLength(b), nil
}

// SetCode programs a new unlock code, replacing any previous one.
// The lock state is not affected. Codes longer than MaxCodeLength are
// rejected with ErrInvalidArgument before anything is written.
func (s *Store) SetCode(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(code)
	if maxLen := s.MaxCodeLength(); n > maxLen {
		err := fmt.Errorf("%w: code length %d exceeds maximum %d", ErrInvalidArgument, n, maxLen)
		s.emit(log.Event{
			Category: log.CategoryError,
			Error:    &log.ErrorEventData{Message: err.Error(), Context: "set code"},
		})
		return err
	}

	s.staged = code

	if err := s.storage.WriteByteAt(AddrCodeLen, byte(n)); err != nil {
		return s.fault("set code", AddrCodeLen, err)
	}
	for i := 0; i < n; i++ {
		addr := AddrCode + i
		if err := s.storage.WriteByteAt(addr, code[i]); err != nil {
			return s.fault("set code", addr, err)
		}
	}

	s.emit(log.Event{
		Category: log.CategoryCode,
		Code:     &log.CodeEvent{Length: n},
	})
	return nil
}

// Unlock tries to open the safe with attempt and reports whether it
// succeeded. A wrong code returns false and a nil error; a non-nil error
// always means a storage fault, and the lock state is then unchanged.
func (s *Store) Unlock(attempt string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.storage.ReadByteAt(AddrCodeLen)
	if err != nil {
		return false, s.fault("unlock", AddrCodeLen, err)
	}

	n, set := decodeCodeLength(b).Len()
	if !set {
		return s.grant(attempt, log.ReasonNoCode)
	}
	if len(attempt) != n {
		s.deny(attempt, log.ReasonLengthMismatch)
		return false, nil
	}
	if attempt == s.master {
		return s.grant(attempt, log.ReasonMaster)
	}

	// Short-circuits on the first mismatch; see package documentation.
	for i := 0; i < n; i++ {
		addr := AddrCode + i
		digit, err := s.storage.ReadByteAt(addr)
		if err != nil {
			return false, s.fault("unlock", addr, err)
		}
		if digit != attempt[i] {
			s.deny(attempt, log.ReasonMismatch)
			return false, nil
		}
	}

	return s.grant(attempt, log.ReasonMatch)
}

func (s *Store) state() State {
	if s.locked {
		return StateLocked
	}
	return StateOpen
}

// setLock writes the flag and only then updates the cached value, so the
// cache never reports a state that is not durable.
func (s *Store) setLock(locked bool, reason string) error {
	v := flagOpen
	if locked {
		v = flagLocked
	}
	if err := s.storage.WriteByteAt(AddrLocked, v); err != nil {
		return s.fault(reason, AddrLocked, err)
	}

	old := s.state()
	s.locked = locked
	if next := s.state(); next != old {
		s.emit(log.Event{
			Category: log.CategoryState,
			State: &log.StateChangeEvent{
				OldState: old.String(),
				NewState: next.String(),
				Reason:   reason,
			},
		})
	}
	return nil
}

func (s *Store) grant(attempt string, reason log.AccessReason) (bool, error) {
	if err := s.setLock(false, "unlock"); err != nil {
		return false, err
	}
	s.emit(log.Event{
		Category: log.CategoryAccess,
		Access: &log.AccessEvent{
			Granted:       true,
			Reason:        reason,
			AttemptLength: len(attempt),
		},
	})
	return true, nil
}

func (s *Store) deny(attempt string, reason log.AccessReason) {
	s.emit(log.Event{
		Category: log.CategoryAccess,
		Access: &log.AccessEvent{
			Granted:       false,
			Reason:        reason,
			AttemptLength: len(attempt),
		},
	})
}

func (s *Store) fault(op string, addr int, err error) error {
	serr := &StorageError{Op: op, Addr: addr, Err: err}
	s.emit(log.Event{
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Error(),
			Context: op,
			Addr:    &addr,
		},
	})
	return serr
}

func (s *Store) emit(event log.Event) {
	event.Timestamp = s.now()
	event.BootID = s.bootID
	event.DeviceID = s.deviceID
	s.logger.Log(event)
}
