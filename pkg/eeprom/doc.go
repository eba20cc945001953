// Package eeprom defines the byte-addressable non-volatile storage contract
// used by the safe state store.
//
// Storage is addressed by absolute byte offset starting at zero. Factory-fresh
// storage reads 0xFF at every address. Implementations report out-of-range
// access with ErrOutOfRange and surface hardware or I/O faults as errors
// rather than returning stale data.
//
// # Implementations
//
//   - Memory: volatile in-process image, used by tests and simulation
//   - persistence.FileStorage: image file on disk that survives restarts
//
// A mockery-generated mock lives in the mocks subpackage.
package eeprom
