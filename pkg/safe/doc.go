// Package safe implements the persistent lock-state store of an electronic safe.
//
// A Store is the single authority over the lock flag and the unlock code. It
// keeps the lock flag cached in memory and writes it through to a
// byte-addressable non-volatile region on every change, so the state survives
// power loss. The unlock code is read lazily from storage on each attempt.
//
// # Storage Layout
//
//	offset 0     LockedFlag   0 = open, 1 = locked
//	offset 1     CodeLength   0-254 = length, 0xFF = no code set
//	offset 2..   CodeBytes    CodeLength raw bytes, no terminator
//
// Factory-fresh storage is all 0xFF, which reads as "open, no code".
//
// # Unlock Decision
//
// Unlock evaluates, in order:
//
//  1. no code set: always succeeds
//  2. attempt length differs from the stored length: fails
//  3. attempt equals the master password: succeeds
//  4. byte-by-byte comparison with the stored code: fails on first mismatch
//
// A rejected attempt is reported as false with a nil error. Errors are only
// returned for storage faults, in which case the lock state is left unchanged.
//
// The master password check happens after the length check, so the override
// only works when its length equals the programmed code length.
//
// # Known Weaknesses
//
// The stored code is plain bytes and the comparison stops at the first
// mismatching byte, so its duration leaks the length of the matching prefix.
// Attempts are not rate limited.
package safe
