// Package persistence provides a file-backed storage image for the safe.
//
// The image file holds the raw content of the emulated EEPROM, one byte per
// address, so it can be inspected with any hex viewer. Every write goes to the
// file before it is acknowledged, which lets the lock state and the unlock
// code survive process restarts the same way they survive a power cycle on
// real hardware.
package persistence
