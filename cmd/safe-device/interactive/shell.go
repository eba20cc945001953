// Package interactive provides the operator shell for safe-device.
//
// The shell plays the role of the keypad: every command maps to one
// operation of the safe's state store.
package interactive

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/safebox-project/safebox-go/pkg/safe"
)

// Store is the part of *safe.Store the shell drives.
type Store interface {
	Lock() error
	Unlock(attempt string) (bool, error)
	SetCode(code string) error
	Locked() bool
	CodeState() (safe.CodeState, error)
	MaxCodeLength() int
}

// Image exposes a copy of the raw storage for the dump command.
type Image interface {
	Snapshot() []byte
}

// Shell handles interactive mode for safe-device.
type Shell struct {
	store Store
	image Image
	name  string
	out   io.Writer
	rl    *readline.Instance
}

// New creates a shell reading from the terminal. image may be nil, which
// disables the dump command.
func New(store Store, image Image, name string) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          name + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		store: store,
		image: image,
		name:  name,
		out:   rl.Stdout(),
		rl:    rl,
	}, nil
}

// NewWithWriter creates a shell without a terminal. Commands are fed
// through Handle and output goes to out.
func NewWithWriter(store Store, image Image, name string, out io.Writer) *Shell {
	return &Shell{
		store: store,
		image: image,
		name:  name,
		out:   out,
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Close releases the terminal.
func (s *Shell) Close() {
	if s.rl != nil {
		s.rl.Close()
	}
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Handle(line) {
			cancel()
			return
		}
	}
}

// Handle executes one command line. It returns false when the shell
// should exit.
func (s *Shell) Handle(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "lock", "l":
		s.cmdLock()

	case "unlock", "u":
		s.cmdUnlock(args)

	case "setcode", "code":
		s.cmdSetCode(args)

	case "status", "s":
		s.cmdStatus()

	case "dump", "d":
		s.cmdDump()

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Safe Commands:
  lock               - Lock the safe
  unlock [code]      - Unlock with a code (prompts if omitted)
  setcode <code>     - Program a new unlock code
  status             - Show lock state and code length
  dump               - Hex dump of the EEPROM image
  help               - Show this help
  quit               - Exit`)
}

func (s *Shell) cmdLock() {
	if err := s.store.Lock(); err != nil {
		fmt.Fprintf(s.out, "Lock failed: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Locked")
}

func (s *Shell) cmdUnlock(args []string) {
	var attempt string
	switch {
	case len(args) > 0:
		attempt = args[0]
	case s.rl != nil:
		b, err := s.rl.ReadPassword("code: ")
		if err != nil {
			return
		}
		attempt = strings.TrimSpace(string(b))
	default:
		fmt.Fprintln(s.out, "Usage: unlock <code>")
		return
	}

	ok, err := s.store.Unlock(attempt)
	if err != nil {
		fmt.Fprintf(s.out, "Unlock failed: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(s.out, "Wrong code")
		return
	}
	fmt.Fprintln(s.out, "Unlocked")
}

func (s *Shell) cmdSetCode(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: setcode <code>")
		return
	}
	code := args[0]

	if !isDigits(code) {
		fmt.Fprintln(s.out, "Code must contain digits only")
		return
	}
	if err := s.store.SetCode(code); err != nil {
		if errors.Is(err, safe.ErrInvalidArgument) {
			fmt.Fprintf(s.out, "Code too long (max %d digits)\n", s.store.MaxCodeLength())
			return
		}
		fmt.Fprintf(s.out, "Set code failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Code set (%d digits)\n", len(code))
}

func (s *Shell) cmdStatus() {
	fmt.Fprintln(s.out, "\nSafe Status")
	fmt.Fprintln(s.out, "-------------------------------------------")
	fmt.Fprintf(s.out, "  Name:     %s\n", s.name)

	state := "OPEN"
	if s.store.Locked() {
		state = "LOCKED"
	}
	fmt.Fprintf(s.out, "  State:    %s\n", state)

	cs, err := s.store.CodeState()
	if err != nil {
		fmt.Fprintf(s.out, "  Code:     error: %v\n", err)
	} else {
		fmt.Fprintf(s.out, "  Code:     %s\n", cs)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) cmdDump() {
	if s.image == nil {
		fmt.Fprintln(s.out, "No image available")
		return
	}
	img := s.image.Snapshot()

	// Everything past the header and the longest possible code is unused.
	n := min(len(img), safe.AddrCode+safe.MaxCodeLength)
	fmt.Fprint(s.out, hex.Dump(img[:n]))
}

func isDigits(code string) bool {
	if code == "" {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
