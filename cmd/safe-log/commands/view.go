// Package commands implements the safe-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/safebox-project/safebox-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category *log.Category
	Granted  *bool
	BootID   string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		BootID:   f.BootID,
		Category: f.Category,
		Granted:  f.Granted,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [boot:id] device CATEGORY
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	bootID := shortenID(event.BootID)

	if event.DeviceID != "" {
		fmt.Fprintf(w, "%s [boot:%s] %s %s\n", ts, bootID, event.DeviceID, event.Category)
	} else {
		fmt.Fprintf(w, "%s [boot:%s] %s\n", ts, bootID, event.Category)
	}

	switch {
	case event.State != nil:
		formatStateChangeDetails(w, event.State)
	case event.Access != nil:
		formatAccessDetails(w, event.Access)
	case event.Code != nil:
		fmt.Fprintf(w, "  New code: %d digits\n", event.Code.Length)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of an ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatAccessDetails(w io.Writer, a *log.AccessEvent) {
	outcome := "DENIED"
	if a.Granted {
		outcome = "GRANTED"
	}
	fmt.Fprintf(w, "  %s (%s)\n", outcome, a.Reason)
	fmt.Fprintf(w, "  Attempt: %d digits\n", a.AttemptLength)
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
	if err.Addr != nil {
		fmt.Fprintf(w, "  Address: 0x%02x\n", *err.Addr)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "access":
		return log.CategoryAccess, nil
	case "code":
		return log.CategoryCode, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be state, access, code, or error)", s)
	}
}

// ParseOutcomeFlag parses an access outcome (granted or denied).
func ParseOutcomeFlag(s string) (bool, error) {
	return parseOutcome(s)
}

func parseOutcome(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "granted":
		return true, nil
	case "denied":
		return false, nil
	default:
		return false, fmt.Errorf("invalid outcome: %s (must be granted or denied)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
