package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/safebox-project/safebox-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Granted          map[log.AccessReason]int
	Denied           map[log.AccessReason]int
	CodeChanges      int
	Errors           int
	Boots            map[string]*BootStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// BootStats holds statistics for a single power cycle.
type BootStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	DeviceID  string
	LastState string
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Granted:          make(map[log.AccessReason]int),
		Denied:           make(map[log.AccessReason]int),
		Boots:            make(map[string]*BootStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	boot, ok := s.Boots[event.BootID]
	if !ok {
		boot = &BootStats{
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.Boots[event.BootID] = boot
	}
	boot.Events++
	if event.Timestamp.After(boot.LastSeen) {
		boot.LastSeen = event.Timestamp
	}
	if event.DeviceID != "" && boot.DeviceID == "" {
		boot.DeviceID = event.DeviceID
	}

	switch {
	case event.State != nil:
		boot.LastState = event.State.NewState
	case event.Access != nil:
		if event.Access.Granted {
			s.Granted[event.Access.Reason]++
		} else {
			s.Denied[event.Access.Reason]++
		}
	case event.Code != nil:
		s.CodeChanges++
	case event.Error != nil:
		s.Errors++
	}
}

var allReasons = []log.AccessReason{
	log.ReasonNoCode,
	log.ReasonMaster,
	log.ReasonMatch,
	log.ReasonLengthMismatch,
	log.ReasonMismatch,
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Safe Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryState, log.CategoryAccess, log.CategoryCode, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	printReasons(w, "Granted", stats.Granted)
	printReasons(w, "Denied", stats.Denied)

	if stats.CodeChanges > 0 {
		fmt.Fprintf(w, "Code Changes: %d\n", stats.CodeChanges)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Boots: %d\n", len(stats.Boots))
	if len(stats.Boots) > 0 {
		type bootInfo struct {
			id    string
			stats *BootStats
		}
		boots := make([]bootInfo, 0, len(stats.Boots))
		for id, bs := range stats.Boots {
			boots = append(boots, bootInfo{id, bs})
		}
		sort.Slice(boots, func(i, j int) bool {
			return boots[i].stats.FirstSeen.Before(boots[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, b := range boots {
			duration := b.stats.LastSeen.Sub(b.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(b.id), b.stats.Events, duration)
			if b.stats.DeviceID != "" {
				fmt.Fprintf(w, "           Device: %s\n", b.stats.DeviceID)
			}
			if b.stats.LastState != "" {
				fmt.Fprintf(w, "           Last state: %s\n", b.stats.LastState)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

func printReasons(w io.Writer, title string, counts map[log.AccessReason]int) {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return
	}

	fmt.Fprintf(w, "%s: %d\n", title, total)
	for _, r := range allReasons {
		if n := counts[r]; n > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", r.String()+":", n)
		}
	}
	fmt.Fprintln(w)
}
