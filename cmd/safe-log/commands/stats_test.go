package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/safebox-project/safebox-go/pkg/log"
)

func TestStatsCountsByCategory(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Total Events: 4", "STATE:", "ACCESS:", "CODE:", "ERROR:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestStatsCountsAccessReasons(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	access := func(granted bool, reason log.AccessReason) log.Event {
		return log.Event{
			Timestamp: ts,
			Category:  log.CategoryAccess,
			Access:    &log.AccessEvent{Granted: granted, Reason: reason, AttemptLength: 4},
		}
	}
	events := []log.Event{
		access(false, log.ReasonMismatch),
		access(false, log.ReasonMismatch),
		access(false, log.ReasonLengthMismatch),
		access(true, log.ReasonMaster),
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Granted: 1", "MASTER:", "Denied: 3", "LENGTH_MISMATCH:"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestStatsCountsBoots(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, BootID: "boot-aaaa-1111", DeviceID: "vault", Category: log.CategoryState, State: &log.StateChangeEvent{NewState: "OPEN"}},
		{Timestamp: ts.Add(time.Second), BootID: "boot-aaaa-1111", Category: log.CategoryState, State: &log.StateChangeEvent{NewState: "LOCKED"}},
		{Timestamp: ts.Add(time.Hour), BootID: "boot-bbbb-2222", Category: log.CategoryState, State: &log.StateChangeEvent{NewState: "LOCKED"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Boots: 2") {
		t.Errorf("expected 2 boots:\n%s", output)
	}
	if !strings.Contains(output, "[boot-aaa] 2 events") {
		t.Errorf("expected first boot summary:\n%s", output)
	}
	if !strings.Contains(output, "Device: vault") {
		t.Errorf("expected device name:\n%s", output)
	}
	if !strings.Contains(output, "Last state: LOCKED") {
		t.Errorf("expected last state:\n%s", output)
	}
}

func TestStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("expected zero events:\n%s", buf.String())
	}
}
