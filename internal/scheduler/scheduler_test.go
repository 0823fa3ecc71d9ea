package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestRunRefresh_SendsRenderedReport(t *testing.T) {
	refreshed := false
	var sent []string

	s, err := NewScheduler(time.Minute,
		func() error {
			refreshed = true
			return nil
		},
		func() (string, error) { return "season report", nil },
		func(msg string) error {
			sent = append(sent, msg)
			return nil
		},
	)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	s.runRefresh()

	if !refreshed {
		t.Error("refresh was not invoked")
	}
	if len(sent) != 1 || sent[0] != "season report" {
		t.Errorf("sent messages = %v, want the rendered report", sent)
	}
}

func TestRunRefresh_RefreshErrorSkipsReport(t *testing.T) {
	reported := false
	sentCount := 0

	s, err := NewScheduler(time.Minute,
		func() error { return errors.New("archive unreadable") },
		func() (string, error) {
			reported = true
			return "", nil
		},
		func(string) error {
			sentCount++
			return nil
		},
	)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	s.runRefresh()

	if reported {
		t.Error("report ran after a failed refresh")
	}
	if sentCount != 0 {
		t.Errorf("sent %d messages after a failed refresh, want 0", sentCount)
	}
}

func TestRunRefresh_ReportErrorSkipsSend(t *testing.T) {
	sentCount := 0

	s, err := NewScheduler(time.Minute,
		func() error { return nil },
		func() (string, error) { return "", errors.New("no season stored") },
		func(string) error {
			sentCount++
			return nil
		},
	)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	s.runRefresh()

	if sentCount != 0 {
		t.Errorf("sent %d messages after a failed report, want 0", sentCount)
	}
}
