package clock

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeAfterFuncFiresInDeadlineOrder(t *testing.T) {
	c := Fake(epoch)
	var fired []string

	c.AfterFunc(2*time.Second, func() { fired = append(fired, "late") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "early") })

	c.Advance(500 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("timers fired too soon: %v", fired)
	}

	c.Advance(2 * time.Second)
	if diff := cmp.Diff([]string{"early", "late"}, fired); diff != "" {
		t.Fatalf("fire order mismatch (-want +got):\n%s", diff)
	}
	if got := c.Now(); !got.Equal(epoch.Add(2500 * time.Millisecond)) {
		t.Fatalf("unexpected now: %v", got)
	}
}

func TestFakeStopPreventsCallback(t *testing.T) {
	c := Fake(epoch)
	called := false
	timer := c.AfterFunc(time.Second, func() { called = true })

	if c.Pending() != 1 {
		t.Fatalf("expected 1 pending timer, got %d", c.Pending())
	}
	if !timer.Stop() {
		t.Fatalf("expected Stop to report an active timer")
	}
	if timer.Stop() {
		t.Fatalf("second Stop should report false")
	}

	c.Advance(time.Second)
	if called {
		t.Fatalf("stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", c.Pending())
	}
}

func TestFakeZeroDurationRunsInline(t *testing.T) {
	c := Fake(epoch)
	called := false
	c.AfterFunc(0, func() { called = true })
	if !called {
		t.Fatalf("expected inline callback")
	}
}
