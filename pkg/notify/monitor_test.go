package notify

import (
	"reflect"
	"testing"
	"time"

	"github.com/omerdahan/watchlist-api-go/pkg/models"
)

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
	}
}

func TestLoad_ComputesTriggerTimes(t *testing.T) {
	m := NewMonitor(func(title, message string) {})
	m.Load([]models.ScheduleRow{
		{models.TimeField: "08:00", "Gate": "A, B"},
		{models.TimeField: "09:00", "Gate": "C, A"},
		{models.TimeField: "00:05", "Gate": "B, C"},
	})

	want := []string{"07:50", "08:50", "23:55"}
	if got := m.Pending(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pending() = %v, want %v", got, want)
	}
}

func TestLoad_SkipsBadTimes(t *testing.T) {
	m := NewMonitor(func(title, message string) {})
	m.Load([]models.ScheduleRow{
		{models.TimeField: "not a time", "Gate": "A"},
		{models.TimeField: "10:00", "Gate": "B"},
	})

	if got := m.Pending(); len(got) != 1 || got[0] != "09:50" {
		t.Errorf("Pending() = %v, want [09:50]", got)
	}
}

func TestCheck_FiresAtTriggerTime(t *testing.T) {
	fired := 0
	m := NewMonitor(func(title, message string) { fired++ })
	m.Load([]models.ScheduleRow{{models.TimeField: "08:00", "Gate": "A"}})

	m.now = fixedClock(7, 49)
	m.check()
	if fired != 0 {
		t.Fatalf("fired %d notifications before the trigger time", fired)
	}

	m.now = fixedClock(7, 50)
	m.check()
	if fired != 1 {
		t.Fatalf("expected 1 notification at the trigger time, got %d", fired)
	}
	if len(m.Pending()) != 0 {
		t.Error("trigger was not removed after firing")
	}

	// A second tick at the same minute must not fire again.
	m.check()
	if fired != 1 {
		t.Errorf("expected no further notifications, got %d", fired)
	}
}

func TestLoad_ReplacesPendingQueue(t *testing.T) {
	m := NewMonitor(func(title, message string) {})
	m.Load([]models.ScheduleRow{{models.TimeField: "08:00"}})
	m.Load([]models.ScheduleRow{{models.TimeField: "12:00"}})

	if got := m.Pending(); len(got) != 1 || got[0] != "11:50" {
		t.Errorf("Pending() = %v, want [11:50]", got)
	}
}

func TestStartStop(t *testing.T) {
	fired := make(chan struct{}, 1)
	m := NewMonitor(func(title, message string) { fired <- struct{}{} })
	m.interval = time.Millisecond
	m.now = fixedClock(7, 50)
	m.Load([]models.ScheduleRow{{models.TimeField: "08:00"}})

	m.Start()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("monitor did not fire within a second")
	}
	m.Stop()

	// Stopping twice is harmless.
	m.Stop()
}
