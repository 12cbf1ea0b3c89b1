package notify

import (
	"log"
	"sync"
	"time"

	"github.com/omerdahan/watchlist-api-go/pkg/models"
	"github.com/omerdahan/watchlist-api-go/pkg/scheduler"
)

// leadMinutes is how long before a shift starts its reminder fires.
const leadMinutes = 10

// Notifier delivers a shift reminder to whatever channel the caller
// wires up (push service, log, test capture).
type Notifier func(title, message string)

// Monitor watches a persisted schedule and fires a reminder 10 minutes
// before each row's time. It polls once a minute against a queue of
// pending trigger times held in row order; each trigger is removed as
// it fires.
type Monitor struct {
	mu       sync.Mutex
	pending  []string // "HH:MM" trigger times, row order
	notify   Notifier
	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
}

// NewMonitor creates a monitor that reports through the given notifier.
func NewMonitor(notify Notifier) *Monitor {
	return &Monitor{
		notify:   notify,
		interval: time.Minute,
		now:      time.Now,
	}
}

// Load replaces the pending trigger queue with one trigger per row,
// each 10 minutes before the row's Time. Rows without a parseable time
// are skipped.
func (m *Monitor) Load(rows []models.ScheduleRow) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = m.pending[:0]
	for _, row := range rows {
		hour, minute, err := scheduler.ParseClock(row[models.TimeField])
		if err != nil {
			log.Printf("skipping row with bad time %q: %v", row[models.TimeField], err)
			continue
		}
		// Subtract the lead by adding a full day minus the lead, which
		// keeps AddMinutes on non-negative deltas and wraps midnight.
		hour, minute = scheduler.AddMinutes(hour, minute, 24*60-leadMinutes)
		m.pending = append(m.pending, scheduler.FormatClock(hour, minute))
	}
	log.Printf("monitor loaded %d shift triggers", len(m.pending))
}

// Pending returns a copy of the queued trigger times.
func (m *Monitor) Pending() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.pending...)
}

// Start begins the once-a-minute polling loop. It returns immediately;
// call Stop to halt the loop.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.stop != nil {
		m.mu.Unlock()
		return
	}
	m.stop = make(chan struct{})
	stop := m.stop
	m.mu.Unlock()

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.check()
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the polling loop. Pending triggers are kept.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
}

// check fires the head trigger when the wall clock reaches it.
func (m *Monitor) check() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) == 0 {
		return
	}
	current := m.now().Format("15:04")
	if current != m.pending[0] {
		return
	}

	m.pending = m.pending[1:]
	m.notify("Next Shift", "Next shift starts in 10 minutes.")
}
