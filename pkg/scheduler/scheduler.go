package scheduler

import (
	"errors"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/omerdahan/watchlist-api-go/pkg/models"
)

// Scheduler distributes a roster of soldiers across guard posts over a
// duty window, producing a grid of post rows and time-slot columns.
type Scheduler struct {
	Soldiers []string
	Posts    []models.Post
	Window   models.DutyWindow

	reqs *Requirements
}

// NewScheduler creates a new scheduler instance
func NewScheduler(soldiers []string, posts []models.Post, window models.DutyWindow) *Scheduler {
	return &Scheduler{
		Soldiers: soldiers,
		Posts:    posts,
		Window:   window,
		reqs:     NewRequirements(posts, window),
	}
}

// WindowFromInput parses the clock strings of a ScheduleInput into a
// DutyWindow.
func WindowFromInput(in models.ScheduleInput) (models.DutyWindow, error) {
	var w models.DutyWindow
	var err error

	if w.StartHour, w.StartMinute, err = ParseClock(in.Start); err != nil {
		return w, err
	}
	if w.DayStartHour, w.DayStartMinute, err = ParseClock(in.DayStart); err != nil {
		return w, err
	}
	if w.DayEndHour, w.DayEndMinute, err = ParseClock(in.DayEnd); err != nil {
		return w, err
	}
	w.DurationMinutes = in.Duration
	return w, nil
}

// DistributeCurrent implements the fine-grained two-queue rotation.
// Slot width is durationMinutes divided by the roster size, so every
// soldier corresponds to one slot-width of the window. Soldiers are
// drawn from a primary queue and parked on a secondary one; when the
// primary runs dry the queues swap, which restarts the rotation cycle
// without anyone being drawn twice before the whole cycle has turned.
func (s *Scheduler) DistributeCurrent() ([][]string, error) {
	if len(s.Soldiers) == 0 {
		return nil, errors.New("current algorithm: roster is empty")
	}
	if s.Window.DurationMinutes <= 0 {
		return nil, errors.New("current algorithm: duration must be positive")
	}

	primary := append([]string(nil), s.Soldiers...)
	secondary := make([]string, 0, len(s.Soldiers))

	slotWidth := float64(s.Window.DurationMinutes) / float64(len(s.Soldiers))
	numSlots := int(math.Ceil(float64(s.Window.DurationMinutes) / slotWidth))

	grid := make([][]string, len(s.Posts))
	for j := range grid {
		grid[j] = make([]string, numSlots)
	}

	for i := 0; i < numSlots; i++ {
		hour, minute := AddMinutes(s.Window.StartHour, s.Window.StartMinute, int(float64(i)*slotWidth))
		for j, post := range s.Posts {
			needed, err := s.reqs.SoldiersNeeded(post.Name, hour, minute)
			if err != nil {
				return nil, err
			}

			assigned := make([]string, 0, needed)
			for k := 0; k < needed; k++ {
				if len(primary) == 0 {
					primary, secondary = secondary, primary
				}
				if len(primary) == 0 {
					break
				}
				soldier := primary[0]
				primary = primary[1:]
				assigned = append(assigned, soldier)
				secondary = append(secondary, soldier)
			}

			grid[j][i] = strings.Join(assigned, ", ")
		}
	}

	return grid, nil
}

// DistributeBalanced implements the coarse hourly rotation: fixed
// 60-minute slots and a single queue where every drawn soldier goes
// straight to the back. A roster smaller than the total concurrent
// demand leaves cells understaffed rather than failing; the same
// soldier may also be redrawn for another post within one slot.
func (s *Scheduler) DistributeBalanced() ([][]string, error) {
	const slotWidth = 60

	queue := append([]string(nil), s.Soldiers...)
	numSlots := s.Window.DurationMinutes / slotWidth

	grid := make([][]string, len(s.Posts))
	for j := range grid {
		grid[j] = make([]string, numSlots)
	}

	for i := 0; i < numSlots; i++ {
		hour, minute := AddMinutes(s.Window.StartHour, s.Window.StartMinute, i*slotWidth)
		for j, post := range s.Posts {
			needed, err := s.reqs.SoldiersNeeded(post.Name, hour, minute)
			if err != nil {
				return nil, err
			}

			assigned := make([]string, 0, needed)
			for k := 0; k < needed; k++ {
				if len(queue) == 0 {
					break
				}
				soldier := queue[0]
				queue = queue[1:]
				assigned = append(assigned, soldier)
				queue = append(queue, soldier)
			}

			grid[j][i] = strings.Join(assigned, ", ")
		}
	}

	return grid, nil
}

// RunInParallel executes both algorithms concurrently over the shared
// read-only inputs and joins the results. Each algorithm owns its own
// queues and grid, so no synchronization beyond the join is needed.
// If either algorithm fails, neither result is returned.
func (s *Scheduler) RunInParallel() (current, balanced [][][]string, err error) {
	var currentGrid, balancedGrid [][]string

	var g errgroup.Group
	g.Go(func() error {
		var err error
		currentGrid, err = s.DistributeCurrent()
		return err
	})
	g.Go(func() error {
		var err error
		balancedGrid, err = s.DistributeBalanced()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Singleton lists today; the shape leaves room for more variants
	// per algorithm later.
	return [][][]string{currentGrid}, [][][]string{balancedGrid}, nil
}
