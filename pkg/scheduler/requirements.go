package scheduler

import (
	"fmt"

	"github.com/omerdahan/watchlist-api-go/pkg/models"
)

// Requirements resolves how many soldiers a post needs at a given clock
// time, based on per-post day/night headcounts and the duty window's day
// period.
type Requirements struct {
	DayCounts   map[string]int
	NightCounts map[string]int
	Window      models.DutyWindow
}

// NewRequirements builds a Requirements resolver from an ordered post list.
func NewRequirements(posts []models.Post, window models.DutyWindow) *Requirements {
	r := &Requirements{
		DayCounts:   make(map[string]int, len(posts)),
		NightCounts: make(map[string]int, len(posts)),
		Window:      window,
	}
	for _, p := range posts {
		r.DayCounts[p.Name] = p.DayCount
		r.NightCounts[p.Name] = p.NightCount
	}
	return r
}

// IsDay reports whether the given time falls inside the day window.
// Both ends are inclusive: with dayStart == dayEnd only that exact
// minute counts as day.
func (r *Requirements) IsDay(hour, minute int) bool {
	w := r.Window
	afterStart := hour > w.DayStartHour || (hour == w.DayStartHour && minute >= w.DayStartMinute)
	beforeEnd := hour < w.DayEndHour || (hour == w.DayEndHour && minute <= w.DayEndMinute)
	return afterStart && beforeEnd
}

// SoldiersNeeded returns the headcount a post requires at the given time.
// It fails if the post has no entry in either headcount map, or if an
// entry is below one.
func (r *Requirements) SoldiersNeeded(postName string, hour, minute int) (int, error) {
	day, ok := r.DayCounts[postName]
	if !ok {
		return 0, fmt.Errorf("post %q has no day headcount", postName)
	}
	night, ok := r.NightCounts[postName]
	if !ok {
		return 0, fmt.Errorf("post %q has no night headcount", postName)
	}

	needed := night
	if r.IsDay(hour, minute) {
		needed = day
	}
	if needed < 1 {
		return 0, fmt.Errorf("post %q has invalid headcount %d", postName, needed)
	}
	return needed, nil
}
