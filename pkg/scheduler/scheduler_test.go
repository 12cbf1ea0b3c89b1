package scheduler

import (
	"reflect"
	"testing"

	"github.com/omerdahan/watchlist-api-go/pkg/models"
)

func gatePost(day, night int) []models.Post {
	return []models.Post{{Name: "Gate", DayCount: day, NightCount: night}}
}

func TestDistributeCurrent_Rotation(t *testing.T) {
	// 3 soldiers over 180 minutes -> 60-minute slots, 3 slots. With a
	// day headcount of 2, every soldier sits out exactly one slot.
	s := NewScheduler([]string{"A", "B", "C"}, gatePost(2, 2), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 180,
	})

	grid, err := s.DistributeCurrent()
	if err != nil {
		t.Fatalf("DistributeCurrent returned error: %v", err)
	}

	if len(grid) != 1 {
		t.Fatalf("expected 1 post row, got %d", len(grid))
	}
	want := []string{"A, B", "C, A", "B, C"}
	if !reflect.DeepEqual(grid[0], want) {
		t.Errorf("grid[0] = %v, want %v", grid[0], want)
	}
}

func TestDistributeCurrent_Dimensions(t *testing.T) {
	soldiers := []string{"A", "B", "C", "D", "E"}
	posts := []models.Post{
		{Name: "Gate", DayCount: 1, NightCount: 1},
		{Name: "Tower", DayCount: 2, NightCount: 1},
	}
	s := NewScheduler(soldiers, posts, models.DutyWindow{
		StartHour: 6, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 300,
	})

	grid, err := s.DistributeCurrent()
	if err != nil {
		t.Fatalf("DistributeCurrent returned error: %v", err)
	}

	// numSlots = ceil(duration / (duration/rosterSize)) = rosterSize here.
	if len(grid) != len(posts) {
		t.Errorf("expected %d rows, got %d", len(posts), len(grid))
	}
	for j := range grid {
		if len(grid[j]) != 5 {
			t.Errorf("row %d has %d slots, want 5", j, len(grid[j]))
		}
		for i, cell := range grid[j] {
			if cell == "" {
				t.Errorf("cell [%d][%d] is empty, every cell should be staffed", j, i)
			}
		}
	}
}

func TestDistributeCurrent_FIFOCycle(t *testing.T) {
	// One post needing one soldier per slot: the dequeue order must be
	// exactly the roster order. Nobody is drawn again before everyone
	// parked ahead of them has had a turn.
	s := NewScheduler([]string{"A", "B", "C"}, gatePost(1, 1), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 180,
	})

	grid, err := s.DistributeCurrent()
	if err != nil {
		t.Fatalf("DistributeCurrent returned error: %v", err)
	}
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(grid[0], want) {
		t.Errorf("grid[0] = %v, want %v", grid[0], want)
	}
}

func TestDistributeCurrent_InvalidConfig(t *testing.T) {
	window := models.DutyWindow{StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 180}

	if _, err := NewScheduler(nil, gatePost(1, 1), window).DistributeCurrent(); err == nil {
		t.Error("expected error for empty roster, got nil")
	}

	window.DurationMinutes = 0
	if _, err := NewScheduler([]string{"A"}, gatePost(1, 1), window).DistributeCurrent(); err == nil {
		t.Error("expected error for non-positive duration, got nil")
	}
}

func TestDistributeCurrent_MissingRequirement(t *testing.T) {
	s := NewScheduler([]string{"A", "B"}, gatePost(1, 1), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 120,
	})
	s.Posts = append(s.Posts, models.Post{Name: "Tower", DayCount: 1, NightCount: 1})

	// Tower was never registered with the resolver, so the run fails.
	if _, err := s.DistributeCurrent(); err == nil {
		t.Error("expected error for post missing from headcount maps, got nil")
	}
}

func TestDistributeBalanced_Rotation(t *testing.T) {
	// Single queue, fixed hourly slots: first slot takes A and B off the
	// front and reappends them, leaving [C, A, B] for the next slot.
	s := NewScheduler([]string{"A", "B", "C"}, gatePost(2, 2), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 180,
	})

	grid, err := s.DistributeBalanced()
	if err != nil {
		t.Fatalf("DistributeBalanced returned error: %v", err)
	}

	want := []string{"A, B", "C, A", "B, C"}
	if !reflect.DeepEqual(grid[0], want) {
		t.Errorf("grid[0] = %v, want %v", grid[0], want)
	}
}

func TestDistributeBalanced_TruncatesPartialHour(t *testing.T) {
	s := NewScheduler([]string{"A", "B"}, gatePost(1, 1), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 150,
	})

	grid, err := s.DistributeBalanced()
	if err != nil {
		t.Fatalf("DistributeBalanced returned error: %v", err)
	}
	if len(grid[0]) != 2 {
		t.Errorf("150 minutes should truncate to 2 hourly slots, got %d", len(grid[0]))
	}
}

func TestDistributeBalanced_EmptyRoster(t *testing.T) {
	s := NewScheduler(nil, gatePost(1, 1), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 120,
	})

	grid, err := s.DistributeBalanced()
	if err != nil {
		t.Fatalf("balanced algorithm should not error on an empty roster: %v", err)
	}
	for i, cell := range grid[0] {
		if cell != "" {
			t.Errorf("cell [0][%d] = %q, want empty with no roster", i, cell)
		}
	}
}

func TestDistributeBalanced_SameSlotRedraw(t *testing.T) {
	// Two posts each need one soldier but the roster has one name: the
	// single-queue rotation redraws the same soldier within the slot.
	posts := []models.Post{
		{Name: "Gate", DayCount: 1, NightCount: 1},
		{Name: "Tower", DayCount: 1, NightCount: 1},
	}
	s := NewScheduler([]string{"A"}, posts, models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 60,
	})

	grid, err := s.DistributeBalanced()
	if err != nil {
		t.Fatalf("DistributeBalanced returned error: %v", err)
	}
	if grid[0][0] != "A" || grid[1][0] != "A" {
		t.Errorf("expected A at both posts, got %q and %q", grid[0][0], grid[1][0])
	}
}

func TestDeterminism(t *testing.T) {
	posts := []models.Post{
		{Name: "Gate", DayCount: 2, NightCount: 1},
		{Name: "Tower", DayCount: 1, NightCount: 1},
	}
	window := models.DutyWindow{
		StartHour: 16, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 240,
	}
	soldiers := []string{"A", "B", "C", "D"}

	first := NewScheduler(soldiers, posts, window)
	second := NewScheduler(soldiers, posts, window)

	grid1, err := first.DistributeCurrent()
	if err != nil {
		t.Fatalf("DistributeCurrent returned error: %v", err)
	}
	grid2, err := second.DistributeCurrent()
	if err != nil {
		t.Fatalf("DistributeCurrent returned error: %v", err)
	}
	if !reflect.DeepEqual(grid1, grid2) {
		t.Error("current algorithm is not deterministic across identical runs")
	}

	bal1, _ := first.DistributeBalanced()
	bal2, _ := second.DistributeBalanced()
	if !reflect.DeepEqual(bal1, bal2) {
		t.Error("balanced algorithm is not deterministic across identical runs")
	}
}

func TestRunInParallel(t *testing.T) {
	s := NewScheduler([]string{"A", "B", "C"}, gatePost(2, 1), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 180,
	})

	current, balanced, err := s.RunInParallel()
	if err != nil {
		t.Fatalf("RunInParallel returned error: %v", err)
	}
	if len(current) != 1 || len(balanced) != 1 {
		t.Fatalf("expected singleton result lists, got %d and %d", len(current), len(balanced))
	}

	wantCurrent, err := s.DistributeCurrent()
	if err != nil {
		t.Fatalf("DistributeCurrent returned error: %v", err)
	}
	wantBalanced, err := s.DistributeBalanced()
	if err != nil {
		t.Fatalf("DistributeBalanced returned error: %v", err)
	}
	if !reflect.DeepEqual(current[0], wantCurrent) {
		t.Error("parallel current grid differs from sequential run")
	}
	if !reflect.DeepEqual(balanced[0], wantBalanced) {
		t.Error("parallel balanced grid differs from sequential run")
	}
}

func TestRunInParallel_FailTogether(t *testing.T) {
	// Empty roster fails the current algorithm; no partial result comes back.
	s := NewScheduler(nil, gatePost(1, 1), models.DutyWindow{
		StartHour: 8, DayStartHour: 6, DayEndHour: 18, DurationMinutes: 120,
	})

	current, balanced, err := s.RunInParallel()
	if err == nil {
		t.Fatal("expected error from RunInParallel, got nil")
	}
	if current != nil || balanced != nil {
		t.Error("expected no partial results when one algorithm fails")
	}
}
