package scheduler

import (
	"fmt"

	"github.com/omerdahan/watchlist-api-go/pkg/models"
)

// SlotWidth returns the slot duration in minutes for a given algorithm
// label. The grid itself carries no metadata about its slot width, so
// the caller must say which algorithm produced it.
func SlotWidth(algorithm string, durationMinutes, rosterSize int) (float64, error) {
	switch algorithm {
	case models.AlgorithmBalanced:
		return 60, nil
	case models.AlgorithmCurrent:
		if rosterSize == 0 {
			return 0, fmt.Errorf("cannot derive slot width: roster is empty")
		}
		return float64(durationMinutes) / float64(rosterSize), nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

// BuildRows converts a grid into its persisted row-oriented form: one
// row per time slot with a formatted Time field (minute rounded up to
// the nearest 5) and one entry per post name.
func BuildRows(grid [][]string, posts []models.Post, window models.DutyWindow, algorithm string, rosterSize int) ([]models.ScheduleRow, error) {
	if len(grid) != len(posts) {
		return nil, fmt.Errorf("grid has %d rows, expected %d posts", len(grid), len(posts))
	}
	if len(grid) == 0 {
		return []models.ScheduleRow{}, nil
	}

	width, err := SlotWidth(algorithm, window.DurationMinutes, rosterSize)
	if err != nil {
		return nil, err
	}

	numSlots := len(grid[0])
	rows := make([]models.ScheduleRow, 0, numSlots)
	for i := 0; i < numSlots; i++ {
		row := models.ScheduleRow{}
		for j, post := range posts {
			row[post.Name] = grid[j][i]
		}
		hour, minute := AddMinutes(window.StartHour, window.StartMinute, int(float64(i)*width))
		row[models.TimeField] = FormatClock(hour, RoundUpToNearest5(minute))
		rows = append(rows, row)
	}

	return rows, nil
}
