package models

// TimeField is the reserved row key holding the slot's formatted start time.
const TimeField = "Time"

// Algorithm labels identify which rotation variant produced a schedule
const (
	AlgorithmCurrent  = "Current Algorithm Schedule"
	AlgorithmBalanced = "Balanced Algorithm Schedule"
)

// Post represents a guard location with day/night headcount requirements
type Post struct {
	Name       string `json:"name"`
	DayCount   int    `json:"day_count"`
	NightCount int    `json:"night_count"`
}

// DutyWindow describes when a schedule starts, how long it runs and
// which part of the clock counts as "day" for staffing purposes
type DutyWindow struct {
	StartHour       int `json:"start_hour"`
	StartMinute     int `json:"start_minute"`
	DayStartHour    int `json:"day_start_hour"`
	DayStartMinute  int `json:"day_start_minute"`
	DayEndHour      int `json:"day_end_hour"`
	DayEndMinute    int `json:"day_end_minute"`
	DurationMinutes int `json:"duration_minutes"`
}

// ScheduleInput is everything one scheduling run needs
type ScheduleInput struct {
	Soldiers []string `json:"soldiers"`
	Posts    []Post   `json:"posts"`
	Start    string   `json:"start"`     // "HH:MM"
	DayStart string   `json:"day_start"` // "HH:MM"
	DayEnd   string   `json:"day_end"`   // "HH:MM"
	Duration int      `json:"duration_minutes"`
}

// ScheduleRow is one persisted time slot: the TimeField key plus one
// entry per post name holding that slot's comma-joined soldier names
type ScheduleRow map[string]string

// Candidate pairs a generated grid with the algorithm that built it and
// the row-oriented form ready for persistence
type Candidate struct {
	Algorithm string        `json:"algorithm"`
	Grid      [][]string    `json:"grid"`
	Rows      []ScheduleRow `json:"rows"`
}

// ScheduleResponse returns both candidate schedules to the caller.
// Each list is a singleton today but leaves room for more variants.
type ScheduleResponse struct {
	Current  []Candidate `json:"current"`
	Balanced []Candidate `json:"balanced"`
}

// SaveScheduleRequest is the body for persisting a chosen schedule
type SaveScheduleRequest struct {
	Algorithm string        `json:"algorithm"`
	Rows      []ScheduleRow `json:"rows"`
}
