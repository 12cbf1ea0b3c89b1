package scheduler

import "testing"

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		hour, minute, delta  int
		wantHour, wantMinute int
	}{
		{8, 0, 0, 8, 0},
		{8, 0, 60, 9, 0},
		{8, 30, 45, 9, 15},
		{23, 30, 45, 0, 15},
		{23, 59, 1, 0, 0},
		{0, 0, 1440, 0, 0},
		{22, 0, 300, 3, 0},
	}

	for _, tt := range tests {
		gotHour, gotMinute := AddMinutes(tt.hour, tt.minute, tt.delta)
		if gotHour != tt.wantHour || gotMinute != tt.wantMinute {
			t.Errorf("AddMinutes(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.hour, tt.minute, tt.delta, gotHour, gotMinute, tt.wantHour, tt.wantMinute)
		}
	}
}

func TestRoundUpToNearest5(t *testing.T) {
	tests := []struct {
		minute, want int
	}{
		{0, 0},
		{1, 5},
		{4, 5},
		{5, 5},
		{6, 10},
		{33, 35},
		{55, 55},
		{56, 0},
		{59, 0},
	}

	for _, tt := range tests {
		if got := RoundUpToNearest5(tt.minute); got != tt.want {
			t.Errorf("RoundUpToNearest5(%d) = %d, want %d", tt.minute, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("08:30")
	if err != nil {
		t.Fatalf("ParseClock(\"08:30\") returned error: %v", err)
	}
	if hour != 8 || minute != 30 {
		t.Errorf("ParseClock(\"08:30\") = (%d, %d), want (8, 30)", hour, minute)
	}

	for _, bad := range []string{"", "8", "8:3:0", "ab:cd", "24:00", "12:60", "-1:00"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) expected error, got nil", bad)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(8, 5); got != "08:05" {
		t.Errorf("FormatClock(8, 5) = %q, want \"08:05\"", got)
	}
	if got := FormatClock(23, 0); got != "23:00" {
		t.Errorf("FormatClock(23, 0) = %q, want \"23:00\"", got)
	}
}
