package nhl

import "testing"

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		number     int
		periodType PeriodType
		want       string
	}{
		{1, PeriodRegulation, "1st"},
		{2, PeriodRegulation, "2nd"},
		{3, PeriodRegulation, "3rd"},
		{4, PeriodOvertime, "OT"},
		{5, PeriodOvertime, "2OT"},
		{5, PeriodShootout, "SO"},
	}
	for _, tt := range tests {
		if got := FormatPeriod(tt.number, tt.periodType); got != tt.want {
			t.Errorf("FormatPeriod(%d, %s) = %q, want %q", tt.number, tt.periodType, got, tt.want)
		}
	}
}

func TestFormatGameDate(t *testing.T) {
	if got := FormatGameDate("2025-12-24"); got != "12/24" {
		t.Errorf("FormatGameDate = %q, want 12/24", got)
	}
	// Unparseable dates pass through.
	if got := FormatGameDate("soon"); got != "soon" {
		t.Errorf("FormatGameDate fallback = %q", got)
	}
}

func TestStatusText(t *testing.T) {
	live := GameClock{TimeRemaining: "09:27"}
	intermission := GameClock{InIntermission: true}

	tests := []struct {
		name   string
		state  GameState
		period PeriodDescriptor
		clock  GameClock
		want   string
	}{
		{"live", GameStateLive, PeriodDescriptor{Number: 2, PeriodType: PeriodRegulation}, live, "2nd 09:27"},
		{"intermission", GameStateLive, PeriodDescriptor{Number: 1, PeriodType: PeriodRegulation}, intermission, "1st INT"},
		{"overtime", GameStateCritical, PeriodDescriptor{Number: 4, PeriodType: PeriodOvertime}, live, "OT 09:27"},
		{"final", GameStateFinal, PeriodDescriptor{Number: 3, PeriodType: PeriodRegulation}, GameClock{}, "Final"},
		{"final ot", GameStateOff, PeriodDescriptor{Number: 4, PeriodType: PeriodOvertime}, GameClock{}, "Final/OT"},
		{"final so", GameStateFinal, PeriodDescriptor{Number: 5, PeriodType: PeriodShootout}, GameClock{}, "Final/SO"},
		{"postponed", GameStatePostponed, PeriodDescriptor{}, GameClock{}, "Postponed"},
	}
	for _, tt := range tests {
		got := StatusText(tt.state, tt.period, tt.clock, "", "12h")
		if got != tt.want {
			t.Errorf("%s: StatusText = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatStartTimeFallsBackToTBD(t *testing.T) {
	if got := FormatStartTime("not a time", "12h"); got != "TBD" {
		t.Errorf("FormatStartTime = %q, want TBD", got)
	}
}
