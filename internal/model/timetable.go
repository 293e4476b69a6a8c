package model

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision, as delivered by the
// provider ("HH:MM").
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("malformed time of day %q: %w", s, err)
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the offset from midnight in minutes, used for ordering.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// At anchors the time of day onto a calendar date in the given location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// TimeTableEntry is one (period, time) pair of a day's table.
type TimeTableEntry struct {
	Period PrayerPeriod
	Time   TimeOfDay
}

// DayTimeTable holds the six prayer times of one calendar day. It is built
// once per (subarea, date) resolution and never mutated; a date or location
// change replaces it wholesale.
type DayTimeTable struct {
	Date    time.Time // midnight of the covered day
	Entries [PeriodCount]TimeTableEntry

	// optional lunar calendar strings passed through from the provider
	LunarDateLong  string
	LunarDateShort string
}

// Entry returns the entry for a period.
func (t *DayTimeTable) Entry(p PrayerPeriod) TimeTableEntry {
	return t.Entries[p]
}

// Validate checks the table invariant: six entries in fixed period order,
// strictly increasing in time of day.
func (t *DayTimeTable) Validate() error {
	for i, e := range t.Entries {
		if e.Period != PrayerPeriod(i) {
			return fmt.Errorf("entry %d holds %s, want %s", i, e.Period, PrayerPeriod(i))
		}
		if i > 0 && e.Time.Minutes() <= t.Entries[i-1].Time.Minutes() {
			return fmt.Errorf("%s (%s) not after %s (%s)",
				e.Period, e.Time, t.Entries[i-1].Period, t.Entries[i-1].Time)
		}
	}
	return nil
}

// SameDay reports whether the table covers the calendar day of ts.
func (t *DayTimeTable) SameDay(ts time.Time) bool {
	y1, m1, d1 := t.Date.Date()
	y2, m2, d2 := ts.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
