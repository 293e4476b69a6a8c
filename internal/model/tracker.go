package model

import "fmt"

// Countdown is a duration until the next period boundary, decomposed for
// display. Zero exactly at the boundary instant.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
}

func (c Countdown) IsZero() bool {
	return c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}

func (c Countdown) String() string {
	if c.Hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", c.Hours, c.Minutes, c.Seconds)
	}
	return fmt.Sprintf("%dm %ds", c.Minutes, c.Seconds)
}

// TrackerState is the derived view of a day table at one instant. It is
// recomputed every tick and never persisted.
type TrackerState struct {
	ActivePeriod PrayerPeriod
	NextPeriod   PrayerPeriod
	Remaining    Countdown

	// IsViewingToday gates all active/next/countdown semantics; when false
	// the table is displayed raw.
	IsViewingToday bool

	// PastAll is set once every period of the day has passed; the display
	// then pins to Night with no countdown until the day rolls over.
	PastAll bool
}
