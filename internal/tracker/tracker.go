// Package tracker derives the active/next period view of a day table at a
// given instant. Compute is a pure function so every tick can recompute the
// full state from scratch.
package tracker

import (
	"time"

	"github.com/tvardar/vakitd/internal/model"
)

// Compute walks the six entries in fixed order and returns the tracker state
// for the instant now.
//
// When isToday is false the countdown semantics do not apply: the caller
// displays all six entries raw and ActivePeriod/NextPeriod/Remaining are
// meaningless.
//
// Past the Night entry the state pins to Night with a zero countdown and
// PastAll set; it holds there until the day rolls over.
func Compute(table *model.DayTimeTable, now time.Time, isToday bool) model.TrackerState {
	state := model.TrackerState{IsViewingToday: isToday}
	if !isToday {
		return state
	}

	next := -1
	for i, e := range table.Entries {
		if e.Time.At(now).After(now) {
			next = i
			break
		}
	}

	if next == -1 {
		state.PastAll = true
		state.ActivePeriod = model.Night
		state.NextPeriod = model.Dawn
		return state
	}

	state.NextPeriod = model.PrayerPeriod(next)
	if next == 0 {
		// before Dawn the night of the previous day is still running
		state.ActivePeriod = model.Night
	} else {
		state.ActivePeriod = model.PrayerPeriod(next - 1)
	}
	state.Remaining = remainingUntil(table.Entries[next].Time, now)
	return state
}

// remainingUntil truncates to whole seconds and decomposes; never negative.
func remainingUntil(t model.TimeOfDay, now time.Time) model.Countdown {
	diff := t.At(now).Sub(now)
	if diff < 0 {
		diff = 0
	}
	total := int(diff / time.Second)
	return model.Countdown{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// DisplayWindow returns the entries to render for the state: starting at the
// active period when viewing today (earlier rows are dropped), pinned to the
// Night row once every period has passed, and the whole table otherwise.
func DisplayWindow(table *model.DayTimeTable, state model.TrackerState) []model.TimeTableEntry {
	if !state.IsViewingToday {
		return table.Entries[:]
	}
	if state.PastAll {
		return table.Entries[model.Night:]
	}
	start := int(state.ActivePeriod)
	if state.NextPeriod == model.Dawn && state.ActivePeriod == model.Night {
		// before Dawn nothing has passed yet today
		start = 0
	}
	return table.Entries[start:]
}
