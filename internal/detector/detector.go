// Package detector turns the continuous countdown into discrete one-shot
// notification events. A small state machine per period guarantees each
// (period, kind) pair fires at most once per calendar day.
package detector

import (
	"time"

	"github.com/tvardar/vakitd/internal/model"
)

type periodState int

const (
	idle periodState = iota
	warningFired
	onsetFired
)

// Detector watches a day table across ticks and emits Warning/Onset events
// as boundaries are crossed. Not safe for concurrent use; the scheduler owns
// it and ticks are sequential.
type Detector struct {
	states   [model.PeriodCount]periodState
	lastDate time.Time // midnight of the last observed day, zero before first tick
}

func New() *Detector {
	return &Detector{}
}

// Reset clears all per-period state, e.g. when the table is replaced.
func (d *Detector) Reset() {
	d.states = [model.PeriodCount]periodState{}
}

// Tick evaluates one instant against the table and returns the events that
// crossed their trigger window on this tick. warningMinutes is the configured
// lead time for warnings.
//
// Triggering is an exact-second match: a warning fires on the tick where the
// truncated remaining time equals exactly the threshold, an onset on the tick
// that lands inside the final second before (or exactly on) the boundary. If
// the process is suspended across that window the event is skipped, not
// retried; this mirrors the behavior the service has always had.
//
// A warning only fires for the period that is currently next. When the
// threshold exceeds the gap to the preceding period, the threshold instant
// falls while an earlier period is still pending and the warning is silently
// skipped.
func (d *Detector) Tick(table *model.DayTimeTable, now time.Time, warningMinutes int) []model.NotificationEvent {
	// day rollover resets every period so tomorrow's boundaries fire again
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !midnight.Equal(d.lastDate) {
		if !d.lastDate.IsZero() {
			d.Reset()
		}
		d.lastDate = midnight
	}

	next := -1
	for i, e := range table.Entries {
		if e.Time.At(now).After(now) {
			next = i
			break
		}
	}

	var events []model.NotificationEvent
	threshold := time.Duration(warningMinutes) * time.Minute

	for _, p := range model.Periods() {
		if d.states[p] == onsetFired {
			continue
		}
		remaining := table.Entry(p).Time.At(now).Sub(now)

		switch {
		case remaining >= 0 && remaining < time.Second:
			// the warning state may be skipped entirely when the service
			// started inside the warning window
			d.states[p] = onsetFired
			events = append(events, model.NotificationEvent{
				Kind:   model.EventOnset,
				Period: p,
			})
		case int(p) == next && d.states[p] == idle && truncSeconds(remaining) == threshold:
			d.states[p] = warningFired
			events = append(events, model.NotificationEvent{
				Kind:             model.EventWarning,
				Period:           p,
				MinutesRemaining: warningMinutes,
			})
		}
	}
	return events
}

func truncSeconds(d time.Duration) time.Duration {
	return d.Truncate(time.Second)
}
