package model

import "fmt"

// EventKind distinguishes the two boundary notifications.
type EventKind int

const (
	// EventWarning fires a configured number of minutes ahead of a period.
	EventWarning EventKind = iota
	// EventOnset fires the instant a period's time arrives.
	EventOnset
)

func (k EventKind) String() string {
	if k == EventWarning {
		return "warning"
	}
	return "onset"
}

// NotificationEvent is emitted by the boundary detector and consumed by the
// dispatcher. Each (period, kind) pair fires at most once per calendar day.
type NotificationEvent struct {
	Kind   EventKind
	Period PrayerPeriod

	// MinutesRemaining is set for warnings only.
	MinutesRemaining int
}

func (e NotificationEvent) String() string {
	if e.Kind == EventWarning {
		return fmt.Sprintf("warning(%s, %dm)", e.Period, e.MinutesRemaining)
	}
	return fmt.Sprintf("onset(%s)", e.Period)
}
