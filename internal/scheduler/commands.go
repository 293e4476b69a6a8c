package scheduler

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/model"
)

// The exported methods below are safe to call from any goroutine; each one
// marshals a closure onto the tick loop so all state stays single-threaded.

func (s *Scheduler) enqueue(cmd func()) {
	s.commands <- cmd
}

// Snapshot returns the current state for the display layer.
func (s *Scheduler) Snapshot() Snapshot {
	reply := make(chan Snapshot, 1)
	s.snapshot <- reply
	return <-reply
}

// SetDate points the display at an absolute calendar day.
func (s *Scheduler) SetDate(date time.Time) {
	s.enqueue(func() { s.setViewDate(midnight(date)) })
}

// ShiftDate moves the displayed day forward or backward.
func (s *Scheduler) ShiftDate(days int) {
	s.enqueue(func() { s.setViewDate(s.viewDate.AddDate(0, 0, days)) })
}

// Today snaps the display back to the current calendar day.
func (s *Scheduler) Today() {
	s.enqueue(func() { s.setViewDate(midnight(s.now())) })
}

// ApplySettings installs updated preferences. A location change drops the
// current table and resolves the new subarea.
func (s *Scheduler) ApplySettings(settings model.Settings) {
	s.enqueue(func() {
		settings.Normalize()
		locationChanged := settings.SubareaID != s.settings.SubareaID
		s.settings = settings

		if locationChanged {
			log.Info().Str("subarea", settings.SubareaID).Msg("location changed")
			s.table = nil
			s.status = ""
			s.resolveDown = false
			s.detector.Reset()
			s.maybeResolve()
		}
	})
}

// StopPlayback forwards the user's stop action to the dispatcher from inside
// the loop, keeping the playback channel single-writer.
func (s *Scheduler) StopPlayback() {
	s.enqueue(func() { s.dispatcher.Stop() })
}

func (s *Scheduler) setViewDate(date time.Time) {
	if date.Equal(s.viewDate) {
		return
	}
	s.viewDate = date
	s.followsToday = date.Equal(midnight(s.now()))
	s.table = nil
	s.status = ""
	s.resolveDown = false
	s.detector.Reset()
	s.maybeResolve()
}
