// Package scheduler drives the tracking pipeline on a fixed one second tick.
// One goroutine owns the displayed date, the current day table, the tracker
// state and the boundary detector; everything else talks to it through
// commands marshalled onto the tick loop or through read-only snapshots.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/detector"
	"github.com/tvardar/vakitd/internal/model"
	"github.com/tvardar/vakitd/internal/notify"
	"github.com/tvardar/vakitd/internal/timetable"
	"github.com/tvardar/vakitd/internal/tracker"
)

const tickInterval = time.Second

// TableResolver is the resolution boundary the scheduler depends on.
type TableResolver interface {
	Resolve(subareaID string, date time.Time) (*model.DayTimeTable, error)
}

// Snapshot is the read-only view served to the HTTP layer, rebuilt after
// every tick.
type Snapshot struct {
	Date      time.Time
	Table     *model.DayTimeTable
	State     model.TrackerState
	Settings  model.Settings
	Status    string // last resolution error, empty when healthy
	Resolving bool
}

type resolveResult struct {
	date  time.Time
	table *model.DayTimeTable
	err   error
}

// Scheduler owns the current day pointer and all derived state.
type Scheduler struct {
	resolver   TableResolver
	dispatcher notify.Dispatcher
	detector   *detector.Detector

	// now is swapped out by tests to drive virtual time
	now func() time.Time

	settings model.Settings
	viewDate time.Time
	table    *model.DayTimeTable
	state    model.TrackerState
	status   string

	// at most one resolution in flight; polled each tick, never awaited
	pending      chan resolveResult
	resolveDown  bool // last resolution failed; wait for a command or rollover
	lastToday    time.Time
	followsToday bool

	commands chan func()
	snapshot chan chan Snapshot
}

func New(resolver TableResolver, dispatcher notify.Dispatcher, settings model.Settings) *Scheduler {
	settings.Normalize()
	s := &Scheduler{
		resolver:     resolver,
		dispatcher:   dispatcher,
		detector:     detector.New(),
		now:          time.Now,
		settings:     settings,
		commands:     make(chan func(), 16),
		snapshot:     make(chan chan Snapshot),
		followsToday: true,
	}
	s.viewDate = midnight(s.now())
	s.lastToday = s.viewDate
	return s
}

// Run ticks until the context is cancelled. Ticks are strictly sequential;
// a tick's detector and dispatch work finishes before the next one starts.
func (s *Scheduler) Run(ctx context.Context) {
	if s.settings.HasLocation() {
		s.submitResolution()
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-s.commands:
			cmd()
		case reply := <-s.snapshot:
			reply <- s.buildSnapshot()
		case <-ticker.C:
			s.tick(s.now())
		}
	}
}

// tick runs one scheduling step at the instant now.
func (s *Scheduler) tick(now time.Time) {
	s.rollover(now)
	s.pollResolution()

	// no table yet: tracker and detector are skipped entirely
	if s.table == nil {
		return
	}

	isToday := s.table.SameDay(now)
	s.state = tracker.Compute(s.table, now, isToday)

	if isToday {
		events := s.detector.Tick(s.table, now, s.settings.WarningMinutes)
		for _, e := range events {
			log.Info().Str("event", e.String()).Msg("boundary crossed")
			s.dispatcher.Notify(e, s.settings)
		}
	}
}

// rollover detects the calendar day changing under us. The detector resets
// so every boundary can fire again, and when the user was looking at today
// the view follows along to the new day. Clearing resolveDown means a date
// whose resolution failed gets retried here even while browsing.
func (s *Scheduler) rollover(now time.Time) {
	today := midnight(now)
	if today.Equal(s.lastToday) {
		return
	}
	s.lastToday = today
	s.detector.Reset()
	s.resolveDown = false

	if s.followsToday {
		s.viewDate = today
		s.table = nil
	}
	s.maybeResolve()
}

// submitResolution starts a provider lookup off the tick goroutine. The
// result lands in a buffered channel consumed by a later tick.
func (s *Scheduler) submitResolution() {
	if s.pending != nil {
		return
	}
	ch := make(chan resolveResult, 1)
	s.pending = ch

	subareaID, date := s.settings.SubareaID, s.viewDate
	go func() {
		table, err := s.resolver.Resolve(subareaID, date)
		ch <- resolveResult{date: date, table: table, err: err}
	}()
}

// pollResolution consumes a finished lookup without ever blocking the tick.
func (s *Scheduler) pollResolution() {
	if s.pending == nil {
		return
	}
	select {
	case res := <-s.pending:
		s.pending = nil
		if !res.date.Equal(s.viewDate) {
			// the user browsed away while this lookup was in flight
			s.maybeResolve()
			return
		}
		if res.err != nil {
			// keep whatever table we had; only the status line changes
			log.Warn().Err(res.err).Str("date", res.date.Format(timetable.DateLayout)).Msg("resolution failed")
			s.status = res.err.Error()
			s.resolveDown = true
			return
		}
		s.status = ""
		s.resolveDown = false
		s.table = res.table
		s.detector.Reset()
	default:
	}
}

// maybeResolve submits a lookup when the displayed date has no table yet.
func (s *Scheduler) maybeResolve() {
	if !s.settings.HasLocation() || s.resolveDown {
		return
	}
	if s.table != nil && midnight(s.table.Date).Equal(s.viewDate) {
		return
	}
	s.submitResolution()
}

func (s *Scheduler) buildSnapshot() Snapshot {
	return Snapshot{
		Date:      s.viewDate,
		Table:     s.table,
		State:     s.state,
		Settings:  s.settings,
		Status:    s.status,
		Resolving: s.pending != nil,
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
