package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tvardar/vakitd/internal/model"
)

type fakeResolver struct {
	err   error
	mu    sync.Mutex
	calls int
}

func (f *fakeResolver) Resolve(subareaID string, date time.Time) (*model.DayTimeTable, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return tableFor(date), nil
}

type fakeDispatcher struct {
	mu     sync.Mutex
	events []model.NotificationEvent
	stops  int
}

func (f *fakeDispatcher) Notify(event model.NotificationEvent, _ model.Settings) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeDispatcher) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func (f *fakeDispatcher) drain() []model.NotificationEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.events
	f.events = nil
	return out
}

func tableFor(date time.Time) *model.DayTimeTable {
	times := [model.PeriodCount]model.TimeOfDay{
		{Hour: 5, Minute: 0}, {Hour: 6, Minute: 30}, {Hour: 12, Minute: 0},
		{Hour: 15, Minute: 0}, {Hour: 18, Minute: 0}, {Hour: 19, Minute: 30},
	}
	table := &model.DayTimeTable{Date: midnight(date)}
	for i, tod := range times {
		table.Entries[i] = model.TimeTableEntry{Period: model.PrayerPeriod(i), Time: tod}
	}
	return table
}

func located() model.Settings {
	s := model.DefaultSettings()
	s.SubareaID = "sub-1"
	s.SubareaName = "Center"
	return s
}

// newForTest pins the scheduler to the given day with a resolved table.
func newForTest(resolver TableResolver, dispatcher *fakeDispatcher, day time.Time) *Scheduler {
	s := New(resolver, dispatcher, located())
	s.viewDate = midnight(day)
	s.lastToday = midnight(day)
	s.table = tableFor(day)
	return s
}

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 1, 14, hour, min, sec, 0, time.UTC)
}

func TestTickWithoutTableDoesNothing(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := New(&fakeResolver{}, dispatcher, model.DefaultSettings())
	s.viewDate = midnight(at(0, 0, 0))
	s.lastToday = s.viewDate

	s.tick(at(12, 0, 0))

	if events := dispatcher.drain(); len(events) != 0 {
		t.Fatalf("events %v dispatched without a table", events)
	}
	if s.pending != nil {
		t.Fatal("resolution submitted without a location")
	}
}

func TestWarningDispatchedOnce(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))

	s.tick(at(11, 45, 0))
	events := dispatcher.drain()
	if len(events) != 1 || events[0].Kind != model.EventWarning || events[0].Period != model.Midday {
		t.Fatalf("events = %v, want single Midday warning", events)
	}

	for sec := 1; sec <= 30; sec++ {
		s.tick(at(11, 45, sec))
	}
	if events := dispatcher.drain(); len(events) != 0 {
		t.Fatalf("extra events %v after warning", events)
	}
}

func TestBoundaryExactness(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))

	s.tick(at(11, 59, 59))
	if s.state.NextPeriod != model.Midday {
		t.Fatalf("next = %s, want Midday", s.state.NextPeriod)
	}
	want := model.Countdown{Seconds: 1}
	if s.state.Remaining != want {
		t.Fatalf("remaining = %+v, want 1s", s.state.Remaining)
	}

	s.tick(at(12, 0, 0))
	events := dispatcher.drain()
	if len(events) != 1 || events[0].Kind != model.EventOnset || events[0].Period != model.Midday {
		t.Fatalf("events = %v, want single Midday onset", events)
	}
	// the boundary has been crossed: Midday is active, Afternoon is next
	if s.state.ActivePeriod != model.Midday || s.state.NextPeriod != model.Afternoon {
		t.Fatalf("state = %+v", s.state)
	}
}

func TestDetectorSilentWhenBrowsingOtherDates(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))
	// the user browsed to tomorrow; the table no longer matches today
	s.viewDate = s.viewDate.AddDate(0, 0, 1)
	s.table = tableFor(s.viewDate)
	s.followsToday = false

	s.tick(at(12, 0, 0))

	if events := dispatcher.drain(); len(events) != 0 {
		t.Fatalf("events %v dispatched while browsing another date", events)
	}
	if s.state.IsViewingToday {
		t.Fatal("IsViewingToday set for a future date")
	}
}

func TestResolutionFailureKeepsPreviousTable(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))
	previous := s.table

	ch := make(chan resolveResult, 1)
	ch <- resolveResult{date: s.viewDate, err: errors.New("provider unavailable: timeout")}
	s.pending = ch
	s.tick(at(10, 0, 0))

	if s.table != previous {
		t.Fatal("table replaced on failed resolution")
	}
	if s.status == "" {
		t.Fatal("status not surfaced")
	}
	if !s.resolveDown {
		t.Fatal("failed resolution should pause retries until a command or rollover")
	}
}

func TestRolloverFollowsToday(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))

	nextDay := at(0, 0, 0).AddDate(0, 0, 1)
	s.tick(nextDay.Add(5 * time.Second))

	if !s.viewDate.Equal(midnight(nextDay)) {
		t.Fatalf("viewDate = %v, want the new day", s.viewDate)
	}
	if s.pending == nil && s.table == nil {
		t.Fatal("no resolution submitted for the new day")
	}

	// the async lookup lands on a later tick
	deadline := time.Now().Add(2 * time.Second)
	for s.table == nil && time.Now().Before(deadline) {
		s.pollResolution()
		time.Sleep(time.Millisecond)
	}
	if s.table == nil || !s.table.Date.Equal(midnight(nextDay)) {
		t.Fatal("new day's table never resolved")
	}
}

func TestRolloverKeepsBrowsedDate(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))
	browsed := midnight(at(0, 0, 0)).AddDate(0, 0, 7)
	s.viewDate = browsed
	s.table = tableFor(browsed)
	s.followsToday = false

	s.tick(at(0, 0, 0).AddDate(0, 0, 1))

	if !s.viewDate.Equal(browsed) {
		t.Fatalf("viewDate = %v, want browsed date kept", s.viewDate)
	}
}

func TestRolloverRetriesFailedBrowsedDate(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))
	browsed := midnight(at(0, 0, 0)).AddDate(0, 0, 7)
	s.viewDate = browsed
	s.followsToday = false
	// a previous lookup for the browsed date failed
	s.table = nil
	s.status = "provider unavailable: timeout"
	s.resolveDown = true

	s.tick(at(0, 0, 0).AddDate(0, 0, 1))

	if s.resolveDown {
		t.Fatal("resolveDown survived the rollover")
	}
	if s.pending == nil && s.table == nil {
		t.Fatal("failed browsed date not retried at rollover")
	}
	if !s.viewDate.Equal(browsed) {
		t.Fatalf("viewDate = %v, want browsed date kept", s.viewDate)
	}
}

func TestApplySettingsLocationChangeResolves(t *testing.T) {
	resolver := &fakeResolver{}
	dispatcher := &fakeDispatcher{}
	s := newForTest(resolver, dispatcher, at(0, 0, 0))

	changed := located()
	changed.SubareaID = "sub-2"
	s.ApplySettings(changed)
	(<-s.commands)() // run the queued command as the loop would

	if s.table != nil {
		t.Fatal("stale table kept after location change")
	}
	if s.pending == nil {
		t.Fatal("no resolution submitted for the new location")
	}
}

func TestStopPlaybackReachesDispatcher(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	s := newForTest(&fakeResolver{}, dispatcher, at(0, 0, 0))

	s.StopPlayback()
	(<-s.commands)()

	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	if dispatcher.stops != 1 {
		t.Fatalf("stops = %d, want 1", dispatcher.stops)
	}
}
