package detector_test

import (
	"testing"
	"time"

	"github.com/tvardar/vakitd/internal/detector"
	"github.com/tvardar/vakitd/internal/model"
)

func testTable(t *testing.T, day int) *model.DayTimeTable {
	t.Helper()
	times := [model.PeriodCount]string{"05:00", "06:30", "12:00", "15:00", "18:00", "19:30"}
	table := &model.DayTimeTable{Date: time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)}
	for i, s := range times {
		tod, err := model.ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		table.Entries[i] = model.TimeTableEntry{Period: model.PrayerPeriod(i), Time: tod}
	}
	return table
}

func at(day, hour, min, sec int) time.Time {
	return time.Date(2026, 1, day, hour, min, sec, 0, time.UTC)
}

func TestWarningFiresExactlyOnce(t *testing.T) {
	d := detector.New()
	table := testTable(t, 14)

	events := d.Tick(table, at(14, 11, 45, 0), 15)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.Kind != model.EventWarning || e.Period != model.Midday || e.MinutesRemaining != 15 {
		t.Fatalf("unexpected event %s", e)
	}

	// every second from 11:45:01 to 11:59:59 stays silent for Midday
	for sec := 11*3600 + 45*60 + 1; sec < 12*3600; sec++ {
		now := at(14, 0, 0, 0).Add(time.Duration(sec) * time.Second)
		if events := d.Tick(table, now, 15); len(events) != 0 {
			t.Fatalf("unexpected events %v at %s", events, now)
		}
	}
}

func TestOnsetAtExactBoundary(t *testing.T) {
	d := detector.New()
	table := testTable(t, 14)

	events := d.Tick(table, at(14, 19, 30, 0), 15)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if e := events[0]; e.Kind != model.EventOnset || e.Period != model.Night {
		t.Fatalf("unexpected event %s", e)
	}

	// the same boundary never fires twice
	if events := d.Tick(table, at(14, 19, 30, 0), 15); len(events) != 0 {
		t.Fatalf("onset fired again: %v", events)
	}
}

func TestOnsetSkipsWarningWhenStartedInsideWindow(t *testing.T) {
	d := detector.New()
	table := testTable(t, 14)

	// first tick ever is 10 minutes before Midday: the 15 minute warning
	// instant is already gone and stays gone
	if events := d.Tick(table, at(14, 11, 50, 0), 15); len(events) != 0 {
		t.Fatalf("unexpected events %v", events)
	}

	events := d.Tick(table, at(14, 12, 0, 0), 15)
	if len(events) != 1 || events[0].Kind != model.EventOnset || events[0].Period != model.Midday {
		t.Fatalf("got %v, want single Midday onset", events)
	}
}

func TestEachPairFiresAtMostOncePerDay(t *testing.T) {
	d := detector.New()
	table := testTable(t, 14)

	counts := map[string]int{}
	start := at(14, 0, 0, 0)
	for sec := 0; sec < 86400; sec++ {
		for _, e := range d.Tick(table, start.Add(time.Duration(sec)*time.Second), 15) {
			counts[e.String()]++
		}
	}

	// six warnings and six onsets over the whole day, each exactly once
	if len(counts) != 12 {
		t.Fatalf("got %d distinct events, want 12: %v", len(counts), counts)
	}
	for name, n := range counts {
		if n != 1 {
			t.Errorf("%s fired %d times", name, n)
		}
	}
}

func TestWarningOnlyFiresForNextPeriod(t *testing.T) {
	d := detector.New()
	table := testTable(t, 14)

	// with a 120 minute threshold Night's warning instant (17:30) falls
	// while Sunset (18:00) is still next; the warning is skipped, not
	// fired early
	if events := d.Tick(table, at(14, 17, 30, 0), 120); len(events) != 0 {
		t.Fatalf("got %v, want no events while Sunset is still next", events)
	}

	// the same threshold fires normally when the period is actually next
	events := d.Tick(table, at(14, 16, 0, 0), 120)
	if len(events) != 1 || events[0].Kind != model.EventWarning || events[0].Period != model.Sunset {
		t.Fatalf("got %v, want single Sunset warning", events)
	}

	// Night never gets its warning that day, but its onset still arrives
	if events := d.Tick(table, at(14, 17, 30, 1), 120); len(events) != 0 {
		t.Fatalf("got %v after the skipped instant", events)
	}
	events = d.Tick(table, at(14, 19, 30, 0), 120)
	if len(events) != 1 || events[0].Kind != model.EventOnset || events[0].Period != model.Night {
		t.Fatalf("got %v, want Night onset despite the skipped warning", events)
	}
}

func TestDayRolloverResetsState(t *testing.T) {
	d := detector.New()
	table := testTable(t, 14)

	if events := d.Tick(table, at(14, 12, 0, 0), 15); len(events) != 1 {
		t.Fatalf("setup: got %v", events)
	}

	// next day, same wall time: the pair may fire again
	nextDay := testTable(t, 15)
	if events := d.Tick(nextDay, at(15, 12, 0, 0), 15); len(events) != 1 {
		t.Fatalf("after rollover: got %v, want Midday onset again", events)
	}
}

func TestResetClearsFiredPairs(t *testing.T) {
	d := detector.New()
	table := testTable(t, 14)

	d.Tick(table, at(14, 11, 45, 0), 15)
	d.Reset()

	events := d.Tick(table, at(14, 11, 45, 0), 15)
	if len(events) != 1 || events[0].Kind != model.EventWarning {
		t.Fatalf("got %v, want warning to fire again after reset", events)
	}
}
