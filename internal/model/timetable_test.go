package model_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tvardar/vakitd/internal/model"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    model.TimeOfDay
		wantErr bool
	}{
		{"05:12", model.TimeOfDay{Hour: 5, Minute: 12}, false},
		{"00:00", model.TimeOfDay{}, false},
		{"23:59", model.TimeOfDay{Hour: 23, Minute: 59}, false},
		{"24:00", model.TimeOfDay{}, true},
		{"12:60", model.TimeOfDay{}, true},
		{"nonsense", model.TimeOfDay{}, true},
		{"", model.TimeOfDay{}, true},
	}
	for _, c := range cases {
		got, err := model.ParseTimeOfDay(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

// randomValidTable spreads six strictly increasing times across the day.
func randomValidTable(rng *rand.Rand) *model.DayTimeTable {
	table := &model.DayTimeTable{Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}
	minutes := 0
	for i := 0; i < model.PeriodCount; i++ {
		// leave room so the remaining periods always fit
		max := (24*60 - minutes - (model.PeriodCount - i)) / (model.PeriodCount - i)
		minutes += 1 + rng.Intn(max)
		table.Entries[i] = model.TimeTableEntry{
			Period: model.PrayerPeriod(i),
			Time:   model.TimeOfDay{Hour: minutes / 60, Minute: minutes % 60},
		}
	}
	return table
}

func TestValidateAcceptsIncreasingTables(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		table := randomValidTable(rng)
		if err := table.Validate(); err != nil {
			t.Fatalf("iteration %d: valid table rejected: %v\n%+v", i, err, table.Entries)
		}
	}
}

func TestValidateRejectsUnorderedTimes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	table := randomValidTable(rng)
	table.Entries[2].Time, table.Entries[3].Time = table.Entries[3].Time, table.Entries[2].Time

	if err := table.Validate(); err == nil {
		t.Fatal("out-of-order table accepted")
	}
}

func TestValidateRejectsEqualTimes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	table := randomValidTable(rng)
	table.Entries[4].Time = table.Entries[3].Time

	if err := table.Validate(); err == nil {
		t.Fatal("table with duplicate time accepted")
	}
}

func TestPeriodNextWraps(t *testing.T) {
	if got := model.Night.Next(); got != model.Dawn {
		t.Errorf("Night.Next() = %s, want Dawn", got)
	}
	if got := model.Dawn.Next(); got != model.Sunrise {
		t.Errorf("Dawn.Next() = %s, want Sunrise", got)
	}
}
