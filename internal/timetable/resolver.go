// Package timetable resolves a (subarea, date) pair to a validated day
// table, consulting the monthly batch cache before the provider.
package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvardar/vakitd/internal/cache"
	"github.com/tvardar/vakitd/internal/model"
	"github.com/tvardar/vakitd/internal/provider"
)

// DateLayout is the short date format used by the provider and the HTTP API.
const DateLayout = "02.01.2006"

var (
	// ErrDateNotFound means the fetched batch does not cover the requested day.
	ErrDateNotFound = errors.New("no data for requested date")
	// ErrProviderUnavailable wraps network errors, timeouts and non-2xx replies.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrInvalidDate means a malformed date string reached the resolver.
	ErrInvalidDate = errors.New("invalid date format")
)

// TimesSource is the provider call the resolver depends on.
type TimesSource interface {
	MonthlyTimes(subareaID string) ([]provider.DayRecord, error)
}

// Resolver looks up day tables through the cache-then-provider path.
type Resolver struct {
	source TimesSource
	cache  cache.Cache
}

func NewResolver(source TimesSource, c cache.Cache) *Resolver {
	return &Resolver{source: source, cache: c}
}

// ParseDate parses a "dd.MM.yyyy" string in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Resolve returns the day table for the subarea and date. The cache is a
// hint: a cached batch missing the day falls through to a fresh fetch, and a
// fresh batch is cached even when the requested day is absent from it.
func (r *Resolver) Resolve(subareaID string, date time.Time) (*model.DayTimeTable, error) {
	key := cache.Key(subareaID, int(date.Month()), date.Year())
	target := date.Format(DateLayout)

	if raw, ok := r.cache.Get(key); ok {
		var batch []provider.DayRecord
		if err := json.Unmarshal(raw, &batch); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("ignoring undecodable cached batch")
		} else if rec := findDay(batch, target); rec != nil {
			return buildTable(rec, date)
		}
	}

	batch, err := r.source.MonthlyTimes(subareaID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if raw, err := json.Marshal(batch); err == nil {
		r.cache.Set(key, raw)
	}

	rec := findDay(batch, target)
	if rec == nil {
		return nil, ErrDateNotFound
	}
	return buildTable(rec, date)
}

func findDay(batch []provider.DayRecord, target string) *provider.DayRecord {
	for i := range batch {
		if batch[i].Date == target {
			return &batch[i]
		}
	}
	return nil
}

func buildTable(rec *provider.DayRecord, date time.Time) (*model.DayTimeTable, error) {
	table := &model.DayTimeTable{
		Date:           time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		LunarDateLong:  rec.LunarDateLong,
		LunarDateShort: rec.LunarDateShort,
	}
	for i, s := range rec.Times() {
		tod, err := model.ParseTimeOfDay(s)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.Date, err)
		}
		table.Entries[i] = model.TimeTableEntry{Period: model.PrayerPeriod(i), Time: tod}
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("record %s: %w", rec.Date, err)
	}
	return table, nil
}
