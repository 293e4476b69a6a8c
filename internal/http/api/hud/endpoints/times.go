package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tvardar/vakitd/internal/almanac"
	"github.com/tvardar/vakitd/internal/http/api"
	"github.com/tvardar/vakitd/internal/http/api/hud/packets"
	"github.com/tvardar/vakitd/internal/model"
	"github.com/tvardar/vakitd/internal/scheduler"
	"github.com/tvardar/vakitd/internal/timetable"
	"github.com/tvardar/vakitd/internal/tracker"
)

// Engine is the running scheduler as the HUD sees it.
type Engine interface {
	Snapshot() scheduler.Snapshot
	SetDate(time.Time)
	ShiftDate(days int)
	Today()
	StopPlayback()
}

type TimesController struct {
	engine Engine
}

func NewTimesController(engine Engine) *TimesController {
	return &TimesController{engine: engine}
}

func TimesModule(engine Engine) api.Module {
	ctl := NewTimesController(engine)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/times", ctl.getTimes)
		c.PUBLIC_GET("/times/state", ctl.getState)
		c.PUBLIC_GET("/almanac", ctl.getAlmanac)
		c.PUBLIC_POST("/times/date", ctl.setDate)
		c.PUBLIC_POST("/times/shift", ctl.shiftDate)
		c.PUBLIC_POST("/times/today", ctl.goToday)
		c.PUBLIC_POST("/playback/stop", ctl.stopPlayback)
	})
}

// GET /api/hud/times
func (t *TimesController) getTimes(ctx *gin.Context) (any, *api.APIError) {
	snap := t.engine.Snapshot()

	response := packets.TimesResponse{
		Date:         snap.Date.Format(timetable.DateLayout),
		IsToday:      snap.State.IsViewingToday,
		SubareaName:  snap.Settings.SubareaName,
		LocalityName: snap.Settings.LocalityName,
		RegionName:   snap.Settings.RegionName,
		Status:       snap.Status,
		Resolving:    snap.Resolving,
		Rows:         []packets.TimeRow{},
	}
	if snap.Table == nil {
		return response, nil
	}

	now := time.Now()
	response.Rows = buildRows(snap.Table, snap.State, now)
	if snap.State.IsViewingToday {
		response.ActivePeriod = snap.State.ActivePeriod.String()
		response.PastAll = snap.State.PastAll
		if !snap.State.PastAll {
			response.NextPeriod = snap.State.NextPeriod.String()
			response.Remaining = &packets.RemainingResponse{
				Hours:   snap.State.Remaining.Hours,
				Minutes: snap.State.Remaining.Minutes,
				Seconds: snap.State.Remaining.Seconds,
			}
		}
	}
	return response, nil
}

// GET /api/hud/times/state
func (t *TimesController) getState(ctx *gin.Context) (any, *api.APIError) {
	snap := t.engine.Snapshot()

	response := packets.StateResponse{
		IsToday: snap.State.IsViewingToday,
		Status:  snap.Status,
	}
	if snap.Table != nil && snap.State.IsViewingToday {
		response.ActivePeriod = snap.State.ActivePeriod.String()
		response.PastAll = snap.State.PastAll
		if !snap.State.PastAll {
			response.NextPeriod = snap.State.NextPeriod.String()
			response.Remaining = &packets.RemainingResponse{
				Hours:   snap.State.Remaining.Hours,
				Minutes: snap.State.Remaining.Minutes,
				Seconds: snap.State.Remaining.Seconds,
			}
		}
	}
	return response, nil
}

// GET /api/hud/almanac
func (t *TimesController) getAlmanac(ctx *gin.Context) (any, *api.APIError) {
	snap := t.engine.Snapshot()

	var lunarFallback, lunarLong string
	if snap.Table != nil {
		lunarFallback = snap.Table.LunarDateShort
		lunarLong = snap.Table.LunarDateLong
	}
	info := almanac.Lookup(snap.Date, snap.Table, lunarFallback)

	return packets.AlmanacResponse{
		Date:          snap.Date.Format(timetable.DateLayout),
		DayInfo:       info,
		LunarDateLong: lunarLong,
	}, nil
}

// POST /api/hud/times/date
func (t *TimesController) setDate(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SetDateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	date, err := timetable.ParseDate(request.Date, time.Local)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, want dd.MM.yyyy"}
	}

	t.engine.SetDate(date)
	return gin.H{"date": request.Date}, nil
}

// POST /api/hud/times/shift
func (t *TimesController) shiftDate(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ShiftDateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	t.engine.ShiftDate(request.Days)
	return gin.H{"days": request.Days}, nil
}

// POST /api/hud/times/today
func (t *TimesController) goToday(ctx *gin.Context) (any, *api.APIError) {
	t.engine.Today()
	return gin.H{"ok": true}, nil
}

// POST /api/hud/playback/stop
func (t *TimesController) stopPlayback(ctx *gin.Context) (any, *api.APIError) {
	t.engine.StopPlayback()
	return gin.H{"ok": true}, nil
}

// buildRows renders the visible window: starting at the active period when
// viewing today, the whole table otherwise.
func buildRows(table *model.DayTimeTable, state model.TrackerState, now time.Time) []packets.TimeRow {
	entries := tracker.DisplayWindow(table, state)
	rows := make([]packets.TimeRow, 0, len(entries))

	for _, e := range entries {
		row := packets.TimeRow{
			Period: e.Period.String(),
			Time:   e.Time.String(),
		}
		if state.IsViewingToday {
			at := e.Time.At(now)
			if !at.After(now) {
				row.Passed = true
				row.Active = e.Period == state.ActivePeriod
			} else {
				diff := int(at.Sub(now) / time.Second)
				row.Countdown = model.Countdown{
					Hours:   diff / 3600,
					Minutes: (diff % 3600) / 60,
					Seconds: diff % 60,
				}.String()
			}
		}
		rows = append(rows, row)
	}
	return rows
}
