package packets

import "github.com/tvardar/vakitd/internal/almanac"

// one row of the HUD table
type TimeRow struct {
	Period string `json:"period"`
	Time   string `json:"time"`

	// today-only decorations
	Passed    bool   `json:"passed"`
	Active    bool   `json:"active"`
	Countdown string `json:"countdown,omitempty"` // "3m 5s" until this row's time
}

type RemainingResponse struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type TimesResponse struct {
	Date         string `json:"date"` // dd.MM.yyyy
	IsToday      bool   `json:"isToday"`
	SubareaName  string `json:"subareaName,omitempty"`
	LocalityName string `json:"localityName,omitempty"`
	RegionName   string `json:"regionName,omitempty"`

	Rows []TimeRow `json:"rows"`

	ActivePeriod string             `json:"activePeriod,omitempty"`
	NextPeriod   string             `json:"nextPeriod,omitempty"`
	Remaining    *RemainingResponse `json:"remaining,omitempty"`
	PastAll      bool               `json:"pastAll,omitempty"`

	Status    string `json:"status,omitempty"` // last resolution error
	Resolving bool   `json:"resolving,omitempty"`
}

type StateResponse struct {
	IsToday      bool               `json:"isToday"`
	ActivePeriod string             `json:"activePeriod,omitempty"`
	NextPeriod   string             `json:"nextPeriod,omitempty"`
	Remaining    *RemainingResponse `json:"remaining,omitempty"`
	PastAll      bool               `json:"pastAll,omitempty"`
	Status       string             `json:"status,omitempty"`
}

type AlmanacResponse struct {
	Date string `json:"date"`
	almanac.DayInfo
	LunarDateLong string `json:"lunarDateLong,omitempty"`
}
