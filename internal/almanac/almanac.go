// Package almanac annotates a calendar day with national and religious
// holidays and the lunar month. The tables are static data for 2026; outside
// that year the provider's own lunar date string is the fallback.
package almanac

import (
	"time"

	"github.com/tvardar/vakitd/internal/model"
)

type monthDay struct {
	Month time.Month
	Day   int
}

// national holidays recur every year
var nationalHolidays = map[monthDay]string{
	{time.January, 1}:   "Yılbaşı",
	{time.March, 18}:    "18 Mart Çanakkale Zaferi",
	{time.April, 23}:    "23 Nisan Ulusal Egemenlik ve Çocuk Bayramı",
	{time.May, 1}:       "1 Mayıs Emek ve Dayanışma Günü",
	{time.May, 19}:      "19 Mayıs Atatürk'ü Anma, Gençlik ve Spor Bayramı",
	{time.July, 15}:     "15 Temmuz Demokrasi ve Milli Birlik Günü",
	{time.August, 30}:   "30 Ağustos Zafer Bayramı",
	{time.October, 29}:  "29 Ekim Cumhuriyet Bayramı",
	{time.November, 10}: "10 Kasım Atatürk'ü Anma Günü",
}

// religious holidays shift with the lunar calendar; this table is valid for
// 2026 only
var religiousHolidays2026 = map[monthDay]string{
	{time.January, 15}:  "Miraç Kandili",
	{time.February, 2}:  "Berat Kandili",
	{time.February, 19}: "Ramazan Başlangıcı",
	{time.March, 16}:    "Kadir Gecesi",
	{time.March, 19}:    "Arefe (Ramazan)",
	{time.March, 20}:    "Ramazan Bayramı 1. Gün",
	{time.March, 21}:    "Ramazan Bayramı 2. Gün",
	{time.March, 22}:    "Ramazan Bayramı 3. Gün",
	{time.May, 26}:      "Arefe (Kurban)",
	{time.May, 27}:      "Kurban Bayramı 1. Gün",
	{time.May, 28}:      "Kurban Bayramı 2. Gün",
	{time.May, 29}:      "Kurban Bayramı 3. Gün",
	{time.May, 30}:      "Kurban Bayramı 4. Gün",
	{time.June, 16}:     "Hicri Yılbaşı (1 Muharrem)",
	{time.June, 25}:     "Aşure Günü",
	{time.August, 24}:   "Mevlid Kandili",
	{time.December, 10}: "Regaib Kandili",
}

// lunar month boundaries across 2026, each entry naming the month that runs
// up to (excluding) the given Gregorian date
var lunarMonths2026 = []struct {
	until monthDay
	name  string
}{
	{monthDay{time.January, 19}, "Recep"},
	{monthDay{time.February, 19}, "Şaban"},
	{monthDay{time.March, 20}, "Ramazan"},
	{monthDay{time.April, 18}, "Şevval"},
	{monthDay{time.May, 18}, "Zilkade"},
	{monthDay{time.June, 16}, "Zilhicce"},
	{monthDay{time.July, 16}, "Muharrem"},
	{monthDay{time.August, 14}, "Safer"},
	{monthDay{time.September, 13}, "Rebiülevvel"},
	{monthDay{time.October, 12}, "Rebiülahir"},
	{monthDay{time.November, 11}, "Cemaziyelevvel"},
}

const lastLunarMonth2026 = "Cemaziyelahir"

// DayInfo is everything the almanac knows about one day.
type DayInfo struct {
	Holiday    string `json:"holiday,omitempty"`
	IsNational bool   `json:"isNational,omitempty"`
	LunarMonth string `json:"lunarMonth,omitempty"`
	IsRamadan  bool   `json:"isRamadan,omitempty"`

	// fasting times, filled only during Ramadan
	SahurTime string `json:"sahurTime,omitempty"`
	IftarTime string `json:"iftarTime,omitempty"`
}

// Lookup annotates date; table may be nil, it only feeds the Ramadan fasting
// times. lunarFallback is the provider's lunar date string used outside 2026.
func Lookup(date time.Time, table *model.DayTimeTable, lunarFallback string) DayInfo {
	info := DayInfo{LunarMonth: lunarMonth(date, lunarFallback)}

	key := monthDay{date.Month(), date.Day()}
	if name, ok := nationalHolidays[key]; ok {
		info.Holiday = name
		info.IsNational = true
	} else if name, ok := religiousHolidays2026[key]; ok && date.Year() == 2026 {
		info.Holiday = name
	}

	if info.LunarMonth == "Ramazan" {
		info.IsRamadan = true
		if table != nil {
			// sahur ends at Dawn, iftar opens at Sunset
			info.SahurTime = table.Entry(model.Dawn).Time.String()
			info.IftarTime = table.Entry(model.Sunset).Time.String()
		}
	}
	return info
}

func lunarMonth(date time.Time, fallback string) string {
	if date.Year() != 2026 {
		return fallback
	}
	for _, m := range lunarMonths2026 {
		boundary := time.Date(2026, m.until.Month, m.until.Day, 0, 0, 0, 0, date.Location())
		if date.Before(boundary) {
			return m.name
		}
	}
	return lastLunarMonth2026
}
