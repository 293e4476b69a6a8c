package model

// PrayerPeriod identifies one of the six daily time markers.
// The set is fixed and ordered; Night wraps to the next day's Dawn.
type PrayerPeriod int

const (
	Dawn PrayerPeriod = iota
	Sunrise
	Midday
	Afternoon
	Sunset
	Night
)

// PeriodCount is the number of periods in one day.
const PeriodCount = 6

var periodNames = [PeriodCount]string{
	"Dawn",
	"Sunrise",
	"Midday",
	"Afternoon",
	"Sunset",
	"Night",
}

func (p PrayerPeriod) String() string {
	if p < Dawn || p > Night {
		return "Unknown"
	}
	return periodNames[p]
}

// Valid reports whether p is one of the six defined periods.
func (p PrayerPeriod) Valid() bool {
	return p >= Dawn && p <= Night
}

// Next returns the following period, wrapping Night back to Dawn.
func (p PrayerPeriod) Next() PrayerPeriod {
	return (p + 1) % PeriodCount
}

// Periods returns the six periods in their fixed order.
func Periods() [PeriodCount]PrayerPeriod {
	return [PeriodCount]PrayerPeriod{Dawn, Sunrise, Midday, Afternoon, Sunset, Night}
}
