package timezone

import "time"

// The shop is a single location; all calendar arithmetic happens in its
// local zone.
const ShopTimezone = "America/Sao_Paulo"

const isoDate = "2006-01-02"

func Location() *time.Location {
	loc, err := time.LoadLocation(ShopTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// TodayISO is the shop-local date as "YYYY-MM-DD".
func TodayISO() string {
	return Now().Format(isoDate)
}

// ParseDate reads a "YYYY-MM-DD" value in the shop zone.
func ParseDate(iso string) (time.Time, error) {
	return time.ParseInLocation(isoDate, iso, Location())
}

// AddDaysISO shifts an ISO date by whole days.
func AddDaysISO(iso string, days int) (string, error) {
	d, err := ParseDate(iso)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, days).Format(isoDate), nil
}

// WeekdayOf returns the day-of-week of an ISO date, Sunday = 0.
func WeekdayOf(iso string) (int, error) {
	d, err := ParseDate(iso)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}
