// README: Calendar-day classification for weekend rates.
package fee

import "time"

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// isWeekend reports whether d falls on Saturday or Sunday.
func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// isWeekendNextDay classifies the calendar day after d. AddDate rolls over
// month and year boundaries (Dec 31 -> Jan 1, Feb 28/29 -> Mar 1).
func isWeekendNextDay(d time.Time) bool {
	return isWeekend(d.AddDate(0, 0, 1))
}
