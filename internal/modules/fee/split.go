// README: Splits a session into per-day minute segments.
package fee

const minutesPerDay = 1440

// split breaks the interval into the minutes spent on the start date and,
// when the session crosses midnight, the minutes spent on the following
// date. start == end is a valid zero-duration session, not an error.
// The result never exceeds 1439 total minutes: the interval is given as two
// times of day, so more than one midnight crossing is not representable.
func split(startMinutes, endMinutes int) (first, second DaySegment) {
	second = DaySegment{DayOffset: 1}
	if endMinutes < startMinutes {
		first.Minutes = minutesPerDay - startMinutes
		second.Minutes = endMinutes
		return first, second
	}
	first.Minutes = endMinutes - startMinutes
	return first, second
}
