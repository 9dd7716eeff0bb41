// README: Wall-clock parsing into minutes since midnight.
package fee

// toMinutes parses a 24-hour "HH:MM" value into minutes since midnight,
// an integer in [0, 1439]. Anything outside the strict pattern fails
// with ErrInvalidTime.
func toMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTime
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTime
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, ErrInvalidTime
	}
	return hour*60 + minute, nil
}
