package domain

import "strconv"

// Day is an integer day index. Input data carries it as text (JSON object keys),
// so it is parsed once at the data boundary and kept numeric from then on.
type Day int

// ParseDay converts a textual day marker to a Day.
// Only the canonical form is accepted ("3", "-2"; not "03", "+3" or " 3"), so
// Day.String always reproduces the marker that was read.
// Returns an error wrapping ErrInvalidDayMarker otherwise.
func ParseDay(marker string) (Day, error) {
	n, err := strconv.Atoi(marker)
	if err != nil {
		return 0, &DayMarkerError{Marker: marker}
	}
	day := Day(n)
	if canonical := day.String(); canonical != marker {
		return 0, &DayMarkerError{Marker: marker, Canonical: canonical}
	}
	return day, nil
}

// String returns the textual marker form of the day.
func (d Day) String() string {
	return strconv.Itoa(int(d))
}

// Since returns the number of days elapsed from earlier to d.
// The result is negative when earlier is after d.
func (d Day) Since(earlier Day) int {
	return int(d - earlier)
}
