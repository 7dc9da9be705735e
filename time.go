package stopfill

import "time"

// Time-of-day arithmetic for HH:MM:SS strings. Times are pinned to a
// fixed reference date so that arithmetic crossing midnight stays
// well-defined without special-casing; offsets are assumed to stay
// within roughly a day of the original time.
//
// Note the asymmetry with GTFS time literals: stop_times values above
// 23:59:59 (trip-relative post-midnight times) pass through the tool
// untouched on fully timed rows, but any time that participates in
// arithmetic must be a strict 24-hour HH:MM:SS, and interpolated
// output is always rendered on the 0-23h wall clock.

const clockLayout = "15:04:05"

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, &TimeParseError{Value: s, Err: err}
	}
	return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// addSeconds adds a signed, possibly fractional, number of seconds to
// an HH:MM:SS time of day and rounds the result to the nearest whole
// minute. Rounding is half-up: 30 or more seconds into the minute
// rounds to the next minute, anything below (29.999...) truncates.
func addSeconds(clock string, offset float64) (string, error) {
	t, err := parseClock(clock)
	if err != nil {
		return "", err
	}

	t = t.Add(time.Duration(offset * float64(time.Second)))

	within := float64(t.Second()) + float64(t.Nanosecond())/float64(time.Second)
	t = t.Truncate(time.Minute)
	if within >= 30 {
		t = t.Add(time.Minute)
	}

	return t.Format(clockLayout), nil
}

// diffSeconds returns the signed number of seconds from t1 to t2. If
// the naive difference is negative by less than 24 hours, t2 is taken
// to fall on the following day (a span crossing midnight). A t2 more
// than 24 hours before t1 is not corrected; the large negative result
// signals misuse upstream.
func diffSeconds(t1, t2 string) (int, error) {
	a, err := parseClock(t1)
	if err != nil {
		return 0, err
	}
	b, err := parseClock(t2)
	if err != nil {
		return 0, err
	}

	d := b.Sub(a)
	if d < 0 && d > -24*time.Hour {
		d += 24 * time.Hour
	}

	return int(d / time.Second), nil
}
