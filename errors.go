package stopfill

import "fmt"

// TimeParseError means a field that should hold an HH:MM:SS time of
// day didn't. Fatal: output produced before the failure is not a
// usable partial result.
type TimeParseError struct {
	Value string
	Err   error
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid time '%s': %v", e.Value, e.Err)
}

func (e *TimeParseError) Unwrap() error {
	return e.Err
}

// BoundaryError means a run of rows with missing times was never
// closed by a fully timed row of the same trip. There is no time and
// distance reference to interpolate against, so this is fatal.
type BoundaryError struct {
	TripID  string
	Pending int
	Reason  string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("trip '%s': %d unresolved row(s): %s", e.TripID, e.Pending, e.Reason)
}

// InterpolationError means the span's arithmetic is degenerate, e.g.
// the anchor and closing row report the same shape_dist_traveled.
type InterpolationError struct {
	TripID string
	Reason string
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("trip '%s': %s", e.TripID, e.Reason)
}
