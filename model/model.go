package model

import (
	"fmt"
	"strconv"
)

// Field names the interpolation core depends on. Everything else in a
// stop_times table is opaque payload.
const (
	FieldTripID            = "trip_id"
	FieldArrivalTime       = "arrival_time"
	FieldDepartureTime     = "departure_time"
	FieldStopSequence      = "stop_sequence"
	FieldShapeDistTraveled = "shape_dist_traveled"
)

// RequiredFields must all be present in a stop_times header for
// interpolation to be possible.
var RequiredFields = []string{
	FieldTripID,
	FieldArrivalTime,
	FieldDepartureTime,
	FieldShapeDistTraveled,
}

// Header holds the field names of a stop_times table, in file order.
type Header struct {
	fields []string
	index  map[string]int
}

func NewHeader(fields []string) (*Header, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, seen := index[f]; seen {
			return nil, fmt.Errorf("repeated field '%s'", f)
		}
		index[f] = i
	}
	return &Header{fields: fields, index: index}, nil
}

// Fields returns the field names in file order.
func (h *Header) Fields() []string {
	return h.fields
}

func (h *Header) Index(name string) (int, bool) {
	i, ok := h.index[name]
	return i, ok
}

// Require verifies that all given field names are present.
func (h *Header) Require(names ...string) error {
	for _, name := range names {
		if _, ok := h.index[name]; !ok {
			return fmt.Errorf("missing required field '%s'", name)
		}
	}
	return nil
}

// Record is a single stop_times row, bound to the header of the table
// it came from. Values are kept as strings and serialized back in
// header order, so fields the tool doesn't understand round-trip
// unchanged.
type Record struct {
	header *Header
	values []string
}

func NewRecord(h *Header, values []string) (Record, error) {
	if len(values) != len(h.fields) {
		return Record{}, fmt.Errorf("got %d values for %d fields", len(values), len(h.fields))
	}
	return Record{header: h, values: values}, nil
}

// Get returns the value of the named field, or "" if the header
// doesn't have it.
func (r Record) Get(name string) string {
	i, ok := r.header.Index(name)
	if !ok {
		return ""
	}
	return r.values[i]
}

// Set overwrites the named field. Setting a field the header doesn't
// have is a no-op.
func (r Record) Set(name, value string) {
	if i, ok := r.header.Index(name); ok {
		r.values[i] = value
	}
}

// Values returns the row in header field order.
func (r Record) Values() []string {
	return r.values
}

func (r Record) TripID() string {
	return r.Get(FieldTripID)
}

func (r Record) Arrival() string {
	return r.Get(FieldArrivalTime)
}

func (r Record) Departure() string {
	return r.Get(FieldDepartureTime)
}

// ShapeDistTraveled parses the cumulative distance of the stop from
// trip start.
func (r Record) ShapeDistTraveled() (float64, error) {
	s := r.Get(FieldShapeDistTraveled)
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid shape_dist_traveled '%s'", s)
	}
	return d, nil
}

// Timed reports whether both arrival and departure are known. A row
// with exactly one of the two set counts as untimed: interpolation
// recomputes both fields and sets them equal.
func (r Record) Timed() bool {
	return r.Arrival() != "" && r.Departure() != ""
}
