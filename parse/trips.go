package parse

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/spkg/bom"
)

type TripCSV struct {
	ID string `csv:"trip_id"`
}

// ParseTrips reads a GTFS trips.txt and returns the set of trip IDs.
// Used to verify that every stop_times row references a known trip
// before interpolation starts.
func ParseTrips(data io.Reader) (map[string]bool, error) {
	tripCsv := []*TripCSV{}
	if err := gocsv.Unmarshal(bom.NewReader(data), &tripCsv); err != nil {
		return nil, fmt.Errorf("unmarshaling trips csv: %w", err)
	}

	trips := map[string]bool{}
	for _, t := range tripCsv {
		if t.ID == "" {
			return nil, fmt.Errorf("empty trip_id")
		}
		if trips[t.ID] {
			return nil, fmt.Errorf("repeated trip_id '%s'", t.ID)
		}
		trips[t.ID] = true
	}

	return trips, nil
}
