// Package stopfill interpolates missing intermediate stop times in a
// GTFS stop_times table. Rows with blank arrival/departure times are
// buffered until the next fully timed row of the same trip, then
// assigned times proportional to shape_dist_traveled between the two
// timing stops, rounded to whole minutes.
package stopfill

import (
	"github.com/pkg/errors"

	"github.com/gtfs-tools/stopfill/model"
)

// ZeroDistPolicy decides what happens when a span's anchor and
// closing row report the same shape_dist_traveled, which leaves the
// distance ratio undefined.
type ZeroDistPolicy int

const (
	// ZeroDistFail aborts the run with an InterpolationError.
	ZeroDistFail ZeroDistPolicy = iota

	// ZeroDistSpread spaces the pending rows evenly in time across
	// the span instead.
	ZeroDistSpread
)

type Options struct {
	ZeroDist ZeroDistPolicy
}

// Stats summarizes a completed run.
type Stats struct {
	Records      int
	Spans        int
	Interpolated int
}

// Engine fills in missing stop times. Process must be called once per
// record in file order; the anchor and pending buffer carry
// sequential state, so a single Engine handles one table end-to-end
// and is then discarded.
type Engine struct {
	opts Options

	anchor  *model.Record
	pending []model.Record
	stats   Stats
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

func (e *Engine) Stats() Stats {
	return e.stats
}

// Process consumes one record and returns the records ready to be
// emitted, in output order. Most rows are fully timed and come
// straight back out; rows with missing times are held until the next
// timed row of the same trip closes the span.
func (e *Engine) Process(rec model.Record) ([]model.Record, error) {
	e.stats.Records++

	if !rec.Timed() {
		e.pending = append(e.pending, rec)
		return nil, nil
	}

	if len(e.pending) == 0 {
		e.anchor = &rec
		return []model.Record{rec}, nil
	}

	out, err := e.closeSpan(rec)
	if err != nil {
		return nil, err
	}

	e.stats.Spans++
	e.pending = e.pending[:0]
	e.anchor = &rec
	return out, nil
}

// closeSpan interpolates times for the pending rows against the
// current anchor and the timed record closing the span.
func (e *Engine) closeSpan(rec model.Record) ([]model.Record, error) {
	if e.anchor == nil {
		return nil, &BoundaryError{
			TripID:  e.pending[0].TripID(),
			Pending: len(e.pending),
			Reason:  "no timed row precedes the span",
		}
	}
	if e.anchor.TripID() != rec.TripID() {
		return nil, &BoundaryError{
			TripID:  e.pending[0].TripID(),
			Pending: len(e.pending),
			Reason:  "span closed by timed row of trip '" + rec.TripID() + "'",
		}
	}

	totalTime, err := diffSeconds(e.anchor.Departure(), rec.Arrival())
	if err != nil {
		return nil, err
	}

	anchorDist, err := e.anchor.ShapeDistTraveled()
	if err != nil {
		return nil, errors.Wrapf(err, "trip '%s' anchor", rec.TripID())
	}
	closeDist, err := rec.ShapeDistTraveled()
	if err != nil {
		return nil, errors.Wrapf(err, "trip '%s'", rec.TripID())
	}

	totalDist := closeDist - anchorDist
	spread := e.opts.ZeroDist == ZeroDistSpread
	if totalDist == 0 && !spread {
		return nil, &InterpolationError{
			TripID: rec.TripID(),
			Reason: "zero distance between timing stops",
		}
	}

	out := make([]model.Record, 0, len(e.pending)+1)
	for i, p := range e.pending {
		var offset float64
		if totalDist == 0 && spread {
			offset = float64(totalTime) * float64(i+1) / float64(len(e.pending)+1)
		} else {
			dist, err := p.ShapeDistTraveled()
			if err != nil {
				return nil, errors.Wrapf(err, "trip '%s'", p.TripID())
			}
			offset = (dist - anchorDist) * float64(totalTime) / totalDist
		}

		filled, err := addSeconds(e.anchor.Departure(), offset)
		if err != nil {
			return nil, err
		}

		p.Set(model.FieldArrivalTime, filled)
		p.Set(model.FieldDepartureTime, filled)
		out = append(out, p)
		e.stats.Interpolated++
	}

	return append(out, rec), nil
}

// Finalize must be called after the last record. Pending rows at that
// point were never resolved by a closing timed row.
func (e *Engine) Finalize() error {
	if len(e.pending) > 0 {
		return &BoundaryError{
			TripID:  e.pending[0].TripID(),
			Pending: len(e.pending),
			Reason:  "input ended before a timed row closed the span",
		}
	}
	return nil
}
