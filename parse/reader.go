package parse

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/spkg/bom"

	"github.com/gtfs-tools/stopfill/model"
)

// Reader yields stop_times records one row at a time. The header row
// is consumed at construction; every subsequent row is mapped onto
// the header's field names.
type Reader struct {
	csv    *csv.Reader
	header *model.Header
	row    int
}

// NewReader reads the header row from r and verifies it names the
// fields interpolation needs. The BOM reader strips unicode BOMs if
// present; lazy quoting (at least) is required to survive sloppy use
// of quotes in real-world feeds.
func NewReader(r io.Reader) (*Reader, error) {
	c := csv.NewReader(bom.NewReader(r))
	c.LazyQuotes = true
	c.TrimLeadingSpace = true

	fields, err := c.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	header, err := model.NewHeader(fields)
	if err != nil {
		return nil, errors.Wrap(err, "invalid header")
	}
	if err := header.Require(model.RequiredFields...); err != nil {
		return nil, err
	}

	return &Reader{csv: c, header: header, row: 1}, nil
}

func (r *Reader) Header() *model.Header {
	return r.header
}

// Read returns the next record, or io.EOF after the last row.
func (r *Reader) Read() (model.Record, error) {
	values, err := r.csv.Read()
	if err == io.EOF {
		return model.Record{}, io.EOF
	}
	r.row++
	if err != nil {
		return model.Record{}, errors.Wrapf(err, "reading row %d", r.row)
	}

	rec, err := model.NewRecord(r.header, values)
	if err != nil {
		return model.Record{}, errors.Wrapf(err, "row %d", r.row)
	}
	return rec, nil
}
