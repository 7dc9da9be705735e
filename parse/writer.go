package parse

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/gtfs-tools/stopfill/model"
)

type WriterOptions struct {
	// CRLF terminates rows with \r\n instead of a bare \n. Some
	// consumers of stop_times files expect one or the other; the
	// choice is a formatting policy, not part of the transform.
	CRLF bool
}

// Writer serializes records in header field order.
type Writer struct {
	csv    *csv.Writer
	header *model.Header
}

func NewWriter(w io.Writer, header *model.Header, opts WriterOptions) *Writer {
	c := csv.NewWriter(w)
	c.UseCRLF = opts.CRLF
	return &Writer{csv: c, header: header}
}

// WriteHeader emits the header row. Call once, before any records.
func (w *Writer) WriteHeader() error {
	return errors.Wrap(w.csv.Write(w.header.Fields()), "writing header")
}

func (w *Writer) Write(rec model.Record) error {
	return errors.Wrap(w.csv.Write(rec.Values()), "writing record")
}

// Flush writes buffered rows and reports any deferred write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return errors.Wrap(w.csv.Error(), "flushing output")
}
