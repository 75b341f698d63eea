package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/hasbyte1/go-gridindex/internal/config"
)

// rowWriter writes one record per row in the configured format. It is safe
// for concurrent use so sweep handlers can share it.
type rowWriter struct {
	mu     sync.Mutex
	format config.Format
	w      io.Writer
	enc    *json.Encoder
	csv    *csv.Writer
	header []string
}

func newRowWriter(w io.Writer, format config.Format, header []string) *rowWriter {
	rw := &rowWriter{format: format, w: w, header: header}
	switch format {
	case config.FormatJSON:
		rw.enc = json.NewEncoder(w)
	case config.FormatCSV:
		rw.csv = csv.NewWriter(w)
	}
	return rw
}

// write emits text as a plain line, fields as a CSV record, or v as one
// JSON document, depending on the format.
func (rw *rowWriter) write(text string, fields []string, v any) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	switch rw.format {
	case config.FormatJSON:
		return rw.enc.Encode(v)
	case config.FormatCSV:
		if rw.header != nil {
			if err := rw.csv.Write(rw.header); err != nil {
				return err
			}
			rw.header = nil
		}
		return rw.csv.Write(fields)
	default:
		_, err := fmt.Fprintln(rw.w, text)
		return err
	}
}

func (rw *rowWriter) flush() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.csv == nil {
		return nil
	}
	rw.csv.Flush()
	return rw.csv.Error()
}

func axisHeader(dims int) []string {
	h := make([]string, dims)
	for i := range h {
		h[i] = "axis" + strconv.Itoa(i)
	}
	return h
}

func itoaAll(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}
	return out
}
