package interchange

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("interchange: missing header row")

// Encode writes the header and rows as CSV.
func Encode(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("interchange: write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("interchange: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode reads CSV with a header row and returns one map per record keyed by
// column name. Columns missing from a short record are absent from its map;
// blank lines are skipped.
func Decode(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("interchange: read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []map[string]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("interchange: read record: %w", err)
		}
		m := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				m[col] = rec[i]
			}
		}
		records = append(records, m)
	}
	return records, nil
}

// DecodeResult carries the outcome of DecodeAsync.
type DecodeResult struct {
	Records []map[string]string
	Err     error
}

// DecodeAsync decodes r on its own goroutine. The returned channel delivers
// exactly one result and is then closed. Cancelling ctx delivers ctx.Err()
// without waiting for the decode to finish.
func DecodeAsync(ctx context.Context, r io.Reader) <-chan DecodeResult {
	out := make(chan DecodeResult, 1)
	done := make(chan DecodeResult, 1)

	go func() {
		records, err := Decode(r)
		done <- DecodeResult{Records: records, Err: err}
	}()

	go func() {
		defer close(out)
		select {
		case res := <-done:
			out <- res
		case <-ctx.Done():
			out <- DecodeResult{Err: ctx.Err()}
		}
	}()
	return out
}
