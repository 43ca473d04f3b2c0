package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// row gives named access to the fields of one csv record.
type row struct {
	line   int
	fields []string
	index  map[string]int
}

func (r row) str(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r row) float(col string) (float64, error) {
	raw := r.str(col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: invalid number %q", r.line, col, raw)
	}
	return v, nil
}

// optionalFloat returns 0 for a missing column or an empty cell.
func (r row) optionalFloat(col string) (float64, error) {
	if _, ok := r.index[col]; !ok || r.str(col) == "" {
		return 0, nil
	}
	return r.float(col)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006",
}

func (r row) date(col string) (time.Time, error) {
	raw := r.str(col)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("line %d: column %s: invalid date %q", r.line, col, raw)
}

// readRows opens path and calls fn for every data row. Every required column
// must be present in the header; unknown columns are ignored.
func readRows(ctx context.Context, path string, required []string, fn func(row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: missing header", path)
		}
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing columns %s", path, strings.Join(missing, ", "))
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context error: %w", err)
		}

		if err := fn(row{line: line, fields: record, index: index}); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}
