// internal/repository/codec.go
package repository

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Row codecs live at the repository boundary: rows coming out of the
// tabular store are parsed strictly into schema structs and malformed rows
// fail loudly instead of being skipped.

const (
	timeLayout = time.RFC3339
	dateLayout = "2006-01-02"
)

// rowErr annotates a parse failure with its sheet and row position. Row
// indexes are zero-based over data rows (header excluded).
func rowErr(sheet string, row int, field string, err error) error {
	return fmt.Errorf("repository: sheet %s row %d: bad %s: %w", sheet, row+1, field, err)
}

// pad returns row extended to at least n cells; trailing empty cells are
// routinely dropped by the spreadsheet backend.
func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

func parseUUIDCell(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}

func fmtUUID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func parseTimeCell(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(timeLayout, s, time.Local)
}

func parseOptTimeCell(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

func fmtOptTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}

func parseDateCell(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseIntCell(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func fmtInt(v int) string {
	return strconv.Itoa(v)
}

func parseFloatCell(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseOptFloatCell(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func fmtOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseBoolCell(s string) (bool, error) {
	switch s {
	case "", "false", "FALSE", "0":
		return false, nil
	case "true", "TRUE", "1":
		return true, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}

func fmtBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
