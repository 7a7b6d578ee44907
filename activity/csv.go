package activity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names expected in the CSV headers.
const (
	ColUserID       = "user_id"
	ColActivityDate = "activity_date"
	ColCategory     = "category"
	ColActivityType = "activity_type"
	ColSignupDate   = "signup_date"
)

// table wraps a csv.Reader with a header → column index mapping.
type table struct {
	r    *csv.Reader
	cols map[string]int
	line int
}

// newTable reads the header row and checks that every required column is present.
func newTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input, want header %v", ErrMissingColumn, required)
		}
		return nil, fmt.Errorf("activity: read header: %w", err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[toSnakeCase(h)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return &table{r: cr, cols: cols, line: 1}, nil
}

// next returns the following row, or io.EOF when the input is exhausted.
func (t *table) next() ([]string, error) {
	row, err := t.r.Read()
	t.line++
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: line %d: %v", ErrBadRow, t.line, err)
	}

	return row, nil
}

// field returns the trimmed value of the named column.
func (t *table) field(row []string, name string) string {
	i := t.cols[name]
	if i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

// rowErr wraps ErrBadRow with the current line number.
func (t *table) rowErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrBadRow, t.line, fmt.Sprintf(format, args...))
}

// ReadActivities decodes an activities table.
func ReadActivities(r io.Reader) ([]Activity, error) {
	t, err := newTable(r, ColUserID, ColActivityDate, ColCategory, ColActivityType)
	if err != nil {
		return nil, err
	}

	var out []Activity
	for {
		row, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		user := t.field(row, ColUserID)
		if user == "" {
			return nil, t.rowErr("empty %s", ColUserID)
		}
		date, err := ParseDate(t.field(row, ColActivityDate))
		if err != nil {
			return nil, t.rowErr("%v", err)
		}
		typ, err := ParseType(t.field(row, ColActivityType))
		if err != nil {
			return nil, t.rowErr("%v", err)
		}

		out = append(out, Activity{
			UserID:   user,
			Date:     date,
			Category: t.field(row, ColCategory),
			Type:     typ,
		})
	}

	return out, nil
}

// ReadSignups decodes a signups table.
func ReadSignups(r io.Reader) ([]Signup, error) {
	t, err := newTable(r, ColUserID, ColSignupDate)
	if err != nil {
		return nil, err
	}

	var out []Signup
	for {
		row, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		user := t.field(row, ColUserID)
		if user == "" {
			return nil, t.rowErr("empty %s", ColUserID)
		}
		date, err := ParseDate(t.field(row, ColSignupDate))
		if err != nil {
			return nil, t.rowErr("%v", err)
		}

		out = append(out, Signup{UserID: user, Date: date})
	}

	return out, nil
}

// Load reads both tables from disk. An empty path falls back to the
// matching embedded sample table.
func Load(activitiesPath, signupsPath string) (Dataset, error) {
	sample := Sample()
	ds := Dataset{Activities: sample.Activities, Signups: sample.Signups}

	if activitiesPath != "" {
		acts, err := readFile(activitiesPath, ReadActivities)
		if err != nil {
			return Dataset{}, err
		}
		ds.Activities = acts
	}
	if signupsPath != "" {
		sups, err := readFile(signupsPath, ReadSignups)
		if err != nil {
			return Dataset{}, err
		}
		ds.Signups = sups
	}

	return ds, nil
}

// readFile opens path and decodes it with fn.
func readFile[T any](path string, fn func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("activity: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := fn(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// toSnakeCase converts "Activity Date" → "activity_date".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")

	return s
}
