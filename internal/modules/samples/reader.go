// README: CSV reader for the sample data source; bad rows are skipped, not fatal.
package samples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"farecast/internal/modules/trip"
	"farecast/internal/types"
)

const datetimeLayout = "2006-01-02 15:04:05"

// Open reads the whole sample file at path.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening samples %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses every data row. A missing required header column fails the
// whole table; any other problem only skips the affected row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	t := &Table{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				t.Skipped = append(t.Skipped, Skipped{Line: perr.StartLine, Reason: perr.Err.Error()})
				continue
			}
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		// Quoted fields may span lines, so the record count is not the line.
		line, _ := cr.FieldPos(0)

		row, err := parseRow(record, idx)
		row.Line = line
		if err != nil {
			t.Skipped = append(t.Skipped, Skipped{Line: line, Key: row.Key, Reason: err.Error()})
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseRow(record []string, idx map[string]int) (Row, error) {
	field := func(col string) (string, bool) {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var row Row
	row.Key, _ = field(ColKey)

	raw, ok := field(ColPickupDatetime)
	if !ok {
		return row, fmt.Errorf("%w: missing %s", ErrBadRow, ColPickupDatetime)
	}
	row.PickupDatetime = raw
	date, clock, err := ParseDatetime(raw)
	if err != nil {
		return row, err
	}

	coords := make([]float64, 4)
	for i, col := range []string{ColPickupLongitude, ColPickupLatitude, ColDropoffLongitude, ColDropoffLatitude} {
		s, ok := field(col)
		if !ok {
			return row, fmt.Errorf("%w: missing %s", ErrBadRow, col)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return row, fmt.Errorf("%w: %s %q is not a number", ErrBadRow, col, s)
		}
		coords[i] = v
	}

	s, ok := field(ColPassengerCount)
	if !ok {
		return row, fmt.Errorf("%w: missing %s", ErrBadRow, ColPassengerCount)
	}
	passengers, err := parseCount(s)
	if err != nil {
		return row, err
	}

	row.Request = trip.Request{
		Pickup:     types.Coordinate{Lng: coords[0], Lat: coords[1]},
		Dropoff:    types.Coordinate{Lng: coords[2], Lat: coords[3]},
		Passengers: passengers,
		Date:       date,
		Clock:      clock,
	}
	return row, nil
}

// ParseDatetime reads "YYYY-MM-DD HH:MM:SS <tz>". The zone token is ignored
// and the wall-clock values are kept as written.
func ParseDatetime(s string) (trip.Date, trip.Clock, error) {
	s = strings.TrimSpace(s)
	if fields := strings.Fields(s); len(fields) == 3 {
		s = fields[0] + " " + fields[1]
	}
	t, err := time.Parse(datetimeLayout, s)
	if err != nil {
		return trip.Date{}, trip.Clock{}, fmt.Errorf("%w: %s %q", ErrBadRow, ColPickupDatetime, s)
	}
	return trip.DateOf(t), trip.ClockOf(t), nil
}

// maxCount bounds passenger counts read from samples. Rows are not checked
// against the form's passenger limits, only against values no trip has.
const maxCount = 1000

// parseCount accepts "2" and "2.0" but not "2.5" or "1e300".
func parseCount(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrBadRow, ColPassengerCount, s)
	}
	if math.Abs(f) > maxCount {
		return 0, fmt.Errorf("%w: %s %q is out of range", ErrBadRow, ColPassengerCount, s)
	}
	return int(f), nil
}
