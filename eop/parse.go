// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package eop parses IERS Earth Orientation Parameter finals series and
// builds interpolated providers of polar motion, UT1−TAI and
// nutation/precession corrections from them, per §4.7. CSV parsing uses
// the standard library's encoding/csv (semicolon-delimited) since no
// example repository in the retrieval pack reaches for a third-party CSV
// library; see DESIGN.md.
package eop

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/loxspace/lox/calendar"
	"github.com/loxspace/lox/leapsec"
)

// ErrMissingRequiredColumn is returned when the header lacks MJD, Year,
// Month or Day.
var ErrMissingRequiredColumn = errors.New("eop: missing required column")

// Row is one parsed EOP finals record. Optional fields are nil when the
// source row omits them.
type Row struct {
	MJD               float64
	Date              calendar.Date
	SecondsSinceJ2000 float64

	XPole, YPole *float64 // arcsec
	UT1MinusUTC  *float64 // seconds
	UT1MinusTAI  *float64 // seconds, derived via the leap-second provider

	DPsi, DEpsilon *float64 // IAU 1980 nutation corrections, arcsec
	DX, DY         *float64 // IAU 2000 nutation corrections, arcsec
}

// columnIndex maps a recognized column name to its position in a row.
type columnIndex map[string]int

// requiredColumns must all be present in the header.
var requiredColumns = []string{"MJD", "Year", "Month", "Day"}

var optionalColumns = []string{"x_pole", "y_pole", "UT1-UTC", "dPsi", "dEpsilon", "dX", "dY"}

func buildColumnIndex(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, errors.Wrapf(ErrMissingRequiredColumn, "column %q", name)
		}
	}
	return idx, nil
}

func parseOptionalFloat(fields []string, idx columnIndex, name string) (*float64, error) {
	col, ok := idx[name]
	if !ok || col >= len(fields) {
		return nil, nil
	}
	raw := strings.TrimSpace(fields[col])
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "eop: column %q", name)
	}
	return &v, nil
}

// ParseFinalsCSV reads a semicolon-delimited IERS finals series from r,
// computing seconds-since-J2000 from each row's MJD and, when UT1-UTC is
// present, UT1−TAI by applying leap at the row's UTC date.
func ParseFinalsCSV(r io.Reader, leap leapsec.Provider) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "eop: reading header")
	}
	idx, err := buildColumnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for lineNum := 2; ; lineNum++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "eop: line %d", lineNum)
		}
		row, err := parseRow(fields, idx, leap)
		if err != nil {
			return nil, errors.Wrapf(err, "eop: line %d", lineNum)
		}
		rows = append(rows, row)
	}
	log.Debug().Int("rows", len(rows)).Msg("eop: parsed finals series")
	return rows, nil
}

func parseRow(fields []string, idx columnIndex, leap leapsec.Provider) (Row, error) {
	mjd, err := strconv.ParseFloat(strings.TrimSpace(fields[idx["MJD"]]), 64)
	if err != nil {
		return Row{}, errors.Wrap(err, "MJD")
	}
	year, err := strconv.Atoi(strings.TrimSpace(fields[idx["Year"]]))
	if err != nil {
		return Row{}, errors.Wrap(err, "Year")
	}
	month, err := strconv.Atoi(strings.TrimSpace(fields[idx["Month"]]))
	if err != nil {
		return Row{}, errors.Wrap(err, "Month")
	}
	day, err := strconv.Atoi(strings.TrimSpace(fields[idx["Day"]]))
	if err != nil {
		return Row{}, errors.Wrap(err, "Day")
	}
	// Two-digit finals-series years are expressed in full here; IERS
	// finals files always give a four-digit year, so no windowing logic
	// is needed.
	date, err := calendar.NewDate(year, month, day)
	if err != nil {
		return Row{}, errors.Wrap(err, "Date")
	}

	// MJD 51544 is 2000-01-01, the day calendar.Date.DaysSinceJ2000 counts
	// as day 0.
	const mjdOfJ2000Day = 51544.0
	row := Row{MJD: mjd, Date: date, SecondsSinceJ2000: (mjd - mjdOfJ2000Day) * 86400}

	if row.XPole, err = parseOptionalFloat(fields, idx, "x_pole"); err != nil {
		return Row{}, err
	}
	if row.YPole, err = parseOptionalFloat(fields, idx, "y_pole"); err != nil {
		return Row{}, err
	}
	if row.UT1MinusUTC, err = parseOptionalFloat(fields, idx, "UT1-UTC"); err != nil {
		return Row{}, err
	}
	if row.DPsi, err = parseOptionalFloat(fields, idx, "dPsi"); err != nil {
		return Row{}, err
	}
	if row.DEpsilon, err = parseOptionalFloat(fields, idx, "dEpsilon"); err != nil {
		return Row{}, err
	}
	if row.DX, err = parseOptionalFloat(fields, idx, "dX"); err != nil {
		return Row{}, err
	}
	if row.DY, err = parseOptionalFloat(fields, idx, "dY"); err != nil {
		return Row{}, err
	}

	if row.UT1MinusUTC != nil {
		utcMinusTAI := leap.UTCMinusTAI(int64(row.SecondsSinceJ2000))
		ut1MinusTAI := *row.UT1MinusUTC + float64(utcMinusTAI)
		row.UT1MinusTAI = &ut1MinusTAI
	}

	return row, nil
}

// MergeRows combines two row sets pairwise by position, preferring a's
// non-nil optional fields and falling back to b's, per §6's "IAU 1980 and
// IAU 2000 may be combined" rule. The two slices must describe the same
// time index; MergeRows does not itself verify that, since upstream IERS
// finals series for the same span always share row count and dates.
func MergeRows(a, b []Row) []Row {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	merged := make([]Row, n)
	for i := 0; i < n; i++ {
		merged[i] = mergeRow(a[i], b[i])
	}
	return merged
}

func pickFloat(primary, fallback *float64) *float64 {
	if primary != nil {
		return primary
	}
	return fallback
}

func mergeRow(a, b Row) Row {
	m := a
	m.XPole = pickFloat(a.XPole, b.XPole)
	m.YPole = pickFloat(a.YPole, b.YPole)
	m.UT1MinusUTC = pickFloat(a.UT1MinusUTC, b.UT1MinusUTC)
	m.UT1MinusTAI = pickFloat(a.UT1MinusTAI, b.UT1MinusTAI)
	m.DPsi = pickFloat(a.DPsi, b.DPsi)
	m.DEpsilon = pickFloat(a.DEpsilon, b.DEpsilon)
	m.DX = pickFloat(a.DX, b.DX)
	m.DY = pickFloat(a.DY, b.DY)
	return m
}
