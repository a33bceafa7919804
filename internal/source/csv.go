// Package source reads the deficit CSV into a working table and parses its
// accounting-formatted amounts.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultFile is the input looked up in the working directory.
const DefaultFile = "deficit.csv"

// Column names after Rename.
const (
	ColFiscalYear   = "fiscal_year"
	ColDeficit      = "deficit"
	ColDebtIncrease = "debt_increase"
	ColDeficitToGDP = "deficit_to_gdp"
	ColEvents       = "events"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// Header pairs a source header with its normalized column name.
type Header struct {
	Source string
	Column string
}

// Headers lists the required source headers in file order.
var Headers = []Header{
	{"Fiscal Year", ColFiscalYear},
	{"Deficit (in billions)", ColDeficit},
	{"Debt Increase", ColDebtIncrease},
	{"Deficit/GDP", ColDeficitToGDP},
	{"Events", ColEvents},
}

// ReadFile opens path and reads it with ReadCSV.
func ReadFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied input file
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	df, err := ReadCSV(f)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return df, nil
}

// ReadCSV loads a comma-delimited table with a header row. Every column is
// kept as a string series; nothing is treated as a missing value.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return df, fmt.Errorf("parsing csv: %w", df.Err)
	}

	if err := checkHeaders(df.Names()); err != nil {
		return df, err
	}
	return df, nil
}

func checkHeaders(names []string) error {
	present := make(map[string]struct{}, len(names))
	for _, n := range names {
		present[n] = struct{}{}
	}
	for _, h := range Headers {
		if _, ok := present[h.Source]; !ok {
			return fmt.Errorf("%w %q", ErrMissingColumn, h.Source)
		}
	}
	return nil
}

// Rename maps the source headers to their normalized column names.
// Headers that are not present are ignored.
func Rename(df dataframe.DataFrame) dataframe.DataFrame {
	names := make(map[string]struct{}, df.Ncol())
	for _, n := range df.Names() {
		names[n] = struct{}{}
	}
	for _, h := range Headers {
		if _, ok := names[h.Source]; !ok {
			continue
		}
		df = df.Rename(h.Column, h.Source)
	}
	return df
}
