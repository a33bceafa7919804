package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/deficit/internal/model"
	"github.com/theirongolddev/deficit/internal/source"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrInvalidYear is returned when a retained fiscal year is not an integer.
var ErrInvalidYear = errors.New("invalid fiscal year")

// nonFinalMarker flags continuing-resolution and estimate rows in fiscal_year.
const nonFinalMarker = "C"

// Transform runs the full chain on a freshly read table:
// rename, parse the deficit column, drop non-final years, cast the year.
func Transform(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	df = source.Rename(df)
	if df.Err != nil {
		return df, fmt.Errorf("renaming columns: %w", df.Err)
	}

	df, err := ParseMoneyColumns(df, source.ColDeficit)
	if err != nil {
		return df, err
	}

	df, err = DropNonFinalYears(df)
	if err != nil {
		return df, err
	}

	return CastYear(df)
}

// ParseMoneyColumns replaces each named string column with a float column
// holding its accounting-notation values.
func ParseMoneyColumns(df dataframe.DataFrame, cols ...string) (dataframe.DataFrame, error) {
	for _, col := range cols {
		s := df.Col(col)
		if s.Err != nil {
			return df, fmt.Errorf("column %s: %w", col, s.Err)
		}

		records := s.Records()
		values := make([]float64, len(records))
		for i, rec := range records {
			v, err := source.ParseAccountingNumber(rec)
			if err != nil {
				return df, fmt.Errorf("row %d, column %s: %w", i+1, col, err)
			}
			values[i] = v
		}

		df = df.Mutate(series.New(values, series.Float, col))
		if df.Err != nil {
			return df, fmt.Errorf("column %s: %w", col, df.Err)
		}
	}
	return df, nil
}

// IsFinalYear reports whether a fiscal_year value is a final (non-"C") year.
func IsFinalYear(v string) bool {
	return !strings.Contains(v, nonFinalMarker)
}

// DropNonFinalYears keeps only rows whose fiscal_year passes IsFinalYear.
// Row order is preserved.
func DropNonFinalYears(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	out := df.Filter(dataframe.F{
		Colname:    source.ColFiscalYear,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			return IsFinalYear(el.String())
		},
	})
	if out.Err != nil {
		return out, fmt.Errorf("filtering %s: %w", source.ColFiscalYear, out.Err)
	}
	return out, nil
}

// CastYear replaces fiscal_year with an integer column.
func CastYear(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	s := df.Col(source.ColFiscalYear)
	if s.Err != nil {
		return df, fmt.Errorf("column %s: %w", source.ColFiscalYear, s.Err)
	}

	records := s.Records()
	years := make([]int, len(records))
	for i, rec := range records {
		y, err := strconv.Atoi(strings.TrimSpace(rec))
		if err != nil {
			return df, fmt.Errorf("row %d: %w %q", i+1, ErrInvalidYear, rec)
		}
		years[i] = y
	}

	df = df.Mutate(series.New(years, series.Int, source.ColFiscalYear))
	if df.Err != nil {
		return df, fmt.Errorf("column %s: %w", source.ColFiscalYear, df.Err)
	}
	return df, nil
}

// Records projects a transformed table into typed rows, in table order.
func Records(df dataframe.DataFrame) ([]model.DeficitRecord, error) {
	cols := make(map[string]series.Series, len(source.Headers))
	for _, h := range source.Headers {
		s := df.Col(h.Column)
		if s.Err != nil {
			return nil, fmt.Errorf("column %s: %w", h.Column, s.Err)
		}
		cols[h.Column] = s
	}

	years, err := cols[source.ColFiscalYear].Int()
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", source.ColFiscalYear, err)
	}
	deficits := cols[source.ColDeficit].Float()
	debt := cols[source.ColDebtIncrease].Records()
	ratio := cols[source.ColDeficitToGDP].Records()
	events := cols[source.ColEvents].Records()

	out := make([]model.DeficitRecord, len(years))
	for i := range years {
		out[i] = model.DeficitRecord{
			FiscalYear:   years[i],
			Deficit:      deficits[i],
			DebtIncrease: debt[i],
			DeficitToGDP: ratio[i],
			Events:       events[i],
		}
	}
	return out, nil
}
