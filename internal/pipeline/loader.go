// Package pipeline turns the raw deficit table into typed records and aggregates.
package pipeline

import (
	"fmt"
	"io"

	"github.com/theirongolddev/deficit/internal/model"
	"github.com/theirongolddev/deficit/internal/source"

	"github.com/go-gota/gota/dataframe"
)

// LoadResult holds the output of the load pipeline.
type LoadResult struct {
	Frame       dataframe.DataFrame
	Records     []model.DeficitRecord
	TotalRows   int
	DroppedRows int
}

// Load reads the CSV at path and runs Transform on it.
func Load(path string) (*LoadResult, error) {
	df, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := load(df)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// LoadReader is Load for an already open CSV stream.
func LoadReader(r io.Reader) (*LoadResult, error) {
	df, err := source.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return load(df)
}

func load(df dataframe.DataFrame) (*LoadResult, error) {
	total := df.Nrow()

	out, err := Transform(df)
	if err != nil {
		return nil, err
	}

	records, err := Records(out)
	if err != nil {
		return nil, err
	}

	return &LoadResult{
		Frame:       out,
		Records:     records,
		TotalRows:   total,
		DroppedRows: total - len(records),
	}, nil
}
