// Package model defines domain types for the deficit dataset and its reference data.
package model

// DeficitRecord is one row of the working table after transformation.
type DeficitRecord struct {
	FiscalYear int
	Deficit    float64 // billions, negative for a surplus

	// Passthrough fields, renamed but not interpreted.
	DebtIncrease string
	DeficitToGDP string
	Events       string
}
