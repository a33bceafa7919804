package model

// TermStats holds the deficit aggregate for one administration.
type TermStats struct {
	Term         Term
	Years        int
	TotalDeficit float64
	MeanDeficit  float64
	WorstYear    int     // year with the largest deficit, 0 when Years == 0
	WorstDeficit float64
	Deficits     []float64 // per-year deficits in record order
}
