package pipeline

import (
	"github.com/theirongolddev/deficit/internal/model"

	"github.com/shopspring/decimal"
)

// AggregateTerms computes per-administration deficit statistics.
// Every presidential term is returned, in order, including terms with no data.
// Years are attributed with model.TermForYear.
func AggregateTerms(records []model.DeficitRecord) []model.TermStats {
	terms := model.PresidentialTerms()
	stats := make([]model.TermStats, len(terms))
	totals := make([]decimal.Decimal, len(terms))
	index := make(map[string]int, len(terms))
	for i, t := range terms {
		stats[i].Term = t
		totals[i] = decimal.Zero
		index[t.Start] = i
	}

	for _, r := range records {
		term, ok := model.TermForYear(r.FiscalYear)
		if !ok {
			continue
		}
		i := index[term.Start]
		s := &stats[i]
		if s.Years == 0 || r.Deficit > s.WorstDeficit {
			s.WorstYear = r.FiscalYear
			s.WorstDeficit = r.Deficit
		}
		s.Years++
		s.Deficits = append(s.Deficits, r.Deficit)
		totals[i] = totals[i].Add(decimal.NewFromFloat(r.Deficit))
	}

	for i := range stats {
		stats[i].TotalDeficit = totals[i].InexactFloat64()
		if stats[i].Years > 0 {
			stats[i].MeanDeficit = totals[i].Div(decimal.NewFromInt(int64(stats[i].Years))).InexactFloat64()
		}
	}
	return stats
}

// SeriesRange returns the min and max deficit across records.
func SeriesRange(records []model.DeficitRecord) (lo, hi float64) {
	if len(records) == 0 {
		return 0, 0
	}
	lo, hi = records[0].Deficit, records[0].Deficit
	for _, r := range records[1:] {
		if r.Deficit < lo {
			lo = r.Deficit
		}
		if r.Deficit > hi {
			hi = r.Deficit
		}
	}
	return lo, hi
}
