package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/deficit/internal/cli"
	"github.com/theirongolddev/deficit/internal/pipeline"

	"github.com/spf13/cobra"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Deficit totals by presidential administration",
	RunE:  runTerms,
}

func init() {
	rootCmd.AddCommand(termsCmd)
}

func runTerms(_ *cobra.Command, _ []string) error {
	path, err := settings()
	if err != nil {
		return err
	}
	result, err := loadData(path)
	if err != nil {
		return err
	}

	var rows [][]string
	for _, s := range pipeline.AggregateTerms(result.Records) {
		if s.Years == 0 {
			rows = append(rows, []string{
				s.Term.Label(), s.Term.Party.String(), cli.FormatSpan(s.Term.Start, s.Term.End),
				"-", "-", "-", "-", "",
			})
			continue
		}
		rows = append(rows, []string{
			s.Term.Label(),
			s.Term.Party.String(),
			cli.FormatSpan(s.Term.Start, s.Term.End),
			cli.FormatYears(s.Years),
			cli.FormatBillions(s.TotalDeficit),
			cli.FormatBillions(s.MeanDeficit),
			fmt.Sprintf("%s (%s)", cli.FormatBillions(s.WorstDeficit), strconv.Itoa(s.WorstYear)),
			cli.RenderSparkline(s.Deficits),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DEFICIT BY ADMINISTRATION  %s", yearSpan(result))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"Administration", "Party", "Term", "Years", "Total", "Mean", "Largest", "Trend"},
		Rows:      rows,
		LeftAlign: map[int]bool{1: true, 2: true, 7: true},
	}))
	return nil
}
