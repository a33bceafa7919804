package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/deficit/internal/cli"

	"github.com/spf13/cobra"
)

var flagEventsWidth int

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the cleaned deficit table",
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().IntVar(&flagEventsWidth, "events-width", 48, "Truncate the events column to this many characters")
	rootCmd.AddCommand(tableCmd)
}

func runTable(_ *cobra.Command, _ []string) error {
	path, err := settings()
	if err != nil {
		return err
	}
	result, err := loadData(path)
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		fmt.Println("\n  No final fiscal years in " + path)
		return nil
	}

	rows := make([][]string, 0, len(result.Records))
	for _, r := range result.Records {
		rows = append(rows, []string{
			strconv.Itoa(r.FiscalYear),
			cli.FormatBillions(r.Deficit),
			r.DebtIncrease,
			r.DeficitToGDP,
			cli.Truncate(r.Events, flagEventsWidth),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("U.S. DEFICIT  %s", yearSpan(result))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"Fiscal Year", "Deficit", "Debt Increase", "Deficit/GDP", "Events"},
		Rows:      rows,
		LeftAlign: map[int]bool{4: true},
	}))
	return nil
}
