package cmd

import (
	"fmt"

	"github.com/theirongolddev/snowplan/internal/cli"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Saved simulation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 20, "Runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("\n  No saved runs. Use `snowplan simulate --save`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RUN HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := r.FreedomDate.Format("Jan 2006")
		if r.CapReached {
			status = "cap reached"
		}
		rows = append(rows, []string{
			r.RanAt.Format("2006-01-02 15:04"),
			cli.FormatMoney(r.ExtraMonthly),
			cli.FormatMonths(r.TotalMonths),
			cli.FormatMoney(r.TotalInterest),
			status,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Ran", "Extra", "Duration", "Interest", "Debt-free"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
