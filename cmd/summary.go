package cmd

import (
	"fmt"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/engine"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Payoff summary for the stored portfolio",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	res, st, err := runPortfolio()
	if err != nil || res == nil {
		return err
	}
	defer st.Close()

	sum := engine.Summarize(*res)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PAYOFF SUMMARY"))
	fmt.Println()

	rows := [][]string{
		{"Months to clear", cli.FormatMonths(sum.MonthsToClear)},
		{"Debt-free date", sum.FreedomDate.Format("January 2006")},
		{"Total interest", cli.FormatMoney(sum.TotalInterest)},
		{"Total paid", cli.FormatMoney(sum.TotalPaid)},
		{"Avg monthly payment", cli.FormatMoney(sum.MonthlyPayment)},
	}
	if flagExtra > 0 {
		rows = append(rows, []string{"Extra per month", cli.FormatMoney(flagExtra)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if !sum.Cleared {
		fmt.Println(cli.RenderWarning(fmt.Sprintf(
			"not cleared within %d months; balances remain", res.TotalMonths)))
	}
	fmt.Println()

	return nil
}
