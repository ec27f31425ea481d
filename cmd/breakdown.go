package cmd

import (
	"fmt"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/engine"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Interest cost per bucket",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	res, st, err := runPortfolio()
	if err != nil || res == nil {
		return err
	}
	defer st.Close()

	sum := engine.Summarize(*res)

	fmt.Println()
	fmt.Println(cli.RenderTitle("INTEREST BREAKDOWN"))
	fmt.Println()

	var maxInterest float64
	for _, b := range sum.Buckets {
		if b.Interest > maxInterest {
			maxInterest = b.Interest
		}
	}

	rows := make([][]string, 0, len(sum.Buckets)+2)
	for _, b := range sum.Buckets {
		rows = append(rows, []string{
			b.Name,
			cli.FormatAPR(b.APR),
			cli.FormatMoney(b.Interest),
			cli.FormatPercent(b.Percent),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", cli.FormatMoney(sum.TotalInterest), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Bucket", "APR", "Interest", "Share"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, b := range sum.Buckets {
		fmt.Printf("  %-24s %s  %s\n",
			b.Name,
			cli.RenderHorizontalBar(b.Interest, maxInterest, 30),
			cli.FormatMoney(b.Interest))
	}
	fmt.Println()

	return nil
}
