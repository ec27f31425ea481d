package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/csvio"
	"github.com/theirongolddev/snowplan/internal/engine"
	"github.com/theirongolddev/snowplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagSaveRun  bool
	flagSimFile  string
	flagSimLimit int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Month-by-month payoff schedule",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagSaveRun, "save", false, "Record this run in the history")
	simulateCmd.Flags().StringVarP(&flagSimFile, "file", "f", "", "Simulate a CSV portfolio instead of the stored one")
	simulateCmd.Flags().IntVarP(&flagSimLimit, "limit", "l", 24, "Months to print (0 = all)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) error {
	var debts []model.Debt

	if flagSimFile != "" {
		f, err := os.Open(flagSimFile)
		if err != nil {
			return err
		}
		debts, err = csvio.ImportDebts(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", flagSimFile, err)
		}
	} else {
		loaded, st, err := loadPortfolio()
		if err != nil {
			return err
		}
		st.Close()
		debts = loaded
	}

	opts, err := simOptions()
	if err != nil {
		return err
	}

	res := engine.Simulate(debts, opts)
	if len(res.Errors) > 0 {
		fmt.Println()
		for _, msg := range res.Errors {
			fmt.Println(cli.RenderWarning(msg))
		}
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PAYOFF SCHEDULE"))
	fmt.Println()

	limit := flagSimLimit
	if limit <= 0 || limit > len(res.Months) {
		limit = len(res.Months)
	}

	rows := make([][]string, 0, limit+2)
	for _, snap := range res.Months[:limit] {
		event := ""
		if len(snap.PaidOffDebts) > 0 {
			event = strings.Join(snap.PaidOffDebts, ", ") + " cleared"
		} else if n := len(snap.PaidOffBuckets); n > 0 {
			event = fmt.Sprintf("%d bucket(s) cleared", n)
		}
		rows = append(rows, []string{
			snap.Date.Format("2006-01"),
			cli.FormatMoney(snap.Payment),
			cli.FormatMoney(snap.Interest),
			cli.FormatMoney(snap.Principal),
			cli.FormatMoney(snap.Balance),
			event,
		})
	}
	if elided := len(res.Months) - limit - 1; elided > 0 {
		rows = append(rows, []string{"---"})
		last := res.Months[len(res.Months)-1]
		rows = append(rows, []string{
			last.Date.Format("2006-01"),
			cli.FormatMoney(last.Payment),
			cli.FormatMoney(last.Interest),
			cli.FormatMoney(last.Principal),
			cli.FormatMoney(last.Balance),
			fmt.Sprintf("... %d months elided", elided),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Payment", "Interest", "Principal", "Balance", "Event"},
		Rows:    rows,
	}))

	if res.CapReached {
		fmt.Println(cli.RenderWarning(fmt.Sprintf(
			"horizon cap of %d months reached with %s outstanding",
			res.TotalMonths, cli.FormatMoney(res.Months[len(res.Months)-1].Balance))))
	}
	fmt.Println()

	if flagSaveRun {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SaveRun(flagExtra, res); err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
		if !flagQuiet {
			fmt.Println("  Run saved to history.")
			fmt.Println()
		}
	}

	return nil
}
