// Package cmd implements the snowplan CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/config"
	"github.com/theirongolddev/snowplan/internal/engine"
	"github.com/theirongolddev/snowplan/internal/model"
	"github.com/theirongolddev/snowplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath    string
	flagExtra     float64
	flagStart     string
	flagMaxMonths int
	flagQuiet     bool
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "snowplan",
	Short: "Debt payoff simulator",
	Long:  "Simulate month-by-month debt payoff across cards, loans, and rate buckets.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Portfolio database path (default XDG data dir)")
	rootCmd.PersistentFlags().Float64VarP(&flagExtra, "extra", "x", 0, "Extra payment applied every month")
	rootCmd.PersistentFlags().StringVarP(&flagStart, "start", "s", "", "Start month (YYYY-MM, default current month)")
	rootCmd.PersistentFlags().IntVar(&flagMaxMonths, "max-months", 0, "Horizon cap in months (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		cli.SetCurrency(cfg.General.CurrencySymbol)

		if !cmd.Flags().Changed("extra") {
			flagExtra = cfg.Simulation.ExtraMonthly
		}
		if !cmd.Flags().Changed("max-months") {
			flagMaxMonths = cfg.Simulation.MaxMonths
		}
		return nil
	}
}

// openStore opens the portfolio database at the configured path.
func openStore() (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		path = store.DefaultPath()
	}
	return store.Open(path)
}

// loadPortfolio is the shared loading path used by the simulation
// commands. It errors when no debts have been added yet.
func loadPortfolio() ([]model.Debt, *store.Store, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	debts, err := st.ListDebts()
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	if len(debts) == 0 {
		st.Close()
		return nil, nil, fmt.Errorf("no debts found; add one with `snowplan debt add`")
	}

	return debts, st, nil
}

// simOptions builds engine options from the persistent flags.
func simOptions() (engine.Options, error) {
	opts := engine.Options{
		ExtraMonthly: flagExtra,
		MaxMonths:    flagMaxMonths,
	}
	if flagStart != "" {
		start, err := time.Parse("2006-01", flagStart)
		if err != nil {
			return opts, fmt.Errorf("bad --start %q, want YYYY-MM", flagStart)
		}
		opts.StartDate = start
	}
	return opts, nil
}

// runPortfolio loads the stored debts and simulates them, printing any
// validation failures. A nil result with nil error means the input was
// rejected and the messages were already shown.
func runPortfolio() (*model.SimulationResult, *store.Store, error) {
	debts, st, err := loadPortfolio()
	if err != nil {
		return nil, nil, err
	}

	opts, err := simOptions()
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	res := engine.Simulate(debts, opts)
	if len(res.Errors) > 0 {
		fmt.Println()
		for _, msg := range res.Errors {
			fmt.Println(cli.RenderWarning(msg))
		}
		fmt.Println()
		st.Close()
		return nil, nil, nil
	}

	return &res, st, nil
}
