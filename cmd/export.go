package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/snowplan/internal/csvio"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full schedule as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	res, st, err := runPortfolio()
	if err != nil || res == nil {
		return err
	}
	defer st.Close()

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := csvio.ExportSchedule(out, *res); err != nil {
		return err
	}
	if flagExportOut != "" && !flagQuiet {
		fmt.Printf("  Schedule written to %s\n", flagExportOut)
	}
	return nil
}
