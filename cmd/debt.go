package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/snowplan/internal/cli"
	"github.com/theirongolddev/snowplan/internal/csvio"
	"github.com/theirongolddev/snowplan/internal/engine"
	"github.com/theirongolddev/snowplan/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Manage the stored portfolio",
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored debts",
	RunE:  runDebtList,
}

var debtAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a debt interactively",
	RunE:  runDebtAdd,
}

var debtRmCmd = &cobra.Command{
	Use:   "rm <debt-id>",
	Short: "Remove a debt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtRm,
}

var debtImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import debts from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtImport,
}

func init() {
	debtCmd.AddCommand(debtListCmd, debtAddCmd, debtRmCmd, debtImportCmd)
	rootCmd.AddCommand(debtCmd)
}

func runDebtList(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	debts, err := st.ListDebts()
	if err != nil {
		return err
	}
	if len(debts) == 0 {
		fmt.Println("\n  No debts yet. Add one with `snowplan debt add`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PORTFOLIO"))
	fmt.Println()

	var total float64
	rows := make([][]string, 0, len(debts)+2)
	for _, d := range debts {
		buckets := "-"
		if len(d.Buckets) > 0 {
			names := make([]string, len(d.Buckets))
			for i, b := range d.Buckets {
				names[i] = b.Name
			}
			buckets = strings.Join(names, ", ")
		}
		rows = append(rows, []string{
			d.ID,
			d.Name,
			cli.FormatMoney(d.Balance),
			cli.FormatAPR(d.APR),
			cli.FormatMoney(d.MinPayment),
			buckets,
		})
		total += d.Balance
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "TOTAL", cli.FormatMoney(total), "", "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Balance", "APR", "Min", "Buckets"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runDebtAdd(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var (
		name       string
		balanceStr string
		aprStr     string
		minStr     string
		addBuckets bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Barclaycard").
				Validate(requireNonEmpty).
				Value(&name),
			huh.NewInput().
				Title("Balance").
				Placeholder("4500.00").
				Validate(requirePositiveAmount).
				Value(&balanceStr),
			huh.NewInput().
				Title("APR (annual %, 0 for interest-free)").
				Placeholder("22.9").
				Validate(requireAmount).
				Value(&aprStr),
			huh.NewInput().
				Title("Minimum monthly payment").
				Placeholder("120.00").
				Validate(requirePositiveAmount).
				Value(&minStr),
			huh.NewConfirm().
				Title("Split into rate buckets?").
				Value(&addBuckets),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	order, err := st.NextOrderIndex()
	if err != nil {
		return err
	}

	d := model.Debt{
		ID:         slugify(name),
		Name:       name,
		OrderIndex: order,
	}
	d.Balance, _ = strconv.ParseFloat(strings.TrimSpace(balanceStr), 64)
	d.APR, _ = strconv.ParseFloat(strings.TrimSpace(aprStr), 64)
	d.MinPayment, _ = strconv.ParseFloat(strings.TrimSpace(minStr), 64)

	if addBuckets {
		if d.Buckets, err = collectBuckets(d); err != nil {
			return err
		}
	}

	if msgs := engine.Validate([]model.Debt{d}); len(msgs) > 0 {
		fmt.Println()
		for _, msg := range msgs {
			fmt.Println(cli.RenderWarning(msg))
		}
		return fmt.Errorf("debt rejected")
	}

	if err := st.SaveDebt(d); err != nil {
		return err
	}

	fmt.Printf("\n  Added %s (%s, %s at %s).\n\n",
		d.Name, cli.FormatMoney(d.Balance), d.ID, cli.FormatAPR(d.APR))
	return nil
}

// collectBuckets prompts for buckets until the remaining balance is
// fully assigned.
func collectBuckets(d model.Debt) ([]model.Bucket, error) {
	var buckets []model.Bucket
	remaining := d.Balance

	for remaining > 0.01 {
		var (
			name       string
			balanceStr string
			aprStr     string
			category   model.BucketCategory
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Bucket name (%s unassigned)", cli.FormatMoney(remaining))).
					Placeholder("Purchases").
					Validate(requireNonEmpty).
					Value(&name),
				huh.NewInput().
					Title("Bucket balance").
					Validate(requirePositiveAmount).
					Value(&balanceStr),
				huh.NewInput().
					Title("Bucket APR").
					Validate(requireAmount).
					Value(&aprStr),
				huh.NewSelect[model.BucketCategory]().
					Title("Category").
					Options(
						huh.NewOption("Purchases", model.CategoryPurchases),
						huh.NewOption("Cash advance", model.CategoryCashAdvance),
						huh.NewOption("Balance transfer", model.CategoryBalanceTransfer),
						huh.NewOption("Other", model.CategoryOther),
					).
					Value(&category),
			),
		)
		if err := form.Run(); err != nil {
			return nil, err
		}

		b := model.Bucket{
			ID:              d.ID + "-" + slugify(name),
			Name:            name,
			Category:        category,
			PaymentPriority: len(buckets) + 1,
		}
		b.Balance, _ = strconv.ParseFloat(strings.TrimSpace(balanceStr), 64)
		b.APR, _ = strconv.ParseFloat(strings.TrimSpace(aprStr), 64)

		buckets = append(buckets, b)
		remaining -= b.Balance
	}

	return buckets, nil
}

func runDebtRm(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteDebt(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed %s.\n", args[0])
	return nil
}

func runDebtImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	debts, err := csvio.ImportDebts(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	if msgs := engine.Validate(debts); len(msgs) > 0 {
		fmt.Println()
		for _, msg := range msgs {
			fmt.Println(cli.RenderWarning(msg))
		}
		return fmt.Errorf("import rejected")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	for _, d := range debts {
		if d.OrderIndex == 0 {
			if d.OrderIndex, err = st.NextOrderIndex(); err != nil {
				return err
			}
		}
		if err := st.SaveDebt(d); err != nil {
			return fmt.Errorf("saving %s: %w", d.ID, err)
		}
	}

	fmt.Printf("  Imported %d debt(s) from %s.\n", len(debts), args[0])
	return nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func requireNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func requireAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func requirePositiveAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
