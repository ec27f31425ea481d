// Package csvio reads debt portfolios from CSV and writes simulated
// schedules back out.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theirongolddev/snowplan/internal/model"
)

// importHeader is the expected column layout for portfolio files.
// Rows with an empty bucket_id describe a simple single-balance debt;
// rows sharing a debt_id add buckets to it.
var importHeader = []string{
	"debt_id", "debt_name", "balance", "apr", "min_payment", "order_index",
	"bucket_id", "bucket_name", "bucket_balance", "bucket_apr",
	"bucket_priority", "bucket_category",
}

// ImportDebts parses a portfolio CSV.
func ImportDebts(r io.Reader) ([]model.Debt, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(importHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, want := range importHeader {
		if strings.TrimSpace(header[i]) != want {
			return nil, fmt.Errorf("column %d is %q, want %q", i+1, header[i], want)
		}
	}

	var debts []model.Debt
	idx := make(map[string]int)

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line++

		debtID := strings.TrimSpace(rec[0])
		if debtID == "" {
			return nil, fmt.Errorf("line %d: empty debt_id", line)
		}

		i, seen := idx[debtID]
		if !seen {
			d := model.Debt{ID: debtID, Name: strings.TrimSpace(rec[1])}
			if d.Balance, err = parseAmount(rec[2], line, "balance"); err != nil {
				return nil, err
			}
			if d.APR, err = parseAmount(rec[3], line, "apr"); err != nil {
				return nil, err
			}
			if d.MinPayment, err = parseAmount(rec[4], line, "min_payment"); err != nil {
				return nil, err
			}
			if d.OrderIndex, err = parseInt(rec[5], line, "order_index"); err != nil {
				return nil, err
			}
			i = len(debts)
			idx[debtID] = i
			debts = append(debts, d)
		}

		bucketID := strings.TrimSpace(rec[6])
		if bucketID == "" {
			continue
		}

		b := model.Bucket{ID: bucketID, Name: strings.TrimSpace(rec[7])}
		if b.Balance, err = parseAmount(rec[8], line, "bucket_balance"); err != nil {
			return nil, err
		}
		if b.APR, err = parseAmount(rec[9], line, "bucket_apr"); err != nil {
			return nil, err
		}
		if b.PaymentPriority, err = parseInt(rec[10], line, "bucket_priority"); err != nil {
			return nil, err
		}
		if cat := strings.TrimSpace(rec[11]); cat != "" {
			b.Category = model.ParseCategory(cat)
		} else {
			b.Category = model.CategoryFromName(b.Name)
		}
		debts[i].Buckets = append(debts[i].Buckets, b)
	}

	return debts, nil
}

// ExportSchedule writes the month-by-month schedule, one row per bucket
// per month.
func ExportSchedule(w io.Writer, res model.SimulationResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"month", "date", "debt", "bucket", "interest", "principal", "payment", "balance", "paid_off"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, snap := range res.Months {
		for _, dm := range snap.Debts {
			for _, row := range dm.Buckets {
				rec := []string{
					strconv.Itoa(snap.Month),
					snap.Date.Format("2006-01"),
					dm.DebtName,
					row.BucketName,
					fmt.Sprintf("%.2f", row.Interest),
					fmt.Sprintf("%.2f", row.Principal),
					fmt.Sprintf("%.2f", row.Payment),
					fmt.Sprintf("%.2f", row.Balance),
					strconv.FormatBool(row.PaidOff),
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("writing row: %w", err)
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func parseAmount(s string, line int, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: bad %s %q", line, field, s)
	}
	return v, nil
}

func parseInt(s string, line int, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("line %d: bad %s %q", line, field, s)
	}
	return v, nil
}
