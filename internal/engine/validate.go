package engine

import (
	"fmt"
	"math"

	"github.com/theirongolddev/snowplan/internal/model"
)

// growthTolerance lets a minimum payment sit slightly below the exact
// monthly interest charge before the debt is rejected as ever-growing.
// The 5% slack absorbs rounding in caller-supplied figures.
const growthTolerance = 0.95

// Validate checks a portfolio for structural and business-rule validity.
// It returns human-readable errors; an empty slice means the simulation
// may proceed. Validate is pure and never mutates its input.
func Validate(debts []model.Debt) []string {
	var errs []string

	for _, d := range debts {
		if d.MinPayment <= 0 {
			errs = append(errs, fmt.Sprintf("debt %q: minimum payment must be greater than 0", d.Name))
		}
		if d.Balance < 0 {
			errs = append(errs, fmt.Sprintf("debt %q: balance cannot be negative", d.Name))
		}

		if len(d.Buckets) > 0 {
			var sum float64
			for _, b := range d.Buckets {
				if b.APR < 0 || b.APR > 100 {
					errs = append(errs, fmt.Sprintf("debt %q bucket %q: APR must be between 0 and 100", d.Name, b.Name))
				}
				if b.Balance < 0 {
					errs = append(errs, fmt.Sprintf("debt %q bucket %q: balance cannot be negative", d.Name, b.Name))
				}
				sum += b.Balance
			}
			if math.Abs(sum-d.Balance) > balanceTolerance {
				errs = append(errs, fmt.Sprintf("debt %q: bucket balances (%.2f) do not add up to the debt balance (%.2f)", d.Name, sum, d.Balance))
			}
		} else if d.APR < 0 || d.APR > 100 {
			errs = append(errs, fmt.Sprintf("debt %q: APR must be between 0 and 100", d.Name))
		}

		// An ever-growing debt would never terminate; reject it upfront
		// rather than simulating runaway growth.
		charge := monthlyInterestCharge(d)
		if d.MinPayment < charge*growthTolerance {
			errs = append(errs, fmt.Sprintf("debt %q: minimum payment %.2f does not cover the monthly interest charge of %.2f", d.Name, d.MinPayment, charge))
		}
	}

	return errs
}

// monthlyInterestCharge is the unrounded first-month interest across a
// debt's buckets (or its implicit single bucket).
func monthlyInterestCharge(d model.Debt) float64 {
	if len(d.Buckets) == 0 {
		return d.Balance * d.APR / 100 / 12
	}
	var total float64
	for _, b := range d.Buckets {
		total += b.Balance * b.APR / 100 / 12
	}
	return total
}
