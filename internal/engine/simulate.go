package engine

import (
	"time"

	"github.com/theirongolddev/snowplan/internal/model"
)

// Options controls a simulation run.
type Options struct {
	// ExtraMonthly is the flexible payment applied each month on top of
	// minimums, cascaded to the first unpaid debt.
	ExtraMonthly float64

	// StartDate anchors the freedom-date arithmetic. Zero means now.
	StartDate time.Time

	// MaxMonths caps the simulation. Zero or negative means
	// DefaultMaxMonths.
	MaxMonths int
}

// Simulate runs the full month-by-month payoff forecast. It is a pure
// function: concurrent callers may run independent simulations in
// parallel, and identical inputs always produce identical results.
//
// When validation rejects the input, the result carries the error list
// with no snapshots and zero totals. Hitting the month cap is not an
// error; the caller can inspect the final balance.
func Simulate(debts []model.Debt, opts Options) model.SimulationResult {
	if errs := Validate(debts); len(errs) > 0 {
		return model.SimulationResult{Errors: errs}
	}

	start := opts.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	maxMonths := opts.MaxMonths
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}

	states := newPortfolio(debts)
	breakdown := make(map[string]model.BucketTotals)

	var res model.SimulationResult
	pool := 0.0

	for month := 1; month <= maxMonths; month++ {
		snap := model.MonthSnapshot{
			Month: month,
			Date:  start.AddDate(0, month, 0),
		}

		target := firstUnpaid(states)
		var freed, carry, extraApplied float64

		for i := range states {
			if states[i].allPaidOff() {
				snap.Debts = append(snap.Debts, zeroDebtMonth(states[i]))
				continue
			}

			var extra, earmarked float64
			if i == target {
				extra = opts.ExtraMonthly
				earmarked = pool
			}

			out := stepDebt(states[i], extra, earmarked)
			states[i] = out.debt

			if out.month.PaidOff {
				snap.PaidOffDebts = append(snap.PaidOffDebts, states[i].name)
				freed += states[i].minPayment
			}
			snap.PaidOffBuckets = append(snap.PaidOffBuckets, out.paidOffBuckets...)
			carry += out.carry
			extraApplied += out.extraApplied

			accumulateBreakdown(breakdown, states[i], out.month)
			snap.Debts = append(snap.Debts, out.month)
		}

		for _, dm := range snap.Debts {
			snap.Interest += dm.Interest
			snap.Principal += dm.Principal
			snap.Payment += dm.Payment
			snap.Balance += dm.Balance
		}
		snap.Interest = round2(snap.Interest)
		snap.Principal = round2(snap.Principal)
		snap.Payment = round2(snap.Payment)
		snap.Balance = round2(snap.Balance)
		snap.ExtraApplied = round2(extraApplied)

		res.Months = append(res.Months, snap)

		// Next month's pool: minimums freed by this month's payoffs plus
		// any flexible payment the target debt could not absorb.
		pool = round2(freed + carry)

		if allDebtsPaid(states) {
			break
		}
	}

	res.TotalMonths = len(res.Months)
	res.CapReached = !allDebtsPaid(states)
	res.FreedomDate = start.AddDate(0, res.TotalMonths, 0)
	res.Breakdown = breakdown

	var totalInterest, totalPrincipal float64
	for _, snap := range res.Months {
		totalInterest += snap.Interest
		totalPrincipal += snap.Principal
	}
	res.TotalInterest = round2(totalInterest)
	res.TotalPrincipal = round2(totalPrincipal)

	return res
}

// firstUnpaid returns the index of the first debt, in cascade order,
// that still carries a balance. Only this debt receives the extra
// payment and the rolled-over pool this month.
func firstUnpaid(states []debtState) int {
	for i := range states {
		if !states[i].allPaidOff() {
			return i
		}
	}
	return -1
}

func allDebtsPaid(states []debtState) bool {
	return firstUnpaid(states) == -1
}

// zeroDebtMonth short-circuits an already-cleared debt to a zero-value
// snapshot row without re-running the stepper.
func zeroDebtMonth(d debtState) model.DebtMonth {
	rows := make([]model.BucketMonth, len(d.buckets))
	for i, b := range d.buckets {
		rows[i] = model.BucketMonth{
			BucketID:   b.id,
			BucketName: b.name,
			PaidOff:    true,
		}
	}
	return model.DebtMonth{
		DebtID:   d.id,
		DebtName: d.name,
		PaidOff:  true,
		Buckets:  rows,
	}
}

// accumulateBreakdown folds one debt-month into the running per-bucket
// interest/principal totals, creating entries lazily.
func accumulateBreakdown(breakdown map[string]model.BucketTotals, d debtState, dm model.DebtMonth) {
	for i, row := range dm.Buckets {
		if row.Interest == 0 && row.Principal == 0 {
			continue
		}
		bt, ok := breakdown[row.BucketID]
		if !ok {
			bt = model.BucketTotals{
				BucketID:   row.BucketID,
				BucketName: row.BucketName,
				APR:        d.buckets[i].apr,
			}
		}
		bt.Interest = round2(bt.Interest + row.Interest)
		bt.Principal = round2(bt.Principal + row.Principal)
		breakdown[row.BucketID] = bt
	}
}
