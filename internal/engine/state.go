// Package engine implements the month-by-month debt payoff simulation:
// input validation, the per-debt period stepper, and the driver loop that
// carries the snowball pool across months.
package engine

import (
	"math"
	"sort"

	"github.com/theirongolddev/snowplan/internal/model"
)

const (
	// DefaultMaxMonths caps a simulation at 50 years.
	DefaultMaxMonths = 600

	// paidOffTolerance is the residual below which a balance is clamped
	// to exactly zero.
	paidOffTolerance = 0.01

	// balanceTolerance is the allowed mismatch between a debt's declared
	// balance and the sum of its bucket balances.
	balanceTolerance = 0.01

	// purchasesMinPrincipal is the fixed principal a purchases bucket
	// receives from the minimum payment when extra payment is in play.
	purchasesMinPrincipal = 50.0
)

// round2 rounds half away from zero to 2 decimals. Applied at every
// intermediate computation step, not only at output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// monthlyInterest is one month's interest charge on a balance at an
// annual percentage rate.
func monthlyInterest(balance, apr float64) float64 {
	return round2(balance * apr / 100 / 12)
}

// bucketState is the engine's working view of one bucket. States are
// values: the stepper copies and returns new ones, never mutating input.
type bucketState struct {
	id       string
	name     string
	category model.BucketCategory
	balance  float64
	apr      float64
	priority int
	paidOff  bool
}

// debtState is the engine's working view of one debt.
type debtState struct {
	id         string
	name       string
	minPayment float64
	orderIndex int
	buckets    []bucketState
}

func (d debtState) allPaidOff() bool {
	for _, b := range d.buckets {
		if !b.paidOff {
			return false
		}
	}
	return true
}

func (d debtState) totalBalance() float64 {
	var total float64
	for _, b := range d.buckets {
		total += b.balance
	}
	return round2(total)
}

// newDebtState normalizes a debt into the uniform bucket-list form.
// A debt without explicit buckets becomes a single implicit bucket at
// the debt's fallback APR.
func newDebtState(d model.Debt) debtState {
	st := debtState{
		id:         d.ID,
		name:       d.Name,
		minPayment: d.MinPayment,
		orderIndex: d.OrderIndex,
	}

	if len(d.Buckets) == 0 {
		st.buckets = []bucketState{newBucketState(model.Bucket{
			ID:              d.ID,
			Name:            d.Name,
			Balance:         d.Balance,
			APR:             d.APR,
			PaymentPriority: 1,
			Category:        model.CategoryOther,
		})}
		return st
	}

	st.buckets = make([]bucketState, len(d.Buckets))
	for i, b := range d.Buckets {
		st.buckets[i] = newBucketState(b)
	}
	return st
}

func newBucketState(b model.Bucket) bucketState {
	bs := bucketState{
		id:       b.ID,
		name:     b.Name,
		category: b.Category,
		balance:  round2(b.Balance),
		apr:      b.APR,
		priority: b.PaymentPriority,
	}
	if bs.balance <= paidOffTolerance {
		bs.balance = 0
		bs.paidOff = true
	}
	return bs
}

// newPortfolio normalizes all debts and orders them by ascending order
// index, the snowball cascade order.
func newPortfolio(debts []model.Debt) []debtState {
	states := make([]debtState, len(debts))
	for i, d := range debts {
		states[i] = newDebtState(d)
	}
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].orderIndex < states[j].orderIndex
	})
	return states
}
