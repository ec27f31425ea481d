package engine

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/theirongolddev/snowplan/internal/model"
)

var testStart = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

func TestSimulate_FirstMonthFigures(t *testing.T) {
	res := Simulate([]model.Debt{simpleDebt("d1", 5000, 22.9, 150)}, Options{
		ExtraMonthly: 200,
		StartDate:    testStart,
	})

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Months) == 0 {
		t.Fatal("no snapshots")
	}

	first := res.Months[0]
	if first.Interest != 95.42 {
		t.Errorf("month-1 interest = %.2f, want 95.42", first.Interest)
	}
	if first.Balance != 4745.42 {
		t.Errorf("month-1 balance = %.2f, want 4745.42", first.Balance)
	}
	if first.ExtraApplied != 200 {
		t.Errorf("month-1 extra applied = %.2f, want 200", first.ExtraApplied)
	}
	if !first.Date.Equal(testStart.AddDate(0, 1, 0)) {
		t.Errorf("month-1 date = %v", first.Date)
	}
}

func TestSimulate_RejectedInput(t *testing.T) {
	res := Simulate([]model.Debt{simpleDebt("d1", 10000, 35, 50)}, Options{StartDate: testStart})

	if len(res.Errors) == 0 {
		t.Fatal("expected validation errors")
	}
	if len(res.Months) != 0 {
		t.Errorf("rejected input produced %d snapshots", len(res.Months))
	}
	if res.TotalInterest != 0 || res.TotalPrincipal != 0 {
		t.Errorf("rejected input has totals: %.2f / %.2f", res.TotalInterest, res.TotalPrincipal)
	}
}

func TestSimulate_SnowballRollover(t *testing.T) {
	// Debt A clears in month 2; its freed minimum becomes month 3's
	// pool for debt B.
	debts := []model.Debt{
		simpleDebt("a", 100, 0, 50),
		simpleDebt("b", 5000, 12, 100),
	}
	debts[0].OrderIndex = 1
	debts[1].OrderIndex = 2

	res := Simulate(debts, Options{StartDate: testStart})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	m2 := res.Months[1]
	if len(m2.PaidOffDebts) != 1 || m2.PaidOffDebts[0] != "a" {
		t.Fatalf("month-2 paid-off debts = %v, want [a]", m2.PaidOffDebts)
	}

	// Month 3: debt B receives A's freed 50 as pool.
	m3 := res.Months[2]
	if m3.ExtraApplied != 50 {
		t.Errorf("month-3 extra applied = %.2f, want rolled-over 50", m3.ExtraApplied)
	}

	// The pool is rebuilt from that month's payoffs only; nothing
	// cleared in month 3, so month 4 has no flexible payment.
	m4 := res.Months[3]
	if m4.ExtraApplied != 0 {
		t.Errorf("month-4 extra applied = %.2f, want 0", m4.ExtraApplied)
	}
}

func TestSimulate_CapReached(t *testing.T) {
	res := Simulate([]model.Debt{simpleDebt("d1", 10000, 0, 50)}, Options{
		StartDate: testStart,
		MaxMonths: 3,
	})

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.TotalMonths != 3 {
		t.Errorf("TotalMonths = %d, want 3", res.TotalMonths)
	}
	if !res.CapReached {
		t.Error("CapReached = false, want true")
	}
	if got := res.Months[2].Balance; got != 9850 {
		t.Errorf("final balance = %.2f, want 9850", got)
	}
}

func TestSimulate_DefaultCap(t *testing.T) {
	// A million at 20% with a minimum that barely covers interest pays
	// down ~33/month and cannot clear inside 50 years.
	res := Simulate([]model.Debt{simpleDebt("d1", 1_000_000, 20, 16_700)}, Options{StartDate: testStart})

	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.TotalMonths != DefaultMaxMonths {
		t.Errorf("TotalMonths = %d, want %d", res.TotalMonths, DefaultMaxMonths)
	}
	if !res.CapReached {
		t.Error("CapReached = false, want true")
	}
	if len(res.Months) > DefaultMaxMonths {
		t.Errorf("%d snapshots exceed the cap", len(res.Months))
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	debts := testPortfolio()
	opts := Options{ExtraMonthly: 150, StartDate: testStart}

	a := Simulate(debts, opts)
	b := Simulate(debts, opts)

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different results")
	}
}

func TestSimulate_MonotonicPayoff(t *testing.T) {
	res := Simulate(testPortfolio(), Options{ExtraMonthly: 150, StartDate: testStart})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.CapReached {
		t.Fatal("portfolio did not clear inside the cap")
	}

	prev := map[string]float64{}
	for _, snap := range res.Months {
		for _, dm := range snap.Debts {
			for _, row := range dm.Buckets {
				if last, ok := prev[row.BucketID]; ok && row.Balance > last {
					t.Fatalf("month %d bucket %s balance rose %.2f -> %.2f",
						snap.Month, row.BucketID, last, row.Balance)
				}
				prev[row.BucketID] = row.Balance
			}
		}
	}

	for id, bal := range prev {
		if bal != 0 {
			t.Errorf("bucket %s ended at %.2f, want 0", id, bal)
		}
	}
}

func TestSimulate_PaymentClosure(t *testing.T) {
	res := Simulate(testPortfolio(), Options{ExtraMonthly: 150, StartDate: testStart})

	for _, snap := range res.Months {
		for _, dm := range snap.Debts {
			for _, row := range dm.Buckets {
				if want := round2(row.Interest + row.Principal); row.Payment != want {
					t.Fatalf("month %d bucket %s payment %.2f != interest+principal %.2f",
						snap.Month, row.BucketID, row.Payment, want)
				}
			}
		}
	}
}

func TestSimulate_FreedomDate(t *testing.T) {
	res := Simulate([]model.Debt{simpleDebt("d1", 1000, 0, 100)}, Options{StartDate: testStart})

	if res.TotalMonths != 10 {
		t.Fatalf("TotalMonths = %d, want 10", res.TotalMonths)
	}
	want := testStart.AddDate(0, 10, 0)
	if !res.FreedomDate.Equal(want) {
		t.Errorf("FreedomDate = %v, want %v", res.FreedomDate, want)
	}
}

func TestSimulate_BreakdownAccumulates(t *testing.T) {
	res := Simulate(testPortfolio(), Options{ExtraMonthly: 150, StartDate: testStart})

	var interest float64
	for _, bt := range res.Breakdown {
		interest += bt.Interest
	}
	if got, want := round2(interest), res.TotalInterest; math.Abs(got-want) > 0.01 {
		t.Errorf("breakdown interest %.2f != total interest %.2f", got, want)
	}
}

// testPortfolio mixes a simple debt with a multi-bucket card.
func testPortfolio() []model.Debt {
	return []model.Debt{
		{
			ID: "card", Name: "Credit Card", Balance: 4000, MinPayment: 160, OrderIndex: 1,
			Buckets: []model.Bucket{
				{ID: "ca", Name: "Cash Advance", Balance: 1000, APR: 27.9, PaymentPriority: 1, Category: model.CategoryCashAdvance},
				{ID: "pu", Name: "Purchases", Balance: 2000, APR: 22.9, PaymentPriority: 2, Category: model.CategoryPurchases},
				{ID: "bt", Name: "Balance Transfer", Balance: 1000, APR: 0, PaymentPriority: 3, Category: model.CategoryBalanceTransfer},
			},
		},
		{
			ID: "loan", Name: "Personal Loan", Balance: 3000, APR: 9.9,
			MinPayment: 90, OrderIndex: 2,
		},
	}
}
