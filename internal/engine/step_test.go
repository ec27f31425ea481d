package engine

import (
	"testing"

	"github.com/theirongolddev/snowplan/internal/model"
)

// simpleDebt builds a single-balance debt without explicit buckets.
func simpleDebt(id string, balance, apr, minPayment float64) model.Debt {
	return model.Debt{
		ID:         id,
		Name:       id,
		Balance:    balance,
		APR:        apr,
		MinPayment: minPayment,
	}
}

func findBucket(t *testing.T, dm model.DebtMonth, id string) model.BucketMonth {
	t.Helper()
	for _, row := range dm.Buckets {
		if row.BucketID == id {
			return row
		}
	}
	t.Fatalf("bucket %q not in snapshot", id)
	return model.BucketMonth{}
}

func TestStepDebt_SingleBucketWithExtra(t *testing.T) {
	// 5000 at 22.9% APR, 150 minimum, 200 extra:
	// interest 95.42, principal from minimum 54.58, plus the whole 200
	// applied to the only bucket.
	d := newDebtState(simpleDebt("d1", 5000, 22.9, 150))

	out := stepDebt(d, 200, 0)

	row := out.month.Buckets[0]
	if row.Interest != 95.42 {
		t.Errorf("interest = %.2f, want 95.42", row.Interest)
	}
	if row.Principal != 254.58 {
		t.Errorf("principal = %.2f, want 254.58", row.Principal)
	}
	if row.Balance != 4745.42 {
		t.Errorf("balance = %.2f, want 4745.42", row.Balance)
	}
	if out.carry != 0 {
		t.Errorf("carry = %.2f, want 0", out.carry)
	}
	if out.extraApplied != 200 {
		t.Errorf("extraApplied = %.2f, want 200", out.extraApplied)
	}
}

func TestStepDebt_InputStateNotMutated(t *testing.T) {
	d := newDebtState(simpleDebt("d1", 5000, 22.9, 150))
	before := d.buckets[0].balance

	stepDebt(d, 200, 0)

	if d.buckets[0].balance != before {
		t.Errorf("input state mutated: balance %.2f, want %.2f", d.buckets[0].balance, before)
	}
}

func TestStepDebt_ZeroBalanceBucketIsPaidOff(t *testing.T) {
	d := newDebtState(model.Debt{
		ID: "d1", Name: "Card", Balance: 1000, MinPayment: 50,
		Buckets: []model.Bucket{
			{ID: "b0", Name: "Cleared", Balance: 0, APR: 20, PaymentPriority: 1},
			{ID: "b1", Name: "Active", Balance: 1000, APR: 20, PaymentPriority: 2},
		},
	})

	out := stepDebt(d, 0, 0)

	zero := findBucket(t, out.month, "b0")
	if !zero.PaidOff {
		t.Error("zero-balance bucket not flagged paid-off")
	}
	if zero.Payment != 0 || zero.Interest != 0 {
		t.Errorf("zero-balance bucket charged: payment %.2f interest %.2f", zero.Payment, zero.Interest)
	}
}

func TestStepDebt_WaterfallOrdering(t *testing.T) {
	// Three buckets, priorities 1..3, no extra payment: the waterfall
	// gives strictly more to higher-priority buckets.
	d := newDebtState(model.Debt{
		ID: "d1", Name: "Card", Balance: 3000, MinPayment: 150,
		Buckets: []model.Bucket{
			{ID: "p1", Name: "High", Balance: 1000, APR: 25, PaymentPriority: 1},
			{ID: "p2", Name: "Mid", Balance: 1000, APR: 15, PaymentPriority: 2},
			{ID: "p3", Name: "Low", Balance: 1000, APR: 5, PaymentPriority: 3},
		},
	})

	out := stepDebt(d, 0, 0)

	pay1 := findBucket(t, out.month, "p1").Payment
	pay2 := findBucket(t, out.month, "p2").Payment
	pay3 := findBucket(t, out.month, "p3").Payment

	if !(pay1 > pay2 && pay2 > pay3) {
		t.Errorf("waterfall broken: payments %.2f, %.2f, %.2f", pay1, pay2, pay3)
	}

	// Only the priority-1 bucket receives principal.
	if p := findBucket(t, out.month, "p2").Principal; p != 0 {
		t.Errorf("priority-2 principal = %.2f, want 0", p)
	}
}

func TestStepDebt_CardRulesWithExtra(t *testing.T) {
	d := newDebtState(model.Debt{
		ID: "d1", Name: "Card", Balance: 6000, MinPayment: 200,
		Buckets: []model.Bucket{
			{ID: "ca", Name: "Cash Advance", Balance: 1000, APR: 27.9, PaymentPriority: 1, Category: model.CategoryCashAdvance},
			{ID: "pu", Name: "Purchases", Balance: 3000, APR: 22.9, PaymentPriority: 2, Category: model.CategoryPurchases},
			{ID: "bt", Name: "Balance Transfer", Balance: 2000, APR: 0, PaymentPriority: 3, Category: model.CategoryBalanceTransfer},
		},
	})

	out := stepDebt(d, 100, 0)

	// Interest: 23.25 (CA) + 57.25 (purchases) + 0 (BT) = 80.50.
	// Capacity: 200 - 80.50 = 119.50.
	pu := findBucket(t, out.month, "pu")
	if pu.Principal != 50 {
		t.Errorf("purchases principal = %.2f, want fixed 50", pu.Principal)
	}

	// Balance transfer absorbs the residual capacity.
	bt := findBucket(t, out.month, "bt")
	if bt.Principal != 69.50 {
		t.Errorf("balance-transfer principal = %.2f, want 69.50", bt.Principal)
	}

	// Cash advance gets nothing from the minimum but the whole extra
	// cascade (it has the lowest priority rank).
	ca := findBucket(t, out.month, "ca")
	if ca.Principal != 100 {
		t.Errorf("cash-advance principal = %.2f, want 100", ca.Principal)
	}
	if ca.Payment != 123.25 {
		t.Errorf("cash-advance payment = %.2f, want 123.25", ca.Payment)
	}
}

func TestStepDebt_ProportionalSplit(t *testing.T) {
	// Untagged buckets with extra present fall through to the
	// proportional split.
	d := newDebtState(model.Debt{
		ID: "d1", Name: "Loan", Balance: 9000, MinPayment: 300,
		Buckets: []model.Bucket{
			{ID: "a", Name: "Part A", Balance: 6000, APR: 12, PaymentPriority: 1},
			{ID: "b", Name: "Part B", Balance: 3000, APR: 12, PaymentPriority: 2},
		},
	})

	out := stepDebt(d, 90, 0)

	// Interest 60 + 30 = 90; capacity 210 split 2:1.
	a := findBucket(t, out.month, "a")
	b := findBucket(t, out.month, "b")
	if b.Principal != 70 {
		t.Errorf("part B principal = %.2f, want 70", b.Principal)
	}
	// Part A: 140 proportional + 90 extra cascade (priority 1).
	if a.Principal != 230 {
		t.Errorf("part A principal = %.2f, want 230", a.Principal)
	}
}

func TestStepDebt_ExtraOvershootCarries(t *testing.T) {
	// Extra beyond the target bucket's balance carries to next month.
	d := newDebtState(simpleDebt("d1", 100, 0, 60))

	out := stepDebt(d, 200, 0)

	// Minimum clears 60 of principal, leaving 40 for the cascade; the
	// remaining 160 of extra has nowhere to go this month.
	if !out.month.PaidOff {
		t.Fatal("debt not paid off")
	}
	if out.carry != 160 {
		t.Errorf("carry = %.2f, want 160", out.carry)
	}
	if out.extraApplied != 40 {
		t.Errorf("extraApplied = %.2f, want 40", out.extraApplied)
	}
}

func TestStepDebt_ClampsNearZeroBalance(t *testing.T) {
	d := newDebtState(simpleDebt("d1", 50.005, 0, 50))

	out := stepDebt(d, 0, 0)

	row := out.month.Buckets[0]
	if row.Balance != 0 {
		t.Errorf("balance = %v, want exact 0", row.Balance)
	}
	if !row.PaidOff {
		t.Error("near-zero balance not flagged paid-off")
	}
}

func TestCategoryFromName(t *testing.T) {
	cases := []struct {
		name string
		want model.BucketCategory
	}{
		{"Standard Purchases", model.CategoryPurchases},
		{"CASH ADVANCE", model.CategoryCashAdvance},
		{"0% Balance Transfer", model.CategoryBalanceTransfer},
		{"Personal Loan", model.CategoryOther},
	}
	for _, tc := range cases {
		if got := model.CategoryFromName(tc.name); got != tc.want {
			t.Errorf("CategoryFromName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
