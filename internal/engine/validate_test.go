package engine

import (
	"strings"
	"testing"

	"github.com/theirongolddev/snowplan/internal/model"
)

func TestValidate_AcceptsWellFormedPortfolio(t *testing.T) {
	debts := []model.Debt{
		simpleDebt("d1", 5000, 22.9, 150),
		{
			ID: "d2", Name: "Card", Balance: 3000, MinPayment: 120,
			Buckets: []model.Bucket{
				{ID: "b1", Name: "Purchases", Balance: 2000, APR: 22.9, PaymentPriority: 2, Category: model.CategoryPurchases},
				{ID: "b2", Name: "Cash Advance", Balance: 1000, APR: 27.9, PaymentPriority: 1, Category: model.CategoryCashAdvance},
			},
		},
	}

	if errs := Validate(debts); len(errs) != 0 {
		t.Fatalf("Validate returned errors for valid input: %v", errs)
	}
}

func TestValidate_MinPaymentMustBePositive(t *testing.T) {
	errs := Validate([]model.Debt{simpleDebt("d1", 1000, 10, 0)})
	if !hasError(errs, "minimum payment must be greater than 0") {
		t.Errorf("missing min-payment error, got %v", errs)
	}
}

func TestValidate_NegativeBalance(t *testing.T) {
	errs := Validate([]model.Debt{simpleDebt("d1", -10, 10, 50)})
	if !hasError(errs, "balance cannot be negative") {
		t.Errorf("missing negative-balance error, got %v", errs)
	}
}

func TestValidate_APRRange(t *testing.T) {
	errs := Validate([]model.Debt{simpleDebt("d1", 1000, 120, 500)})
	if !hasError(errs, "APR must be between 0 and 100") {
		t.Errorf("missing APR error, got %v", errs)
	}

	errs = Validate([]model.Debt{{
		ID: "d2", Name: "Card", Balance: 1000, MinPayment: 500,
		Buckets: []model.Bucket{
			{ID: "b1", Name: "Purchases", Balance: 1000, APR: -1},
		},
	}})
	if !hasError(errs, "APR must be between 0 and 100") {
		t.Errorf("missing bucket APR error, got %v", errs)
	}
}

func TestValidate_BucketSumMismatch(t *testing.T) {
	errs := Validate([]model.Debt{{
		ID: "d1", Name: "Card", Balance: 3000, MinPayment: 200,
		Buckets: []model.Bucket{
			{ID: "b1", Name: "Purchases", Balance: 2000, APR: 20},
			{ID: "b2", Name: "Cash Advance", Balance: 500, APR: 25},
		},
	}})
	if !hasError(errs, "do not add up to the debt balance") {
		t.Errorf("missing bucket-sum error, got %v", errs)
	}
}

func TestValidate_BucketSumTolerance(t *testing.T) {
	// A mismatch inside the 0.01 tolerance is fine.
	errs := Validate([]model.Debt{{
		ID: "d1", Name: "Card", Balance: 3000.01, MinPayment: 200,
		Buckets: []model.Bucket{
			{ID: "b1", Name: "Purchases", Balance: 2000, APR: 20},
			{ID: "b2", Name: "Cash Advance", Balance: 1000, APR: 25},
		},
	}})
	if len(errs) != 0 {
		t.Errorf("tolerance breach: %v", errs)
	}
}

func TestValidate_PaymentBelowInterest(t *testing.T) {
	// 10000 at 35% APR accrues ~291.67/month; a 50 minimum can never
	// pay the debt down.
	errs := Validate([]model.Debt{simpleDebt("d1", 10000, 35, 50)})
	if !hasError(errs, "does not cover the monthly interest charge") {
		t.Errorf("missing debt-growth error, got %v", errs)
	}

	// The 5% slack lets a minimum sit just under the exact charge.
	errs = Validate([]model.Debt{simpleDebt("d2", 10000, 35, 280)})
	if len(errs) != 0 {
		t.Errorf("payment within tolerance rejected: %v", errs)
	}
}

func hasError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
