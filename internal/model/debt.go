// Package model defines the debt portfolio and simulation result types.
package model

import "strings"

// BucketCategory classifies a bucket for minimum-payment allocation rules.
// The category is decided at data entry; the engine never inspects names.
type BucketCategory int

const (
	CategoryOther BucketCategory = iota
	CategoryPurchases
	CategoryCashAdvance
	CategoryBalanceTransfer
)

// String returns the storage/CSV identifier for the category.
func (c BucketCategory) String() string {
	switch c {
	case CategoryPurchases:
		return "purchases"
	case CategoryCashAdvance:
		return "cash_advance"
	case CategoryBalanceTransfer:
		return "balance_transfer"
	default:
		return "other"
	}
}

// ParseCategory maps a storage/CSV identifier back to a category.
// Unknown values fall back to CategoryOther.
func ParseCategory(s string) BucketCategory {
	switch s {
	case "purchases":
		return CategoryPurchases
	case "cash_advance":
		return CategoryCashAdvance
	case "balance_transfer":
		return CategoryBalanceTransfer
	default:
		return CategoryOther
	}
}

// CategoryFromName infers a category from a display name. Used only at
// input boundaries (forms, CSV import) when no explicit category is given.
func CategoryFromName(name string) BucketCategory {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "purchase"):
		return CategoryPurchases
	case strings.Contains(n, "cash advance"):
		return CategoryCashAdvance
	case strings.Contains(n, "balance transfer"):
		return CategoryBalanceTransfer
	default:
		return CategoryOther
	}
}

// Bucket is a sub-balance within a debt carrying its own interest rate,
// e.g. a card's purchases vs cash advances vs a 0% balance transfer.
type Bucket struct {
	ID              string
	Name            string
	Balance         float64
	APR             float64
	PaymentPriority int // lower rank is paid first
	Category        BucketCategory
}

// Debt is a single credit obligation. A debt without explicit buckets is
// treated as one implicit bucket covering the whole balance at APR.
type Debt struct {
	ID         string
	Name       string
	Balance    float64
	APR        float64 // fallback rate, used only when Buckets is empty
	MinPayment float64
	OrderIndex int // ascending cascade order among debts
	Buckets    []Bucket
}
