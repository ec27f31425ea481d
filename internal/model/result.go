package model

import "time"

// BucketMonth is one bucket's outcome for one simulated month.
// All currency figures are rounded to 2 decimals.
type BucketMonth struct {
	BucketID   string
	BucketName string
	Interest   float64
	Principal  float64
	Payment    float64 // Interest + Principal
	Balance    float64 // end-of-month balance
	PaidOff    bool
}

// DebtMonth rolls one debt's buckets up for one simulated month.
type DebtMonth struct {
	DebtID    string
	DebtName  string
	Interest  float64
	Principal float64
	Payment   float64
	Balance   float64
	PaidOff   bool
	Buckets   []BucketMonth
}

// MonthSnapshot is the immutable record of one simulated month across
// all debts.
type MonthSnapshot struct {
	Month int // 1-based
	Date  time.Time

	Debts []DebtMonth

	Interest  float64
	Principal float64
	Payment   float64
	Balance   float64

	// ExtraApplied is the extra/snowball amount actually applied this month.
	ExtraApplied float64

	// Buckets and debts that reached zero balance during this exact month.
	PaidOffBuckets []string
	PaidOffDebts   []string
}

// BucketTotals accumulates interest and principal for one bucket across
// the whole simulation, keyed by bucket ID in SimulationResult.Breakdown.
type BucketTotals struct {
	BucketID   string
	BucketName string
	APR        float64
	Interest   float64
	Principal  float64
}

// SimulationResult is the aggregate output of a simulation run.
// Errors is non-empty only when validation rejected the input, in which
// case Months is empty and the totals are zero.
type SimulationResult struct {
	Months         []MonthSnapshot
	TotalMonths    int
	TotalInterest  float64
	TotalPrincipal float64
	FreedomDate    time.Time
	CapReached     bool
	Breakdown      map[string]BucketTotals
	Errors         []string
}
