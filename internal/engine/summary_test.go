package engine

import (
	"testing"

	"github.com/theirongolddev/snowplan/internal/model"
)

func TestSummarize_Totals(t *testing.T) {
	res := Simulate(testPortfolio(), Options{ExtraMonthly: 150, StartDate: testStart})
	s := Summarize(res)

	if s.MonthsToClear != res.TotalMonths {
		t.Errorf("MonthsToClear = %d, want %d", s.MonthsToClear, res.TotalMonths)
	}
	if want := round2(res.TotalInterest + res.TotalPrincipal); s.TotalPaid != want {
		t.Errorf("TotalPaid = %.2f, want %.2f", s.TotalPaid, want)
	}
	if want := round2(s.TotalPaid / float64(res.TotalMonths)); s.MonthlyPayment != want {
		t.Errorf("MonthlyPayment = %.2f, want %.2f", s.MonthlyPayment, want)
	}
	if !s.Cleared {
		t.Error("Cleared = false for a portfolio that paid off")
	}
	if !s.FreedomDate.Equal(res.FreedomDate) {
		t.Errorf("FreedomDate = %v, want %v", s.FreedomDate, res.FreedomDate)
	}
}

func TestSummarize_BucketSharesSortedDescending(t *testing.T) {
	res := Simulate(testPortfolio(), Options{ExtraMonthly: 150, StartDate: testStart})
	s := Summarize(res)

	if len(s.Buckets) == 0 {
		t.Fatal("no bucket shares")
	}
	for i := 1; i < len(s.Buckets); i++ {
		if s.Buckets[i].Interest > s.Buckets[i-1].Interest {
			t.Fatalf("shares not sorted: %.2f before %.2f",
				s.Buckets[i-1].Interest, s.Buckets[i].Interest)
		}
	}

	var pct float64
	for _, b := range s.Buckets {
		pct += b.Percent
	}
	if pct < 99.0 || pct > 101.0 {
		t.Errorf("percent shares sum to %.2f, want ~100", pct)
	}
}

func TestSummarize_CapReachedNotCleared(t *testing.T) {
	res := Simulate([]model.Debt{simpleDebt("d1", 10000, 0, 50)}, Options{
		StartDate: testStart,
		MaxMonths: 3,
	})

	s := Summarize(res)
	if s.Cleared {
		t.Error("Cleared = true for a capped simulation")
	}
	if s.MonthsToClear != 3 {
		t.Errorf("MonthsToClear = %d, want 3", s.MonthsToClear)
	}
}
