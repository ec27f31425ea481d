package engine

import (
	"sort"
	"time"

	"github.com/theirongolddev/snowplan/internal/model"
)

// BucketShare is one bucket's slice of the total interest paid.
type BucketShare struct {
	BucketID  string
	Name      string
	APR       float64
	Interest  float64
	Principal float64
	Percent   float64 // share of total interest, 0-100
}

// Summary is a read-only convenience projection over a simulation
// result, shaped for display.
type Summary struct {
	MonthsToClear  int
	TotalInterest  float64
	TotalPaid      float64
	MonthlyPayment float64 // implied steady payment: total paid / months
	FreedomDate    time.Time
	Cleared        bool
	Buckets        []BucketShare
}

// Summarize projects a result into a Summary. Bucket shares are sorted
// by interest contributed, descending.
func Summarize(res model.SimulationResult) Summary {
	s := Summary{
		MonthsToClear: res.TotalMonths,
		TotalInterest: res.TotalInterest,
		TotalPaid:     round2(res.TotalInterest + res.TotalPrincipal),
		FreedomDate:   res.FreedomDate,
		Cleared:       len(res.Errors) == 0 && res.TotalMonths > 0 && !res.CapReached,
	}
	if res.TotalMonths > 0 {
		s.MonthlyPayment = round2(s.TotalPaid / float64(res.TotalMonths))
	}

	for _, bt := range res.Breakdown {
		share := BucketShare{
			BucketID:  bt.BucketID,
			Name:      bt.BucketName,
			APR:       bt.APR,
			Interest:  bt.Interest,
			Principal: bt.Principal,
		}
		if res.TotalInterest > 0 {
			share.Percent = round2(bt.Interest / res.TotalInterest * 100)
		}
		s.Buckets = append(s.Buckets, share)
	}
	sort.Slice(s.Buckets, func(i, j int) bool {
		if s.Buckets[i].Interest != s.Buckets[j].Interest {
			return s.Buckets[i].Interest > s.Buckets[j].Interest
		}
		return s.Buckets[i].Name < s.Buckets[j].Name
	})

	return s
}
