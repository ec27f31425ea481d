package engine

import (
	"math"
	"sort"

	"github.com/theirongolddev/snowplan/internal/model"
)

// stepOutcome is the result of advancing one debt by one month.
type stepOutcome struct {
	debt  debtState
	month model.DebtMonth

	// carry is the portion of this month's flexible payment the debt
	// could not absorb; the driver rolls it into next month's pool.
	carry float64

	// extraApplied is the flexible payment actually consumed.
	extraApplied float64

	// paidOffBuckets lists buckets that reached zero this month.
	paidOffBuckets []string
}

// stepDebt advances one debt by one month: accrue interest, allocate the
// minimum payment (interest first, then principal by scenario), then
// cascade the combined extra+pool amount onto the highest-priority
// active bucket. The input state is never mutated.
func stepDebt(d debtState, extra, pool float64) stepOutcome {
	buckets := make([]bucketState, len(d.buckets))
	copy(buckets, d.buckets)

	poolThisMonth := round2(extra + pool)

	// 1. Interest accrual on active buckets.
	interest := make([]float64, len(buckets))
	var totalInterest float64
	for i, b := range buckets {
		if b.paidOff {
			continue
		}
		interest[i] = monthlyInterest(b.balance, b.apr)
		totalInterest += interest[i]
	}
	totalInterest = round2(totalInterest)

	// 2. The minimum payment covers all accrued interest first; what is
	// left becomes principal capacity. A minimum slightly below the
	// interest charge (inside the validator's tolerance) leaves zero.
	capacity := round2(d.minPayment - totalInterest)
	if capacity < 0 {
		capacity = 0
	}

	// 3. Principal allocation from the minimum payment.
	alloc := allocatePrincipal(buckets, capacity, poolThisMonth)

	// 4. Apply interest and the minimum payment to balances.
	principal := make([]float64, len(buckets))
	payment := make([]float64, len(buckets))
	for i := range buckets {
		b := &buckets[i]
		if b.paidOff {
			continue
		}
		principal[i] = alloc[i]
		payment[i] = round2(interest[i] + alloc[i])
		b.balance = round2(b.balance + interest[i] - (interest[i] + alloc[i]))
		if b.balance <= paidOffTolerance {
			b.balance = 0
			b.paidOff = true
		}
	}

	// 5. Extra/snowball cascade: the whole flexible amount targets the
	// single active bucket with the lowest priority rank. It never
	// spreads across buckets; any unabsorbed remainder carries forward.
	out := stepOutcome{carry: 0}
	if poolThisMonth > 0 {
		if ti, ok := cascadeTarget(buckets); ok {
			b := &buckets[ti]
			pay := math.Min(poolThisMonth, b.balance)
			pay = round2(pay)
			b.balance = round2(b.balance - pay)
			if b.balance <= paidOffTolerance {
				b.balance = 0
				b.paidOff = true
			}
			principal[ti] = round2(principal[ti] + pay)
			payment[ti] = round2(payment[ti] + pay)
			out.carry = round2(poolThisMonth - pay)
		} else {
			out.carry = poolThisMonth
		}
		out.extraApplied = round2(poolThisMonth - out.carry)
	}

	// 6. Snapshot rows.
	rows := make([]model.BucketMonth, len(buckets))
	var sumPrincipal, sumPayment float64
	for i, b := range buckets {
		rows[i] = model.BucketMonth{
			BucketID:   b.id,
			BucketName: b.name,
			Interest:   interest[i],
			Principal:  principal[i],
			Payment:    payment[i],
			Balance:    b.balance,
			PaidOff:    b.paidOff,
		}
		sumPrincipal += principal[i]
		sumPayment += payment[i]
		if b.paidOff && !d.buckets[i].paidOff {
			out.paidOffBuckets = append(out.paidOffBuckets, b.id)
		}
	}

	next := d
	next.buckets = buckets
	out.debt = next
	out.month = model.DebtMonth{
		DebtID:    d.id,
		DebtName:  d.name,
		Interest:  totalInterest,
		Principal: round2(sumPrincipal),
		Payment:   round2(sumPayment),
		Balance:   next.totalBalance(),
		PaidOff:   next.allPaidOff(),
		Buckets:   rows,
	}
	return out
}

// allocatePrincipal distributes the minimum payment's principal capacity
// across active buckets, selecting one of three mutually exclusive
// scenarios.
func allocatePrincipal(buckets []bucketState, capacity, poolThisMonth float64) []float64 {
	alloc := make([]float64, len(buckets))
	active := activeIndexes(buckets)
	if len(active) == 0 || capacity <= 0 {
		return alloc
	}

	switch {
	case hasCardCategory(buckets, active) && poolThisMonth > 0:
		allocateCardRules(buckets, active, capacity, alloc)
	case len(active) > 1 && poolThisMonth == 0:
		allocateWaterfall(buckets, active, capacity, alloc)
	default:
		allocateProportional(buckets, active, capacity, alloc)
	}
	return alloc
}

// allocateCardRules applies the fixed credit-card allocation: purchases
// buckets get a fixed slice of principal, cash advances get none from
// the minimum (the extra cascade services them), and balance transfers
// absorb the residual capacity.
func allocateCardRules(buckets []bucketState, active []int, capacity float64, alloc []float64) {
	remaining := capacity
	for _, i := range active {
		if buckets[i].category != model.CategoryPurchases {
			continue
		}
		a := round2(math.Min(purchasesMinPrincipal, math.Min(remaining, buckets[i].balance)))
		alloc[i] = a
		remaining = round2(remaining - a)
	}
	for _, i := range active {
		if buckets[i].category != model.CategoryBalanceTransfer || remaining <= 0 {
			continue
		}
		a := round2(math.Min(remaining, buckets[i].balance))
		alloc[i] = a
		remaining = round2(remaining - a)
	}
}

// allocateWaterfall walks active buckets in ascending priority-rank
// order, filling each up to its balance before moving on.
func allocateWaterfall(buckets []bucketState, active []int, capacity float64, alloc []float64) {
	order := make([]int, len(active))
	copy(order, active)
	sort.SliceStable(order, func(a, b int) bool {
		return buckets[order[a]].priority < buckets[order[b]].priority
	})

	remaining := capacity
	for _, i := range order {
		if remaining <= 0 {
			break
		}
		a := round2(math.Min(remaining, buckets[i].balance))
		alloc[i] = a
		remaining = round2(remaining - a)
	}
}

// allocateProportional gives a single active bucket the whole capacity,
// or splits it across buckets by balance share, each capped at its own
// balance. Rounding leftover above a cent goes to the highest-priority
// bucket.
func allocateProportional(buckets []bucketState, active []int, capacity float64, alloc []float64) {
	if len(active) == 1 {
		i := active[0]
		alloc[i] = round2(math.Min(capacity, buckets[i].balance))
		return
	}

	var totalBalance float64
	for _, i := range active {
		totalBalance += buckets[i].balance
	}
	if totalBalance <= 0 {
		return
	}

	var allocated float64
	for _, i := range active {
		share := round2(capacity * buckets[i].balance / totalBalance)
		share = math.Min(share, buckets[i].balance)
		alloc[i] = share
		allocated += share
	}

	leftover := round2(capacity - allocated)
	if leftover > 0.01 {
		if ti, ok := cascadeTarget(buckets); ok {
			extra := math.Min(leftover, round2(buckets[ti].balance-alloc[ti]))
			if extra > 0 {
				alloc[ti] = round2(alloc[ti] + extra)
			}
		}
	}
}

// cascadeTarget returns the index of the active bucket with the lowest
// priority rank. Ties keep input order.
func cascadeTarget(buckets []bucketState) (int, bool) {
	best := -1
	for i, b := range buckets {
		if b.paidOff {
			continue
		}
		if best == -1 || b.priority < buckets[best].priority {
			best = i
		}
	}
	return best, best != -1
}

func activeIndexes(buckets []bucketState) []int {
	var idx []int
	for i, b := range buckets {
		if !b.paidOff {
			idx = append(idx, i)
		}
	}
	return idx
}

func hasCardCategory(buckets []bucketState, active []int) bool {
	for _, i := range active {
		switch buckets[i].category {
		case model.CategoryPurchases, model.CategoryCashAdvance, model.CategoryBalanceTransfer:
			return true
		}
	}
	return false
}
