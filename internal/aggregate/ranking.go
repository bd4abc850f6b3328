package aggregate

import (
	"sort"
	"strconv"
)

// Placeholder pads the least-bet result when fewer than 3 numbers
// received bets
const Placeholder = "-"

// LeastBetCount is the fixed size of the least-bet result
const LeastBetCount = 3

// LeastBet returns the 3 numbers with the smallest aggregated amount in
// a slot's summary, for a results-style display. Only numbers that
// received at least one bet are eligible; ties break on distinct-user
// count, then on numeric value. The result always has exactly 3 slots,
// right-padded with Placeholder.
func LeastBet(items []SummaryItem) []string {
	eligible := make([]SummaryItem, 0, len(items))
	for _, it := range items {
		if it.UserCount > 0 {
			eligible = append(eligible, it)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.Total != b.Total {
			return a.Total < b.Total
		}
		if a.UserCount != b.UserCount {
			return a.UserCount < b.UserCount
		}
		return numeric(a.Number) < numeric(b.Number)
	})

	result := make([]string, 0, LeastBetCount)
	for i := 0; i < LeastBetCount; i++ {
		if i < len(eligible) {
			result = append(result, eligible[i].Number)
		} else {
			result = append(result, Placeholder)
		}
	}
	return result
}

func numeric(number string) int {
	n, err := strconv.Atoi(number)
	if err != nil {
		return 0
	}
	return n
}
