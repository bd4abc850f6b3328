// Package numberspace enumerates the legal number domain of each bet
// variant. Aggregation seeds every number in the domain, so "never bet"
// numbers still show up in summaries.
package numberspace

import (
	"fmt"

	"github.com/matka-slot-ledger/internal/domain/shared"
)

// Legal returns the ordered legal number domain for a variant: "1".."9"
// for single, zero-padded "01".."99" for jodi. "00" is not part of the
// jodi domain even though it is a well-formed two-digit string.
func Legal(variant shared.Variant) []string {
	switch variant {
	case shared.VariantSingle:
		nums := make([]string, 0, 9)
		for i := 1; i <= 9; i++ {
			nums = append(nums, fmt.Sprintf("%d", i))
		}
		return nums
	case shared.VariantJodi:
		nums := make([]string, 0, 99)
		for i := 1; i <= 99; i++ {
			nums = append(nums, fmt.Sprintf("%02d", i))
		}
		return nums
	default:
		return nil
	}
}

// Contains reports whether number is in the variant's legal domain
func Contains(variant shared.Variant, number string) bool {
	switch variant {
	case shared.VariantSingle:
		return len(number) == 1 && number[0] >= '1' && number[0] <= '9'
	case shared.VariantJodi:
		if len(number) != 2 || number == "00" {
			return false
		}
		return number[0] >= '0' && number[0] <= '9' && number[1] >= '0' && number[1] <= '9'
	default:
		return false
	}
}
