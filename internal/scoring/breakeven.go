package scoring

import (
	"fmt"
	"math"
)

// Breakeven outcomes that are not a month count.
const (
	BreakevenImmediate     = "Immediate"
	BreakevenUnknown       = "Unknown"
	BreakevenNotAttainable = "Not attainable (rev ≤ cost)"
)

// Breakeven derives the breakeven descriptor from monthly cash flow and
// initial capital. Branch order matters: zero revenue is only checked after
// the profitable branch fails, so revenue of exactly 0 is always Unknown
// regardless of cost.
func Breakeven(monthlyRevenue, monthlyCost, initialCapital float64) string {
	if monthlyRevenue > monthlyCost {
		profit := monthlyRevenue - monthlyCost
		if profit > 0 && initialCapital > 0 {
			return fmt.Sprintf("%d mo", int(math.Ceil(initialCapital/profit)))
		}
		return BreakevenImmediate
	}
	if monthlyRevenue == 0 {
		return BreakevenUnknown
	}
	return BreakevenNotAttainable
}
