package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mawenner/tally/internal/models"
)

// DefaultTolerance is the absolute slack, in percentage points, allowed when
// checking that an item's share percentages sum to 100. Upstream splits are
// often derived from floating arithmetic (an even three-way split yields
// 33.33/33.33/33.34), so an exact-equality check would spuriously reject
// legitimate assignments.
const DefaultTolerance = 0.01

// IsFullyAssigned reports whether every item on the receipt has share
// percentages summing to 100 within DefaultTolerance. A receipt with no
// items is never fully assigned.
func IsFullyAssigned(receipt models.Receipt, assignments models.AssignmentMap) bool {
	return IsFullyAssignedWithin(receipt, assignments, DefaultTolerance)
}

// IsFullyAssignedWithin is IsFullyAssigned with a caller-supplied tolerance.
func IsFullyAssignedWithin(receipt models.Receipt, assignments models.AssignmentMap, tolerance float64) bool {
	if len(receipt.Items) == 0 {
		return false
	}
	for idx := range receipt.Items {
		if !sharesComplete(assignments[idx], tolerance) {
			return false
		}
	}
	return true
}

// UnassignedItems returns the indices of items whose share percentages do not
// sum to 100 within DefaultTolerance, in ascending order. This is the
// diagnostic counterpart to IsFullyAssigned: callers surface the returned
// indices to the user as the items still needing attention. A receipt with no
// items yields an empty result.
func UnassignedItems(receipt models.Receipt, assignments models.AssignmentMap) []int {
	return UnassignedItemsWithin(receipt, assignments, DefaultTolerance)
}

// UnassignedItemsWithin is UnassignedItems with a caller-supplied tolerance.
func UnassignedItemsWithin(receipt models.Receipt, assignments models.AssignmentMap, tolerance float64) []int {
	var incomplete []int
	for idx := range receipt.Items {
		if !sharesComplete(assignments[idx], tolerance) {
			incomplete = append(incomplete, idx)
		}
	}
	return incomplete
}

// sharesComplete reports whether the assignments sum to 100 within tolerance.
// The sum is taken in exact decimal so that a boundary case like 99.99 with a
// 0.01 tolerance is not rejected by binary float noise.
func sharesComplete(assignments []models.ItemAssignment, tolerance float64) bool {
	total := decimal.Zero
	for _, a := range assignments {
		total = total.Add(decimal.NewFromFloat(a.SharePercentage))
	}
	diff := total.Sub(hundred).Abs()
	return diff.LessThanOrEqual(decimal.NewFromFloat(tolerance))
}
