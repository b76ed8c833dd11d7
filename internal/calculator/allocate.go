package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mawenner/tally/internal/models"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotals computes each person's share of the receipt: item shares from
// the assignment map, then proportional tax and tip based on the person's
// share of the pre-tax subtotal.
//
// The computation is pure: inputs are never mutated and a fresh Person slice
// is returned. Malformed input never raises — stale item indices are skipped,
// a zero subtotal yields zero tax/tip for everyone, and a person with no
// assignments simply comes back with zero totals.
//
// All intermediate arithmetic is exact decimal; values are converted back to
// float64 only at the point of emission so repeated fractional shares (thirds,
// uneven percentages) do not drift across many items and people.
func ComputeTotals(receipt models.Receipt, people []models.Person, assignments models.AssignmentMap) []models.Person {
	subtotal := decimal.NewFromFloat(receipt.Subtotal)
	tax := decimal.NewFromFloat(receipt.Tax)
	tip := decimal.NewFromFloat(receipt.Tip)

	result := make([]models.Person, len(people))
	for i, person := range people {
		preTax := decimal.Zero
		items := make([]models.PersonItem, 0, len(receipt.Items))

		// Walking the receipt's item list (rather than the map's keys)
		// keeps output order deterministic and drops stale indices for
		// free: a key outside 0..len(Items)-1 is never visited.
		for idx, item := range receipt.Items {
			share, ok := findShare(assignments[idx], person.ID)
			if !ok {
				continue
			}

			quantity := item.Quantity
			if quantity == 0 {
				quantity = 1
			}

			itemTotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(quantity)))
			amount := itemTotal.Mul(decimal.NewFromFloat(share)).Div(hundred)
			preTax = preTax.Add(amount)

			items = append(items, models.PersonItem{
				ItemID:          idx,
				ItemName:        item.Name,
				OriginalPrice:   item.Price,
				Quantity:        quantity,
				SharePercentage: share,
				Amount:          amount.InexactFloat64(),
			})
		}

		personTax := decimal.Zero
		personTip := decimal.Zero
		if !subtotal.IsZero() {
			proportion := preTax.Div(subtotal)
			personTax = tax.Mul(proportion)
			personTip = tip.Mul(proportion)
		}
		finalTotal := preTax.Add(personTax).Add(personTip)

		result[i] = models.Person{
			ID:             person.ID,
			Name:           person.Name,
			Items:          items,
			TotalBeforeTax: preTax.InexactFloat64(),
			Tax:            personTax.InexactFloat64(),
			Tip:            personTip.InexactFloat64(),
			FinalTotal:     finalTotal.InexactFloat64(),
		}
	}
	return result
}

// findShare returns the share percentage claimed by personID in the given
// assignment list, or false if the person claimed nothing.
func findShare(assignments []models.ItemAssignment, personID string) (float64, bool) {
	for _, a := range assignments {
		if a.PersonID == personID {
			return a.SharePercentage, true
		}
	}
	return 0, false
}
