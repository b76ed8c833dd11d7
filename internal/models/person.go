package models

// PersonItem is a denormalized snapshot of one person's claim on one item,
// produced fresh on every allocation pass.
type PersonItem struct {
	// ItemID is the index of the item in Receipt.Items.
	ItemID int `json:"item_id"`

	// ItemName is the item description at allocation time.
	ItemName string `json:"item_name"`

	// OriginalPrice is the item's per-unit price at allocation time.
	OriginalPrice float64 `json:"original_price"`

	// Quantity is the unit count used for the computation (defaulted to 1
	// when the receipt carried zero).
	Quantity int `json:"quantity"`

	// SharePercentage is the percentage of the item this person claimed.
	SharePercentage float64 `json:"share_percentage"`

	// Amount is this person's computed share of the item:
	// price × quantity × share / 100.
	Amount float64 `json:"amount"`
}

// Person represents one participant in a split.
// ID and Name are inputs; Items and the four monetary fields are outputs of
// the allocation engine, recomputed wholesale on every call. They are not
// meant to be hand-edited between calls.
type Person struct {
	// ID is the unique, stable identifier used to match the person to
	// their assignments.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Items are the person's claimed item shares, in receipt order.
	Items []PersonItem `json:"items"`

	// TotalBeforeTax is the sum of the person's item share amounts.
	TotalBeforeTax float64 `json:"total_before_tax"`

	// Tax is the person's proportional share of the receipt's tax.
	Tax float64 `json:"tax"`

	// Tip is the person's proportional share of the receipt's tip.
	Tip float64 `json:"tip"`

	// FinalTotal is TotalBeforeTax + Tax + Tip.
	FinalTotal float64 `json:"final_total"`
}
