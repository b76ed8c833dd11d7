package models

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	// Name is the item description as printed on the receipt (e.g., "Burger").
	Name string `json:"name"`

	// Price is the per-unit price. Malformed input may carry a negative
	// price; the engine tolerates it and still produces a deterministic
	// result.
	Price float64 `json:"price"`

	// Quantity is the unit count. Zero is treated as 1 by the engine.
	Quantity int `json:"quantity"`
}

// Receipt represents an itemized bill to be split among people.
// It is produced by an upstream collaborator (receipt parser, manual entry)
// and treated as read-only by the engine.
type Receipt struct {
	// Restaurant is the merchant name. May be empty.
	Restaurant string `json:"restaurant,omitempty"`

	// Date is the receipt date as supplied upstream. May be empty; the
	// engine never interprets it.
	Date string `json:"date,omitempty"`

	// Subtotal is the aggregate pre-tax amount printed on the receipt.
	// It is independent of the item breakdown: the engine does not require
	// it to equal the sum of Items.
	Subtotal float64 `json:"subtotal"`

	// Tax is the aggregate tax amount, distributed proportionally by the
	// engine.
	Tax float64 `json:"tax"`

	// Tip is the aggregate tip amount, distributed proportionally by the
	// engine. Zero when no tip was given.
	Tip float64 `json:"tip"`

	// Total is the final bill amount as printed. Informational only.
	Total float64 `json:"total"`

	// Currency is the ISO 4217 code used when formatting amounts for
	// display. Empty means the default currency (USD).
	Currency string `json:"currency,omitempty"`

	// Items are the individual line items, in receipt order. Item order is
	// significant: assignments reference items by position.
	Items []ReceiptItem `json:"items"`
}
