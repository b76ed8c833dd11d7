package models

// ItemAssignment records one person's claimed percentage of one item.
// Multiple assignments may reference the same item (a shared item); the
// percentages for one item are expected to sum to 100, but that is enforced
// by the validator, not at construction.
type ItemAssignment struct {
	// PersonID is the ID of the person claiming the share.
	PersonID string `json:"person_id"`

	// SharePercentage is the claimed fraction of the item's cost, 0-100.
	SharePercentage float64 `json:"share_percentage"`
}

// AssignmentMap maps a 0-based item index (positional into Receipt.Items)
// to the assignments claimed against that item. A missing key means no one
// has claimed any share of the item yet.
//
// The positional key is fragile if the item list is mutated after
// assignments exist (reordering or removing items silently shifts
// ownership). Callers must supply a map that matches the receipt snapshot
// they pass alongside it.
type AssignmentMap map[int][]ItemAssignment
