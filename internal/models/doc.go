// Package models defines the core domain models for Tally.
//
// # Models
//
//   - Receipt / ReceiptItem: an itemized bill as received from an upstream
//     parser (read-only input to the split engine)
//   - ItemAssignment / AssignmentMap: who claims what percentage of which item
//   - Person / PersonItem: a participant plus their computed share of the bill
//
// # Design Principles
//
//  1. **Receipts are immutable inputs**: the engine never mutates a Receipt
//     and never cross-validates its aggregate figures against its item list.
//  2. **The AssignmentMap is the single source of truth for ownership**:
//     person records carry computed snapshots only, recomputed wholesale on
//     every allocation pass.
//  3. **Avoid circular references**: models reference each other by ID
//     strings and item indices, never by pointer.
package models
