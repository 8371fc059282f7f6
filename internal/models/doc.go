// Package models defines the core domain records for the society ledger.
//
// # Records
//
// Three record types make up the ledger:
//   - Member: a resident of the society, identified by flat number
//   - Payment: a maintenance payment made by a member for one month
//   - Expense: a society expense, tagged with a closed category set
//
// All three are append-only: records are created by user actions and are
// never updated or deleted afterwards. Identifiers are UUID strings generated
// at write time.
//
// # Design Principles
//
// 1. **Snapshot denormalization**: Payment carries MemberName as copied at
// payment time, so printed receipts stay stable even if the member record
// later changes. The snapshot must never be recomputed from the current
// Member record.
//
// 2. **Advisory foreign keys**: Payment.MemberID references Member.ID but is
// not enforced by storage. An orphaned MemberID is tolerated; it simply can
// no longer be resolved to a display name.
//
// 3. **Avoid circular references**: relationships use ID strings, not
// pointers.
package models
