// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"societyledger/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// All three collections are append-only: there are no update or delete
// operations. Add methods return apperr.ErrDuplicateKey (wrapped) when the
// record's ID is already present, and never mutate the existing record.
// List methods return an empty slice, not an error, for an empty collection;
// callers must not rely on the returned ordering.
type Store interface {
	// AddMember persists a new member under its ID.
	AddMember(ctx context.Context, member *models.Member) error

	// ListMembers returns every member in the store.
	ListMembers(ctx context.Context) ([]*models.Member, error)

	// AddPayment persists a new payment under its ID.
	AddPayment(ctx context.Context, payment *models.Payment) error

	// ListPayments returns every payment in the store.
	ListPayments(ctx context.Context) ([]*models.Payment, error)

	// ListPaymentsByMember returns all payments whose MemberID equals
	// memberID, using the secondary index. Returns an empty slice when none
	// match.
	ListPaymentsByMember(ctx context.Context, memberID string) ([]*models.Payment, error)

	// AddExpense persists a new expense under its ID.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns every expense in the store.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
