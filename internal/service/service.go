// Package service implements the application state controller: it bridges the
// persistent store and the presentation layer, holding an in-memory mirror of
// the three record collections.
//
// The store remains the source of truth. The mirror is rebuilt from scratch
// by Initialize and appended to after each confirmed write; it is never
// updated before the durable write succeeds.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"societyledger/internal/apperr"
	"societyledger/internal/calculator"
	"societyledger/internal/models"
	"societyledger/internal/storage"
)

// Service coordinates reads and writes between the store and the in-memory
// record sets. All mirror mutation happens under mu, so writes issued in
// quick succession cannot corrupt the mirror.
type Service struct {
	store storage.Store

	mu       sync.Mutex
	members  []*models.Member
	payments []*models.Payment
	expenses []*models.Expense
}

// New creates a Service backed by the given store. The mirror is empty until
// Initialize is called.
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// Initialize bulk-loads all three collections from the store in parallel.
// The three fetches form a join barrier: all must succeed before any result
// becomes visible, and the three mirrors are swapped together under one lock.
// On any failure the previous mirror state is left untouched and the error is
// returned.
func (s *Service) Initialize(ctx context.Context) error {
	var (
		members  []*models.Member
		payments []*models.Payment
		expenses []*models.Expense
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.store.ListMembers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.store.ListPayments(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("Initial load failed", "error", err)
		return fmt.Errorf("failed to load collections: %w", err)
	}

	s.mu.Lock()
	s.members = members
	s.payments = payments
	s.expenses = expenses
	s.mu.Unlock()

	slog.Info("Collections loaded",
		"members", len(members),
		"payments", len(payments),
		"expenses", len(expenses),
	)
	return nil
}

// RecordMember validates the input, persists a new member, and appends it to
// the mirror once the write is confirmed.
func (s *Service) RecordMember(ctx context.Context, input NewMemberInput) (*models.Member, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid member input: %w", err)
	}

	member := &models.Member{
		ID:          uuid.New().String(),
		Name:        input.Name,
		FlatNumber:  input.FlatNumber,
		Mobile:      input.Mobile,
		PhotoBase64: input.PhotoBase64,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.store.AddMember(ctx, member); err != nil {
		slog.Error("AddMember failed", "member_id", member.ID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.members = append(s.members, member)
	s.mu.Unlock()

	slog.Info("Member added", "member_id", member.ID, "flat", member.FlatNumber)
	return member, nil
}

// RecordPayment validates the input, snapshots the member's current name onto
// the payment, persists it, and appends it to the mirror once the write is
// confirmed. An unknown MemberID is accepted: the foreign key is advisory
// only, and the name snapshot is left empty.
func (s *Service) RecordPayment(ctx context.Context, input NewPaymentInput) (*models.Payment, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid payment input: %w", err)
	}

	payment := &models.Payment{
		ID:         uuid.New().String(),
		MemberID:   input.MemberID,
		MemberName: s.memberName(input.MemberID),
		Month:      input.Month,
		Amount:     input.Amount,
		Date:       time.Now().UTC().Format(time.RFC3339),
		Note:       input.Note,
	}

	if err := s.store.AddPayment(ctx, payment); err != nil {
		slog.Error("AddPayment failed", "payment_id", payment.ID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.payments = append(s.payments, payment)
	s.mu.Unlock()

	slog.Info("Payment recorded",
		"payment_id", payment.ID,
		"member_id", payment.MemberID,
		"month", payment.Month,
		"amount", payment.Amount,
	)
	return payment, nil
}

// RecordExpense validates the input, persists a new expense, and appends it
// to the mirror once the write is confirmed. An empty category defaults to
// Other.
func (s *Service) RecordExpense(ctx context.Context, input NewExpenseInput) (*models.Expense, error) {
	if input.Category == "" {
		input.Category = string(models.CategoryOther)
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid expense input: %w", err)
	}

	expense := &models.Expense{
		ID:       uuid.New().String(),
		Title:    input.Title,
		Amount:   input.Amount,
		Date:     time.Now().UTC().Format(time.RFC3339),
		Category: models.Category(input.Category),
	}

	if err := s.store.AddExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "expense_id", expense.ID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, expense)
	s.mu.Unlock()

	slog.Info("Expense logged",
		"expense_id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount,
	)
	return expense, nil
}

// memberName resolves the current name for memberID from the mirror.
// Returns "" when no matching member exists.
func (s *Service) memberName(memberID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.ID == memberID {
			return m.Name
		}
	}
	return ""
}

// Members returns a snapshot of the current member set.
func (s *Service) Members() []*models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Member, len(s.members))
	copy(out, s.members)
	return out
}

// Payments returns a snapshot of the current payment set.
func (s *Service) Payments() []*models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Expenses returns a snapshot of the current expense set.
func (s *Service) Expenses() []*models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// MemberByID returns the member with the given id from the mirror.
func (s *Service) MemberByID(id string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("member %s: %w", id, apperr.ErrNotFound)
}

// PaymentByID returns the payment with the given id from the mirror.
func (s *Service) PaymentByID(id string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("payment %s: %w", id, apperr.ErrNotFound)
}

// PaymentsForMember reads the member's payments through the store's
// secondary index.
func (s *Service) PaymentsForMember(ctx context.Context, memberID string) ([]*models.Payment, error) {
	return s.store.ListPaymentsByMember(ctx, memberID)
}

// Summary holds the derived aggregates for the dashboard.
type Summary struct {
	TotalCollected   float64                     `json:"totalCollected"`
	TotalExpenses    float64                     `json:"totalExpenses"`
	Balance          float64                     `json:"balance"`
	MemberCount      int                         `json:"memberCount"`
	ExpenseBreakdown []calculator.CategoryAmount `json:"expenseBreakdown"`
}

// Summary derives totals, balance, and the category breakdown from the
// current mirror.
func (s *Service) Summary() Summary {
	s.mu.Lock()
	payments := s.payments
	expenses := s.expenses
	memberCount := len(s.members)
	s.mu.Unlock()

	return Summary{
		TotalCollected:   calculator.TotalPayments(payments),
		TotalExpenses:    calculator.TotalExpenses(expenses),
		Balance:          calculator.Balance(payments, expenses),
		MemberCount:      memberCount,
		ExpenseBreakdown: calculator.CategoryBreakdown(expenses),
	}
}
