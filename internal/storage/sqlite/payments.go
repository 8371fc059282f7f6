package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"societyledger/internal/models"
)

// AddPayment inserts a new payment into the database.
func (s *SQLiteStore) AddPayment(ctx context.Context, payment *models.Payment) error {
	var note interface{} = nil
	if payment.Note != "" {
		note = payment.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, member_id, member_name, month, amount, date, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.MemberID, payment.MemberName, payment.Month,
		payment.Amount, payment.Date, note,
	)
	if err != nil {
		return insertErr("payments", err)
	}

	return nil
}

// ListPayments retrieves all payments. Ordering is unspecified.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, member_name, month, amount, date, note FROM payments",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListPaymentsByMember retrieves all payments made by the given member,
// using the member_id index. Returns an empty slice when none match.
func (s *SQLiteStore) ListPaymentsByMember(ctx context.Context, memberID string) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, member_name, month, amount, date, note FROM payments WHERE member_id = ?",
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by member: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows *sql.Rows) ([]*models.Payment, error) {
	payments := []*models.Payment{}
	for rows.Next() {
		payment := &models.Payment{}
		var note sql.NullString

		if err := rows.Scan(&payment.ID, &payment.MemberID, &payment.MemberName,
			&payment.Month, &payment.Amount, &payment.Date, &note); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		if note.Valid {
			payment.Note = note.String
		}

		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
