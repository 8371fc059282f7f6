package sqlite

import (
	"context"
	"fmt"

	"societyledger/internal/models"
)

// AddExpense inserts a new expense into the database.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense *models.Expense) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, title, amount, date, category)
		 VALUES (?, ?, ?, ?, ?)`,
		expense.ID, expense.Title, expense.Amount, expense.Date, string(expense.Category),
	)
	if err != nil {
		return insertErr("expenses", err)
	}

	return nil
}

// ListExpenses retrieves all expenses. Ordering is unspecified.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, amount, date, category FROM expenses",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		expense := &models.Expense{}
		var category string

		if err := rows.Scan(&expense.ID, &expense.Title, &expense.Amount,
			&expense.Date, &category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Category = models.Category(category)

		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}
