// Package calculator holds the pure aggregation functions over ledger records.
// No I/O, no state: callers pass in the current in-memory record sets.
// Amounts are assumed to be validated non-negative before they reach here.
package calculator

import "societyledger/internal/models"

// CategoryAmount pairs a category with its summed amount. Slices of
// CategoryAmount are ordered by first appearance in the input, which keeps
// chart colors stable across renders.
type CategoryAmount struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TotalPayments returns the sum of all payment amounts. Zero for empty input.
func TotalPayments(payments []*models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// TotalExpenses returns the sum of all expense amounts. Zero for empty input.
func TotalExpenses(expenses []*models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Balance returns total payments minus total expenses. Negative when
// expenses exceed collections.
func Balance(payments []*models.Payment, expenses []*models.Expense) float64 {
	return TotalPayments(payments) - TotalExpenses(expenses)
}

// ExpensesByCategory sums expense amounts per category. Only categories
// present in the input appear as keys; an empty input yields an empty map.
func ExpensesByCategory(expenses []*models.Expense) map[models.Category]float64 {
	byCategory := make(map[models.Category]float64)
	for _, e := range expenses {
		byCategory[e.Category] += e.Amount
	}
	return byCategory
}

// CategoryBreakdown returns the per-category sums ordered by the category's
// first appearance in the input.
func CategoryBreakdown(expenses []*models.Expense) []CategoryAmount {
	sums := make(map[models.Category]float64)
	order := []models.Category{}
	for _, e := range expenses {
		if _, seen := sums[e.Category]; !seen {
			order = append(order, e.Category)
		}
		sums[e.Category] += e.Amount
	}

	breakdown := make([]CategoryAmount, len(order))
	for i, c := range order {
		breakdown[i] = CategoryAmount{Name: string(c), Value: sums[c]}
	}
	return breakdown
}
