package calculator

import (
	"math"
	"testing"

	"societyledger/internal/models"
)

func payment(amount float64) *models.Payment {
	return &models.Payment{Amount: amount}
}

func expense(amount float64, category models.Category) *models.Expense {
	return &models.Expense{Amount: amount, Category: category}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name     string
		payments []*models.Payment
		expenses []*models.Expense
		wantPay  float64
		wantExp  float64
		wantBal  float64
	}{
		{
			name:    "empty inputs total zero",
			wantPay: 0,
			wantExp: 0,
			wantBal: 0,
		},
		{
			name:     "single payment and expense",
			payments: []*models.Payment{payment(2500)},
			expenses: []*models.Expense{expense(1800, models.CategoryRepair)},
			wantPay:  2500,
			wantExp:  1800,
			wantBal:  700,
		},
		{
			name:     "negative balance when expenses exceed collections",
			payments: []*models.Payment{payment(500)},
			expenses: []*models.Expense{expense(1800, models.CategoryRepair)},
			wantPay:  500,
			wantExp:  1800,
			wantBal:  -1300,
		},
		{
			name: "fractional amounts",
			payments: []*models.Payment{
				payment(100.50), payment(200.25),
			},
			expenses: []*models.Expense{
				expense(50.75, models.CategoryWater),
			},
			wantPay: 300.75,
			wantExp: 50.75,
			wantBal: 250.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPayments(tt.payments); math.Abs(got-tt.wantPay) > 0.001 {
				t.Errorf("TotalPayments = %v, want %v", got, tt.wantPay)
			}
			if got := TotalExpenses(tt.expenses); math.Abs(got-tt.wantExp) > 0.001 {
				t.Errorf("TotalExpenses = %v, want %v", got, tt.wantExp)
			}
			if got := Balance(tt.payments, tt.expenses); math.Abs(got-tt.wantBal) > 0.001 {
				t.Errorf("Balance = %v, want %v", got, tt.wantBal)
			}
		})
	}
}

func TestTotalPaymentsOrderIndependent(t *testing.T) {
	forward := []*models.Payment{payment(100), payment(250.5), payment(3000)}
	backward := []*models.Payment{payment(3000), payment(250.5), payment(100)}

	if TotalPayments(forward) != TotalPayments(backward) {
		t.Errorf("sum depends on order: %v vs %v", TotalPayments(forward), TotalPayments(backward))
	}
}

func TestExpensesByCategory(t *testing.T) {
	t.Run("empty input yields empty map", func(t *testing.T) {
		got := ExpensesByCategory(nil)
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("only present categories appear", func(t *testing.T) {
		got := ExpensesByCategory([]*models.Expense{
			expense(1800, models.CategoryRepair),
		})
		if len(got) != 1 {
			t.Fatalf("expected 1 key, got %v", got)
		}
		if got[models.CategoryRepair] != 1800 {
			t.Errorf("Repair = %v, want 1800", got[models.CategoryRepair])
		}
	})

	t.Run("repeated categories accumulate", func(t *testing.T) {
		got := ExpensesByCategory([]*models.Expense{
			expense(1800, models.CategoryRepair),
			expense(200, models.CategoryRepair),
			expense(300, models.CategoryWater),
		})
		if len(got) != 2 {
			t.Fatalf("expected 2 keys, got %v", got)
		}
		if got[models.CategoryRepair] != 2000 {
			t.Errorf("Repair = %v, want 2000", got[models.CategoryRepair])
		}
		if got[models.CategoryWater] != 300 {
			t.Errorf("Water = %v, want 300", got[models.CategoryWater])
		}
	})
}

func TestCategoryBreakdownFirstSeenOrder(t *testing.T) {
	breakdown := CategoryBreakdown([]*models.Expense{
		expense(300, models.CategoryWater),
		expense(1800, models.CategoryRepair),
		expense(200, models.CategoryWater),
		expense(50, models.CategoryOther),
	})

	want := []CategoryAmount{
		{Name: "Water", Value: 500},
		{Name: "Repair", Value: 1800},
		{Name: "Other", Value: 50},
	}

	if len(breakdown) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(breakdown))
	}
	for i := range want {
		if breakdown[i] != want[i] {
			t.Errorf("breakdown[%d] = %+v, want %+v", i, breakdown[i], want[i])
		}
	}
}
