package models

// Category classifies a society expense. The set is closed.
type Category string

// Expense categories.
const (
	CategoryRepair      Category = "Repair"
	CategoryCleaning    Category = "Cleaning"
	CategoryElectricity Category = "Electricity"
	CategoryWater       Category = "Water"
	CategoryOther       Category = "Other"
)

// Categories lists every valid expense category.
func Categories() []Category {
	return []Category{
		CategoryRepair,
		CategoryCleaning,
		CategoryElectricity,
		CategoryWater,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRepair, CategoryCleaning, CategoryElectricity, CategoryWater, CategoryOther:
		return true
	}
	return false
}

// Expense represents one society expense entry.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Title describes the expense (e.g. "Pump Repair").
	Title string `json:"title"`

	// Amount is the expense amount. Always non-negative.
	Amount float64 `json:"amount"`

	// Date is the recording time as an ISO-8601 timestamp string.
	Date string `json:"date"`

	// Category is one of the closed category set.
	Category Category `json:"category"`
}
