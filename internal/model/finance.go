package model

// FinanceKind separates paid expenses from planned ones.
type FinanceKind string

const (
	FinanceExpense FinanceKind = "expense"
	FinancePlanned FinanceKind = "planned"
)

// FinanceEntry is one ledger row. Date is a local date key.
type FinanceEntry struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Amount   float64     `json:"amount"`
	Date     string      `json:"date"`
	Kind     FinanceKind `json:"kind"`
	Category string      `json:"category"`
	Notes    string      `json:"notes,omitempty"`
}
