package models

import "github.com/shopspring/decimal"

func init() {
	// amounts travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

const (
	ExpenseIDPrefix = "exp-"
	DefaultCurrency = "USD"
)

type HistoryEntry struct {
	Status  ExpenseStatus `json:"status"`
	ActorID string        `json:"actorId"`
	Note    string        `json:"note,omitempty"`
	At      int64         `json:"at"`
}

type Expense struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Merchant    string          `json:"merchant"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        int64           `json:"date"` // unix millis
	Description string          `json:"description"`
	Status      ExpenseStatus   `json:"status"`
	Category    string          `json:"category"`
	History     []HistoryEntry  `json:"history"`
}

// NewExpense is the create payload. Only presence is checked.
type NewExpense struct {
	UserID      string          `json:"userId" validate:"required"`
	Merchant    string          `json:"merchant" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    string          `json:"currency"`
	Date        float64         `json:"date" validate:"required"` // any JSON number; truncated to millis
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
}

// Build applies creation defaults to the payload under the given id.
func (n NewExpense) Build(id string) Expense {
	currency := n.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return Expense{
		ID:          id,
		UserID:      n.UserID,
		Merchant:    n.Merchant,
		Amount:      n.Amount,
		Currency:    currency,
		Date:        int64(n.Date),
		Description: n.Description,
		Status:      ExpensePending,
		Category:    n.Category,
		History:     []HistoryEntry{},
	}
}
