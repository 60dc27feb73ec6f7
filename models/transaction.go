package models

import "time"

// TransactionKind selects the incomes or expenses table. Both kinds share one
// shape and one code path; only the table differs.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Table returns the storage table for the kind.
func (k TransactionKind) Table() string {
	if k == KindExpense {
		return "expenses"
	}
	return "incomes"
}

type Transaction struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateTransactionRequest struct {
	Name       string  `json:"name" binding:"required"`
	CategoryID string  `json:"category" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	Date       string  `json:"date" binding:"required"` // YYYY-MM-DD
}

// EditTransactionRequest backs the combined edit-or-delete submission. Exactly
// one of the Edit/Delete markers is expected; delete wins and skips field
// validation entirely.
type EditTransactionRequest struct {
	Name       string  `json:"name"`
	CategoryID string  `json:"category"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
	Edit       string  `json:"edit,omitempty"`
	Delete     string  `json:"delete,omitempty"`
}

type TransactionList struct {
	Incomes  []Transaction `json:"incomes"`
	Expenses []Transaction `json:"expenses"`
}
