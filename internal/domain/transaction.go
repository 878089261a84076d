package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income (receita) from expense (despesa)
type TransactionType string

const (
	TransactionIncome  TransactionType = "receita"
	TransactionExpense TransactionType = "despesa"
)

// TransactionStatus represents the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionScheduled TransactionStatus = "scheduled"
)

// Transaction is one entry of the financial ledger
type Transaction struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	Type          TransactionType   `json:"type" db:"type"`
	Category      string            `json:"category" db:"category"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"`
	Date          time.Time         `json:"date" db:"date"`
	Description   *string           `json:"description,omitempty" db:"description"`
	PaymentMethod *string           `json:"payment_method,omitempty" db:"payment_method"`
	Status        TransactionStatus `json:"status" db:"status"`
	OrderID       *uuid.UUID        `json:"order_id,omitempty" db:"order_id"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
}

// TransactionInput carries the fields accepted when recording a ledger entry
type TransactionInput struct {
	Type          TransactionType   `json:"type" validate:"required,oneof=receita despesa"`
	Category      string            `json:"category" validate:"required"`
	Amount        decimal.Decimal   `json:"amount" validate:"required"`
	Date          string            `json:"date" validate:"required"`
	Description   *string           `json:"description,omitempty"`
	PaymentMethod *string           `json:"payment_method,omitempty"`
	Status        TransactionStatus `json:"status"`
	OrderID       *uuid.UUID        `json:"order_id,omitempty"`
}

// TransactionFilter narrows ledger listings
type TransactionFilter struct {
	Search string
	Type   TransactionType
}
