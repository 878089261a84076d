package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Terminal reports whether the status absorbs all further transitions
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

// Plans is the closed set of decoration package tiers selectable per order
var Plans = []string{
	"MINI DECORAÇÃO",
	"BRONZE",
	"PRATA",
	"OURO",
	"COMPOSIÇÃO",
}

// ValidPlan reports whether plan is one of the closed plan set
func ValidPlan(plan string) bool {
	for _, p := range Plans {
		if p == plan {
			return true
		}
	}
	return false
}

// Order represents a rental booking: a header plus an ordered line collection
type Order struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	OrderNumber   string          `json:"order_number" db:"order_number"`
	ClientID      uuid.UUID       `json:"client_id" db:"client_id"`
	Client        *Client         `json:"client,omitempty"`
	Plan          string          `json:"plan" db:"plan"`
	OrderStatus   OrderStatus     `json:"order_status" db:"order_status"`
	PaymentStatus string          `json:"payment_status" db:"payment_status"`
	PickupDate    time.Time       `json:"pickup_date" db:"pickup_date"`
	PickupTime    string          `json:"pickup_time" db:"pickup_time"`
	ReturnDate    time.Time       `json:"return_date" db:"return_date"`
	ReturnTime    string          `json:"return_time" db:"return_time"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	PaymentMethod *string         `json:"payment_method,omitempty" db:"payment_method"`
	Notes         *string         `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
	Items         []OrderItem     `json:"items,omitempty"`
}

// OrderItem is one line of an order. UnitPrice is snapshotted at order time
// and does not follow later price changes on the inventory item.
type OrderItem struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	OrderID   uuid.UUID       `json:"order_id" db:"order_id"`
	ItemID    uuid.UUID       `json:"item_id" db:"item_id"`
	Item      *InventoryItem  `json:"item,omitempty"`
	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" db:"unit_price"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// OrderItemInput is one requested line on order creation or edit
type OrderItemInput struct {
	ItemID    uuid.UUID       `json:"item_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderInput carries the fields accepted when creating or editing an order.
// Dates arrive as "2006-01-02" and times as "15:04" strings.
type OrderInput struct {
	ClientID      uuid.UUID        `json:"client_id" validate:"required"`
	Plan          string           `json:"plan" validate:"required"`
	PaymentStatus string           `json:"payment_status"`
	PickupDate    string           `json:"pickup_date" validate:"required"`
	PickupTime    string           `json:"pickup_time" validate:"required"`
	ReturnDate    string           `json:"return_date" validate:"required"`
	ReturnTime    string           `json:"return_time" validate:"required"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1"`
}

// OrderFilter narrows order listings
type OrderFilter struct {
	Search string
	Status OrderStatus
}

// OrderTotal derives the order total as the sum of quantity times unit price
// over the submitted lines
func OrderTotal(items []OrderItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
