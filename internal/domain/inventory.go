package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categories is the closed set of decoration categories an item may belong to
var Categories = []string{
	"MÓVEIS",
	"SUPORTES",
	"ESTRUTURA",
	"CAPAS",
	"BANDEJAS",
	"VASOS",
	"BOLEIRAS",
	"ARRANJOS",
	"ENFEITES",
	"BOLO FAKES",
	"TAPETES",
	"LETREIROS",
}

// ValidCategory reports whether category is one of the closed category set
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// InventoryItem represents a rentable decoration item in the registry
type InventoryItem struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	Name             string           `json:"name" db:"name"`
	Category         string           `json:"category" db:"category"`
	Description      *string          `json:"description,omitempty" db:"description"`
	RentalPrice      decimal.Decimal  `json:"rental_price" db:"rental_price"`
	AcquisitionPrice *decimal.Decimal `json:"acquisition_price,omitempty" db:"acquisition_price"`
	Code             string           `json:"code" db:"code"`
	CurrentStock     int              `json:"current_stock" db:"current_stock"`
	MinStock         int              `json:"min_stock" db:"min_stock"`
	Status           LifecycleStatus  `json:"status" db:"status"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// LowStock reports whether the item's stock fell below its minimum threshold
func (i *InventoryItem) LowStock() bool {
	return i.CurrentStock < i.MinStock
}

// InventoryItemInput carries the fields accepted when creating or updating an item
type InventoryItemInput struct {
	Name             string           `json:"name" validate:"required"`
	Category         string           `json:"category" validate:"required"`
	Description      *string          `json:"description,omitempty"`
	RentalPrice      decimal.Decimal  `json:"rental_price"`
	AcquisitionPrice *decimal.Decimal `json:"acquisition_price,omitempty"`
	CurrentStock     int              `json:"current_stock"`
	MinStock         int              `json:"min_stock"`
}

// InventoryFilter narrows inventory listings
type InventoryFilter struct {
	Search   string
	Category string
	Status   LifecycleStatus
	InStock  bool // only items with current_stock > 0
	LowStock bool // only items with current_stock < min_stock
}

// ItemAvailability is one row of the externally maintained availability table.
// The reserved/available counters are kept in sync by the reservation pipeline;
// this service only reads them for occupancy accounting.
type ItemAvailability struct {
	ID                uuid.UUID `json:"id" db:"id"`
	ItemID            uuid.UUID `json:"item_id" db:"item_id"`
	Date              time.Time `json:"date" db:"date"`
	AvailableQuantity int       `json:"available_quantity" db:"available_quantity"`
	ReservedQuantity  int       `json:"reserved_quantity" db:"reserved_quantity"`
}
