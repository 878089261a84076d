package domain

import (
	"time"

	"github.com/google/uuid"
)

// LifecycleStatus marks a registry record as active or soft-deleted
type LifecycleStatus string

const (
	StatusActive   LifecycleStatus = "active"
	StatusInactive LifecycleStatus = "inactive"
)

// Client represents a customer of the rental business
type Client struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	CPF           string          `json:"cpf" db:"cpf"`
	BirthDate     *time.Time      `json:"birth_date,omitempty" db:"birth_date"`
	Phone         *string         `json:"phone,omitempty" db:"phone"`
	Email         *string         `json:"email,omitempty" db:"email"`
	Address       *string         `json:"address,omitempty" db:"address"`
	AddressNumber *string         `json:"address_number,omitempty" db:"address_number"`
	Neighborhood  *string         `json:"neighborhood,omitempty" db:"neighborhood"`
	ZipCode       *string         `json:"zip_code,omitempty" db:"zip_code"`
	Status        LifecycleStatus `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// ClientInput carries the fields accepted when creating or updating a client.
// Dates arrive as "2006-01-02" strings and document/phone/zip values may
// contain formatting characters that are stripped before persistence.
type ClientInput struct {
	Name          string  `json:"name" validate:"required"`
	CPF           string  `json:"cpf" validate:"required"`
	BirthDate     *string `json:"birth_date,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	AddressNumber *string `json:"address_number,omitempty"`
	Neighborhood  *string `json:"neighborhood,omitempty"`
	ZipCode       *string `json:"zip_code,omitempty"`
}

// ClientFilter narrows client listings
type ClientFilter struct {
	Search string
	Status LifecycleStatus
}
