package service

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is wrapped around field-level validation failures raised
	// before any database call
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate is wrapped around uniqueness-constraint violations
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidCredentials is returned when authentication fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired is returned when a token's session was signed out or expired
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidTransition is returned when an order status change is not
	// allowed from the order's current state
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrInsufficientStock is returned when an order line exceeds current stock
	ErrInsufficientStock = errors.New("insufficient stock")
)
