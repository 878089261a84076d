package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrInsufficientStock is returned when an order line requests more units
// than the item currently holds in stock
var ErrInsufficientStock = errors.New("insufficient stock for requested quantity")

// IsUniqueViolation reports whether err is a Postgres unique-constraint error
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
