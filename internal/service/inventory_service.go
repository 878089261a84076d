package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

// InventoryService handles the inventory registry
type InventoryService struct {
	inventoryRepo *repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// Create validates and registers a new inventory item, assigning it the next
// sequential code
func (s *InventoryService) Create(ctx context.Context, input *domain.InventoryItemInput) (*domain.InventoryItem, error) {
	if input.Name == "" || input.Category == "" || input.RentalPrice.IsZero() {
		return nil, fmt.Errorf("%w: nome, categoria e valor de aluguel são obrigatórios", ErrValidation)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: categoria desconhecida", ErrValidation)
	}
	if input.RentalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: valor de aluguel não pode ser negativo", ErrValidation)
	}
	if input.CurrentStock < 0 || input.MinStock < 0 {
		return nil, fmt.Errorf("%w: estoque não pode ser negativo", ErrValidation)
	}

	lastCode, err := s.inventoryRepo.LastCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &domain.InventoryItem{
		ID:               uuid.New(),
		Name:             input.Name,
		Category:         input.Category,
		Description:      input.Description,
		RentalPrice:      input.RentalPrice,
		AcquisitionPrice: input.AcquisitionPrice,
		Code:             NextItemCode(lastCode, now),
		CurrentStock:     input.CurrentStock,
		MinStock:         input.MinStock,
		Status:           domain.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: código de item já emitido", ErrDuplicate)
		}
		return nil, err
	}

	return item, nil
}

// Update validates and rewrites an existing item. The generated code is kept.
func (s *InventoryService) Update(ctx context.Context, id uuid.UUID, input *domain.InventoryItemInput) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if input.Name == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: nome e categoria são obrigatórios", ErrValidation)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: categoria desconhecida", ErrValidation)
	}
	if input.CurrentStock < 0 || input.MinStock < 0 {
		return nil, fmt.Errorf("%w: estoque não pode ser negativo", ErrValidation)
	}

	item.Name = input.Name
	item.Category = input.Category
	item.Description = input.Description
	item.RentalPrice = input.RentalPrice
	item.AcquisitionPrice = input.AcquisitionPrice
	item.CurrentStock = input.CurrentStock
	item.MinStock = input.MinStock

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item, nil
}

// List returns inventory items matching the filter
func (s *InventoryService) List(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryItem, error) {
	return s.inventoryRepo.List(ctx, filter)
}

// Get returns a single inventory item
func (s *InventoryService) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Delete soft-deletes an inventory item
func (s *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.inventoryRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// NextItemCode derives the next sequential item code from the last issued
// one. Codes are a monotonically increasing five-digit number suffixed with
// the two-digit issue year, e.g. "00042-26". The numeric prefix keeps
// counting across year changes.
func NextItemCode(lastCode string, now time.Time) string {
	next := 1
	if lastCode != "" {
		prefix, _, _ := strings.Cut(lastCode, "-")
		if n, err := strconv.Atoi(prefix); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%05d-%s", next, now.Format("06"))
}
