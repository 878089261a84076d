package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

// OrderService handles the order lifecycle: creation, edits, the
// pending → active → completed transitions and cancellation
type OrderService struct {
	orderRepo  *repository.OrderRepository
	clientRepo *repository.ClientRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo *repository.OrderRepository, clientRepo *repository.ClientRepository) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
	}
}

// Create validates and books a new order. The total amount is always derived
// server-side from the submitted lines; a client-supplied total is ignored.
func (s *OrderService) Create(ctx context.Context, input *domain.OrderInput) (*domain.Order, error) {
	header, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	header.ID = uuid.New()
	header.OrderStatus = domain.OrderStatusPending
	header.CreatedAt = now
	header.UpdatedAt = now
	header.Items = buildOrderLines(header.ID, input.Items, now)
	header.TotalAmount = domain.OrderTotal(input.Items)

	if err := s.orderRepo.Create(ctx, header); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: quantidade disponível insuficiente", ErrInsufficientStock)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: item não encontrado", ErrValidation)
		}
		return nil, err
	}

	return s.Get(ctx, header.ID)
}

// Update replaces the order header and its full line collection in a single
// transaction, recomputing the total from the new lines
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, input *domain.OrderInput) (*domain.Order, error) {
	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.OrderStatus.Terminal() {
		return nil, ErrInvalidTransition
	}

	header, err := s.validateInput(ctx, input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	header.ID = id
	header.OrderStatus = existing.OrderStatus
	header.Items = buildOrderLines(id, input.Items, now)
	header.TotalAmount = domain.OrderTotal(input.Items)

	if err := s.orderRepo.Update(ctx, header); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.Get(ctx, id)
}

// Get returns an order with its client and lines expanded
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// List returns orders matching the filter
func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return s.orderRepo.List(ctx, filter)
}

// ConfirmPickup moves a pending order to active
func (s *OrderService) ConfirmPickup(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, []domain.OrderStatus{domain.OrderStatusPending}, domain.OrderStatusActive)
}

// ConfirmReturn moves an active order to completed
func (s *OrderService) ConfirmReturn(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, []domain.OrderStatus{domain.OrderStatusActive}, domain.OrderStatusCompleted)
}

// Cancel moves any non-terminal order to canceled
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id,
		[]domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusActive},
		domain.OrderStatusCanceled)
}

// transition performs a guarded status change, distinguishing missing orders
// from refused transitions
func (s *OrderService) transition(ctx context.Context, id uuid.UUID, from []domain.OrderStatus, to domain.OrderStatus) error {
	err := s.orderRepo.UpdateStatus(ctx, id, from, to)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	order, findErr := s.orderRepo.FindByID(ctx, id)
	if findErr != nil {
		return findErr
	}
	if order == nil {
		return ErrNotFound
	}
	return ErrInvalidTransition
}

// validateInput checks the required order fields and returns a header with
// the parsed schedule
func (s *OrderService) validateInput(ctx context.Context, input *domain.OrderInput) (*domain.Order, error) {
	if input.ClientID == uuid.Nil || input.Plan == "" ||
		input.PickupDate == "" || input.ReturnDate == "" {
		return nil, fmt.Errorf("%w: cliente, plano e datas são obrigatórios", ErrValidation)
	}
	if !domain.ValidPlan(input.Plan) {
		return nil, fmt.Errorf("%w: plano desconhecido", ErrValidation)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: adicione pelo menos um item ao pedido", ErrValidation)
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantidade deve ser maior que zero", ErrValidation)
		}
		if line.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: valor unitário não pode ser negativo", ErrValidation)
		}
	}

	pickupDate, err := time.Parse("2006-01-02", input.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de retirada inválida", ErrValidation)
	}
	returnDate, err := time.Parse("2006-01-02", input.ReturnDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de devolução inválida", ErrValidation)
	}
	if returnDate.Before(pickupDate) {
		return nil, fmt.Errorf("%w: devolução não pode anteceder a retirada", ErrValidation)
	}
	if err := validClockTime(input.PickupTime); err != nil {
		return nil, fmt.Errorf("%w: horário de retirada inválido", ErrValidation)
	}
	if err := validClockTime(input.ReturnTime); err != nil {
		return nil, fmt.Errorf("%w: horário de devolução inválido", ErrValidation)
	}

	client, err := s.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.Status != domain.StatusActive {
		return nil, fmt.Errorf("%w: cliente não encontrado", ErrValidation)
	}

	return &domain.Order{
		ClientID:      input.ClientID,
		Plan:          input.Plan,
		PaymentStatus: input.PaymentStatus,
		PickupDate:    pickupDate,
		PickupTime:    input.PickupTime,
		ReturnDate:    returnDate,
		ReturnTime:    input.ReturnTime,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}, nil
}

func buildOrderLines(orderID uuid.UUID, items []domain.OrderItemInput, now time.Time) []domain.OrderItem {
	lines := make([]domain.OrderItem, len(items))
	for i, it := range items {
		lines[i] = domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ItemID:    it.ItemID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			CreatedAt: now,
		}
	}
	return lines
}

func validClockTime(s string) error {
	if s == "" {
		return errors.New("empty time")
	}
	_, err := time.Parse("15:04", s)
	return err
}
