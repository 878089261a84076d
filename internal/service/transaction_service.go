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

// TransactionService handles the financial ledger
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// Create validates and records a ledger entry. Status defaults to completed.
func (s *TransactionService) Create(ctx context.Context, input *domain.TransactionInput) (*domain.Transaction, error) {
	t, err := buildTransaction(input)
	if err != nil {
		return nil, err
	}

	t.ID = uuid.New()
	t.CreatedAt = time.Now()

	if err := s.transactionRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Update validates and rewrites a ledger entry
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, input *domain.TransactionInput) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	t, err := buildTransaction(input)
	if err != nil {
		return nil, err
	}

	t.ID = id
	t.CreatedAt = existing.CreatedAt

	if err := s.transactionRepo.Update(ctx, t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// List returns ledger entries matching the filter
func (s *TransactionService) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.transactionRepo.List(ctx, filter)
}

// Delete removes a ledger entry
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func buildTransaction(input *domain.TransactionInput) (*domain.Transaction, error) {
	if input.Type != domain.TransactionIncome && input.Type != domain.TransactionExpense {
		return nil, fmt.Errorf("%w: tipo deve ser receita ou despesa", ErrValidation)
	}
	if input.Amount.IsZero() || input.Category == "" || input.Date == "" {
		return nil, fmt.Errorf("%w: valor, categoria e data são obrigatórios", ErrValidation)
	}
	if input.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: valor não pode ser negativo", ErrValidation)
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: data inválida", ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = domain.TransactionCompleted
	}
	switch status {
	case domain.TransactionPending, domain.TransactionCompleted, domain.TransactionScheduled:
	default:
		return nil, fmt.Errorf("%w: status desconhecido", ErrValidation)
	}

	return &domain.Transaction{
		Type:          input.Type,
		Category:      input.Category,
		Amount:        input.Amount,
		Date:          date,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		Status:        status,
		OrderID:       input.OrderID,
	}, nil
}
