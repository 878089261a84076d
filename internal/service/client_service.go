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
	"github.com/locdecor/locdecor/pkg/document"
)

// ClientService handles the client registry
type ClientService struct {
	clientRepo *repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo *repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create validates and registers a new client. The CPF is stored digits-only
// and must normalize to exactly 11 digits.
func (s *ClientService) Create(ctx context.Context, input *domain.ClientInput) (*domain.Client, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", ErrValidation)
	}

	cpf, ok := document.NormalizeCPF(input.CPF)
	if !ok {
		return nil, fmt.Errorf("%w: CPF inválido", ErrValidation)
	}

	birthDate, err := parseOptionalDate(input.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de nascimento inválida", ErrValidation)
	}

	now := time.Now()
	client := &domain.Client{
		ID:            uuid.New(),
		Name:          input.Name,
		CPF:           cpf,
		BirthDate:     birthDate,
		Phone:         normalizeDigitsPtr(input.Phone),
		Email:         input.Email,
		Address:       input.Address,
		AddressNumber: input.AddressNumber,
		Neighborhood:  input.Neighborhood,
		ZipCode:       normalizeDigitsPtr(input.ZipCode),
		Status:        domain.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: CPF já cadastrado", ErrDuplicate)
		}
		return nil, err
	}

	return client, nil
}

// Update validates and rewrites an existing client
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, input *domain.ClientInput) (*domain.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNotFound
	}

	if input.Name == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", ErrValidation)
	}

	cpf, ok := document.NormalizeCPF(input.CPF)
	if !ok {
		return nil, fmt.Errorf("%w: CPF inválido", ErrValidation)
	}

	birthDate, err := parseOptionalDate(input.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de nascimento inválida", ErrValidation)
	}

	client.Name = input.Name
	client.CPF = cpf
	client.BirthDate = birthDate
	client.Phone = normalizeDigitsPtr(input.Phone)
	client.Email = input.Email
	client.Address = input.Address
	client.AddressNumber = input.AddressNumber
	client.Neighborhood = input.Neighborhood
	client.ZipCode = normalizeDigitsPtr(input.ZipCode)

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: CPF já cadastrado", ErrDuplicate)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return client, nil
}

// List returns clients matching the filter
func (s *ClientService) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	return s.clientRepo.List(ctx, filter)
}

// Get returns a single client
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNotFound
	}
	return client, nil
}

// Delete soft-deletes a client: the row stays, only the status flips
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clientRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// parseOptionalDate parses a "2006-01-02" date when present
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// normalizeDigitsPtr strips formatting from an optional numeric field
func normalizeDigitsPtr(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	digits := document.Digits(*s)
	if digits == "" {
		return nil
	}
	return &digits
}
