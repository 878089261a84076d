package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

func newClientService(t *testing.T) (*ClientService, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewClientService(repository.NewClientRepositoryWithDB(mockDB)), mock
}

func strPtr(s string) *string { return &s }

func TestClientServiceCreateValidation(t *testing.T) {
	t.Run("requires name", func(t *testing.T) {
		svc, _ := newClientService(t)

		_, err := svc.Create(context.Background(), &domain.ClientInput{CPF: "33089731894"})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects malformed cpf", func(t *testing.T) {
		svc, _ := newClientService(t)

		_, err := svc.Create(context.Background(), &domain.ClientInput{
			Name: "Maria Silva",
			CPF:  "123.456",
		})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "CPF inválido")
	})

	t.Run("rejects malformed birth date", func(t *testing.T) {
		svc, _ := newClientService(t)

		_, err := svc.Create(context.Background(), &domain.ClientInput{
			Name:      "Maria Silva",
			CPF:       "330.897.318-94",
			BirthDate: strPtr("31/12/1990"),
		})

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestClientServiceCreateNormalizes(t *testing.T) {
	svc, mock := newClientService(t)

	mock.ExpectExec(`INSERT INTO clients`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	client, err := svc.Create(context.Background(), &domain.ClientInput{
		Name:  "Maria Silva",
		CPF:   "330.897.318-94",
		Phone: strPtr("(48) 99999-1234"),
	})

	require.NoError(t, err)
	assert.Equal(t, "33089731894", client.CPF)
	require.NotNil(t, client.Phone)
	assert.Equal(t, "48999991234", *client.Phone)
	assert.Equal(t, domain.StatusActive, client.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientServiceDeleteMissing(t *testing.T) {
	svc, mock := newClientService(t)

	mock.ExpectExec(`UPDATE clients`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}
