package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locdecor/locdecor/internal/domain"
)

func newMockClientRepository(t *testing.T) (*ClientRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewClientRepositoryWithDB(mockDB), mock, mockDB
}

func TestClientRepositoryFindByID(t *testing.T) {
	t.Run("finds existing client", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "name", "cpf", "birth_date", "phone", "email", "address",
			"address_number", "neighborhood", "zip_code", "status", "created_at", "updated_at",
		}).AddRow(clientID, "Maria Silva", "33089731894", nil, nil, nil, nil, nil, nil, nil, "active", now, now)

		mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
			WithArgs(clientID).
			WillReturnRows(rows)

		client, err := repo.FindByID(context.Background(), clientID)

		assert.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, clientID, client.ID)
		assert.Equal(t, "Maria Silva", client.Name)
		assert.Equal(t, "33089731894", client.CPF)
		assert.Nil(t, client.Phone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing client yields nil without error", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()

		mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
			WithArgs(clientID).
			WillReturnError(sql.ErrNoRows)

		client, err := repo.FindByID(context.Background(), clientID)

		assert.NoError(t, err)
		assert.Nil(t, client)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientRepositorySoftDelete(t *testing.T) {
	t.Run("flips status only", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()

		mock.ExpectExec(`UPDATE clients\s+SET status = \$2, updated_at = NOW\(\)\s+WHERE id = \$1`).
			WithArgs(clientID, domain.StatusInactive).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SoftDelete(context.Background(), clientID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing client reports ErrNoRows", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		clientID := uuid.New()

		mock.ExpectExec(`UPDATE clients`).
			WithArgs(clientID, domain.StatusInactive).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SoftDelete(context.Background(), clientID)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientRepositoryList(t *testing.T) {
	t.Run("applies search and status filters", func(t *testing.T) {
		repo, mock, mockDB := newMockClientRepository(t)
		defer mockDB.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "name", "cpf", "birth_date", "phone", "email", "address",
			"address_number", "neighborhood", "zip_code", "status", "created_at", "updated_at",
		}).AddRow(uuid.New(), "Ana", "11111111111", nil, nil, nil, nil, nil, nil, nil, "active", now, now)

		mock.ExpectQuery(`SELECT .+ FROM clients WHERE 1=1 AND \(name ILIKE \$1 OR cpf ILIKE \$1 OR phone ILIKE \$1\) AND status = \$2 ORDER BY name`).
			WithArgs("%ana%", domain.StatusActive).
			WillReturnRows(rows)

		clients, err := repo.List(context.Background(), domain.ClientFilter{
			Search: "ana",
			Status: domain.StatusActive,
		})

		assert.NoError(t, err)
		assert.Len(t, clients, 1)
		assert.Equal(t, "Ana", clients[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
