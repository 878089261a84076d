package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	userRepo := repository.NewUserRepository(mockDB)
	return NewAuthService(userRepo, nil, "test-secret", 3600), mock
}

func TestAuthServiceSignUpValidation(t *testing.T) {
	tests := []struct {
		name string
		req  domain.SignUpRequest
	}{
		{"missing name", domain.SignUpRequest{Email: "a@b.com", Password: "secret1"}},
		{"missing email", domain.SignUpRequest{Name: "Ana", Password: "secret1"}},
		{"malformed email", domain.SignUpRequest{Name: "Ana", Email: "not-an-email", Password: "secret1"}},
		{"short password", domain.SignUpRequest{Name: "Ana", Email: "a@b.com", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthService(t)

			_, err := svc.SignUp(context.Background(), &tt.req)

			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthServiceSignUpHashesAndLowercases(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := svc.SignUp(context.Background(), &domain.SignUpRequest{
		Name:     "Ana",
		Email:    "Ana@LocDecor.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@locdecor.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
