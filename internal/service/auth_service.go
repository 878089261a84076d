package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

// minPasswordLength is the sign-up password policy
const minPasswordLength = 6

// AuthService handles operator sign-up, sign-in, sign-out and session lookup
type AuthService struct {
	userRepo  *repository.UserRepository
	sessions  *SessionService
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, sessions *SessionService, jwtSecret string, tokenTTLSeconds int) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(tokenTTLSeconds) * time.Second,
	}
}

// SignUp creates a new operator account
func (s *AuthService) SignUp(ctx context.Context, req *domain.SignUpRequest) (*domain.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: e-mail já cadastrado", ErrDuplicate)
		}
		return nil, err
	}

	return user, nil
}

// SignIn verifies credentials, issues a JWT and records the session
func (s *AuthService) SignIn(ctx context.Context, req *domain.SignInRequest) (*domain.SessionResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"jti": jti,
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.sessions.Put(ctx, jti, user.ID); err != nil {
		return nil, err
	}

	return &domain.SessionResponse{
		AccessToken: signedToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokenTTL.Seconds()),
		User:        user,
		IssuedAt:    now,
	}, nil
}

// SignOut revokes the session behind a token
func (s *AuthService) SignOut(ctx context.Context, tokenString string) error {
	_, jti, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, jti)
}

// CurrentUser resolves a token to its signed-in user. Tokens whose session
// was revoked are rejected even if the signature is still valid.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*domain.User, error) {
	userID, _, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ValidateToken checks the token signature and the session registry, and
// returns the user and session identifiers
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, string, error) {
	userID, jti, err := s.parseToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	sessionUser, active, err := s.sessions.Get(ctx, jti)
	if err != nil {
		return uuid.Nil, "", err
	}
	if !active || sessionUser != userID {
		return uuid.Nil, "", ErrSessionExpired
	}

	return userID, jti, nil
}

func (s *AuthService) parseToken(tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidCredentials
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, "", ErrInvalidCredentials
	}

	jti, ok := claims["jti"].(string)
	if !ok {
		return uuid.Nil, "", ErrInvalidCredentials
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrInvalidCredentials
	}

	return userID, jti, nil
}
