package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mealtrack/backend/internal/domain"
)

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	JWTSecret   string
	TokenTTL    time.Duration // session token lifetime
	RememberTTL time.Duration // lifetime when "remember me" is requested
}

// AuthService handles account registration and login token issuance
type AuthService struct {
	users       domain.UserRepository
	secret      []byte
	tokenTTL    time.Duration
	rememberTTL time.Duration
}

// NewAuthService creates an auth service with dependencies
func NewAuthService(users domain.UserRepository, config AuthServiceConfig) *AuthService {
	tokenTTL := config.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = 72 * time.Hour
	}
	rememberTTL := config.RememberTTL
	if rememberTTL == 0 {
		rememberTTL = 720 * time.Hour // 30 days
	}

	return &AuthService{
		users:       users,
		secret:      []byte(config.JWTSecret),
		tokenTTL:    tokenTTL,
		rememberTTL: rememberTTL,
	}
}

// Register creates a new account. While no accounts exist registration
// is open so the first user can bootstrap the tracker; after that only
// an authenticated caller may add accounts.
func (s *AuthService) Register(ctx context.Context, username, password string, authenticated bool) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return domain.ErrCredentialsRequired
	}

	if !authenticated {
		count, err := s.users.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrRegistrationClosed
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Login verifies credentials and returns a signed token. A remembered
// login gets the long-lived token; there is no separate persisted
// remember-me state.
func (s *AuthService) Login(ctx context.Context, username, password string, remember bool) (string, error) {
	user, err := s.users.Get(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	ttl := s.tokenTTL
	if remember {
		ttl = s.rememberTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Username,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// ParseToken validates a token and returns the username it was issued to
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	username, _ := claims["sub"].(string)
	if username == "" {
		return "", domain.ErrInvalidCredentials
	}
	return username, nil
}
