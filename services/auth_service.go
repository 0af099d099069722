// Package services — AuthService: registration, login, token validation.
//
// This is the outer surface where passwords stop being opaque: Register
// bcrypt-hashes before handing the value to the user store, and Login
// compares against the stored hash. Everything below this layer treats the
// password field as an already-prepared hash.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teambabes/socialapp/models"
	"github.com/teambabes/socialapp/pkg"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// AuthService is the authentication interface.
type AuthService interface {
	// Register creates an account with a hashed password and returns a
	// signed access token for it.
	Register(ctx context.Context, req *models.CreateUserRequest) (*AuthResult, error)

	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error)

	// ValidateAccessToken parses and verifies a token string.
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// AuthResult is what register/login return to the client.
type AuthResult struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

type authService struct {
	userService UserService
	jwtSecret   []byte
	accessExp   time.Duration
}

// NewAuthService is the constructor.
// It builds on UserService so registration goes through the same validation
// path as any other user creation.
func NewAuthService(userService UserService, jwtSecret string, accessExpMinutes int) AuthService {
	return &authService{
		userService: userService,
		jwtSecret:   []byte(jwtSecret),
		accessExp:   time.Duration(accessExpMinutes) * time.Minute,
	}
}

// Register creates a new account.
//
// Flow:
// 1. Shape validation (delegated to UserService via the same request type)
// 2. Reject duplicate email
// 3. Hash the password, create the user, issue a token
func (s *authService) Register(ctx context.Context, req *models.CreateUserRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.userService.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", pkg.ErrAlreadyExists)
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashedReq := *req
	hashedReq.Password = string(hash)
	user, err := s.userService.Create(ctx, &hashedReq)
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials.
//
// A missing account and a wrong password return the same error — no account
// enumeration through the login endpoint.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userService.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", pkg.ErrUnauthorized)
	}

	return s.issueToken(user)
}

// ValidateAccessToken parses a token and returns its claims.
func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}
	return claims, nil
}

// issueToken signs an HS256 access token for the user.
func (s *authService) issueToken(user *models.User) (*AuthResult, error) {
	now := time.Now().UTC()
	claims := models.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	sanitized := *user
	sanitized.PasswordHash = ""

	return &AuthResult{
		AccessToken: signed,
		User:        sanitized,
	}, nil
}
