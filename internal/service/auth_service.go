package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"postboard/internal/apperr"
	"postboard/internal/models"
	"postboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Client-facing auth messages.
const (
	msgMissingCredentials = "Please provide an email and password"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid token. Please log in again."
	msgExpiredToken       = "Token expired. Please log in again."
)

// ErrInvalidPassword is wrapped into the invalid-credentials error when the
// password does not match.
var ErrInvalidPassword = errors.New("invalid password")

// AuthService handles user auth logic
type AuthService struct {
	users  repository.Users
	tokens TokenConfig
	now    func() time.Time
}

func NewAuthService(users repository.Users, tokens TokenConfig) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Register creates the account and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	u := &models.User{Name: in.Name, Email: in.Email, Password: in.Password}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	return s.issueToken(u.ID)
}

// Login validates credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", apperr.New(apperr.KindBadRequest, msgMissingCredentials)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperr.New(apperr.KindUnauthenticated, msgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Wrap(ErrInvalidPassword, apperr.KindUnauthenticated, msgInvalidCredentials)
	}

	return s.issueToken(u.ID)
}

// ParseToken parses JWT and returns userID
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.tokens.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperr.Wrap(err, apperr.KindExpiredToken, msgExpiredToken)
		}
		return "", apperr.Wrap(err, apperr.KindInvalidToken, msgInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", apperr.New(apperr.KindInvalidToken, msgInvalidToken)
	}

	return claims.UserID, nil
}

// CurrentUser loads the account behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User", userID)
	}
	return u, nil
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokens.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	signed, err := token.SignedString([]byte(s.tokens.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
