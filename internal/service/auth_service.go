package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotAllowed    = errors.New("email is not on the admin allow-list")
)

// DirectoryStore looks up the admin allow-list. Implementations return
// pgx.ErrNoRows when the email has no entry.
type DirectoryStore interface {
	RoleNameByEmail(ctx context.Context, email string) (string, error)
}

// AdminUserStore reads admin credential records.
type AdminUserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	GetByID(ctx context.Context, id int) (*model.AdminUser, error)
}

// SessionWriter records sign-in sessions.
type SessionWriter interface {
	Create(ctx context.Context, s *model.Session) error
	DeleteByID(ctx context.Context, id string) error
}

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
}

// AuthService handles authentication, the allow-list gate, and JWT sessions.
type AuthService struct {
	cfg       *config.Config
	directory DirectoryStore
	users     AdminUserStore
	sessions  SessionWriter
	log       zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, directory DirectoryStore, users AdminUserStore, sessions SessionWriter, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:       cfg,
		directory: directory,
		users:     users,
		sessions:  sessions,
		log:       log.With().Str("component", "auth_service").Logger(),
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IsAllowedEmail reports whether the email is on the admin allow-list.
// Empty input is false without touching the store. A store failure is
// returned so callers can fail closed.
func (s *AuthService) IsAllowedEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	_, err := s.directory.RoleNameByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		s.log.Error().Err(err).Str("op", "allow_list_lookup").Msg("directory lookup failed")
		return false, fmt.Errorf("allow-list lookup: %w", err)
	}
	return true, nil
}

// RoleNameByEmail returns the role stored for an allow-listed email, or ""
// when the email is empty or not on the list. Store failures propagate.
func (s *AuthService) RoleNameByEmail(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", nil
	}
	roleName, err := s.directory.RoleNameByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		s.log.Error().Err(err).Str("op", "role_lookup").Msg("directory lookup failed")
		return "", fmt.Errorf("role lookup: %w", err)
	}
	return roleName, nil
}

// SignIn validates credentials, applies the allow-list gate, records a
// session row, and returns a signed JWT. Any directory failure denies the
// login (fail closed).
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *model.AdminUser, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, "", ErrInvalidCredentials
		}
		s.log.Error().Err(err).Str("op", "user_lookup").Msg("admin user lookup failed")
		return "", nil, "", fmt.Errorf("user lookup: %w", err)
	}

	if err := s.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, "", ErrInvalidCredentials
	}

	roleName, err := s.RoleNameByEmail(ctx, email)
	if err != nil {
		return "", nil, "", err
	}
	if roleName == "" {
		return "", nil, "", ErrEmailNotAllowed
	}

	token, jti, expires, err := s.GenerateToken(user.ID, user.Email, roleName)
	if err != nil {
		return "", nil, "", fmt.Errorf("sign token: %w", err)
	}

	session := &model.Session{ID: jti, UserID: user.ID, Expires: expires}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Error().Err(err).Str("op", "session_create").Msg("session insert failed")
		return "", nil, "", fmt.Errorf("store session: %w", err)
	}

	return token, user, roleName, nil
}

// SignOut deletes the session row identified by the token's jti.
func (s *AuthService) SignOut(ctx context.Context, jti string) error {
	if err := s.sessions.DeleteByID(ctx, jti); err != nil {
		s.log.Error().Err(err).Str("op", "session_delete").Msg("session delete failed")
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// GenerateToken creates a signed JWT carrying the admin's identity and role.
// Returns the token, its jti, and the expiry instant.
func (s *AuthService) GenerateToken(userID int, email, roleName string) (string, string, time.Time, error) {
	jti := uuid.New().String()
	now := time.Now()
	expires := now.Add(s.cfg.JWTExpiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		UserID:   userID,
		Email:    email,
		RoleName: roleName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, err
	}
	return signed, jti, expires, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
// Purely cryptographic — no store access.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// GetUser retrieves the admin user behind a set of claims.
func (s *AuthService) GetUser(ctx context.Context, userID int) (*model.AdminUser, error) {
	return s.users.GetByID(ctx, userID)
}
