// Package auth guards the admin surface: a bcrypt-hashed password is exchanged
// for a short-lived HS256 token that every admin request must present.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminSubject = "admin"
	issuer       = "qmdigital"
)

var jwtSigningMethod = jwt.SigningMethodHS256

var (
	ErrDisabled       = errors.New("admin authentication is not configured")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrInvalidToken   = errors.New("invalid admin token")
)

type Config struct {
	PasswordHash string // bcrypt hash of the admin password
	Secret       string // HMAC key for tokens
	TTL          time.Duration
}

// Enabled reports whether both the password hash and signing secret are set
func (c Config) Enabled() bool {
	return c.PasswordHash != "" && c.Secret != ""
}

type Authenticator struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) *Authenticator {
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	return &Authenticator{cfg: cfg, now: time.Now}
}

func (a *Authenticator) Enabled() bool {
	return a.cfg.Enabled()
}

// Login checks password and returns a signed token with its expiry
func (a *Authenticator) Login(password string) (string, time.Time, error) {
	if !a.Enabled() {
		return "", time.Time{}, ErrDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrBadCredentials
	}

	now := a.now()
	expiresAt := now.Add(a.cfg.TTL)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(a.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing admin token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify accepts only unexpired tokens minted by Login with the same secret
func (a *Authenticator) Verify(token string) error {
	if !a.Enabled() {
		return ErrDisabled
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", t.Header["alg"])
			}
			return []byte(a.cfg.Secret), nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithSubject(adminSubject),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}

// HashPassword produces a value suitable for ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
