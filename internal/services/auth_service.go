package services

import (
	"errors"
	"log"
	"time"

	"sportsstore/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure. The caller cannot
// tell a missing user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for any token validation failure. The specific
// reason is logged server side and never surfaced to the caller.
var ErrInvalidToken = errors.New("invalid token")

// TokenConfig carries the signing parameters for issued tokens. It is loaded
// once at startup and immutable for the process lifetime.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// AuthService handles credential verification and bearer-token issuance and
// validation for the admin API.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	issuer    string
	audience  string
	expiry    time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, cfg TokenConfig) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.Secret),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		expiry:    cfg.Expiry,
	}
}

// Login authenticates a user and returns a signed token plus its absolute
// expiry. The token carries a unique identifier, the user's role claims,
// the configured issuer and audience, and expires Expiry after issuance.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":   uuid.New().String(),
		"sub":   user.Username,
		"roles": user.RoleNames(),
		"iss":   s.issuer,
		"aud":   s.audience,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		log.Printf("Failed to sign token for user %s: %v", username, err)
		return "", time.Time{}, ErrInvalidCredentials
	}

	return tokenString, expiresAt, nil
}

// ValidateToken parses and validates a bearer token: signature, expiry,
// issuer, and audience. Any failure yields the uniform ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		log.Printf("Token validation error: issuer mismatch")
		return nil, ErrInvalidToken
	}
	if !claims.VerifyAudience(s.audience, true) {
		log.Printf("Token validation error: audience mismatch")
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// TokenRoles extracts the role claims from a validated token.
func TokenRoles(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if name, ok := r.(string); ok {
			roles = append(roles, name)
		}
	}
	return roles
}
