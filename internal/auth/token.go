package auth

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/patient-portal/internal/domain"
)

// TokenManager issues and validates the signed session tokens that carry
// the caller's identity between requests. Tokens are stateless: nothing is
// persisted server-side at issuance.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// SessionClaims is the decoded identity carried by a session token. The
// profile id, not the identity id, is the ownership key used by every
// domain service.
type SessionClaims struct {
	IdentityID string      `json:"id"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	ProfileID  string      `json:"profileId"`
	jwt.RegisteredClaims
}

// Generate signs an HS256 token for the identity. The jti uniquely names
// the token so logout can denylist it.
func (tm *TokenManager) Generate(identityID, email string, role domain.Role, profileID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &SessionClaims{
		IdentityID: identityID,
		Email:      email,
		Role:       role,
		ProfileID:  profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identityID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature, structure, and expiry. Any failure returns
// nil; callers treat nil as unauthenticated.
func (tm *TokenManager) Parse(tokenStr string) *SessionClaims {
	if tokenStr == "" {
		return nil
	}
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid || !claims.Role.Valid() {
		return nil
	}
	return claims
}

// TTL exposes the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
