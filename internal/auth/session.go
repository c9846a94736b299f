package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/patient-portal/pkg/util"
)

const claimsKey = "session_claims"

// CookieName is the credential carrier: an HTTP-only cookie holding the
// signed session token. Set on login/registration, cleared on logout.
const CookieName = "portal_token"

// SessionMiddleware resolves the caller's claims from the session cookie.
// It is the single authorization entry point: no component below it reads
// the raw cookie again.
type SessionMiddleware struct {
	tokens   *TokenManager
	denylist *TokenDenylist
	logger   *zap.Logger
}

// NewSessionMiddleware constructs the middleware. The denylist may be nil,
// in which case logout revocation is limited to clearing the cookie.
func NewSessionMiddleware(tokens *TokenManager, denylist *TokenDenylist, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, denylist: denylist, logger: logger}
}

// Handle enforces authentication for protected routes. Absent, malformed,
// expired, and revoked tokens are all equivalent to no session.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return apperrors.NewUnauthenticated("Not authenticated")
	}

	claims := m.tokens.Parse(raw)
	if claims == nil {
		return apperrors.NewUnauthenticated("Not authenticated")
	}

	if m.denylist != nil && m.denylist.Revoked(c.Context(), claims.ID) {
		return apperrors.NewUnauthenticated("Not authenticated")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the resolved session claims. Services never
// read ambient state; handlers pass the claims down explicitly.
func ClaimsFromContext(c *fiber.Ctx) (*SessionClaims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*SessionClaims)
	return claims, ok
}
