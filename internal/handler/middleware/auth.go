package middleware

import (
	"log/slog"
	"strings"

	"booking-wizard/internal/pkg/jwt"
	"booking-wizard/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const ctxPrincipalKey = "principal"

// Roles whose bookings skip the payment flow entirely.
var staffRoles = map[string]bool{
	"staff": true,
	"admin": true,
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// ResolvePrincipal authenticates the request when a bearer token is
// present but never aborts: a missing or invalid token simply means a
// guest booking. The resolved principal is an explicit input to the
// submission flow, not ambient state the usecases look up themselves.
func (m *AuthMiddleware) ResolvePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("ignoring invalid bearer token, continuing as guest", "error", err.Error())
			c.Next()
			return
		}

		principal := shared.Principal{
			Staff:  staffRoles[claims.Role],
			UserID: claims.UserID,
			Role:   claims.Role,
			Token:  token,
		}
		c.Set(ctxPrincipalKey, principal)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
		})
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or the guest
// principal when the request carried no valid credential.
func GetPrincipal(c *gin.Context) shared.Principal {
	value, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return shared.Guest()
	}
	principal, ok := value.(shared.Principal)
	if !ok {
		return shared.Guest()
	}
	return principal
}
