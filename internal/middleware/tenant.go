package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"Stashed/internal/services"
)

const ownerIDKey = "ownerID"

// RequireTenant authenticates the request from its bearer token and resolves
// the subject to a tenant row, creating one on first access. Handlers
// downstream read the owner id with OwnerID and pass it to every service
// call.
func RequireTenant(tenantService services.TenantService, secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		rawToken, found := strings.CutPrefix(header, "Bearer ")
		if !found || rawToken == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "token has no subject"})
		}

		profile, err := tenantService.EnsureProfile(c.UserContext(), subject)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
		c.Locals(ownerIDKey, profile.ID)
		return c.Next()
	}
}

// OwnerID returns the tenant id resolved by RequireTenant, or zero when the
// middleware did not run.
func OwnerID(c *fiber.Ctx) uint {
	ownerID, _ := c.Locals(ownerIDKey).(uint)
	return ownerID
}

// SetOwnerID injects an owner id directly; test helper for exercising
// handlers without minting tokens.
func SetOwnerID(c *fiber.Ctx, ownerID uint) {
	c.Locals(ownerIDKey, ownerID)
}
