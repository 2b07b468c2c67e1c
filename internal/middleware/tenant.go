package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/teampulse/teampulse-backend/internal/dto"
	"github.com/teampulse/teampulse-backend/internal/models"
	"github.com/teampulse/teampulse-backend/internal/tenant"
	"gorm.io/gorm"
)

// ResolveTenant runs after JWTProtected. It turns verified claims into a
// tenant.Identity: the org claim must be present, the user must still
// exist, and the membership the token was issued for must still hold.
// Handlers downstream read the tenant from the identity, never from
// client input.
func ResolveTenant(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c, "Authorization token required")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "Invalid token claims")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return unauthorized(c, "Invalid token claims")
		}

		orgClaim, _ := claims["org_id"].(string)
		if orgClaim == "" {
			return unauthorized(c, "Organization ID not found in token")
		}
		orgID, err := uuid.Parse(orgClaim)
		if err != nil {
			return unauthorized(c, "Organization ID not found in token")
		}

		roleID := uuid.Nil
		if roleClaim, ok := claims["role_id"].(string); ok {
			roleID, _ = uuid.Parse(roleClaim)
		}

		// A verified token can still be stale: the account or the
		// membership it names may be gone. Only a missing row is a 404;
		// a failing store must not read as a deleted account.
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(c, "User not found")
			}
			return storeFailure(c, err)
		}

		var membership models.OrganizationUser
		if err := db.Where("organization_id = ? AND user_id = ?", orgID, userID).First(&membership).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(c, "Organization membership not found")
			}
			return storeFailure(c, err)
		}

		tenant.SetIdentity(c, tenant.Identity{
			UserID: userID,
			OrgID:  orgID,
			RoleID: roleID,
		})
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}

func storeFailure(c *fiber.Ctx, err error) error {
	slog.Error("tenant resolution failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
