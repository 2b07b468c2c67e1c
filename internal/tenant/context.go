package tenant

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Identity is the resolved caller: who they are, which tenant the token
// was issued for, and the role the token carries. It is constructed only
// by the authorization middleware; handlers must read the tenant from
// here and never from the request body or query string.
type Identity struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	RoleID uuid.UUID
}

// SetIdentity stores the resolved identity in the request context.
func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(identityKey, id)
}

// GetIdentity returns the identity attached by the authorization
// middleware. The second return is false on routes that skipped the gate.
func GetIdentity(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	return id, ok
}
