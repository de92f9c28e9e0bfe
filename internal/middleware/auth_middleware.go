package middleware

import (
	"strings"

	"shop-admin-api/internal/service"
	"shop-admin-api/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth
const (
	LocalUserID     = "user_id"
	LocalUserEmail  = "user_email"
	LocalUserName   = "user_name"
	LocalPrivileges = "user_privileges"
)

// RequireAuth validates the bearer token and sets the user info in context.
// Privileges are read from the stored user, so role changes apply to tokens already issued.
func RequireAuth(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return apperror.Auth(service.ErrUnauthenticated)
		}

		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}

		c.Locals(LocalUserID, user.ID.String())
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalUserName, user.Name)
		c.Locals(LocalPrivileges, user.GetPrivilegeCodes())
		c.SetUserContext(service.WithActor(c.UserContext(), user.ID.String()))

		return c.Next()
	}
}

// bearerToken reads "Authorization: Bearer <token>", or ?token= for websocket upgrades
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Query("token")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequirePrivilege checks if the authenticated user has the required privilege
func RequirePrivilege(requiredPrivilege string) fiber.Handler {
	return RequireAnyPrivilege(requiredPrivilege)
}

// RequireAnyPrivilege checks if the user has at least one of the specified privileges
func RequireAnyPrivilege(requiredPrivileges ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		privileges, ok := c.Locals(LocalPrivileges).([]string)
		if !ok {
			return apperror.Forbidden("This action is unauthorized.")
		}

		for _, userPriv := range privileges {
			for _, reqPriv := range requiredPrivileges {
				if userPriv == reqPriv {
					return c.Next()
				}
			}
		}

		return apperror.Forbidden("This action requires the " + strings.Join(requiredPrivileges, " or ") + " privilege.")
	}
}
