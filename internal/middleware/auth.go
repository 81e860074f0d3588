package middleware

import (
	"fmt"

	"github.com/authorizerdev/authorizer-go"
	"github.com/gofiber/fiber/v2"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/config"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/roles"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/services"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/types"
)

// PersonaHeader lets an administrator preview the application as another
// role without a second account.
const PersonaHeader = "X-Hooomz-Persona"

var authCfg *config.Config

// Setup provides the configuration the auth middleware needs for the lazy
// Authorizer client initialization on the first authenticated request.
func Setup(cfg *config.Config) {
	authCfg = cfg
}

// AuthAdmin validates that the request has administrator authorization
func AuthAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, []string{string(roles.Administrator)}, "authorization.admin")
	}
}

// AuthUser validates that the request carries any registered role
func AuthUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ids := make([]string, 0, len(roles.All()))
		for _, r := range roles.All() {
			ids = append(ids, string(r.ID))
		}
		return authorize(c, ids, "authorization.user")
	}
}

// authorize performs the authorization check and stores the acting role
// in the request context, applying the persona preview header when the
// session belongs to an administrator.
func authorize(c *fiber.Ctx, roleIDs []string, errorType string) error {
	// Get session cookie
	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	// Initialize Authorizer on first use, with the request's own origin
	// as the redirect URL
	if !services.IsAuthorizerInitialized() && authCfg != nil {
		if err := services.InitAuthorizer(authCfg, c.Protocol(), c.Hostname()); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    errorType,
			}
		}
	}

	// Validate session
	data, err := services.ValidateSession(session, roleIDs)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	sessionRole := roles.Labourer
	if user, ok := data["user"]; ok {
		c.Locals("user", user)
		sessionRole = roleFromUser(user)
	}

	acting, err := ResolvePersona(sessionRole, c.Get(PersonaHeader))
	if err != nil {
		return err
	}
	c.Locals("role", acting)
	if acting != sessionRole {
		c.Locals("persona", true)
	}

	return c.Next()
}

// roleFromUser picks the highest-authority registry role the session user
// carries. Sessions without a recognized role act as labourer, the lowest
// authority level.
func roleFromUser(user interface{}) roles.ID {
	u, ok := user.(*authorizer.User)
	if ok && u != nil && u.Roles != nil {
		best := roles.Labourer
		for _, raw := range u.Roles {
			if raw == nil {
				continue
			}
			id := roles.ID(*raw)
			if roles.Valid(id) && roles.Level(id) > roles.Level(best) {
				best = id
			}
		}
		return best
	}
	return roles.Labourer
}

// ResolvePersona applies the persona preview header to a session role.
// Only an administrator session may assume a persona; anyone else sending
// the header is refused rather than silently ignored. An unknown persona
// id is a client error.
func ResolvePersona(sessionRole roles.ID, personaHeader string) (roles.ID, error) {
	if personaHeader == "" {
		return sessionRole, nil
	}
	if sessionRole != roles.Administrator {
		return "", &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Persona preview requires an administrator session",
			Type:    "authorization.persona",
		}
	}
	persona := roles.ID(personaHeader)
	if !roles.Valid(persona) {
		return "", &types.CustomError{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("Unknown persona role %q", personaHeader),
			Type:    "authorization.persona",
		}
	}
	return persona, nil
}

// ActingRole returns the role stored by authorize, defaulting to labourer.
func ActingRole(c *fiber.Ctx) roles.ID {
	if role, ok := c.Locals("role").(roles.ID); ok {
		return role
	}
	return roles.Labourer
}
