package middleware

import (
	config "github.com/campuskit/college_admin/configs"
	"github.com/campuskit/college_admin/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// RoleRequired enforces the role hierarchy student < staff < admin: a
// route guarded with RoleRequired(RoleStaff) admits staff and admins.
func RoleRequired(required models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)

		if !models.UserRole(role).AtLeast(required) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: insufficient permissions",
			})
		}
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return RoleRequired(models.RoleAdmin)
}

func StaffRequired() fiber.Handler {
	return RoleRequired(models.RoleStaff)
}
