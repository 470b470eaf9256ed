package handlers

import (
	"regexp"

	"github.com/campuskit/college_admin/core"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var validate = validator.New()

// Roll numbers look like 2026CS001: admission year, 2-4 letter course
// code, 3 digit sequence.
var rollNumberPattern = regexp.MustCompile(`^\d{4}[A-Z]{2,4}\d{3}$`)

func init() {
	validate.RegisterValidation("rollnum", func(fl validator.FieldLevel) bool {
		return rollNumberPattern.MatchString(fl.Field().String())
	})
}

// fail translates engine errors into the JSON error responses the API
// returns. Unrecognized errors become a 500 without leaking details.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch core.KindOf(err) {
	case core.KindNotFound:
		status = fiber.StatusNotFound
	case core.KindInvalidState:
		status = fiber.StatusConflict
	case core.KindCapacityExceeded:
		status = fiber.StatusConflict
	case core.KindConstraintViolation:
		status = fiber.StatusUnprocessableEntity
	}
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// processedBy pulls the acting user's name out of the JWT set by the
// auth middleware; empty when the route is unauthenticated (tests).
func processedBy(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	name, _ := claims["name"].(string)
	return name
}
