package helpers

import (
	"bolao/services"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// StatusForError maps a service failure to the externally observable status
// contract: business-rule rejections are 400, identity failures 401, role
// failures 403, everything else 500.
func StatusForError(err error) int {
	switch services.KindOf(err) {
	case services.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case services.KindPermissionDenied:
		return fiber.StatusForbidden
	case services.KindNotFound, services.KindInvalidState, services.KindFailedPrecondition:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func JSONFromError(c *fiber.Ctx, err error) error {
	return JSONError(c, StatusForError(err), services.Message(err))
}
