package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam membaca path param numerik (mis. :id). Nilai <= 0 / non-angka -> Validation.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrValidation("Invalid " + name)
	}
	return uint(id), nil
}
