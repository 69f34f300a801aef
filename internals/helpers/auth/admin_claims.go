package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Keys yang dihydrate middleware AuthJWT ke c.Locals.
const (
	LocAdminID   = "admin_id"
	LocUsername  = "admin_username"
	LocJWTClaims = "jwt_claims"
)

// GetAdminIDFromToken mengembalikan admin id dari Locals (diisi middleware).
// adminID = 0 berarti admin statis dari ENV (tanpa baris di tabel admins).
func GetAdminIDFromToken(c *fiber.Ctx) (int, error) {
	v := c.Locals(LocAdminID)
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		return int(t), nil
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
}

func GetUsernameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUsername).(string); ok {
		return v
	}
	return ""
}

// GetClientIP ambil IP asli request (X-Forwarded-For dipercaya via ProxyHeader).
func GetClientIP(c *fiber.Ctx) string {
	ip := strings.TrimSpace(c.IP())
	if ip == "" {
		return "unknown"
	}
	return ip
}
