package webhook_middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
)

// VerifyMetaSignature checks the X-Hub-Signature-256 header against the
// HMAC-SHA256 of the raw body keyed with the Meta app secret.
func VerifyMetaSignature(appSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Hub-Signature-256")

		mac := hmac.New(sha256.New, []byte(appSecret))
		mac.Write(c.Body())
		expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(signature)) {
			return c.Status(fiber.StatusUnauthorized).SendString("invalid signature")
		}
		return c.Next()
	}
}
