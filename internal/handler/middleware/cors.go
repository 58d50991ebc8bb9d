package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/config"
)

// CORSMiddleware configures CORS for the admin frontend. Origins must be
// explicit because the session cookie requires AllowCredentials.
func CORSMiddleware(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type," + HeaderCsrfToken + "," + HeaderCsrfTokenLegacy,
		AllowCredentials: true,
	})
}
