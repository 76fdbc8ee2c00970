package config

import (
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewLoggerConfig returns the request log format used by the Fiber logger
// middleware. Example line:
//
//	[10:30:00] 4f2c… 200 - GET /api/students (12ms)
func NewLoggerConfig() logger.Config {
	return logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
		TimeFormat: "15:04:05",
		Output:     os.Stdout,
	}
}
