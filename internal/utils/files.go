package utils

import (
	"io"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

// CloseOrWarn closes c and logs a warning instead of returning the error.
// Meant for defers on response bodies and files opened read-only.
func CloseOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Failed to close: %v", err)
	}
}
