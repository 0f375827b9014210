// Package lifecycle holds shared lifecycle constants for startup and shutdown handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup health checks.
const DefaultTimeout = 10 * time.Second
