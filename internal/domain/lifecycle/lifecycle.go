// Package lifecycle holds shared start/stop conventions for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown of
// infrastructure components (HTTP server drain, DB pool close).
const DefaultTimeout = 10 * time.Second
