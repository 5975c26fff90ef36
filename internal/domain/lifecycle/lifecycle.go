// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, the database pool
// and the mail queue.
const DefaultTimeout = 10 * time.Second
