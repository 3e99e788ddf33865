// Package lifecycle holds shared lifecycle constants for graceful startup
// and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to shut down before
// it is abandoned.
const DefaultTimeout = 10 * time.Second
