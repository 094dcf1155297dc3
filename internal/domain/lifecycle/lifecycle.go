// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work.
const DefaultTimeout = 10 * time.Second
