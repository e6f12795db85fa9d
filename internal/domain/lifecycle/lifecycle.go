// Package lifecycle holds settings shared by components started and stopped by the application.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook.
const DefaultTimeout = 30 * time.Second
