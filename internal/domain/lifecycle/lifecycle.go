// Package lifecycle holds shared constants for application lifecycle management.
package lifecycle

import "time"

// DefaultTimeout is the grace period allowed for shutdown hooks, such as
// draining the HTTP server or closing store clients.
const DefaultTimeout = 10 * time.Second
