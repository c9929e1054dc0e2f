// Package lifecycle holds shared start/stop limits for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks (DB ping, HTTP shutdown, cron drain).
const DefaultTimeout = 15 * time.Second
