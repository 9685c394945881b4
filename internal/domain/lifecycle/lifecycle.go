// Package lifecycle holds shared process startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as pinging the
// document store and draining in-flight HTTP requests.
const DefaultTimeout = 10 * time.Second
