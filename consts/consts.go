// Package consts holds global application constants and build information.
package consts

import (
	"sync"
	"time"
)

// AppName is the canonical application name
const AppName = "SignalForensics"

// Build information - populated from cmd/signalforensics via ldflags
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	startedAt   time.Time
	startedAtMu sync.RWMutex
)

// SetStartedAt records the process start time
func SetStartedAt(t time.Time) {
	startedAtMu.Lock()
	defer startedAtMu.Unlock()
	startedAt = t
}

// StartedAt returns the recorded process start time
func StartedAt() time.Time {
	startedAtMu.RLock()
	defer startedAtMu.RUnlock()
	return startedAt
}
