package runtime

import "sync"

var (
	// productionMode controls whether sensitive data such as stack traces is
	// included in guard failure reports.
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode enables or disables production mode. In production mode,
// stack traces and other potentially sensitive diagnostic details are
// suppressed. This should be called once during application startup.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}
