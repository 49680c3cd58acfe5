// control/reload.go
// Manages hooks notified when diagnostics flags are re-applied, so
// components caching derived state (sink filters, sampling) can refresh.

package control

import "sync"

var (
	reloadMu    sync.Mutex
	reloadHooks []func()
)

// RegisterReloadHook adds a listener invoked after every Apply.
func RegisterReloadHook(fn func()) {
	reloadMu.Lock()
	defer reloadMu.Unlock()
	reloadHooks = append(reloadHooks, fn)
}

// notifyReload invokes all hooks synchronously, in registration order.
func notifyReload() {
	reloadMu.Lock()
	hooks := make([]func(), len(reloadHooks))
	copy(hooks, reloadHooks)
	reloadMu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}
