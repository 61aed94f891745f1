// Package reload provides configuration reloading capabilities.
package reload

import (
	"github.com/robinbraemer/event"
)

// ConfigUpdateEvent is fired when a config was reloaded.
type ConfigUpdateEvent[T any] struct {
	// Config is the new config.
	Config *T
}

// Subscribe subscribes the handler to config update events of T.
func Subscribe[T any](mgr event.Manager, handler func(*ConfigUpdateEvent[T])) func() {
	return event.Subscribe(mgr, 0, handler)
}

// FireConfigUpdate fires a config update event
// and returns after all subscribers handled it.
func FireConfigUpdate[T any](mgr event.Manager, config *T) {
	mgr.Fire(&ConfigUpdateEvent[T]{Config: config})
}
