package logger

import (
	"sync"

	"github.com/kbukum/problemkit/problem"
)

// Named loggers, typically one per component, seeded at startup.
var (
	namedMu sync.RWMutex
	named   = make(map[string]*Logger)
)

// Register stores a logger under a component name.
func Register(name string, l *Logger) {
	namedMu.Lock()
	defer namedMu.Unlock()
	named[name] = l
}

// Get retrieves the logger registered under name. Unregistered names fall
// back to the global logger tagged with the component name.
func Get(name string) *Logger {
	namedMu.RLock()
	l, ok := named[name]
	namedMu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// For retrieves the named logger enriched with a problem chain, so every
// event emitted while handling the failure carries the full causation:
//
//	logger.For("storage", p).Warn("falling back to replica")
func For(name string, p *problem.Problem) *Logger {
	return Get(name).WithProblem(p)
}

// RegisterDefaults seeds the registry with component loggers derived from
// the global logger. Call after Init.
func RegisterDefaults(names ...string) {
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}
