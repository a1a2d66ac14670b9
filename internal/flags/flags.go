// Package flags holds feature flags loaded from configuration.
// Flags are read-only after initialization; unknown flags read as their default.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/gridline/internal/log"
)

const (
	// FlagRevertOnFailure reverts a cell to its previous value when its commit fails,
	// provided the cell still shows the failed value and no newer commit is in flight.
	FlagRevertOnFailure = "revert-on-failure"

	// FlagTypeToEdit opens an edit when a printable key is typed on an editable cell.
	FlagTypeToEdit = "type-to-edit"

	// FlagPageCache caches store pages between reloads.
	FlagPageCache = "page-cache"
)

var defaults = map[string]bool{
	FlagRevertOnFailure: false,
	FlagTypeToEdit:      true,
	FlagPageCache:       true,
}

// Registry holds feature flag state.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from configured values layered over the defaults.
func New(configured map[string]bool) *Registry {
	merged := maps.Clone(defaults)
	maps.Copy(merged, configured)
	r := &Registry{flags: merged}
	log.Debug(log.CatConfig, "feature flags initialized", "count", len(merged), "flags", r.All())
	return r
}

// Enabled reports whether name is on. Nil-safe; unknown flags are off.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return defaults[name]
	}
	value, ok := r.flags[name]
	if !ok {
		log.Debug(log.CatConfig, "unknown flag accessed", "flag", name)
		return false
	}
	return value
}

// All returns a copy of every flag.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return maps.Clone(defaults)
	}
	return maps.Clone(r.flags)
}

// Known lists the flags gridline understands, sorted.
func Known() []string {
	return slices.Sorted(maps.Keys(defaults))
}

// IsKnown reports whether name is a flag gridline understands.
func IsKnown(name string) bool {
	_, ok := defaults[name]
	return ok
}
