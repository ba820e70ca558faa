// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fielddef

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/gogpu/surfaces"
)

// Factory creates a field from a node's parameters and its already built
// argument fields. The registry checks argument count and parameter names
// before calling it.
type Factory func(params Params, args []surfaces.Field) (surfaces.Field, error)

// Variadic marks an entry that accepts any number of arguments above MinArgs.
const Variadic = -1

// Entry represents a registered kind.
type Entry struct {
	// Name is the unique identifier used as a node's kind.
	Name string

	// MinArgs and MaxArgs bound the number of argument nodes.
	// MaxArgs may be Variadic.
	MinArgs, MaxArgs int

	// Params lists the accepted parameter names. Any other name is rejected.
	Params []string

	// Factory creates field instances.
	Factory Factory
}

func (e *Entry) check(got int, params Params) error {
	if got < e.MinArgs || (e.MaxArgs != Variadic && got > e.MaxArgs) {
		return &ArityError{Kind: e.Name, Got: got, Min: e.MinArgs, Max: e.MaxArgs}
	}
	for name := range params {
		if !slices.Contains(e.Params, name) {
			return &UnknownParamError{Kind: e.Name, Param: name}
		}
	}
	return nil
}

// globalRegistry is the default registry, pre-populated with the built-in kinds.
var globalRegistry = NewRegistry()

func init() {
	RegisterBuiltins(globalRegistry)
}

// Registry maps kind names to factories.
//
// Example registration:
//
//	fielddef.Register(fielddef.Entry{
//	    Name:    "diagonal",
//	    Factory: func(fielddef.Params, []surfaces.Field) (surfaces.Field, error) {
//	        return surfaces.FieldFunc(func(p surfaces.Point) float64 { return p.X + p.Y }), nil
//	    },
//	})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Parse.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Register adds an entry to the global registry.
// Registering a name that already exists replaces the previous entry.
func Register(e Entry) {
	globalRegistry.Register(e)
}

// Unregister removes a kind from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all kinds of the global registry in lexical order.
func List() []string {
	return globalRegistry.List()
}

// Get returns information about a kind of the global registry.
func Get(name string) (*Entry, bool) {
	return globalRegistry.Get(name)
}

// Register adds an entry to this registry.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Entry)
	}
	e.Params = slices.Clone(e.Params)
	r.entries[e.Name] = &e
}

// Unregister removes a kind from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all kinds in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns information about a specific kind.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	entryCopy.Params = slices.Clone(entry.Params)
	return &entryCopy, true
}

// UnknownKindError indicates a node names a kind that is not registered.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return "fielddef: unknown kind: " + e.Kind
}

// UnknownParamError indicates a node sets a parameter its kind does not accept.
type UnknownParamError struct {
	Kind  string
	Param string
}

func (e *UnknownParamError) Error() string {
	return fmt.Sprintf("fielddef: %s does not accept parameter %q", e.Kind, e.Param)
}

// ArityError indicates a node has the wrong number of arguments.
type ArityError struct {
	Kind     string
	Got      int
	Min, Max int
}

func (e *ArityError) Error() string {
	var want strings.Builder
	switch {
	case e.Max == Variadic:
		fmt.Fprintf(&want, "at least %d", e.Min)
	case e.Min == e.Max:
		fmt.Fprintf(&want, "%d", e.Min)
	default:
		fmt.Fprintf(&want, "%d to %d", e.Min, e.Max)
	}
	return fmt.Sprintf("fielddef: %s takes %s argument(s), got %d", e.Kind, want.String(), e.Got)
}
