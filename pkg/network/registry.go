package network

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultRegistry is the process-wide registry used by sets created without
// an explicit one.
var DefaultRegistry = NewRegistry()

// Registry maps network names and aliases to networks. It is appended to
// while sets initialize and read afterwards. Lookups are case-insensitive.
type Registry struct {
	mu    sync.RWMutex
	names map[string]*Network
	// keys holds every key pointing at a network, canonical name included,
	// so a rollback can remove them all.
	keys map[*Network][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]*Network),
		keys:  make(map[*Network][]string),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// register adds n under its name and aliases. Nothing is added when any of
// the keys is already taken.
func (r *Registry) register(n *Network) error {
	keys := make([]string, 0, 1+len(n.aliases))
	seen := make(map[string]struct{}, cap(keys))
	for _, name := range append([]string{n.name}, n.aliases...) {
		key := normalize(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		if existing, ok := r.names[key]; ok {
			return fmt.Errorf("%w: %q already used by %s", ErrDuplicateRegistration, key, existing.name)
		}
	}
	for _, key := range keys {
		r.names[key] = n
	}
	r.keys[n] = keys
	return nil
}

// remove drops n and all its aliases. Used to roll back a failed set
// initialization.
func (r *Registry) remove(n *Network) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range r.keys[n] {
		if r.names[key] == n {
			delete(r.names, key)
		}
	}
	delete(r.keys, n)
}

// Lookup returns the network registered under name or alias.
func (r *Registry) Lookup(name string) (*Network, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.names[normalize(name)]
	return n, ok
}

// Networks returns all registered networks sorted by canonical name.
func (r *Registry) Networks() []*Network {
	r.mu.RLock()
	nets := make([]*Network, 0, len(r.keys))
	for n := range r.keys {
		nets = append(nets, n)
	}
	r.mu.RUnlock()

	sort.Slice(nets, func(i, j int) bool { return nets[i].name < nets[j].name })
	return nets
}

// Len returns the number of registered networks, aliases not counted.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}

// Lookup searches DefaultRegistry.
func Lookup(name string) (*Network, bool) {
	return DefaultRegistry.Lookup(name)
}
