package cookie

import (
	"sync"

	"github.com/singnet/snet-netset-go/pkg/network"
	"go.uber.org/zap"
)

// DefaultStore is the process-wide cookie path store.
var DefaultStore = NewStore()

// Store is an in-memory Sink remembering one cookie path per network. A later
// registration for the same network replaces the earlier one.
type Store struct {
	mu    sync.RWMutex
	paths map[*network.Network]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{paths: make(map[*network.Network]string)}
}

// RegisterDefaultCookiePath implements Sink.
func (s *Store) RegisterDefaultCookiePath(n *network.Network, path string) {
	if n == nil {
		return
	}
	s.mu.Lock()
	s.paths[n] = path
	s.mu.Unlock()
	zap.L().Debug("default cookie path", zap.String("network", n.Name()), zap.String("path", path))
}

// Lookup returns the cookie path registered for n.
func (s *Store) Lookup(n *network.Network) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path, ok := s.paths[n]
	return path, ok
}

// Len returns the number of networks with a cookie path.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.paths)
}
