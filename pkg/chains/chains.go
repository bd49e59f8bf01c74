// Package chains provides ready-made network sets: Bitcoin, Litecoin and the
// SingularityNET ASI token networks on Ethereum.
package chains

import (
	"fmt"
	"sort"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/singnet/snet-netset-go/pkg/cookie"
	"github.com/singnet/snet-netset-go/pkg/network"
)

// Options configures a chain set. The zero value registers into
// network.DefaultRegistry and cookie.DefaultStore and reads the process
// environment.
type Options struct {
	// Registry receives the networks. Nil means network.DefaultRegistry.
	Registry *network.Registry
	// Features can switch off cookie paths and fixed seeds.
	Features network.Features
	// Cookies receives default cookie paths. Nil means cookie.DefaultStore.
	Cookies cookie.Sink
	// Resolver computes the cookie paths.
	Resolver cookie.Resolver
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry = network.DefaultRegistry
	}
	if o.Cookies == nil {
		o.Cookies = cookie.DefaultStore
	}
	return o
}

// seeds converts fixed seeds unless sockets are disabled.
func (o Options) seeds(addrs []network.SeedAddr) ([]ma.Multiaddr, error) {
	if o.Features.DisableSockets {
		return nil, nil
	}
	return network.ToSeeds(addrs)
}

var constructors = map[string]func(Options) *network.Set{
	BitcoinName:  func(o Options) *network.Set { return NewBitcoin(o).Set },
	LitecoinName: func(o Options) *network.Set { return NewLitecoin(o).Set },
	ASIName:      func(o Options) *network.Set { return NewASI(o).Set },
}

// Names returns the names accepted by New, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the set called name ("btc", "ltc", "asi").
func New(name string, opts Options) (*network.Set, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown network set %q, want one of %s", name, strings.Join(Names(), ", "))
	}
	return ctor(opts), nil
}
