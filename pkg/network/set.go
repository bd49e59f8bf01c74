package network

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Factory supplies the chain-specific builders of a network set. Each hook is
// called at most once per successful initialization, always in the order
// Mainnet, Testnet, Regtest.
type Factory interface {
	// CryptoCode is the ticker of the set ("BTC"). It prefixes every
	// canonical network name.
	CryptoCode() string
	CreateMainnet() (*Builder, error)
	CreateTestnet() (*Builder, error)
	CreateRegtest() (*Builder, error)
}

// PostIniter is implemented by factories that need to wire things across the
// three networks once they all exist. PostInit must use nets and not the
// accessors of the Set being initialized, which wait for the run that is
// calling it.
type PostIniter interface {
	PostInit(nets Networks) error
}

// Networks is the triple produced by one initialization.
type Networks struct {
	Mainnet *Network
	Testnet *Network
	Regtest *Network
}

// Get returns the network of variant v.
func (n Networks) Get(v Variant) (*Network, error) {
	switch v {
	case Mainnet:
		return n.Mainnet, nil
	case Testnet:
		return n.Testnet, nil
	case Regtest:
		return n.Regtest, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedVariant, v)
}

func (n *Networks) put(v Variant, net *Network) {
	switch v {
	case Mainnet:
		n.Mainnet = net
	case Testnet:
		n.Testnet = net
	case Regtest:
		n.Regtest = net
	}
}

const registerKey = "register"

// Set lazily builds and registers the three networks of a Factory. The first
// call to EnsureRegistered, GetNetwork or any accessor runs the factory hooks;
// concurrent callers wait for that run and all receive its result.
//
// A failed run registers nothing: networks it already added to the registry
// are removed again and no accessor returns a partial triple. The next call
// after a failure runs the hooks again.
type Set struct {
	factory  Factory
	registry *Registry

	group singleflight.Group
	done  atomic.Bool
	nets  Networks
}

// NewSet returns a set backed by f that registers into reg, or into
// DefaultRegistry when reg is nil. Nothing is built until first use.
func NewSet(f Factory, reg *Registry) *Set {
	if reg == nil {
		reg = DefaultRegistry
	}
	return &Set{
		factory:  f,
		registry: reg,
	}
}

// CryptoCode returns the factory's crypto code.
func (s *Set) CryptoCode() string {
	return s.factory.CryptoCode()
}

// Registry returns the registry the set's networks live in.
func (s *Set) Registry() *Registry {
	return s.registry
}

// EnsureRegistered builds and registers the three networks if that has not
// happened yet. It is safe for concurrent use; it returns only once the
// networks are published or the run that was in flight failed.
func (s *Set) EnsureRegistered() error {
	if s.done.Load() {
		return nil
	}
	_, err, _ := s.group.Do(registerKey, func() (interface{}, error) {
		if s.done.Load() {
			return nil, nil
		}
		return nil, s.register()
	})
	return err
}

func (s *Set) register() (err error) {
	code := s.factory.CryptoCode()
	log := zap.L().With(zap.String("set", code))

	var (
		built Networks
		added []*Network
	)
	rollback := func() {
		for _, n := range added {
			s.registry.remove(n)
		}
	}
	defer func() {
		if r := recover(); r != nil {
			rollback()
			initTotal.WithLabelValues(code, resultPanic).Inc()
			log.Error("network set initialization panicked", zap.Any("panic", r))
			panic(r)
		}
		if err != nil {
			rollback()
			initTotal.WithLabelValues(code, resultFailure).Inc()
			log.Error("network set initialization failed", zap.Error(err))
		}
	}()

	hooks := [...]struct {
		variant Variant
		create  func() (*Builder, error)
	}{
		{Mainnet, s.factory.CreateMainnet},
		{Testnet, s.factory.CreateTestnet},
		{Regtest, s.factory.CreateRegtest},
	}
	for _, h := range hooks {
		b, hookErr := h.create()
		if hookErr != nil {
			return fmt.Errorf("network: create %s %s: %w", code, h.variant, hookErr)
		}
		if b == nil {
			return fmt.Errorf("network: create %s %s: factory returned no builder", code, h.variant)
		}
		b.SetVariant(h.variant)
		b.SetNetworkSet(s)
		n, buildErr := b.BuildAndRegister()
		if buildErr != nil {
			return fmt.Errorf("network: register %s %s: %w", code, h.variant, buildErr)
		}
		added = append(added, n)
		built.put(h.variant, n)
	}

	if p, ok := s.factory.(PostIniter); ok {
		if postErr := p.PostInit(built); postErr != nil {
			return fmt.Errorf("network: post-init %s: %w", code, postErr)
		}
	}

	s.nets = built
	s.done.Store(true)
	initTotal.WithLabelValues(code, resultSuccess).Inc()
	registeredTotal.WithLabelValues(code).Add(float64(len(added)))
	log.Info("network set registered",
		zap.String("mainnet", built.Mainnet.Name()),
		zap.String("testnet", built.Testnet.Name()),
		zap.String("regtest", built.Regtest.Name()))
	return nil
}

// Networks returns the registered triple, initializing the set if needed.
func (s *Set) Networks() (Networks, error) {
	if err := s.EnsureRegistered(); err != nil {
		return Networks{}, err
	}
	return s.nets, nil
}

// GetNetwork returns the network of variant v. It fails with
// ErrUnsupportedVariant, without initializing the set, if v is not one of
// Mainnet, Testnet or Regtest.
func (s *Set) GetNetwork(v Variant) (*Network, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVariant, v)
	}
	nets, err := s.Networks()
	if err != nil {
		return nil, err
	}
	return nets.Get(v)
}

// Mainnet returns the main network of the set.
func (s *Set) Mainnet() (*Network, error) {
	return s.GetNetwork(Mainnet)
}

// Testnet returns the test network of the set.
func (s *Set) Testnet() (*Network, error) {
	return s.GetNetwork(Testnet)
}

// Regtest returns the regression test network of the set.
func (s *Set) Regtest() (*Network, error) {
	return s.GetNetwork(Regtest)
}
