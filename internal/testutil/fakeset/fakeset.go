// Package fakeset provides an instrumented network.Factory for tests. It
// counts hook invocations, can fail or stall individual hooks and lets the
// test observe PostInit.
package fakeset

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/singnet/snet-netset-go/pkg/network"
)

// Factory is a network.Factory and network.PostIniter whose behavior is
// controlled by the test.
type Factory struct {
	// Code is returned by CryptoCode.
	Code string
	// Delay is slept inside every hook to widen race windows.
	Delay time.Duration
	// OnPostInit, when set, runs inside PostInit and its error is returned.
	OnPostInit func(nets network.Networks) error

	calls    [4]atomic.Int32
	postInit atomic.Int32

	mu       sync.Mutex
	failures map[network.Variant]error
	panics   map[network.Variant]any
}

// New returns a factory with crypto code code.
func New(code string) *Factory {
	return &Factory{Code: code}
}

// Fail makes the hook for v return err. A nil err clears the failure.
func (f *Factory) Fail(v network.Variant, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures == nil {
		f.failures = make(map[network.Variant]error)
	}
	if err == nil {
		delete(f.failures, v)
		return
	}
	f.failures[v] = err
}

// Panic makes the hook for v panic with value. A nil value clears it.
func (f *Factory) Panic(v network.Variant, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panics == nil {
		f.panics = make(map[network.Variant]any)
	}
	if value == nil {
		delete(f.panics, v)
		return
	}
	f.panics[v] = value
}

// Calls returns how many times the hook for v ran.
func (f *Factory) Calls(v network.Variant) int {
	if !v.Valid() {
		return 0
	}
	return int(f.calls[v].Load())
}

// PostInitCalls returns how many times PostInit ran.
func (f *Factory) PostInitCalls() int {
	return int(f.postInit.Load())
}

func (f *Factory) CryptoCode() string { return f.Code }

func (f *Factory) CreateMainnet() (*network.Builder, error) { return f.create(network.Mainnet) }

func (f *Factory) CreateTestnet() (*network.Builder, error) { return f.create(network.Testnet) }

func (f *Factory) CreateRegtest() (*network.Builder, error) { return f.create(network.Regtest) }

func (f *Factory) create(v network.Variant) (*network.Builder, error) {
	f.calls[v].Add(1)
	if f.Delay > 0 {
		time.Sleep(f.Delay)
	}

	f.mu.Lock()
	err := f.failures[v]
	p := f.panics[v]
	f.mu.Unlock()

	if p != nil {
		panic(p)
	}
	if err != nil {
		return nil, err
	}
	return network.NewBuilder().
		SetChainName(v.String()).
		SetPort(10000 + int(v)), nil
}

// PostInit implements network.PostIniter.
func (f *Factory) PostInit(nets network.Networks) error {
	f.postInit.Add(1)
	if f.OnPostInit != nil {
		return f.OnPostInit(nets)
	}
	return nil
}
