// Package network describes blockchain networks as sets of three variants
// (Mainnet, Testnet, Regtest) and registers them lazily, exactly once, in a
// name-keyed registry.
//
// # Network Sets
//
// A chain integration implements Factory: one hook per variant, each
// returning a Builder with the chain parameters filled in. NewSet wraps the
// factory; nothing is built until the set is first used:
//
//	type bitcoin struct{ *network.Set }
//
//	func (bitcoin) CryptoCode() string { return "BTC" }
//
//	func (bitcoin) CreateMainnet() (*network.Builder, error) {
//		return network.NewBuilder().
//			SetMagic(0xd9b4bef9).
//			SetPort(8333).
//			SetRPCPort(8332), nil
//	}
//
//	// CreateTestnet and CreateRegtest likewise.
//
//	btc := &bitcoin{}
//	btc.Set = network.NewSet(btc, nil)
//
//	main, err := btc.Mainnet()
//
// A type embedding *Set must define CryptoCode itself; the promoted
// Set.CryptoCode asks the factory and would call itself.
//
// # Initialization
//
// The first call to EnsureRegistered, GetNetwork, Networks or one of the
// variant accessors runs the hooks in the order Mainnet, Testnet, Regtest,
// stamps each builder with its variant and owning set, finalizes it with
// BuildAndRegister and finally calls PostInit when the factory implements
// PostIniter. Concurrent first callers share that one run and its result.
// Once published, the triple is read without locking and every accessor
// returns the same *Network.
//
// When a hook, a registration or PostInit fails, the networks already
// registered by that run are removed again and the error is returned to the
// caller and to every caller waiting on the run. The next call tries again.
//
// # Registry
//
// Networks register under a canonical name built from the crypto code and
// the variant ("btc-main", "btc-test", "btc-reg") plus any aliases the hook
// added. Lookups are case-insensitive. A name or alias can only be taken
// once; a second registration fails with ErrDuplicateRegistration.
//
// Sets created with a nil registry share DefaultRegistry. Tests and embedders
// that need isolation pass their own NewRegistry().
//
// # Metrics
//
// RegisterMetrics exposes netset_initializations_total{set,result} and
// netset_registered_networks_total{set}.
package network
