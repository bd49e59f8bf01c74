package network

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/shopspring/decimal"
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags.
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Network is the immutable descriptor of one variant of a network set. It is
// produced by Builder.BuildAndRegister and never modified afterwards; all
// getters returning slices, maps or big integers hand out copies.
type Network struct {
	name       string
	variant    Variant
	set        *Set
	cryptoCode string

	aliases     []string
	chainName   string
	uriScheme   string
	magic       uint32
	port        int
	rpcPort     int
	chainID     *big.Int
	genesisHash common.Hash
	dnsSeeds    []DNSSeed
	seeds       []ma.Multiaddr
	minRelayFee decimal.Decimal
	contracts   map[string]common.Address
}

// Name returns the canonical registry name, e.g. "btc-main".
func (n *Network) Name() string { return n.name }

// Variant returns which flavor of its set the network is.
func (n *Network) Variant() Variant { return n.variant }

// NetworkSet returns the set that built the network.
func (n *Network) NetworkSet() *Set { return n.set }

// CryptoCode returns the owning set's crypto code, e.g. "BTC".
func (n *Network) CryptoCode() string { return n.cryptoCode }

// Aliases returns the alternative names the network is registered under.
func (n *Network) Aliases() []string { return append([]string(nil), n.aliases...) }

// ChainName is the chain name as reported by the node software ("main",
// "test", "regtest", "sepolia", ...).
func (n *Network) ChainName() string { return n.chainName }

// URIScheme is the payment URI scheme, empty when the chain has none.
func (n *Network) URIScheme() string { return n.uriScheme }

// Magic returns the message start bytes identifying the network on the wire.
func (n *Network) Magic() uint32 { return n.magic }

// Port is the default peer-to-peer port.
func (n *Network) Port() int { return n.port }

// RPCPort is the default RPC port.
func (n *Network) RPCPort() int { return n.rpcPort }

// ChainID returns the EIP-155 chain ID, or nil for chains without one.
func (n *Network) ChainID() *big.Int {
	if n.chainID == nil {
		return nil
	}
	return new(big.Int).Set(n.chainID)
}

// GenesisHash returns the hash of the first block.
func (n *Network) GenesisHash() common.Hash { return n.genesisHash }

// DNSSeeds returns the DNS seeds used for peer discovery.
func (n *Network) DNSSeeds() []DNSSeed { return append([]DNSSeed(nil), n.dnsSeeds...) }

// Seeds returns the hardcoded fallback peer addresses.
func (n *Network) Seeds() []ma.Multiaddr { return append([]ma.Multiaddr(nil), n.seeds...) }

// MinRelayFee is the minimum fee per kilobyte, in whole coins, for a
// transaction to be relayed.
func (n *Network) MinRelayFee() decimal.Decimal { return n.minRelayFee }

// Contract returns the address of a well-known contract deployed on the
// network.
func (n *Network) Contract(name string) (common.Address, bool) {
	addr, ok := n.contracts[name]
	return addr, ok
}

// ContractNames returns the names of all known contracts, sorted.
func (n *Network) ContractNames() []string {
	names := make([]string, 0, len(n.contracts))
	for name := range n.contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (n *Network) String() string {
	return n.name
}
