package network

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Builder accumulates the parameters of a single network variant. Factory
// hooks return a Builder with the chain-specific parameters filled in; the
// owning Set stamps the variant and itself before calling BuildAndRegister.
//
// A Builder is single-use. Every setter panics once BuildAndRegister has
// succeeded.
type Builder struct {
	finalized bool

	variant Variant
	set     *Set

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

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) mustBeOpen() {
	if b.finalized {
		panic("network: builder modified after BuildAndRegister")
	}
}

// SetVariant sets which variant the builder produces.
func (b *Builder) SetVariant(v Variant) *Builder {
	b.mustBeOpen()
	b.variant = v
	return b
}

// SetNetworkSet sets the owning set. The set's registry receives the
// finished network.
func (b *Builder) SetNetworkSet(s *Set) *Builder {
	b.mustBeOpen()
	b.set = s
	return b
}

// AddAlias registers additional lookup names for the network.
func (b *Builder) AddAlias(aliases ...string) *Builder {
	b.mustBeOpen()
	b.aliases = append(b.aliases, aliases...)
	return b
}

func (b *Builder) SetChainName(name string) *Builder {
	b.mustBeOpen()
	b.chainName = name
	return b
}

func (b *Builder) SetURIScheme(scheme string) *Builder {
	b.mustBeOpen()
	b.uriScheme = scheme
	return b
}

func (b *Builder) SetMagic(magic uint32) *Builder {
	b.mustBeOpen()
	b.magic = magic
	return b
}

func (b *Builder) SetPort(port int) *Builder {
	b.mustBeOpen()
	b.port = port
	return b
}

func (b *Builder) SetRPCPort(port int) *Builder {
	b.mustBeOpen()
	b.rpcPort = port
	return b
}

// SetChainID sets the EIP-155 chain ID. The value is copied.
func (b *Builder) SetChainID(id *big.Int) *Builder {
	b.mustBeOpen()
	if id == nil {
		b.chainID = nil
	} else {
		b.chainID = new(big.Int).Set(id)
	}
	return b
}

func (b *Builder) SetGenesisHash(h common.Hash) *Builder {
	b.mustBeOpen()
	b.genesisHash = h
	return b
}

func (b *Builder) AddDNSSeeds(seeds ...DNSSeed) *Builder {
	b.mustBeOpen()
	b.dnsSeeds = append(b.dnsSeeds, seeds...)
	return b
}

// AddSeeds appends fixed peer addresses, usually produced by ToSeeds.
func (b *Builder) AddSeeds(seeds ...ma.Multiaddr) *Builder {
	b.mustBeOpen()
	b.seeds = append(b.seeds, seeds...)
	return b
}

func (b *Builder) SetMinRelayFee(fee decimal.Decimal) *Builder {
	b.mustBeOpen()
	b.minRelayFee = fee
	return b
}

// SetContract records the address of a well-known contract under name.
func (b *Builder) SetContract(name string, addr common.Address) *Builder {
	b.mustBeOpen()
	if b.contracts == nil {
		b.contracts = make(map[string]common.Address)
	}
	b.contracts[name] = addr
	return b
}

// CanonicalName returns the registry name for a crypto code and variant:
// the lower-cased code, a dash and the short variant name ("btc-main").
func CanonicalName(cryptoCode string, v Variant) string {
	return strings.ToLower(cryptoCode) + "-" + v.suffix()
}

// BuildAndRegister finalizes the builder into an immutable Network and
// inserts it into the owning set's registry under its canonical name and
// aliases. It fails with ErrIncompleteBuilder if the variant, the owning set
// or the set's crypto code is missing, and with ErrDuplicateRegistration if
// any of the names is taken.
//
// The builder can not be used again after a successful call.
func (b *Builder) BuildAndRegister() (*Network, error) {
	if b.finalized {
		return nil, ErrBuilderFinalized
	}
	if !b.variant.Valid() {
		return nil, fmt.Errorf("%w: variant not set", ErrIncompleteBuilder)
	}
	if b.set == nil {
		return nil, fmt.Errorf("%w: network set not set", ErrIncompleteBuilder)
	}
	code := b.set.CryptoCode()
	if code == "" {
		return nil, fmt.Errorf("%w: network set has no crypto code", ErrIncompleteBuilder)
	}

	n := &Network{
		name:        CanonicalName(code, b.variant),
		variant:     b.variant,
		set:         b.set,
		cryptoCode:  code,
		aliases:     append([]string(nil), b.aliases...),
		chainName:   b.chainName,
		uriScheme:   b.uriScheme,
		magic:       b.magic,
		port:        b.port,
		rpcPort:     b.rpcPort,
		chainID:     b.chainID,
		genesisHash: b.genesisHash,
		dnsSeeds:    append([]DNSSeed(nil), b.dnsSeeds...),
		seeds:       append([]ma.Multiaddr(nil), b.seeds...),
		minRelayFee: b.minRelayFee,
	}
	if len(b.contracts) > 0 {
		n.contracts = make(map[string]common.Address, len(b.contracts))
		for name, addr := range b.contracts {
			n.contracts[name] = addr
		}
	}

	if err := b.set.Registry().register(n); err != nil {
		return nil, err
	}
	b.finalized = true

	zap.L().Debug("network registered",
		zap.String("name", n.name),
		zap.Stringer("variant", n.variant),
		zap.Strings("aliases", n.aliases))
	return n, nil
}
