package chains

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/singnet/snet-netset-go/pkg/cookie"
	"github.com/singnet/snet-netset-go/pkg/network"
)

const (
	// LitecoinName is the set name accepted by New.
	LitecoinName = "ltc"
	// LitecoinFolder is the data folder of Litecoin Core.
	LitecoinFolder = "Litecoin"
)

var litecoinMainnetSeeds = []network.SeedAddr{
	{IP: []byte{5, 9, 87, 137}, Port: 9333},
	{IP: []byte{46, 4, 64, 68}, Port: 9333},
}

// Litecoin is the LTC network set. Its public test network is testnet4,
// which moves the testnet cookie out of the default testnet3 folder.
type Litecoin struct {
	*network.Set
	opts Options
}

// NewLitecoin returns the Litecoin set. Networks are built on first use.
func NewLitecoin(opts Options) *Litecoin {
	l := &Litecoin{opts: opts.withDefaults()}
	l.Set = network.NewSet(l, l.opts.Registry)
	return l
}

func (l *Litecoin) CryptoCode() string { return "LTC" }

func (l *Litecoin) CreateMainnet() (*network.Builder, error) {
	seeds, err := l.opts.seeds(litecoinMainnetSeeds)
	if err != nil {
		return nil, err
	}
	return network.NewBuilder().
		AddAlias("litecoin-mainnet", "ltc-mainnet").
		SetChainName("main").
		SetURIScheme("litecoin").
		SetMagic(0xdbb6c0fb).
		SetPort(9333).
		SetRPCPort(9332).
		SetGenesisHash(common.HexToHash("12a765e31ffd4059bada1e25190f6e98c99d9714d334efa41a195a7e7e04bfe2")).
		AddDNSSeeds(
			network.DNSSeed{Host: "seed-a.litecoin.loshan.co.uk", HasFiltering: true},
			network.DNSSeed{Host: "dnsseed.thrasher.io", HasFiltering: true},
			network.DNSSeed{Host: "dnsseed.litecointools.com", HasFiltering: false},
			network.DNSSeed{Host: "dnsseed.litecoinpool.org", HasFiltering: false},
		).
		AddSeeds(seeds...).
		SetMinRelayFee(decimal.RequireFromString("0.0001")), nil
}

func (l *Litecoin) CreateTestnet() (*network.Builder, error) {
	return network.NewBuilder().
		AddAlias("litecoin-testnet", "ltc-testnet").
		SetChainName("test").
		SetURIScheme("litecoin").
		SetMagic(0xf1c8d2fd).
		SetPort(19335).
		SetRPCPort(19332).
		SetGenesisHash(common.HexToHash("4966625a4b2851d9fdee139e56211a0d88575f59ed816ff5e6a63deb4e3e29a0")).
		AddDNSSeeds(
			network.DNSSeed{Host: "testnet-seed.litecointools.com", HasFiltering: false},
			network.DNSSeed{Host: "seed-b.litecoin.loshan.co.uk", HasFiltering: true},
		).
		SetMinRelayFee(decimal.RequireFromString("0.0001")), nil
}

func (l *Litecoin) CreateRegtest() (*network.Builder, error) {
	return network.NewBuilder().
		AddAlias("litecoin-regtest", "ltc-regtest").
		SetChainName("regtest").
		SetURIScheme("litecoin").
		SetMagic(0xdab5bffa).
		SetPort(19444).
		SetRPCPort(19443).
		SetGenesisHash(common.HexToHash("530827f38f93b43ed12af0b3ad25a288dc02ed74d6d7857862df51fc56c416f9")).
		SetMinRelayFee(decimal.RequireFromString("0.0001")), nil
}

// PostInit registers the Litecoin Core cookie paths.
func (l *Litecoin) PostInit(nets network.Networks) error {
	if l.opts.Features.DisableFileIO {
		return nil
	}
	r, sink := l.opts.Resolver, l.opts.Cookies
	r.Register(sink, nets.Mainnet, LitecoinFolder, cookie.FileName)
	r.Register(sink, nets.Testnet, LitecoinFolder, "testnet4", cookie.FileName)
	r.Register(sink, nets.Regtest, LitecoinFolder, "regtest", cookie.FileName)
	return nil
}
