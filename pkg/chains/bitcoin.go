package chains

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/singnet/snet-netset-go/pkg/network"
)

const (
	// BitcoinName is the set name accepted by New.
	BitcoinName = "btc"
	// BitcoinFolder is the data folder of Bitcoin Core.
	BitcoinFolder = "Bitcoin"
)

var bitcoinMainnetSeeds = []network.SeedAddr{
	{IP: []byte{95, 216, 76, 4}, Port: 8333},
	{IP: []byte{144, 76, 136, 2}, Port: 8333},
	{IP: []byte{178, 63, 87, 163}, Port: 8333},
}

// Bitcoin is the BTC network set.
type Bitcoin struct {
	*network.Set
	opts Options
}

// NewBitcoin returns the Bitcoin set. Networks are built on first use.
func NewBitcoin(opts Options) *Bitcoin {
	b := &Bitcoin{opts: opts.withDefaults()}
	b.Set = network.NewSet(b, b.opts.Registry)
	return b
}

func (b *Bitcoin) CryptoCode() string { return "BTC" }

func (b *Bitcoin) CreateMainnet() (*network.Builder, error) {
	seeds, err := b.opts.seeds(bitcoinMainnetSeeds)
	if err != nil {
		return nil, err
	}
	return network.NewBuilder().
		AddAlias("bitcoin-mainnet", "btc-mainnet").
		SetChainName("main").
		SetURIScheme("bitcoin").
		SetMagic(0xd9b4bef9).
		SetPort(8333).
		SetRPCPort(8332).
		SetGenesisHash(common.HexToHash("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")).
		AddDNSSeeds(
			network.DNSSeed{Host: "seed.bitcoin.sipa.be", HasFiltering: true},
			network.DNSSeed{Host: "dnsseed.bluematt.me", HasFiltering: true},
			network.DNSSeed{Host: "seed.bitcoinstats.com", HasFiltering: true},
			network.DNSSeed{Host: "seed.btc.petertodd.net", HasFiltering: true},
		).
		AddSeeds(seeds...).
		SetMinRelayFee(decimal.RequireFromString("0.00001")), nil
}

func (b *Bitcoin) CreateTestnet() (*network.Builder, error) {
	return network.NewBuilder().
		AddAlias("bitcoin-testnet", "btc-testnet", "testnet3").
		SetChainName("test").
		SetURIScheme("bitcoin").
		SetMagic(0x0709110b).
		SetPort(18333).
		SetRPCPort(18332).
		SetGenesisHash(common.HexToHash("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943")).
		AddDNSSeeds(
			network.DNSSeed{Host: "testnet-seed.bitcoin.jonasschnelli.ch", HasFiltering: true},
			network.DNSSeed{Host: "seed.tbtc.petertodd.net", HasFiltering: true},
			network.DNSSeed{Host: "testnet-seed.bluematt.me", HasFiltering: false},
		).
		SetMinRelayFee(decimal.RequireFromString("0.00001")), nil
}

func (b *Bitcoin) CreateRegtest() (*network.Builder, error) {
	return network.NewBuilder().
		AddAlias("bitcoin-regtest", "btc-regtest").
		SetChainName("regtest").
		SetURIScheme("bitcoin").
		SetMagic(0xdab5bffa).
		SetPort(18444).
		SetRPCPort(18443).
		SetGenesisHash(common.HexToHash("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206")).
		SetMinRelayFee(decimal.RequireFromString("0.00001")), nil
}

// PostInit registers the Bitcoin Core default cookie paths.
func (b *Bitcoin) PostInit(nets network.Networks) error {
	if b.opts.Features.DisableFileIO {
		return nil
	}
	b.opts.Resolver.RegisterDefaults(b.opts.Cookies, BitcoinFolder, nets)
	return nil
}
