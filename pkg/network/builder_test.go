package network

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type stubFactory struct{ code string }

func (f stubFactory) CryptoCode() string { return f.code }
func (stubFactory) CreateMainnet() (*Builder, error) { return NewBuilder(), nil }
func (stubFactory) CreateTestnet() (*Builder, error) { return NewBuilder(), nil }
func (stubFactory) CreateRegtest() (*Builder, error) { return NewBuilder(), nil }

func stubSet(code string) *Set {
	return NewSet(stubFactory{code: code}, NewRegistry())
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		code string
		v    Variant
		want string
	}{
		{"BTC", Mainnet, "btc-main"},
		{"BTC", Testnet, "btc-test"},
		{"Ltc", Regtest, "ltc-reg"},
	}
	for _, tt := range tests {
		if got := CanonicalName(tt.code, tt.v); got != tt.want {
			t.Errorf("CanonicalName(%q, %s) = %q, want %q", tt.code, tt.v, got, tt.want)
		}
	}
}

func TestBuilder_BuildAndRegister(t *testing.T) {
	s := stubSet("TST")
	chainID := big.NewInt(42)
	genesis := common.HexToHash("0x01")
	contract := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	b := NewBuilder().
		SetVariant(Testnet).
		SetNetworkSet(s).
		AddAlias("tst-testnet").
		SetChainName("test").
		SetURIScheme("tst").
		SetMagic(0xcafebabe).
		SetPort(1234).
		SetRPCPort(1235).
		SetChainID(chainID).
		SetGenesisHash(genesis).
		AddDNSSeeds(DNSSeed{Host: "seed.example.org", HasFiltering: true}).
		SetMinRelayFee(decimal.RequireFromString("0.001")).
		SetContract("Registry", contract)

	n, err := b.BuildAndRegister()
	if err != nil {
		t.Fatalf("BuildAndRegister: %v", err)
	}

	if n.Name() != "tst-test" {
		t.Errorf("Name = %q, want %q", n.Name(), "tst-test")
	}
	if n.CryptoCode() != "TST" || n.Variant() != Testnet || n.NetworkSet() != s {
		t.Errorf("identity = %s/%s/%p", n.CryptoCode(), n.Variant(), n.NetworkSet())
	}
	if n.ChainName() != "test" || n.URIScheme() != "tst" {
		t.Errorf("ChainName/URIScheme = %q/%q", n.ChainName(), n.URIScheme())
	}
	if n.Magic() != 0xcafebabe || n.Port() != 1234 || n.RPCPort() != 1235 {
		t.Errorf("Magic/Port/RPCPort = %x/%d/%d", n.Magic(), n.Port(), n.RPCPort())
	}
	if n.ChainID().Cmp(chainID) != 0 {
		t.Errorf("ChainID = %v, want %v", n.ChainID(), chainID)
	}
	if n.GenesisHash() != genesis {
		t.Errorf("GenesisHash = %s", n.GenesisHash().Hex())
	}
	if seeds := n.DNSSeeds(); len(seeds) != 1 || seeds[0].String() != "seed.example.org" {
		t.Errorf("DNSSeeds = %v", seeds)
	}
	if !n.MinRelayFee().Equal(decimal.RequireFromString("0.001")) {
		t.Errorf("MinRelayFee = %s", n.MinRelayFee())
	}
	if addr, ok := n.Contract("Registry"); !ok || addr != contract {
		t.Errorf("Contract(Registry) = %s, %v", addr.Hex(), ok)
	}
	if names := n.ContractNames(); len(names) != 1 || names[0] != "Registry" {
		t.Errorf("ContractNames = %v", names)
	}

	if got, ok := s.Registry().Lookup("TST-TESTNET"); !ok || got != n {
		t.Error("alias lookup failed")
	}
}

func TestBuilder_NetworkIsImmutable(t *testing.T) {
	s := stubSet("IMM")
	chainID := big.NewInt(7)
	b := NewBuilder().SetVariant(Mainnet).SetNetworkSet(s).SetChainID(chainID).AddAlias("imm-a")
	n, err := b.BuildAndRegister()
	if err != nil {
		t.Fatalf("BuildAndRegister: %v", err)
	}

	chainID.SetInt64(8)
	if n.ChainID().Int64() != 7 {
		t.Error("network shares chain id with caller")
	}
	n.ChainID().SetInt64(9)
	if n.ChainID().Int64() != 7 {
		t.Error("ChainID getter exposes internal value")
	}
	aliases := n.Aliases()
	aliases[0] = "changed"
	if n.Aliases()[0] != "imm-a" {
		t.Error("Aliases getter exposes internal slice")
	}
}

func TestBuilder_Incomplete(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{name: "no variant", b: NewBuilder().SetNetworkSet(stubSet("X"))},
		{name: "invalid variant", b: NewBuilder().SetVariant(Variant(9)).SetNetworkSet(stubSet("X"))},
		{name: "no set", b: NewBuilder().SetVariant(Mainnet)},
		{name: "no crypto code", b: NewBuilder().SetVariant(Mainnet).SetNetworkSet(stubSet(""))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.BuildAndRegister()
			if !errors.Is(err, ErrIncompleteBuilder) {
				t.Fatalf("error = %v, want ErrIncompleteBuilder", err)
			}
		})
	}
}

func TestBuilder_FinalizedOnce(t *testing.T) {
	b := NewBuilder().SetVariant(Regtest).SetNetworkSet(stubSet("ONCE"))
	if _, err := b.BuildAndRegister(); err != nil {
		t.Fatalf("BuildAndRegister: %v", err)
	}
	if _, err := b.BuildAndRegister(); !errors.Is(err, ErrBuilderFinalized) {
		t.Fatalf("second BuildAndRegister error = %v, want ErrBuilderFinalized", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on setter after finalization")
		}
		if !strings.Contains(r.(string), "after BuildAndRegister") {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	b.SetPort(1)
}

func TestBuilder_DuplicateRegistration(t *testing.T) {
	s := stubSet("DUP")
	if _, err := NewBuilder().SetVariant(Mainnet).SetNetworkSet(s).BuildAndRegister(); err != nil {
		t.Fatalf("first: %v", err)
	}

	b := NewBuilder().SetVariant(Mainnet).SetNetworkSet(s)
	_, err := b.BuildAndRegister()
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("error = %v, want ErrDuplicateRegistration", err)
	}
	// A failed registration leaves the builder usable.
	b.SetVariant(Testnet)
	if _, err := b.BuildAndRegister(); err != nil {
		t.Fatalf("retry with another variant: %v", err)
	}
}
