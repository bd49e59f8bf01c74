package chains

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	contracts "github.com/singnet/snet-ecosystem-contracts"
	"go.uber.org/zap"

	"github.com/singnet/snet-netset-go/pkg/network"
)

const (
	// ASIName is the set name accepted by New.
	ASIName = "asi"

	// Contract names under which ASI networks record addresses.
	RegistryContract         = "Registry"
	MultiPartyEscrowContract = "MultiPartyEscrow"
)

var (
	asiMainnetChainID = big.NewInt(1)
	asiTestnetChainID = big.NewInt(11155111)
	asiRegtestChainID = big.NewInt(1337)

	// Ethereum genesis blocks.
	ethMainnetGenesis = common.HexToHash("d4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3")
	sepoliaGenesis    = common.HexToHash("25a5cc106eea7138acab33231d7160d69cb777ee0c2c553fcddf5138993e6dd9")
)

// contractNetworks mirrors the JSON payload produced by
// snet-ecosystem-contracts (chain ID to deployment).
type contractNetworks map[string]struct {
	Address string `json:"address"`
}

// contractAddress looks up the deployment on chainID in the networks JSON
// of the contract called name.
func contractAddress(raw []byte, name string, chainID *big.Int) (common.Address, error) {
	var nets contractNetworks
	if err := json.Unmarshal(raw, &nets); err != nil {
		zap.L().Error("Failed to unmarshal contract networks", zap.Error(err))
		return common.Address{}, err
	}
	deployment, ok := nets[chainID.String()]
	if !ok || !common.IsHexAddress(deployment.Address) {
		return common.Address{}, fmt.Errorf("no %s deployment on chain %s", name, chainID)
	}
	return common.HexToAddress(deployment.Address), nil
}

// ASI is the SingularityNET network set: Ethereum mainnet, Sepolia and a
// local development chain. Registry and MultiPartyEscrow addresses of the
// public networks come from snet-ecosystem-contracts. EVM nodes have no
// cookie file, so no cookie paths are registered.
type ASI struct {
	*network.Set
	opts Options
}

// NewASI returns the ASI set. Networks are built on first use.
func NewASI(opts Options) *ASI {
	a := &ASI{opts: opts.withDefaults()}
	a.Set = network.NewSet(a, a.opts.Registry)
	return a
}

func (a *ASI) CryptoCode() string { return "ASI" }

func (a *ASI) CreateMainnet() (*network.Builder, error) {
	b := network.NewBuilder().
		AddAlias("asi-mainnet", "asi-ethereum").
		SetChainName("mainnet").
		SetURIScheme("ethereum").
		SetPort(30303).
		SetRPCPort(8545).
		SetChainID(asiMainnetChainID).
		SetGenesisHash(ethMainnetGenesis)
	if err := withContracts(b, asiMainnetChainID); err != nil {
		return nil, err
	}
	return b, nil
}

func (a *ASI) CreateTestnet() (*network.Builder, error) {
	b := network.NewBuilder().
		AddAlias("asi-testnet", "asi-sepolia").
		SetChainName("sepolia").
		SetURIScheme("ethereum").
		SetPort(30303).
		SetRPCPort(8545).
		SetChainID(asiTestnetChainID).
		SetGenesisHash(sepoliaGenesis)
	if err := withContracts(b, asiTestnetChainID); err != nil {
		return nil, err
	}
	return b, nil
}

// CreateRegtest describes a local development chain (anvil, hardhat, geth
// --dev). Contracts there are deployed per session, so none are recorded.
func (a *ASI) CreateRegtest() (*network.Builder, error) {
	return network.NewBuilder().
		AddAlias("asi-regtest", "asi-devnet").
		SetChainName("devnet").
		SetPort(30303).
		SetRPCPort(8545).
		SetChainID(asiRegtestChainID), nil
}

func withContracts(b *network.Builder, chainID *big.Int) error {
	registry, err := contractAddress(contracts.GetNetworks(contracts.Registry), RegistryContract, chainID)
	if err != nil {
		return err
	}
	mpe, err := contractAddress(contracts.GetNetworks(contracts.MultiPartyEscrow), MultiPartyEscrowContract, chainID)
	if err != nil {
		return err
	}
	b.SetContract(RegistryContract, registry).
		SetContract(MultiPartyEscrowContract, mpe)
	return nil
}
