package network

import (
	"fmt"
	"strings"
)

// Variant identifies one of the three configuration flavors every network
// set provides. The zero value is not a valid variant.
type Variant int

const (
	// Mainnet is the production network.
	Mainnet Variant = iota + 1
	// Testnet is the public test network.
	Testnet
	// Regtest is the private regression test network.
	Regtest
)

// Variants lists the variants in initialization order.
var Variants = []Variant{Mainnet, Testnet, Regtest}

// Valid reports whether v is one of Mainnet, Testnet or Regtest.
func (v Variant) Valid() bool {
	return v == Mainnet || v == Testnet || v == Regtest
}

func (v Variant) String() string {
	switch v {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Regtest:
		return "regtest"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// suffix is the short form used in canonical network names.
func (v Variant) suffix() string {
	switch v {
	case Mainnet:
		return "main"
	case Testnet:
		return "test"
	case Regtest:
		return "reg"
	}
	return ""
}

// ParseVariant accepts the long ("mainnet") and short ("main") spellings,
// case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "main":
		return Mainnet, nil
	case "testnet", "test":
		return Testnet, nil
	case "regtest", "reg":
		return Regtest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
}
