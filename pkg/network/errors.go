package network

import "errors"

var (
	// ErrUnsupportedVariant is returned when a variant outside Mainnet,
	// Testnet and Regtest is requested.
	ErrUnsupportedVariant = errors.New("unsupported network variant")

	// ErrDuplicateRegistration describes an attempt to register a network
	// name or alias that is already taken in the registry. From a Set it
	// usually means two sets share a crypto code or an alias.
	ErrDuplicateRegistration = errors.New("duplicate network registration")

	// ErrIncompleteBuilder is returned by BuildAndRegister when the builder
	// lacks its variant, its owning set or a crypto code.
	ErrIncompleteBuilder = errors.New("incomplete network builder")

	// ErrBuilderFinalized is returned when BuildAndRegister is called on a
	// builder that was already finalized.
	ErrBuilderFinalized = errors.New("network builder already finalized")
)
