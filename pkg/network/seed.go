package network

import (
	"fmt"
	"net"

	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
)

// SeedAddr is a raw fixed seed: a 4 or 16 byte IP address and a TCP port.
type SeedAddr struct {
	IP   []byte
	Port int
}

// ToSeeds converts raw fixed seeds into TCP multiaddrs
// ("/ip4/1.2.3.4/tcp/8333").
func ToSeeds(addrs []SeedAddr) ([]ma.Multiaddr, error) {
	seeds := make([]ma.Multiaddr, 0, len(addrs))
	for _, a := range addrs {
		if len(a.IP) != net.IPv4len && len(a.IP) != net.IPv6len {
			return nil, fmt.Errorf("network: seed ip must be 4 or 16 bytes, got %d", len(a.IP))
		}
		if a.Port <= 0 || a.Port > 65535 {
			return nil, fmt.Errorf("network: seed port %d out of range", a.Port)
		}
		maddr, err := manet.FromNetAddr(&net.TCPAddr{IP: net.IP(a.IP), Port: a.Port})
		if err != nil {
			return nil, fmt.Errorf("network: seed %v: %w", a, err)
		}
		seeds = append(seeds, maddr)
	}
	return seeds, nil
}
