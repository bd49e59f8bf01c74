package network

import (
	"net"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestToSeeds(t *testing.T) {
	seeds, err := ToSeeds([]SeedAddr{
		{IP: []byte{1, 2, 3, 4}, Port: 8333},
		{IP: net.ParseIP("2001:db8::1"), Port: 18333},
	})
	if err != nil {
		t.Fatalf("ToSeeds: %v", err)
	}
	want := []string{"/ip4/1.2.3.4/tcp/8333", "/ip6/2001:db8::1/tcp/18333"}
	if len(seeds) != len(want) {
		t.Fatalf("got %d seeds, want %d", len(seeds), len(want))
	}
	for i := range want {
		if seeds[i].String() != want[i] {
			t.Errorf("seed %d = %s, want %s", i, seeds[i], want[i])
		}
	}
}

func TestToSeeds_Invalid(t *testing.T) {
	tests := []struct {
		name string
		addr SeedAddr
	}{
		{name: "short ip", addr: SeedAddr{IP: []byte{1, 2, 3}, Port: 1}},
		{name: "zero port", addr: SeedAddr{IP: []byte{1, 2, 3, 4}}},
		{name: "large port", addr: SeedAddr{IP: []byte{1, 2, 3, 4}, Port: 70000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToSeeds([]SeedAddr{tt.addr}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := RegisterMetrics(reg); err != nil {
		t.Fatalf("RegisterMetrics: %v", err)
	}
	if err := RegisterMetrics(reg); err == nil {
		t.Fatal("expected error registering twice")
	}
}
