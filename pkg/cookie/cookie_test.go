package cookie_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/singnet/snet-netset-go/internal/testutil/fakeset"
	"github.com/singnet/snet-netset-go/pkg/cookie"
	"github.com/singnet/snet-netset-go/pkg/network"
)

func env(vars map[string]string) cookie.Resolver {
	return cookie.Resolver{Getenv: func(key string) string { return vars[key] }}
}

func TestResolver_DefaultPaths(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want cookie.Paths
		ok   bool
	}{
		{
			name: "home",
			env:  map[string]string{"HOME": "/home/u"},
			want: cookie.Paths{
				Mainnet: filepath.Join("/home/u", ".example", ".cookie"),
				Testnet: filepath.Join("/home/u", ".example", "testnet3", ".cookie"),
				Regtest: filepath.Join("/home/u", ".example", "regtest", ".cookie"),
			},
			ok: true,
		},
		{
			name: "home wins over appdata",
			env:  map[string]string{"HOME": "/home/u", "APPDATA": "/appdata"},
			want: cookie.Paths{
				Mainnet: filepath.Join("/home/u", ".example", ".cookie"),
				Testnet: filepath.Join("/home/u", ".example", "testnet3", ".cookie"),
				Regtest: filepath.Join("/home/u", ".example", "regtest", ".cookie"),
			},
			ok: true,
		},
		{
			name: "appdata only",
			env:  map[string]string{"APPDATA": "/appdata"},
			want: cookie.Paths{
				Mainnet: filepath.Join("/appdata", "Example", ".cookie"),
				Testnet: filepath.Join("/appdata", "Example", "testnet3", ".cookie"),
				Regtest: filepath.Join("/appdata", "Example", "regtest", ".cookie"),
			},
			ok: true,
		},
		{
			name: "empty home falls through",
			env:  map[string]string{"HOME": "", "APPDATA": "/appdata"},
			want: cookie.Paths{
				Mainnet: filepath.Join("/appdata", "Example", ".cookie"),
				Testnet: filepath.Join("/appdata", "Example", "testnet3", ".cookie"),
				Regtest: filepath.Join("/appdata", "Example", "regtest", ".cookie"),
			},
			ok: true,
		},
		{
			name: "no environment",
			env:  map[string]string{},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := env(tt.env).DefaultPaths("Example")
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("DefaultPaths = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolver_CapitalizesFirstRuneOnly(t *testing.T) {
	got, ok := env(map[string]string{"APPDATA": "/appdata"}).Path("dash", ".cookie")
	if !ok {
		t.Fatal("no path")
	}
	if want := filepath.Join("/appdata", "Dash", ".cookie"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestResolver_EmptyFolder(t *testing.T) {
	r := env(map[string]string{"HOME": "/home/u"})
	if _, ok := r.DefaultPaths(""); ok {
		t.Error("DefaultPaths(\"\") returned a path")
	}
	if _, ok := r.Path("", cookie.FileName); ok {
		t.Error("Path(\"\") returned a path")
	}
}

func TestResolver_ProcessEnvironment(t *testing.T) {
	t.Setenv("HOME", "/tmp/netset-home")
	t.Setenv("APPDATA", "")
	var r cookie.Resolver

	got, ok := r.Path("Dash", "testnet3", cookie.FileName)
	if !ok {
		t.Fatal("no path with HOME set")
	}
	if want := filepath.Join("/tmp/netset-home", ".dash", "testnet3", ".cookie"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}

	// The environment is read on every call.
	t.Setenv("HOME", "")
	if _, ok := r.Path("Dash", cookie.FileName); ok {
		t.Error("path resolved after HOME was cleared")
	}
}

func TestPaths_For(t *testing.T) {
	p := cookie.Paths{Mainnet: "m", Testnet: "t", Regtest: "r"}
	for v, want := range map[network.Variant]string{network.Mainnet: "m", network.Testnet: "t", network.Regtest: "r"} {
		got, err := p.For(v)
		if err != nil || got != want {
			t.Errorf("For(%s) = %q, %v", v, got, err)
		}
	}
	if _, err := p.For(network.Variant(0)); !errors.Is(err, network.ErrUnsupportedVariant) {
		t.Errorf("For(0) error = %v", err)
	}
}

func registeredNetworks(t *testing.T, code string) network.Networks {
	t.Helper()
	set := network.NewSet(fakeset.New(code), network.NewRegistry())
	nets, err := set.Networks()
	if err != nil {
		t.Fatalf("Networks: %v", err)
	}
	return nets
}

func TestResolver_RegisterDefaults(t *testing.T) {
	nets := registeredNetworks(t, "CK")
	store := cookie.NewStore()
	r := env(map[string]string{"HOME": "/home/u"})

	if got := r.RegisterDefaults(store, "Example", nets); got != 3 {
		t.Fatalf("RegisterDefaults = %d, want 3", got)
	}
	path, ok := store.Lookup(nets.Testnet)
	if !ok {
		t.Fatal("no testnet path")
	}
	if want := filepath.Join("/home/u", ".example", "testnet3", ".cookie"); path != want {
		t.Errorf("testnet path = %q, want %q", path, want)
	}
}

func TestResolver_RegisterDefaults_NoEnvironment(t *testing.T) {
	nets := registeredNetworks(t, "CKE")
	store := cookie.NewStore()

	if got := env(nil).RegisterDefaults(store, "Example", nets); got != 0 {
		t.Fatalf("RegisterDefaults = %d, want 0", got)
	}
	if store.Len() != 0 {
		t.Errorf("store has %d paths, want 0", store.Len())
	}
}

func TestResolver_RegisterDefaults_SkipsMissingNetworks(t *testing.T) {
	nets := registeredNetworks(t, "CKM")
	nets.Regtest = nil
	store := cookie.NewStore()

	if got := env(map[string]string{"HOME": "/h"}).RegisterDefaults(store, "Example", nets); got != 2 {
		t.Fatalf("RegisterDefaults = %d, want 2", got)
	}
}

func TestResolver_Register(t *testing.T) {
	nets := registeredNetworks(t, "CKR")
	store := cookie.NewStore()
	r := env(map[string]string{"HOME": "/home/u"})

	if !r.Register(store, nets.Testnet, "Litecoin", "testnet4", cookie.FileName) {
		t.Fatal("Register returned false")
	}
	path, _ := store.Lookup(nets.Testnet)
	if want := filepath.Join("/home/u", ".litecoin", "testnet4", ".cookie"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	if env(nil).Register(store, nets.Mainnet, "Litecoin", cookie.FileName) {
		t.Error("Register without environment returned true")
	}
}
