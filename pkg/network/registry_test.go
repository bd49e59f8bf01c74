package network

import (
	"errors"
	"testing"
)

func mustRegister(t *testing.T, s *Set, v Variant, aliases ...string) *Network {
	t.Helper()
	n, err := NewBuilder().SetVariant(v).SetNetworkSet(s).AddAlias(aliases...).BuildAndRegister()
	if err != nil {
		t.Fatalf("register %s: %v", v, err)
	}
	return n
}

func TestRegistry_Lookup(t *testing.T) {
	s := stubSet("ABC")
	n := mustRegister(t, s, Mainnet, "abc-mainnet", " ABC-Prod ")
	reg := s.Registry()

	for _, name := range []string{"abc-main", "ABC-MAIN", "abc-mainnet", "abc-prod", "  abc-prod"} {
		got, ok := reg.Lookup(name)
		if !ok || got != n {
			t.Errorf("Lookup(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := reg.Lookup("abc-test"); ok {
		t.Error("Lookup(abc-test) found a network")
	}
}

func TestRegistry_AliasCollisionIsAtomic(t *testing.T) {
	s := stubSet("COL")
	mustRegister(t, s, Mainnet, "shared")
	reg := s.Registry()

	_, err := NewBuilder().SetVariant(Testnet).SetNetworkSet(s).AddAlias("col-testnet", "SHARED").BuildAndRegister()
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("error = %v, want ErrDuplicateRegistration", err)
	}
	if _, ok := reg.Lookup("col-test"); ok {
		t.Error("canonical name registered despite alias collision")
	}
	if _, ok := reg.Lookup("col-testnet"); ok {
		t.Error("alias registered despite collision")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegistry_RepeatedAliasIsIgnored(t *testing.T) {
	s := stubSet("REP")
	n := mustRegister(t, s, Regtest, "rep", "REP", "rep-reg")
	if got, ok := s.Registry().Lookup("rep"); !ok || got != n {
		t.Fatal("alias not registered")
	}
}

func TestRegistry_NetworksSortedAndRemove(t *testing.T) {
	s := stubSet("SRT")
	reg := s.Registry()
	reg3 := mustRegister(t, s, Regtest)
	main := mustRegister(t, s, Mainnet, "srt-alias")
	test := mustRegister(t, s, Testnet)

	nets := reg.Networks()
	want := []*Network{main, reg3, test} // srt-main, srt-reg, srt-test
	if len(nets) != len(want) {
		t.Fatalf("Networks() = %v", nets)
	}
	for i := range want {
		if nets[i] != want[i] {
			t.Errorf("Networks()[%d] = %s, want %s", i, nets[i], want[i])
		}
	}

	reg.remove(main)
	if _, ok := reg.Lookup("srt-main"); ok {
		t.Error("srt-main still registered after remove")
	}
	if _, ok := reg.Lookup("srt-alias"); ok {
		t.Error("alias still registered after remove")
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d, want 2", reg.Len())
	}
}
