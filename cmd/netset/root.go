package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/singnet/snet-netset-go/pkg/chains"
	"github.com/singnet/snet-netset-go/pkg/config"
	"github.com/singnet/snet-netset-go/pkg/cookie"
	"github.com/singnet/snet-netset-go/pkg/network"
)

type flags struct {
	config string
	debug  bool
	output string
	home   string
}

// app is the state of one command invocation. Every invocation gets its own
// registry and cookie store so repeated runs in one process do not collide.
type app struct {
	cfg      *config.Config
	registry *network.Registry
	cookies  *cookie.Store
	metrics  *prometheus.Registry
	sets     map[string]*network.Set
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:          "netset",
		Short:        "Inspect built-in network sets",
		Long:         "List the networks of the Bitcoin, Litecoin and ASI network sets, resolve names and aliases and show default cookie paths.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&f.config, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&f.output, "output", "o", "text", "Output format: json|text")
	rootCmd.PersistentFlags().StringVar(&f.home, "home", "", "Home directory used for cookie paths (overrides $HOME)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "sets",
		Short: "List the available network sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := chains.Names()
			if f.output == "json" {
				return writeJSON(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "networks",
		Short: "List the networks of the configured sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(f)
			if err != nil {
				return err
			}
			if err := a.registerAll(); err != nil {
				return err
			}
			infos := make([]networkInfo, 0, a.registry.Len())
			for _, n := range a.registry.Networks() {
				infos = append(infos, a.describe(n))
			}
			return render(cmd.OutOrStdout(), f.output, infos)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "lookup <name>",
		Short: "Resolve a network name or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(f)
			if err != nil {
				return err
			}
			if err := a.registerAll(); err != nil {
				return err
			}
			n, ok := a.registry.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown network %q", args[0])
			}
			return render(cmd.OutOrStdout(), f.output, []networkInfo{a.describe(n)})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "cookie <set> <variant>",
		Short: "Print the default cookie path of a network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(f)
			if err != nil {
				return err
			}
			set, ok := a.sets[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("network set %q is not configured", args[0])
			}
			v, err := network.ParseVariant(args[1])
			if err != nil {
				return err
			}
			n, err := set.GetNetwork(v)
			if err != nil {
				return err
			}
			path, ok := a.cookies.Lookup(n)
			if !ok {
				return fmt.Errorf("no default cookie path for %s", n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "metrics",
		Short: "Initialize the configured sets and print the registry metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(f)
			if err != nil {
				return err
			}
			if err := a.registerAll(); err != nil {
				return err
			}
			families, err := a.metrics.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return rootCmd
}

// load builds the configuration from the config file and flags and
// constructs the configured sets. No network is built yet.
func load(f flags) (*app, error) {
	cfg := &config.Config{}
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if f.home != "" {
		cfg.HomeDir = f.home
	}
	if f.debug || cfg.Debug {
		logLevel.SetLevel(zap.DebugLevel)
	}
	switch f.output {
	case "json", "text", "":
	default:
		return nil, fmt.Errorf("invalid --output: %s (use json|text)", f.output)
	}

	a := &app{
		cfg:      cfg,
		registry: network.NewRegistry(),
		cookies:  cookie.NewStore(),
		metrics:  prometheus.NewRegistry(),
		sets:     make(map[string]*network.Set, len(cfg.Sets)),
	}
	if err := network.RegisterMetrics(a.metrics); err != nil {
		return nil, err
	}

	opts := chains.Options{
		Registry: a.registry,
		Features: cfg.Features,
		Cookies:  a.cookies,
		Resolver: cfg.Resolver(),
	}
	for _, name := range cfg.Sets {
		set, err := chains.New(name, opts)
		if err != nil {
			return nil, err
		}
		a.sets[name] = set
	}
	zap.L().Debug("sets configured", zap.Strings("sets", cfg.Sets))
	return a, nil
}

func (a *app) registerAll() error {
	for _, name := range a.cfg.Sets {
		if err := a.sets[name].EnsureRegistered(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

type networkInfo struct {
	Name        string            `json:"name"`
	CryptoCode  string            `json:"crypto_code"`
	Variant     string            `json:"variant"`
	Aliases     []string          `json:"aliases,omitempty"`
	ChainName   string            `json:"chain_name,omitempty"`
	Magic       string            `json:"magic,omitempty"`
	Port        int               `json:"port,omitempty"`
	RPCPort     int               `json:"rpc_port,omitempty"`
	ChainID     string            `json:"chain_id,omitempty"`
	GenesisHash string            `json:"genesis_hash"`
	DNSSeeds    []string          `json:"dns_seeds,omitempty"`
	Seeds       []string          `json:"seeds,omitempty"`
	MinRelayFee string            `json:"min_relay_fee,omitempty"`
	Contracts   map[string]string `json:"contracts,omitempty"`
	Cookie      string            `json:"cookie,omitempty"`
}

func (a *app) describe(n *network.Network) networkInfo {
	info := networkInfo{
		Name:        n.Name(),
		CryptoCode:  n.CryptoCode(),
		Variant:     n.Variant().String(),
		Aliases:     n.Aliases(),
		ChainName:   n.ChainName(),
		Port:        n.Port(),
		RPCPort:     n.RPCPort(),
		GenesisHash: n.GenesisHash().Hex(),
	}
	if n.Magic() != 0 {
		info.Magic = fmt.Sprintf("0x%08x", n.Magic())
	}
	if id := n.ChainID(); id != nil {
		info.ChainID = id.String()
	}
	for _, s := range n.DNSSeeds() {
		info.DNSSeeds = append(info.DNSSeeds, s.String())
	}
	for _, s := range n.Seeds() {
		info.Seeds = append(info.Seeds, s.String())
	}
	if !n.MinRelayFee().IsZero() {
		info.MinRelayFee = n.MinRelayFee().String()
	}
	for _, name := range n.ContractNames() {
		if info.Contracts == nil {
			info.Contracts = make(map[string]string)
		}
		addr, _ := n.Contract(name)
		info.Contracts[name] = addr.Hex()
	}
	info.Cookie, _ = a.cookies.Lookup(n)
	return info
}

func render(w io.Writer, output string, infos []networkInfo) error {
	if output == "json" {
		return writeJSON(w, infos)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVARIANT\tPORT\tALIASES\tCOOKIE")
	for _, info := range infos {
		cookiePath := info.Cookie
		if cookiePath == "" {
			cookiePath = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			info.Name, info.Variant, info.Port, strings.Join(info.Aliases, ","), cookiePath)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
