// Package config provides configuration management for the netset tooling.
//
// # Basic Configuration
//
// The zero Config is valid; Validate fills in the default set list:
//
//	cfg := &config.Config{}
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//	// cfg.Sets == []string{"btc", "ltc", "asi"}
//
// # Configuration File
//
// Load reads YAML. Environment variables are expanded before parsing:
//
//	sets: [btc, ltc]
//	debug: true
//	home_dir: ${NODE_HOME}
//	features:
//	  disable_file_io: false
//	  disable_sockets: true
//
// # Features
//
// Features replace build-time exclusion of platform dependent code:
//
//	disable_file_io  - no default cookie paths are registered
//	disable_sockets  - no fixed seed addresses are built
//
// # Cookie Directories
//
// HomeDir and AppDataDir override $HOME and %APPDATA% for cookie path
// resolution. Resolver returns a cookie.Resolver that applies them:
//
//	paths, ok := cfg.Resolver().DefaultPaths("Bitcoin")
//
// # Thread Safety
//
// Config instances should be built once and not modified after sets are
// constructed from them.
package config
