// Package cookie derives the default locations of the RPC authentication
// cookie a node writes for each network variant, and keeps the association
// between networks and those paths. It never touches the filesystem: paths
// are computed from the HOME and APPDATA environment variables only.
package cookie

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/singnet/snet-netset-go/pkg/network"
	"go.uber.org/zap"
)

const (
	// HomeEnv is the Unix home directory variable.
	HomeEnv = "HOME"
	// AppDataEnv is the Windows application data variable.
	AppDataEnv = "APPDATA"
	// FileName is the name of the cookie file inside a data directory.
	FileName = ".cookie"

	testnetDir = "testnet3"
	regtestDir = "regtest"
)

// Sink consumes resolved cookie paths.
type Sink interface {
	RegisterDefaultCookiePath(n *network.Network, path string)
}

// Paths holds the default cookie path of each variant.
type Paths struct {
	Mainnet string
	Testnet string
	Regtest string
}

// For returns the path of variant v.
func (p Paths) For(v network.Variant) (string, error) {
	switch v {
	case network.Mainnet:
		return p.Mainnet, nil
	case network.Testnet:
		return p.Testnet, nil
	case network.Regtest:
		return p.Regtest, nil
	}
	return "", network.ErrUnsupportedVariant
}

// Resolver computes cookie paths from the environment. The zero value reads
// the process environment.
type Resolver struct {
	// Getenv replaces os.Getenv when set.
	Getenv func(key string) string
}

func (r Resolver) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

// dataDir returns the node data directory for folder:
// $HOME/.<folder in lower case> when HOME is set, otherwise
// $APPDATA/<Folder capitalized> when APPDATA is set. Both variables are read
// on every call.
func (r Resolver) dataDir(folder string) (string, bool) {
	if folder == "" {
		return "", false
	}
	if home := r.getenv(HomeEnv); home != "" {
		return filepath.Join(home, "."+strings.ToLower(folder)), true
	}
	if appData := r.getenv(AppDataEnv); appData != "" {
		return filepath.Join(appData, capitalize(folder)), true
	}
	return "", false
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// DefaultPaths returns the cookie paths for a node whose data folder is
// named folder ("Bitcoin"). With HOME=/home/u the result is
//
//	/home/u/.bitcoin/.cookie
//	/home/u/.bitcoin/testnet3/.cookie
//	/home/u/.bitcoin/regtest/.cookie
//
// The boolean is false when neither HOME nor APPDATA is set or folder is
// empty; no guess is made in that case.
func (r Resolver) DefaultPaths(folder string) (Paths, bool) {
	dir, ok := r.dataDir(folder)
	if !ok {
		return Paths{}, false
	}
	return Paths{
		Mainnet: filepath.Join(dir, FileName),
		Testnet: filepath.Join(dir, testnetDir, FileName),
		Regtest: filepath.Join(dir, regtestDir, FileName),
	}, true
}

// Path joins the data directory of folder with components, for chains whose
// layout differs from DefaultPaths:
//
//	r.Path("Litecoin", "testnet4", cookie.FileName)
func (r Resolver) Path(folder string, components ...string) (string, bool) {
	dir, ok := r.dataDir(folder)
	if !ok {
		return "", false
	}
	return filepath.Join(append([]string{dir}, components...)...), true
}

// RegisterDefaults hands the DefaultPaths of folder for each non-nil network
// of nets to sink. It returns how many paths were registered.
func (r Resolver) RegisterDefaults(sink Sink, folder string, nets network.Networks) int {
	paths, ok := r.DefaultPaths(folder)
	if !ok {
		zap.L().Debug("no default cookie path", zap.String("folder", folder))
		return 0
	}
	count := 0
	for _, v := range network.Variants {
		n, _ := nets.Get(v)
		if n == nil {
			continue
		}
		path, _ := paths.For(v)
		sink.RegisterDefaultCookiePath(n, path)
		count++
	}
	return count
}

// Register resolves Path(folder, components...) and hands it to sink for n.
// It reports whether a path was registered.
func (r Resolver) Register(sink Sink, n *network.Network, folder string, components ...string) bool {
	path, ok := r.Path(folder, components...)
	if !ok {
		zap.L().Debug("no cookie path", zap.String("network", n.Name()), zap.String("folder", folder))
		return false
	}
	sink.RegisterDefaultCookiePath(n, path)
	return true
}
