package network

// Features switches off the parts of a set that need an operating system
// with a filesystem or sockets. The zero value enables everything.
type Features struct {
	// DisableFileIO skips registration of default cookie paths.
	DisableFileIO bool `json:"disable_file_io" yaml:"disable_file_io"`
	// DisableSockets skips construction of fixed seed addresses.
	DisableSockets bool `json:"disable_sockets" yaml:"disable_sockets"`
}
