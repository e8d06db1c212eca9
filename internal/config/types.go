package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	WorkDir string

	// Fetch settings
	ABIURL     string        // base URL, ABIs are fetched from ABIURL + address + ".json"
	NoChecksum bool          // use addresses exactly as given
	Timeout    time.Duration // applies to the whole command

	// Naming settings
	Schema string // optional schema qualifying resolved table names

	// Proxy settings
	ChainID      uint64
	FollowProxy  bool
	ProxySlot    string
	RPCEndpoints map[string]string // chain id or chain slug -> RPC URL

	// Execution settings
	Debug    bool
	LogLevel string
	NoColor  bool
}

// FileConfig represents abifsm.toml
type FileConfig struct {
	ABIURL       string            `toml:"abi_url"`
	Schema       string            `toml:"schema"`
	ChainID      uint64            `toml:"chain_id"`
	ProxySlot    string            `toml:"proxy_slot"`
	RPCEndpoints map[string]string `toml:"rpc_endpoints"`
}
