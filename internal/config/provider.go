package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultProxySlot is the EIP-1967 implementation slot
const DefaultProxySlot = "0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	workDir := v.GetString("work_dir")
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}

	cfg := &RuntimeConfig{
		WorkDir:      workDir,
		ABIURL:       v.GetString("abi_url"),
		NoChecksum:   v.GetBool("no_checksum"),
		Timeout:      v.GetDuration("timeout"),
		Schema:       v.GetString("schema"),
		ChainID:      v.GetUint64("chain_id"),
		FollowProxy:  v.GetBool("follow_proxy"),
		ProxySlot:    v.GetString("proxy_slot"),
		RPCEndpoints: v.GetStringMapString("rpc_endpoints"),
		Debug:        v.GetBool("debug"),
		LogLevel:     strings.ToLower(v.GetString("log_level")),
		NoColor:      v.GetBool("no_color"),
	}

	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance. Precedence, highest
// first: changed flags, ABIFSM_* environment variables, abifsm.toml, defaults.
func SetupViper(workDir string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ABIFSM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if err := LoadEnvFiles(workDir); err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("work_dir", workDir)
	v.SetDefault("timeout", "2m")
	v.SetDefault("log_level", "info")
	v.SetDefault("chain_id", 1)
	v.SetDefault("proxy_slot", DefaultProxySlot)

	file, err := LoadFileConfig(workDir)
	if err != nil {
		return nil, err
	}
	if file != nil {
		applyFileConfig(v, file)
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if bindErr != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	return v, nil
}

// applyFileConfig layers abifsm.toml values above the built-in defaults
func applyFileConfig(v *viper.Viper, file *FileConfig) {
	if file.ABIURL != "" {
		v.SetDefault("abi_url", file.ABIURL)
	}
	if file.Schema != "" {
		v.SetDefault("schema", file.Schema)
	}
	if file.ChainID != 0 {
		v.SetDefault("chain_id", file.ChainID)
	}
	if file.ProxySlot != "" {
		v.SetDefault("proxy_slot", file.ProxySlot)
	}
	if len(file.RPCEndpoints) > 0 {
		v.SetDefault("rpc_endpoints", file.RPCEndpoints)
	}
}
