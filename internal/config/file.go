package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// FileName is the optional configuration file looked up in the working directory
const FileName = "abifsm.toml"

// LoadEnvFiles loads .env and .env.local from dir so that ${VAR} references
// in abifsm.toml and ABIFSM_* variables can be resolved. Existing variables win.
func LoadEnvFiles(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(dir, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return nil
}

// LoadFileConfig reads abifsm.toml from dir. A missing file yields nil, nil.
func LoadFileConfig(dir string) (*FileConfig, error) {
	path := filepath.Join(dir, FileName)

	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	cfg.ABIURL = os.ExpandEnv(cfg.ABIURL)
	for chain, url := range cfg.RPCEndpoints {
		cfg.RPCEndpoints[chain] = os.ExpandEnv(url)
	}

	return &cfg, nil
}
