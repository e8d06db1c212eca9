package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("abi-url", "", "")
	cmd.Flags().String("schema", "", "")
	cmd.Flags().Bool("follow-proxy", false, "")
	cmd.Flags().Bool("debug", false, "")
	return cmd
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestProviderDefaults(t *testing.T) {
	dir := t.TempDir()

	v, err := SetupViper(dir, newTestCmd())
	require.NoError(t, err)
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.WorkDir)
	assert.Equal(t, "", cfg.ABIURL)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint64(1), cfg.ChainID)
	assert.Equal(t, DefaultProxySlot, cfg.ProxySlot)
	assert.False(t, cfg.FollowProxy)
	assert.Empty(t, cfg.RPCEndpoints)
}

func TestProviderFileConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "ABIFSM_TEST_OP_RPC=https://op.example/rpc\n")
	writeFile(t, dir, FileName, `
abi_url = "https://abis.example/"
schema = "center"
chain_id = 10

[rpc_endpoints]
optimism = "${ABIFSM_TEST_OP_RPC}"
"10" = "https://ten.example"
`)

	v, err := SetupViper(dir, newTestCmd())
	require.NoError(t, err)
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, "https://abis.example/", cfg.ABIURL)
	assert.Equal(t, "center", cfg.Schema)
	assert.Equal(t, uint64(10), cfg.ChainID)
	assert.Equal(t, "https://op.example/rpc", cfg.RPCEndpoints["optimism"])
	assert.Equal(t, "https://ten.example", cfg.RPCEndpoints["10"])
}

func TestProviderPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `abi_url = "https://file.example/"
schema = "from_file"
`)

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("ABIFSM_ABI_URL", "https://env.example/")

		v, err := SetupViper(dir, newTestCmd())
		require.NoError(t, err)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "https://env.example/", cfg.ABIURL)
		assert.Equal(t, "from_file", cfg.Schema)
	})

	t.Run("flags beat env", func(t *testing.T) {
		t.Setenv("ABIFSM_ABI_URL", "https://env.example/")

		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("abi-url", "https://flag.example/"))
		require.NoError(t, cmd.Flags().Set("follow-proxy", "true"))

		v, err := SetupViper(dir, cmd)
		require.NoError(t, err)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "https://flag.example/", cfg.ABIURL)
		assert.True(t, cfg.FollowProxy)
	})

	t.Run("debug forces debug level", func(t *testing.T) {
		cmd := newTestCmd()
		require.NoError(t, cmd.Flags().Set("debug", "true"))

		v, err := SetupViper(dir, cmd)
		require.NoError(t, err)
		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadFileConfig(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("invalid toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, FileName, "abi_url = [")

		_, err := LoadFileConfig(dir)
		assert.Error(t, err)

		_, err = SetupViper(dir, newTestCmd())
		assert.Error(t, err)
	})
}
