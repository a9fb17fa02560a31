package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ethereum-sepolia-rpc.publicnode.com", cfg.RPCURL)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.ContractAddress)
	assert.Equal(t, "sepolia", cfg.ChainName)
	assert.Equal(t, "8080", cfg.APIPort)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RPC_URL", "http://localhost:8545")
	t.Setenv("CONTRACT_ADDRESS", "0x000000000000000000000000000000000000dEaD")
	t.Setenv("CHAIN_NAME", "anvil")
	t.Setenv("API_PORT", "3001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	assert.Equal(t, "0x000000000000000000000000000000000000dEaD", cfg.ContractAddress)
	assert.Equal(t, "anvil", cfg.ChainName)
	assert.Equal(t, "3001", cfg.APIPort)
}
