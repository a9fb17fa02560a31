package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read once from the process environment at startup. Every field
// has a fallback default, so the binary runs against the public Sepolia
// endpoint out of the box. Invalid values surface on the first chain read,
// not here.
type Config struct {
	RPCURL          string `env:"RPC_URL" envDefault:"https://ethereum-sepolia-rpc.publicnode.com"`
	ContractAddress string `env:"CONTRACT_ADDRESS" envDefault:"0x5FbDB2315678afecb367f032d93F642f64180aa3"`
	ChainName       string `env:"CHAIN_NAME" envDefault:"sepolia"`
	APIPort         string `env:"API_PORT" envDefault:"8080"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
