package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	SimpleStorageContract "github.com/chainview-labs/storage-value-api/contracts/SimpleStorage"
	"github.com/chainview-labs/storage-value-api/utils"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRetries   = 3
	defaultRetryBackoff = 1 * time.Second
)

// Client reads SimpleStorage state from a single chain. It is constructed
// once at process start and never mutated afterwards, so concurrent requests
// share it freely.
type Client struct {
	backend  Backend
	caller   *SimpleStorageContract.SimpleStorageCaller
	filterer *SimpleStorageContract.SimpleStorageFilterer
	chainId  *big.Int
	logger   *slog.Logger
	Opts     *ClientOpts
}

type ClientOpts struct {
	Endpoint        string
	ContractAddress common.Address
	ChainName       string
	Logger          *slog.Logger
	Timeout         time.Duration
	MaxRetries      int
	RetryBackoff    time.Duration
}

// NewClient returns a new Client over HTTP. Dialing is lazy: an unreachable
// endpoint or a missing contract only produces startup warnings, the actual
// error surfaces on the first read.
func NewClient(opts ClientOpts) (*Client, error) {
	client, err := ethclient.Dial(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", opts.ChainName, err)
	}

	return NewClientWithBackend(client, opts)
}

// NewClientWithBackend builds a Client on any Backend, used directly by tests.
func NewClientWithBackend(backend Backend, opts ClientOpts) (*Client, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.RetryBackoff == 0 {
		opts.RetryBackoff = defaultRetryBackoff
	}

	caller, err := SimpleStorageContract.NewSimpleStorageCaller(opts.ContractAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind SimpleStorage caller: %w", err)
	}

	filterer, err := SimpleStorageContract.NewSimpleStorageFilterer(opts.ContractAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind SimpleStorage filterer: %w", err)
	}

	c := &Client{
		backend:  backend,
		caller:   caller,
		filterer: filterer,
		logger:   opts.Logger,
		Opts:     &opts,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chainId, err := backend.ChainID(ctx)
	if err != nil {
		opts.Logger.Warn("could not resolve chain id at startup", "endpoint", opts.Endpoint, "error", err)
	} else {
		c.chainId = chainId
		opts.Logger.Info("Connected to "+opts.ChainName, "chainId", chainId)
	}

	// Warn user if the contract is not found at the given address.
	if ok, _ := utils.IsContract(ctx, backend, opts.ContractAddress); !ok {
		opts.Logger.Warn("contract not found for SimpleStorage at given Address", "address", opts.ContractAddress.Hex(), "endpoint", opts.Endpoint)
	}

	return c, nil
}

// Endpoint returns the configured RPC URL.
func (c *Client) Endpoint() string {
	return c.Opts.Endpoint
}

// ChainName returns the configured chain name.
func (c *Client) ChainName() string {
	return c.Opts.ChainName
}

// ChainID returns the chain id resolved at startup, or nil if the probe
// failed.
func (c *Client) ChainID() *big.Int {
	return c.chainId
}

// blockNumber fetches the current chain height, doubling as the liveness
// probe for the endpoint.
func (c *Client) blockNumber(ctx context.Context, op string) (uint64, error) {
	var head uint64
	err := c.withRetries(ctx, op, func(ctx context.Context) error {
		n, err := c.backend.BlockNumber(ctx)
		if err != nil {
			return err
		}
		head = n
		return nil
	})
	return head, err
}

// ensureDeployed probes the bytecode at the contract address and fails with
// a NotDeployed error if none is present, so callers never hit the confusing
// low-level error a call against an empty address produces.
func (c *Client) ensureDeployed(ctx context.Context, op string) error {
	var code []byte
	err := c.withRetries(ctx, op, func(ctx context.Context) error {
		b, err := c.backend.CodeAt(ctx, c.Opts.ContractAddress, nil)
		if err != nil {
			return err
		}
		code = b
		return nil
	})
	if err != nil {
		return err
	}

	if len(code) == 0 {
		return &Error{
			Kind: KindNotDeployed,
			Op:   op,
			Err:  fmt.Errorf("no contract deployed at %s on %s", c.Opts.ContractAddress.Hex(), c.Opts.ChainName),
		}
	}

	return nil
}
