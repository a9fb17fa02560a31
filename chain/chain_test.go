package chain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var (
	testAddr          = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	valueUpdatedTopic = crypto.Keccak256Hash([]byte("ValueUpdated(uint256)"))

	// Any non-empty byte slice passes the bytecode probe.
	deployedCode = []byte{0x60, 0x80, 0x60, 0x40}
)

// fakeBackend scripts the RPC surface the reader uses and records which
// calls were attempted.
type fakeBackend struct {
	chainID      *big.Int
	head         uint64
	headErr      error
	code         []byte
	codeErr      error
	codeErrsLeft int
	returnValue  *big.Int
	callErr      error
	logs         []ethtypes.Log
	filterErr    error

	headCalls         int
	codeAtCalls       int
	callContractCalls int
	filterCalls       int
	lastFilterQuery   ethereum.FilterQuery
}

func (f *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	if f.chainID == nil {
		return nil, errors.New("chain id unavailable")
	}
	return f.chainID, nil
}

func (f *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	f.headCalls++
	if f.headErr != nil {
		return 0, f.headErr
	}
	return f.head, nil
}

func (f *fakeBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	f.codeAtCalls++
	if f.codeErrsLeft > 0 {
		f.codeErrsLeft--
		return nil, f.codeErr
	}
	return f.code, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.callContractCalls++
	if f.callErr != nil {
		return nil, f.callErr
	}
	return common.LeftPadBytes(f.returnValue.Bytes(), 32), nil
}

func (f *fakeBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]ethtypes.Log, error) {
	f.filterCalls++
	f.lastFilterQuery = q
	if f.filterErr != nil {
		return nil, f.filterErr
	}

	out := []ethtypes.Log{}
	for _, l := range f.logs {
		if q.FromBlock != nil && l.BlockNumber < q.FromBlock.Uint64() {
			continue
		}
		if q.ToBlock != nil && l.BlockNumber > q.ToBlock.Uint64() {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeBackend) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- ethtypes.Log) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func valueUpdatedLog(block uint64, value int64, index uint) ethtypes.Log {
	return ethtypes.Log{
		Address:     testAddr,
		Topics:      []common.Hash{valueUpdatedTopic},
		Data:        common.BigToHash(big.NewInt(value)).Bytes(),
		BlockNumber: block,
		TxHash:      common.BigToHash(big.NewInt(int64(block)*1000 + int64(index))),
		Index:       index,
	}
}

// newTestClient builds a Client over the fake. Error scripts should be set
// on the backend after construction, so the startup probes stay clean.
func newTestClient(t *testing.T, backend *fakeBackend) *Client {
	t.Helper()

	c, err := NewClientWithBackend(backend, ClientOpts{
		Endpoint:        "http://localhost:8545",
		ContractAddress: testAddr,
		ChainName:       "sepolia",
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Timeout:         time.Second,
		MaxRetries:      3,
		RetryBackoff:    time.Millisecond,
	})
	require.NoError(t, err)
	return c
}
