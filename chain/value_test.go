package chain

import (
	"context"
	"errors"
	"math/big"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestValue(t *testing.T) {
	backend := &fakeBackend{
		chainID:     big.NewInt(11155111),
		head:        100,
		code:        deployedCode,
		returnValue: big.NewInt(42),
	}
	c := newTestClient(t, backend)

	value, err := c.LatestValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "42", value)

	// Idempotent with no intervening write.
	again, err := c.LatestValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, value, again)
}

func TestLatestValueBeyondSafeIntegerRange(t *testing.T) {
	max, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)

	backend := &fakeBackend{
		chainID:     big.NewInt(11155111),
		head:        100,
		code:        deployedCode,
		returnValue: max,
	}
	c := newTestClient(t, backend)

	value, err := c.LatestValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, max.String(), value)
}

func TestLatestValueNotDeployed(t *testing.T) {
	backend := &fakeBackend{
		chainID: big.NewInt(11155111),
		head:    100,
		code:    []byte{},
	}
	c := newTestClient(t, backend)

	_, err := c.LatestValue(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindNotDeployed, KindOf(err))

	// The contract call must never be attempted against an empty address.
	assert.Zero(t, backend.callContractCalls)

	// Operators need the address and chain in the message.
	assert.Contains(t, err.Error(), testAddr.Hex())
	assert.Contains(t, err.Error(), "sepolia")
}

func TestLatestValueUnreachableAfterRetries(t *testing.T) {
	backend := &fakeBackend{
		chainID: big.NewInt(11155111),
		code:    deployedCode,
	}
	c := newTestClient(t, backend)

	backend.headErr = &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	_, err := c.LatestValue(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindUnreachable, KindOf(err))
	assert.Equal(t, 3, backend.headCalls)
}

func TestLatestValueRecoversFromTransientFailure(t *testing.T) {
	backend := &fakeBackend{
		chainID:     big.NewInt(11155111),
		head:        100,
		code:        deployedCode,
		returnValue: big.NewInt(7),
	}
	c := newTestClient(t, backend)

	backend.codeErr = &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset")}
	backend.codeErrsLeft = 2

	value, err := c.LatestValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7", value)
}

func TestLatestValueRevertNotRetried(t *testing.T) {
	backend := &fakeBackend{
		chainID:     big.NewInt(11155111),
		head:        100,
		code:        deployedCode,
		returnValue: big.NewInt(1),
	}
	c := newTestClient(t, backend)

	backend.callErr = errors.New("execution reverted")

	_, err := c.LatestValue(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindNotDeployed, KindOf(err))
	assert.Equal(t, 1, backend.callContractCalls)
}
