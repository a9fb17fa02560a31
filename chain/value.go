package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// LatestValue reads the contract's current stored value and returns it as a
// decimal string, so values beyond the safe integer range survive the JSON
// round trip. The read reflects whatever block the provider serves "latest"
// against; there is no explicit block pinning.
func (c *Client) LatestValue(ctx context.Context) (string, error) {
	const op = "chain.LatestValue"

	// Cheap liveness probe before touching the contract.
	if _, err := c.blockNumber(ctx, op); err != nil {
		return "", err
	}

	if err := c.ensureDeployed(ctx, op); err != nil {
		return "", err
	}

	var value *big.Int
	err := c.withRetries(ctx, op, func(ctx context.Context) error {
		v, err := c.caller.Value(&bind.CallOpts{Context: ctx})
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if err != nil {
		return "", err
	}

	c.logger.Debug("read contract value", "value", value)

	return value.String(), nil
}
