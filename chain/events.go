package chain

import (
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/chainview-labs/storage-value-api/types"
)

// maxBlockRange is the widest span a single log query may cover. Public RPC
// providers cap log queries in the tens of thousands of blocks, so wider
// requests are narrowed to the most recent window instead of failing.
const maxBlockRange = 40000

const defaultPageSize = 10

// ValueUpdatedEvents returns the ValueUpdated events emitted by the contract
// in [fromBlock, toBlock], paginated. When latest is true, toBlock is
// resolved to the chain head once per call; a block arriving between that
// resolution and the log query is an accepted consistency window. Ranges
// wider than maxBlockRange are clamped to the most recent maxBlockRange
// blocks ending at toBlock, discarding older history.
func (c *Client) ValueUpdatedEvents(ctx context.Context, fromBlock, toBlock uint64, latest bool, page, limit int) (*types.PaginatedEvents, error) {
	const op = "chain.ValueUpdatedEvents"

	if err := c.ensureDeployed(ctx, op); err != nil {
		return nil, err
	}

	if latest {
		head, err := c.blockNumber(ctx, op)
		if err != nil {
			return nil, err
		}
		toBlock = head
	}

	if fromBlock > toBlock {
		fromBlock = toBlock
	}

	if toBlock-fromBlock > maxBlockRange {
		clamped := uint64(0)
		if toBlock > maxBlockRange {
			clamped = toBlock - maxBlockRange
		}
		c.logger.Debug("clamping block range",
			"requestedFromBlock", fromBlock,
			"fromBlock", clamped,
			"toBlock", toBlock)
		fromBlock = clamped
	}

	var decoded []types.UpdateEvent
	err := c.withRetries(ctx, op, func(ctx context.Context) error {
		end := toBlock
		iter, err := c.filterer.FilterValueUpdated(&bind.FilterOpts{
			Start:   fromBlock,
			End:     &end,
			Context: ctx,
		})
		if err != nil {
			return err
		}
		defer iter.Close()

		events := make([]types.UpdateEvent, 0)
		for iter.Next() {
			ev := iter.Event
			events = append(events, types.UpdateEvent{
				BlockNumber: strconv.FormatUint(ev.Raw.BlockNumber, 10),
				Value:       ev.NewValue.String(),
				TxHash:      ev.Raw.TxHash.Hex(),
				LogIndex:    ev.Raw.Index,
			})
		}
		if err := iter.Error(); err != nil {
			return err
		}

		decoded = events
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("filtered ValueUpdated events",
		"fromBlock", fromBlock,
		"toBlock", toBlock,
		"count", len(decoded))

	return paginate(decoded, page, limit), nil
}

// paginate slices one page out of the full decoded event list. Pages past
// the end yield an empty slice, not an error.
func paginate(events []types.UpdateEvent, page, limit int) *types.PaginatedEvents {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	start := (page - 1) * limit
	end := start + limit

	items := []types.UpdateEvent{}
	if start < len(events) {
		if end > len(events) {
			end = len(events)
		}
		items = events[start:end]
	}

	return &types.PaginatedEvents{
		Events:     items,
		Pagination: types.NewPagination(page, limit, len(events)),
	}
}
