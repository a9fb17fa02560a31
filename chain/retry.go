package chain

import (
	"context"
	"time"
)

// withRetries runs call with the per-call timeout applied, retrying transient
// transport failures with linear backoff. Application-level failures (revert,
// missing code, decode) are returned on the first attempt. The returned error
// is always a *Error.
func (c *Client) withRetries(ctx context.Context, op string, call func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= c.Opts.MaxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.Opts.Timeout)
		err := call(callCtx)
		cancel()

		if err == nil {
			return nil
		}
		lastErr = err

		kind := classify(err)
		if !isTransient(kind) {
			return &Error{Kind: kind, Op: op, Err: err}
		}

		if attempt < c.Opts.MaxRetries {
			c.logger.Warn("transient rpc failure, retrying",
				"op", op,
				"attempt", attempt,
				"error", err)

			select {
			case <-time.After(time.Duration(attempt) * c.Opts.RetryBackoff):
			case <-ctx.Done():
				return &Error{Kind: KindTimeout, Op: op, Err: ctx.Err()}
			}
		}
	}

	return &Error{Kind: classify(lastErr), Op: op, Err: lastErr}
}
