package connector

import (
	"context"
	"time"

	"github.com/Konsultn-Engineering/sqltpl/database"
)

// retryConnect calls connectFn up to MaxRetries+1 times, doubling the delay
// between attempts up to MaxDelay.
func retryConnect(ctx context.Context, opts RetryConfig, connectFn func(context.Context) (database.Database, error)) (database.Database, error) {
	delay := opts.BaseDelay
	if delay <= 0 {
		delay = time.Second
	}

	for attempt := 0; ; attempt++ {
		db, err := connectFn(ctx)
		if err == nil {
			return db, nil
		}
		if attempt >= opts.MaxRetries {
			return nil, err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if opts.MaxDelay > 0 && delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
	}
}
