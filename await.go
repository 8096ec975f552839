package recipeshelf

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/familykitchen/recipeshelf/internal/api"
)

// AwaitReady blocks until the collection store answers a list request,
// probing with exponential backoff. Intended for startup sequencing
// only; user-initiated operations are never retried.
func (c *Client) AwaitReady(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxInterval = 2 * time.Second

	probe := func() error {
		_, err := api.ListRecipes(ctx, c.http, c.baseURL)
		return err
	}
	return backoff.Retry(probe, backoff.WithContext(bo, ctx))
}
