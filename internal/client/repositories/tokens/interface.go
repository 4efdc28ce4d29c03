// Package tokens persists the single bearer token under a fixed key.
package tokens

import "context"

// Store is the durable home of the bearer token. Get returns "" when no
// token is stored. Set supersedes any previous value; the store never holds
// more than one token. No cross-process locking is provided: concurrent
// writers race and the last write wins.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
