package api

import (
	"net/http"
	"sync"
)

// authTransport is the HTTP analogue of a unary auth interceptor: it attaches
// the bearer token (when one is stored) to every outgoing request and treats
// any 401 response as token invalidation: the persisted token is cleared and
// the onUnauthorized hook (when set) is notified so in-memory session state
// can be dropped without waiting for a restart.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenStore

	mu             sync.Mutex
	onUnauthorized func()
}

func (t *authTransport) setOnUnauthorized(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUnauthorized = fn
}

func (t *authTransport) notifyUnauthorized() {
	t.mu.Lock()
	fn := t.onUnauthorized
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if tok, err := t.tokens.Get(req.Context()); err == nil && tok != "" {
			// Per-request clone: RoundTrippers must not mutate the original.
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if t.tokens != nil {
			_ = t.tokens.Clear(req.Context())
		}
		t.notifyUnauthorized()
	}

	return resp, nil
}
