package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guttosm/book-catalog-service/internal/metrics"
)

// Encoder serializes a handler result into its cached payload form.
type Encoder[T any] func(T) ([]byte, error)

// Cached memoizes the responses of one wrapped operation in a KeyValueStore.
//
// Each instance is bound at construction to an operation name, an encoder,
// and a TTL; the TTL is not runtime-configurable. On a hit the stored payload
// is returned and the wrapped function is not run at all, side effects
// included: wrapping a mutating operation means a hit skips the mutation.
// Nothing invalidates entries when the underlying catalog changes, so cached
// reads can diverge from the live catalog until the TTL passes. Both
// behaviors are inherited from the system this service replaces and are
// relied upon by its clients.
type Cached[T any] struct {
	store  KeyValueStore
	op     string
	encode Encoder[T]
	ttl    time.Duration
}

// NewCached builds the cache wrapper for one operation.
func NewCached[T any](store KeyValueStore, op string, encode Encoder[T], ttl time.Duration) *Cached[T] {
	return &Cached[T]{store: store, op: op, encode: encode, ttl: ttl}
}

// Op returns the operation name the wrapper was bound to.
func (cc *Cached[T]) Op() string {
	return cc.op
}

// Do performs one call through the cache.
//
// The key is derived from the operation name and args. On a hit the stored
// bytes come back verbatim with hit=true and fn never runs. On a miss fn is
// run to completion, its result encoded and stored with the TTL in a single
// write, and the encoded payload returned. Backend errors propagate to the
// caller; there are no retries and no fallback to the uncached path.
func (cc *Cached[T]) Do(ctx context.Context, args []Arg, fn func(ctx context.Context) (T, error)) (json.RawMessage, bool, error) {
	key := Key(cc.op, args...)

	raw, ok, err := cc.store.Get(ctx, key)
	if err != nil {
		metrics.RecordCacheOperation(cc.op, "error")
		return nil, false, fmt.Errorf("cache get %q: %w", key, err)
	}
	if ok && len(raw) > 0 {
		metrics.RecordCacheOperation(cc.op, "hit")
		return raw, true, nil
	}
	metrics.RecordCacheOperation(cc.op, "miss")

	result, err := fn(ctx)
	if err != nil {
		return nil, false, err
	}

	payload, err := cc.encode(result)
	if err != nil {
		return nil, false, fmt.Errorf("encode %s result: %w", cc.op, err)
	}

	if err := cc.store.Set(ctx, key, payload, cc.ttl); err != nil {
		metrics.RecordCacheOperation(cc.op, "error")
		return nil, false, fmt.Errorf("cache set %q: %w", key, err)
	}

	return payload, false, nil
}
