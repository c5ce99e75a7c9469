package service

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultStoreTimeout       = 5 * time.Second
	DefaultRoleResolveTimeout = 3 * time.Second
	DefaultFeatureCacheTTL    = 30 * time.Second
)

// ErrStoreUnavailable wraps store failures that callers should report as
// transient: deadlines, cancellations and connectivity errors.
var ErrStoreUnavailable = errors.New("store unavailable")

// bounded returns ctx limited to d, or to fallback when d is not positive.
func bounded(ctx context.Context, d, fallback time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = fallback
	}
	return context.WithTimeout(ctx, d)
}

// unavailable marks err as ErrStoreUnavailable when it came from a deadline
// or cancellation, keeping the original error in the chain.
func unavailable(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return err
}
