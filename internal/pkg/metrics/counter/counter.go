package counter

import (
	"context"
	"errors"
	"strconv"

	"github.com/example/learnhub/internal/pkg/cache"
)

const pageViewsKey = "page:counters:views"

// ErrUnavailable is returned when the cache backend is not reachable.
// Counters are best effort; callers treat this as "no data", not a fault.
var ErrUnavailable = errors.New("counter: cache not connected")

// AddPageView increments the pending view counter for a rendered view.
func AddPageView(view string) error {
	if !cache.Connected() {
		return ErrUnavailable
	}
	ctx := context.Background()
	return cache.GetClient().HIncrBy(ctx, pageViewsKey, view, 1).Err()
}

// PageViews returns the current per-view counters.
func PageViews() (map[string]int64, error) {
	if !cache.Connected() {
		return nil, ErrUnavailable
	}
	ctx := context.Background()
	data, err := cache.GetClient().HGetAll(ctx, pageViewsKey).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(data))
	for view, raw := range data {
		n, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			continue
		}
		out[view] = n
	}
	return out, nil
}

// Reset drops all page view counters.
func Reset() error {
	if !cache.Connected() {
		return ErrUnavailable
	}
	return cache.Delete(pageViewsKey)
}
