package loader

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tiiz-app/stuff-vendor-panel/fetch"
	"github.com/tiiz-app/stuff-vendor-panel/querykey"
	"github.com/tiiz-app/stuff-vendor-panel/resource"
)

// Params carries route parameters as strings. Required ids are read with
// plain indexing: a missing required param is a programming error in the
// route table, not a runtime condition to recover from.
type Params map[string]string

// Get returns the named route param, or the empty string if absent.
func (p Params) Get(name string) string {
	return p[name]
}

// Loader warms the cache for one route before its page renders. The
// router awaits it; a loader error propagates to the routing layer's
// error boundary, never handled here.
type Loader func(ctx context.Context, params Params) error

// Warmer builds loaders. Concurrent navigations that warm the same key
// are collapsed into one fetch.
type Warmer struct {
	group  singleflight.Group
	logger *zap.Logger
}

// Option configures a Warmer.
type Option func(*Warmer)

// WithLogger sets the logger used for warm diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Warmer) {
		w.logger = logger
	}
}

// NewWarmer creates a Warmer.
func NewWarmer(opts ...Option) *Warmer {
	w := &Warmer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Detail returns a loader that ensures the cache holds the record the
// page's get-one read will resolve. idParam names the route param carrying
// the id; query matches the refinements the page's read uses, so the
// warmed key is exactly the key the read looks up.
func Detail[T any](w *Warmer, client *resource.Client[T], idParam string, query fetch.QueryParams) Loader {
	return func(ctx context.Context, params Params) error {
		id := params.Get(idParam)
		key := client.Keys().Detail(id, queryOrNil(query))

		return w.warm(ctx, key, func() error {
			_, err := client.Get(ctx, id, query)
			return err
		})
	}
}

// List returns a loader that ensures the cache holds the page of records a
// list view will render.
func List[T any](w *Warmer, client *resource.Client[T], query fetch.QueryParams) Loader {
	return func(ctx context.Context, params Params) error {
		key := client.Keys().List(queryOrNil(query))

		return w.warm(ctx, key, func() error {
			_, err := client.List(ctx, query)
			return err
		})
	}
}

// All combines loaders into one that warms them concurrently. It fails
// with the first loader error; the route transition either has all its
// data or surfaces the failure.
func All(loaders ...Loader) Loader {
	return func(ctx context.Context, params Params) error {
		g, ctx := errgroup.WithContext(ctx)
		for _, l := range loaders {
			g.Go(func() error {
				return l(ctx, params)
			})
		}
		return g.Wait()
	}
}

// warm runs fn once per in-flight key. A second navigation racing to the
// same key waits on the first fetch instead of issuing its own.
func (w *Warmer) warm(ctx context.Context, key querykey.Key, fn func() error) error {
	flat := key.String()
	_, err, shared := w.group.Do(flat, func() (any, error) {
		return nil, fn()
	})
	if shared {
		w.logger.Debug("loader warm shared across navigations", zap.String("key", flat))
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}

func queryOrNil(query fetch.QueryParams) any {
	if query == nil {
		return nil
	}
	return query
}
