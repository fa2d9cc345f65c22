package resource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/tiiz-app/stuff-vendor-panel/fetch"
	"github.com/tiiz-app/stuff-vendor-panel/querykey"
	"github.com/tiiz-app/stuff-vendor-panel/store"
)

// Page is the list-operation result: one page of records plus the total
// count across all pages.
type Page[T any] struct {
	Items  []T `json:"items"`
	Count  int `json:"count"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Validate checks every record on the page that carries validation rules.
func (p Page[T]) Validate() error {
	return validation.Validate(p.Items)
}

// Config wires a resource client to its collaborators. Tag, Path, Fetch
// and Store are required; everything is injected, nothing is global.
type Config struct {
	// Tag is the resource tag used as the first query-key segment,
	// e.g. "shipping_profile".
	Tag string

	// Path is the API path for the resource collection,
	// e.g. "/shipping-profiles".
	Path string

	// Fetch issues the HTTP requests.
	Fetch *fetch.Client

	// Store caches reads and receives invalidations.
	Store store.Store

	// Logger receives invalidation failures. Defaults to a nop logger.
	Logger *zap.Logger
}

// Validate checks that the required collaborators are present.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Tag, validation.Required),
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Fetch, validation.Required),
		validation.Field(&c.Store, validation.Required),
	)
}

// Client is the data-access surface for one resource: list, get, create,
// update, delete, uniform across resources. Reads are cached under keys
// from the resource's key factory; mutations invalidate the affected key
// prefixes on success and leave the cache untouched on failure.
type Client[T any] struct {
	tag    string
	path   string
	keys   querykey.Factory
	fetch  *fetch.Client
	store  store.Store
	logger *zap.Logger
}

// NewClient creates a resource client from the given config.
func NewClient[T any](cfg Config) (*Client[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("resource: config: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client[T]{
		tag:    cfg.Tag,
		path:   cfg.Path,
		keys:   querykey.NewFactory(cfg.Tag),
		fetch:  cfg.Fetch,
		store:  cfg.Store,
		logger: logger,
	}, nil
}

// Keys returns the client's query-key factory. Loaders use it to warm the
// exact keys the client's reads resolve from.
func (c *Client[T]) Keys() querykey.Factory {
	return c.keys
}

// List fetches one page of records, cached under List(params). params may
// be nil for an unfiltered list.
func (c *Client[T]) List(ctx context.Context, params fetch.QueryParams) (Page[T], error) {
	key := c.keys.List(keyParams(params))
	return store.GetOrFetch(ctx, c.store, key, func(ctx context.Context) (Page[T], error) {
		var page Page[T]
		err := c.fetch.Do(ctx, http.MethodGet, c.path, params, nil, &page)
		return page, err
	})
}

// Get fetches a single record by id, cached under Detail(id, params).
// A failed fetch caches nothing for the id.
func (c *Client[T]) Get(ctx context.Context, id string, params fetch.QueryParams) (T, error) {
	key := c.keys.Detail(id, keyParams(params))
	return store.GetOrFetch(ctx, c.store, key, func(ctx context.Context) (T, error) {
		var record T
		err := c.fetch.Do(ctx, http.MethodGet, c.itemPath(id), params, nil, &record)
		return record, err
	})
}

// Create posts a new record. On success every list entry goes stale: the
// new record may appear in any filtered view. Detail entries are left
// alone — an id that did not exist cannot have been cached.
func (c *Client[T]) Create(ctx context.Context, payload any) (T, error) {
	var record T
	if err := validation.Validate(payload); err != nil {
		return record, fmt.Errorf("resource %s: create payload: %w", c.tag, err)
	}

	if err := c.fetch.Do(ctx, http.MethodPost, c.path, nil, payload, &record); err != nil {
		return record, err
	}

	c.invalidate(ctx, c.keys.Lists())
	return record, nil
}

// Update posts a partial payload to an existing record. On success both
// the record's detail entries and every list entry go stale; list rows may
// display any of the changed fields. Other ids' detail entries are
// untouched.
func (c *Client[T]) Update(ctx context.Context, id string, payload any) (T, error) {
	var record T
	if err := validation.Validate(payload); err != nil {
		return record, fmt.Errorf("resource %s: update payload: %w", c.tag, err)
	}

	if err := c.fetch.Do(ctx, http.MethodPost, c.itemPath(id), nil, payload, &record); err != nil {
		return record, err
	}

	c.invalidate(ctx, c.keys.Detail(id, nil), c.keys.Lists())
	return record, nil
}

// UpdateSub posts a payload to a sub-resource of a record, for example an
// inventory item's location level. The parent record is what changes, so
// invalidation matches Update: the parent's detail entries plus all lists.
func (c *Client[T]) UpdateSub(ctx context.Context, id, subPath string, payload any) (T, error) {
	var record T
	if err := validation.Validate(payload); err != nil {
		return record, fmt.Errorf("resource %s: %s payload: %w", c.tag, subPath, err)
	}

	path := c.itemPath(id) + "/" + subPath
	if err := c.fetch.Do(ctx, http.MethodPost, path, nil, payload, &record); err != nil {
		return record, err
	}

	c.invalidate(ctx, c.keys.Detail(id, nil), c.keys.Lists())
	return record, nil
}

// Delete removes a record. Invalidation matches Update: the deleted
// record's detail entries and every list entry go stale.
func (c *Client[T]) Delete(ctx context.Context, id string) error {
	if err := c.fetch.Do(ctx, http.MethodDelete, c.itemPath(id), nil, nil, nil); err != nil {
		return err
	}

	c.invalidate(ctx, c.keys.Detail(id, nil), c.keys.Lists())
	return nil
}

// invalidate marks the given prefixes stale. A failing invalidation never
// fails the mutation that triggered it; the write already happened and the
// entries will age out on TTL. It is logged instead.
func (c *Client[T]) invalidate(ctx context.Context, prefixes ...querykey.Key) {
	for _, prefix := range prefixes {
		if err := c.store.Invalidate(ctx, prefix); err != nil {
			c.logger.Warn("cache invalidation failed",
				zap.String("resource", c.tag),
				zap.String("prefix", prefix.String()),
				zap.Error(err),
			)
		}
	}
}

func (c *Client[T]) itemPath(id string) string {
	return c.path + "/" + url.PathEscape(id)
}

// keyParams narrows a possibly-nil params interface for the key factory,
// so a nil params value produces the bare list/detail key.
func keyParams(params fetch.QueryParams) any {
	if params == nil {
		return nil
	}
	return params
}
