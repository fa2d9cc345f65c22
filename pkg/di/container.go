// Package di wires the panel's data layer: one store, one fetch client,
// one logger, shared by every resource client built from the container.
//
// The container exists so nothing in the layer is a package-level
// singleton. Each test builds its own container against its own test
// server and store; two panels in one process never share cache entries.
package di

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tiiz-app/stuff-vendor-panel/fetch"
	"github.com/tiiz-app/stuff-vendor-panel/loader"
	"github.com/tiiz-app/stuff-vendor-panel/resource"
	"github.com/tiiz-app/stuff-vendor-panel/store"
)

// Container holds the singleton collaborators resource clients share.
type Container struct {
	store  store.Store
	fetch  *fetch.Client
	warmer *loader.Warmer
	logger *zap.Logger
}

// Option configures a Container.
type Option func(*containerConfig)

type containerConfig struct {
	store       store.Store
	storeConfig store.Config
	logger      *zap.Logger
	fetchOpts   []fetch.Option
}

// WithStore uses a pre-built store instead of the default in-process one,
// for example a Redis store shared across replicas.
func WithStore(s store.Store) Option {
	return func(c *containerConfig) {
		c.store = s
	}
}

// WithStoreConfig tunes the default in-process store. Ignored when
// WithStore is used.
func WithStoreConfig(cfg store.Config) Option {
	return func(c *containerConfig) {
		c.storeConfig = cfg
	}
}

// WithLogger sets the logger handed to every client and loader.
func WithLogger(logger *zap.Logger) Option {
	return func(c *containerConfig) {
		c.logger = logger
	}
}

// WithFetchOptions forwards options to the fetch client, typically auth
// headers.
func WithFetchOptions(opts ...fetch.Option) Option {
	return func(c *containerConfig) {
		c.fetchOpts = append(c.fetchOpts, opts...)
	}
}

// NewContainer builds a container rooted at the admin API base URL.
func NewContainer(baseURL string, opts ...Option) (*Container, error) {
	cfg := containerConfig{
		storeConfig: store.DefaultConfig(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := cfg.store
	if s == nil {
		var err error
		s, err = store.NewMemoryStore(cfg.storeConfig)
		if err != nil {
			return nil, fmt.Errorf("di: build store: %w", err)
		}
	}

	fc, err := fetch.NewClient(baseURL, cfg.fetchOpts...)
	if err != nil {
		return nil, fmt.Errorf("di: build fetch client: %w", err)
	}

	return &Container{
		store:  s,
		fetch:  fc,
		warmer: loader.NewWarmer(loader.WithLogger(cfg.logger)),
		logger: cfg.logger,
	}, nil
}

// Store returns the shared cache store.
func (c *Container) Store() store.Store {
	return c.store
}

// Fetch returns the shared fetch client.
func (c *Container) Fetch() *fetch.Client {
	return c.fetch
}

// Warmer returns the shared loader warmer, so every route's loaders
// deduplicate against the same in-flight set.
func (c *Container) Warmer() *loader.Warmer {
	return c.warmer
}

// Logger returns the container's logger.
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// NewResourceClient builds a resource client on the container's shared
// collaborators. Methods cannot have type parameters, so this is a
// package-level function: NewResourceClient[ShippingProfile](c, tag, path).
func NewResourceClient[T any](c *Container, tag, path string) (*resource.Client[T], error) {
	return resource.NewClient[T](resource.Config{
		Tag:    tag,
		Path:   path,
		Fetch:  c.fetch,
		Store:  c.store,
		Logger: c.logger,
	})
}
