package admin

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/tiiz-app/stuff-vendor-panel/pkg/di"
	"github.com/tiiz-app/stuff-vendor-panel/resource"
)

// Store settings resource wiring.
const (
	TagStore   = "store"
	PathStores = "/stores"
)

// Store is a vendor's store-level settings: name, currencies, defaults.
type Store struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	DefaultCurrencyCode string          `json:"default_currency_code"`
	SupportedCurrencies []StoreCurrency `json:"supported_currencies,omitempty"`
	DefaultRegionID     string          `json:"default_region_id,omitempty"`
	DefaultLocationID   string          `json:"default_location_id,omitempty"`
}

// Validate checks the record at the network boundary.
func (s Store) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.DefaultCurrencyCode, validation.Required, is.CurrencyCode),
	)
}

// StoreCurrency is one currency a store sells in.
type StoreCurrency struct {
	CurrencyCode string `json:"currency_code"`
	IsDefault    bool   `json:"is_default"`
}

// Validate checks the currency code shape.
func (c StoreCurrency) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.CurrencyCode, validation.Required, is.CurrencyCode),
	)
}

// UpdateStorePayload partially updates store settings. Currency changes go
// through the same update: replacing SupportedCurrencies swaps the store's
// currency set.
type UpdateStorePayload struct {
	Name                *string         `json:"name,omitempty"`
	DefaultCurrencyCode *string         `json:"default_currency_code,omitempty"`
	SupportedCurrencies []StoreCurrency `json:"supported_currencies,omitempty"`
	DefaultRegionID     *string         `json:"default_region_id,omitempty"`
	DefaultLocationID   *string         `json:"default_location_id,omitempty"`
}

// Validate rejects fields that are present but malformed.
func (p UpdateStorePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty),
		validation.Field(&p.DefaultCurrencyCode, validation.NilOrNotEmpty, is.CurrencyCode),
		validation.Field(&p.SupportedCurrencies),
	)
}

// NewStores builds the store-settings resource client. A vendor sees one
// store; the client is still list/get shaped because the API is.
func NewStores(c *di.Container) (*resource.Client[Store], error) {
	return di.NewResourceClient[Store](c, TagStore, PathStores)
}
