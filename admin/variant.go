package admin

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tiiz-app/stuff-vendor-panel/pkg/di"
	"github.com/tiiz-app/stuff-vendor-panel/resource"
)

// Product variant resource wiring.
const (
	TagProductVariant   = "product_variant"
	PathProductVariants = "/product-variants"
)

// ProductVariant is one purchasable variation of a product.
type ProductVariant struct {
	ID                string            `json:"id"`
	ProductID         string            `json:"product_id"`
	Title             string            `json:"title"`
	SKU               string            `json:"sku,omitempty"`
	Options           map[string]string `json:"options,omitempty"`
	Prices            []VariantPrice    `json:"prices,omitempty"`
	InventoryQuantity int               `json:"inventory_quantity"`
	ManageInventory   bool              `json:"manage_inventory"`
}

// Validate checks the record at the network boundary.
func (v ProductVariant) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.ID, validation.Required),
		validation.Field(&v.ProductID, validation.Required),
		validation.Field(&v.Title, validation.Required),
	)
}

// VariantPrice is a variant's price in one currency, in minor units.
type VariantPrice struct {
	CurrencyCode string `json:"currency_code"`
	Amount       int    `json:"amount"`
}

// Validate rejects negative amounts.
func (p VariantPrice) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CurrencyCode, validation.Required),
		validation.Field(&p.Amount, validation.Min(0)),
	)
}

// VariantListParams scopes a variant list, most commonly to one product's
// variants. Distinct product ids cache as distinct list entries.
type VariantListParams struct {
	ListParams
	ProductID string
}

// Values implements fetch.QueryParams.
func (p VariantListParams) Values() url.Values {
	v := p.ListParams.Values()
	if p.ProductID != "" {
		v.Set("product_id", p.ProductID)
	}
	return v
}

// CreateVariantPayload creates a variant under a product.
type CreateVariantPayload struct {
	ProductID string            `json:"product_id"`
	Title     string            `json:"title"`
	SKU       string            `json:"sku,omitempty"`
	Options   map[string]string `json:"options,omitempty"`
	Prices    []VariantPrice    `json:"prices,omitempty"`
}

// Validate is the form-time check run before submission.
func (p CreateVariantPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ProductID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Prices),
	)
}

// UpdateVariantPayload partially updates a variant.
type UpdateVariantPayload struct {
	Title  *string        `json:"title,omitempty"`
	SKU    *string        `json:"sku,omitempty"`
	Prices []VariantPrice `json:"prices,omitempty"`
}

// Validate rejects fields that are present but empty.
func (p UpdateVariantPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.Prices),
	)
}

// NewProductVariants builds the product-variant resource client.
func NewProductVariants(c *di.Container) (*resource.Client[ProductVariant], error) {
	return di.NewResourceClient[ProductVariant](c, TagProductVariant, PathProductVariants)
}
