package admin

import (
	"context"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tiiz-app/stuff-vendor-panel/pkg/di"
	"github.com/tiiz-app/stuff-vendor-panel/resource"
)

// Inventory item resource wiring.
const (
	TagInventoryItem   = "inventory_item"
	PathInventoryItems = "/inventory-items"
)

// InventoryItem is a stocked unit tracked per stock location.
type InventoryItem struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	Title            string          `json:"title"`
	RequiresShipping bool            `json:"requires_shipping"`
	StockedQuantity  int             `json:"stocked_quantity"`
	ReservedQuantity int             `json:"reserved_quantity"`
	LocationLevels   []LocationLevel `json:"location_levels,omitempty"`
}

// Validate checks the record at the network boundary.
func (i InventoryItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Required),
		validation.Field(&i.StockedQuantity, validation.Min(0)),
		validation.Field(&i.ReservedQuantity, validation.Min(0)),
	)
}

// LocationLevel is the per-location stock of an inventory item.
type LocationLevel struct {
	ID               string `json:"id"`
	LocationID       string `json:"location_id"`
	StockedQuantity  int    `json:"stocked_quantity"`
	IncomingQuantity int    `json:"incoming_quantity"`
}

// CreateInventoryItemPayload creates an item.
type CreateInventoryItemPayload struct {
	SKU              string `json:"sku"`
	Title            string `json:"title,omitempty"`
	RequiresShipping bool   `json:"requires_shipping"`
}

// Validate is the form-time check run before submission.
func (p CreateInventoryItemPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.SKU, validation.Required),
	)
}

// UpdateInventoryItemPayload partially updates an item.
type UpdateInventoryItemPayload struct {
	SKU              *string `json:"sku,omitempty"`
	Title            *string `json:"title,omitempty"`
	RequiresShipping *bool   `json:"requires_shipping,omitempty"`
}

// Validate rejects fields that are present but empty.
func (p UpdateInventoryItemPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.SKU, validation.NilOrNotEmpty),
	)
}

// UpdateLocationLevelPayload adjusts an item's stock at one location.
type UpdateLocationLevelPayload struct {
	StockedQuantity  *int `json:"stocked_quantity,omitempty"`
	IncomingQuantity *int `json:"incoming_quantity,omitempty"`
}

// Validate rejects negative quantities.
func (p UpdateLocationLevelPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.StockedQuantity, validation.Min(0)),
		validation.Field(&p.IncomingQuantity, validation.Min(0)),
	)
}

// NewInventoryItems builds the inventory-item resource client.
func NewInventoryItems(c *di.Container) (*resource.Client[InventoryItem], error) {
	return di.NewResourceClient[InventoryItem](c, TagInventoryItem, PathInventoryItems)
}

// UpdateLocationLevel updates an item's stock level at one location. The
// level lives inside the parent item, so the mutation invalidates the
// item's detail entries and the inventory lists, same as a direct update.
func UpdateLocationLevel(ctx context.Context, items *resource.Client[InventoryItem], itemID, locationID string, payload UpdateLocationLevelPayload) (InventoryItem, error) {
	return items.UpdateSub(ctx, itemID, "location-levels/"+url.PathEscape(locationID), payload)
}
