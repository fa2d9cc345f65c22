package admin

import (
	"github.com/tiiz-app/stuff-vendor-panel/pkg/di"
	"github.com/tiiz-app/stuff-vendor-panel/resource"
)

// Resources bundles the panel's resource clients, all sharing the
// container's store and fetch client.
type Resources struct {
	ShippingProfiles *resource.Client[ShippingProfile]
	InventoryItems   *resource.Client[InventoryItem]
	Stores           *resource.Client[Store]
	ProductVariants  *resource.Client[ProductVariant]
}

// New wires every resource client from one container.
func New(c *di.Container) (*Resources, error) {
	shippingProfiles, err := NewShippingProfiles(c)
	if err != nil {
		return nil, err
	}
	inventoryItems, err := NewInventoryItems(c)
	if err != nil {
		return nil, err
	}
	stores, err := NewStores(c)
	if err != nil {
		return nil, err
	}
	productVariants, err := NewProductVariants(c)
	if err != nil {
		return nil, err
	}

	return &Resources{
		ShippingProfiles: shippingProfiles,
		InventoryItems:   inventoryItems,
		Stores:           stores,
		ProductVariants:  productVariants,
	}, nil
}
