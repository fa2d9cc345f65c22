package admin

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tiiz-app/stuff-vendor-panel/pkg/di"
	"github.com/tiiz-app/stuff-vendor-panel/resource"
)

// Shipping profile resource wiring.
const (
	TagShippingProfile   = "shipping_profile"
	PathShippingProfiles = "/shipping-profiles"
)

// Shipping profile types as the admin API exposes them.
const (
	ShippingProfileTypeDefault  = "default"
	ShippingProfileTypeGiftCard = "gift_card"
	ShippingProfileTypeCustom   = "custom"
)

// ShippingProfile groups products that ship together under one set of
// shipping options.
type ShippingProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the record at the network boundary: a profile without an
// id or name is a malformed server response, not data to render.
func (p ShippingProfile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Type, validation.Required, validation.In(
			ShippingProfileTypeDefault,
			ShippingProfileTypeGiftCard,
			ShippingProfileTypeCustom,
		)),
	)
}

// CreateShippingProfilePayload creates a profile.
type CreateShippingProfilePayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Validate is the form-time check run before submission.
func (p CreateShippingProfilePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Type, validation.Required, validation.In(
			ShippingProfileTypeDefault,
			ShippingProfileTypeGiftCard,
			ShippingProfileTypeCustom,
		)),
	)
}

// UpdateShippingProfilePayload partially updates a profile; nil fields are
// left unchanged.
type UpdateShippingProfilePayload struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// Validate rejects fields that are present but empty.
func (p UpdateShippingProfilePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty),
		validation.Field(&p.Type, validation.NilOrNotEmpty, validation.In(
			ShippingProfileTypeDefault,
			ShippingProfileTypeGiftCard,
			ShippingProfileTypeCustom,
		)),
	)
}

// NewShippingProfiles builds the shipping-profile resource client.
func NewShippingProfiles(c *di.Container) (*resource.Client[ShippingProfile], error) {
	return di.NewResourceClient[ShippingProfile](c, TagShippingProfile, PathShippingProfiles)
}
