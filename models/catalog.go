// File: models/catalog.go
package models

// AddonType distinguishes add-ons with a known price from those priced on request.
type AddonType string

const (
	AddonFixed  AddonType = "fixed"
	AddonQuoted AddonType = "quoted"
)

// CatalogPackage is a bookable production package.
type CatalogPackage struct {
	ID          string   `mapstructure:"id" json:"id"`
	Name        string   `mapstructure:"name" json:"name"`
	Price       int64    `mapstructure:"price" json:"price"` // whole dollars
	Description string   `mapstructure:"description" json:"description"`
	Includes    []string `mapstructure:"includes" json:"includes"`
	Timeline    []string `mapstructure:"timeline" json:"timeline"`
	BestFor     string   `mapstructure:"bestFor" json:"bestFor"`
}

// CatalogAddon is an optional extra. Price is only meaningful for fixed add-ons,
// PriceNote only for quoted ones.
type CatalogAddon struct {
	ID        string    `mapstructure:"id" json:"id"`
	Name      string    `mapstructure:"name" json:"name"`
	Type      AddonType `mapstructure:"type" json:"type"`
	Price     int64     `mapstructure:"price" json:"price,omitempty"`
	PriceNote string    `mapstructure:"priceNote" json:"priceNote,omitempty"`
}

// PostOnlyService is a standalone service that bypasses packages and add-ons.
type PostOnlyService struct {
	ID        string `mapstructure:"id" json:"id"`
	Name      string `mapstructure:"name" json:"name"`
	Price     *int64 `mapstructure:"price" json:"price,omitempty"`
	PriceNote string `mapstructure:"priceNote" json:"priceNote"`
}

// Business holds the site-wide metadata shown next to estimates.
type Business struct {
	Name         string `mapstructure:"name" json:"name"`
	BookingEmail string `mapstructure:"bookingEmail" json:"bookingEmail"`
	CreditLine   string `mapstructure:"creditLine" json:"creditLine"`
}

// Catalog is the read-only price list consumed by the estimator.
type Catalog struct {
	Business Business          `mapstructure:"business" json:"business"`
	Packages []CatalogPackage  `mapstructure:"packages" json:"packages"`
	Addons   []CatalogAddon    `mapstructure:"addons" json:"addons"`
	PostOnly []PostOnlyService `mapstructure:"postOnly" json:"postOnly"`
}
