// File: models/estimate.go
package models

import "time"

// FixedAddonSnapshot copies a fixed add-on at selection time so later catalog
// edits don't change a saved estimate.
type FixedAddonSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// QuotedAddonSnapshot copies a quoted add-on at selection time.
type QuotedAddonSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PriceNote string `json:"priceNote"`
}

// DraftEstimate is the single client-owned estimate. Either the package fields
// or the post-only fields are populated, never both.
type DraftEstimate struct {
	PackageID    *string               `json:"packageId"`
	PackageName  string                `json:"packageName"`
	BasePrice    int64                 `json:"basePrice"`
	AddonsFixed  []FixedAddonSnapshot  `json:"addonsFixed"`
	AddonsQuoted []QuotedAddonSnapshot `json:"addonsQuoted"`
	RushDays     int                   `json:"rushDays"`
	RushCost     int64                 `json:"rushCost"`
	Total        int64                 `json:"total"`

	PostOnly      *string `json:"postOnly"`
	PostOnlyName  string  `json:"postOnlyName,omitempty"`
	PostOnlyPrice int64   `json:"postOnlyPrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsEmpty reports whether no package and no post-only service is selected.
// Drafts come back from clients, so an empty id counts as no selection.
func (d *DraftEstimate) IsEmpty() bool {
	return d == nil || (!selected(d.PackageID) && !selected(d.PostOnly))
}

// IsPostOnly reports whether the estimate is in post-only mode.
func (d *DraftEstimate) IsPostOnly() bool {
	return d != nil && selected(d.PostOnly)
}

func selected(id *string) bool {
	return id != nil && *id != ""
}
