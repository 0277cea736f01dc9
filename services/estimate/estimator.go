// Package estimate computes draft price estimates from catalog selections and
// renders them as the plain-text summary sent with a contact submission.
package estimate

import (
	"errors"
	"time"

	"cerberus/models"
	"cerberus/services/catalog"
)

const (
	RushRatePerDay int64 = 200
	RushCap        int64 = 600
	MaxRushDays          = 10

	QuotedNote         = "Note: quoted/range items are not included in the total above until confirmed."
	defaultQuotedLabel = "Quoted"
)

var ErrUnknownPostOnly = errors.New("unknown post-only service")

// Selection is the estimator input: at most one package, any add-ons and a
// rush day count.
type Selection struct {
	PackageID string   `json:"packageId"`
	AddonIDs  []string `json:"addonIds"`
	RushDays  int      `json:"rushDays"`
}

// SelectionFrom rebuilds the selection a draft was computed from, so a later
// change to one part keeps the rest. Post-only and empty drafts yield the zero
// Selection.
func SelectionFrom(est *models.DraftEstimate) Selection {
	if est.IsEmpty() || est.IsPostOnly() {
		return Selection{}
	}
	var sel Selection
	if est.PackageID != nil {
		sel.PackageID = *est.PackageID
	}
	for _, a := range est.AddonsFixed {
		sel.AddonIDs = append(sel.AddonIDs, a.ID)
	}
	for _, a := range est.AddonsQuoted {
		sel.AddonIDs = append(sel.AddonIDs, a.ID)
	}
	sel.RushDays = est.RushDays
	return sel
}

// ClampRushDays bounds days to [0, MaxRushDays].
func ClampRushDays(days int) int {
	if days < 0 {
		return 0
	}
	if days > MaxRushDays {
		return MaxRushDays
	}
	return days
}

// RushCost is the flat per-day surcharge, capped at RushCap.
func RushCost(days int) int64 {
	return min(int64(ClampRushDays(days))*RushRatePerDay, RushCap)
}

// Compute builds the package-mode estimate for sel on top of prev. Any
// post-only selection in prev is cleared. Unknown package or add-on ids are
// ignored. Add-ons are snapshotted in catalog order.
func Compute(cat *catalog.Catalog, sel Selection, prev *models.DraftEstimate, now time.Time) models.DraftEstimate {
	var next models.DraftEstimate
	if prev != nil {
		next = *prev
	}

	next.PackageID = nil
	next.PackageName = ""
	next.BasePrice = 0
	if pkg, ok := cat.Package(sel.PackageID); ok {
		id := pkg.ID
		next.PackageID = &id
		next.PackageName = pkg.Name
		next.BasePrice = pkg.Price
	}

	checked := make(map[string]bool, len(sel.AddonIDs))
	for _, id := range sel.AddonIDs {
		checked[id] = true
	}
	next.AddonsFixed = []models.FixedAddonSnapshot{}
	next.AddonsQuoted = []models.QuotedAddonSnapshot{}
	var fixedTotal int64
	for _, a := range cat.Data().Addons {
		if !checked[a.ID] {
			continue
		}
		if a.Type == models.AddonFixed {
			next.AddonsFixed = append(next.AddonsFixed, models.FixedAddonSnapshot{ID: a.ID, Name: a.Name, Price: a.Price})
			fixedTotal += a.Price
			continue
		}
		note := a.PriceNote
		if note == "" {
			note = defaultQuotedLabel
		}
		next.AddonsQuoted = append(next.AddonsQuoted, models.QuotedAddonSnapshot{ID: a.ID, Name: a.Name, PriceNote: note})
	}

	next.RushDays = ClampRushDays(sel.RushDays)
	next.RushCost = RushCost(next.RushDays)
	next.Total = next.BasePrice + fixedTotal + next.RushCost

	next.PostOnly = nil
	next.PostOnlyName = ""
	next.PostOnlyPrice = 0
	next.CreatedAt = now.UTC()
	return next
}

// SelectPostOnly switches the estimate to the post-only service id, clearing
// every package, add-on and rush field.
func SelectPostOnly(cat *catalog.Catalog, id string, prev *models.DraftEstimate, now time.Time) (models.DraftEstimate, error) {
	svc, ok := cat.PostOnly(id)
	if !ok {
		return models.DraftEstimate{}, ErrUnknownPostOnly
	}

	var next models.DraftEstimate
	if prev != nil {
		next = *prev
	}
	var price int64
	if svc.Price != nil {
		price = *svc.Price
	}

	sid := svc.ID
	next.PostOnly = &sid
	next.PostOnlyName = svc.Name
	next.PostOnlyPrice = price

	next.PackageID = nil
	next.PackageName = ""
	next.BasePrice = 0
	next.AddonsFixed = []models.FixedAddonSnapshot{}
	next.AddonsQuoted = []models.QuotedAddonSnapshot{}
	next.RushDays = 0
	next.RushCost = 0
	next.Total = price
	next.CreatedAt = now.UTC()
	return next, nil
}

// QuotedCaveat returns the note shown under the total when quoted add-ons are
// selected, or "".
func QuotedCaveat(est *models.DraftEstimate) string {
	if est == nil || len(est.AddonsQuoted) == 0 {
		return ""
	}
	return QuotedNote
}
