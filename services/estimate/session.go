package estimate

import (
	"fmt"
	"time"

	"cerberus/models"
	"cerberus/services/catalog"
)

// Session ties the pure estimator to a Store: every change loads the previous
// draft, computes the next one and saves it.
type Session struct {
	Catalog *catalog.Catalog
	Store   Store
	Now     func() time.Time
}

func NewSession(cat *catalog.Catalog, store Store) *Session {
	return &Session{Catalog: cat, Store: store, Now: time.Now}
}

// Current returns the stored draft, or nil.
func (s *Session) Current() (*models.DraftEstimate, error) {
	return s.Store.Load()
}

// Recompute applies sel and persists the result.
func (s *Session) Recompute(sel Selection) (models.DraftEstimate, error) {
	prev, err := s.Store.Load()
	if err != nil {
		return models.DraftEstimate{}, err
	}
	return s.save(Compute(s.Catalog, sel, prev, s.Now()))
}

// ChoosePackage swaps the package of the stored draft, keeping its add-ons
// and rush days. A post-only draft starts from an empty selection.
func (s *Session) ChoosePackage(id string) (models.DraftEstimate, error) {
	prev, err := s.Store.Load()
	if err != nil {
		return models.DraftEstimate{}, err
	}
	sel := SelectionFrom(prev)
	sel.PackageID = id
	return s.save(Compute(s.Catalog, sel, prev, s.Now()))
}

// ChoosePostOnly switches to post-only mode and persists the result.
func (s *Session) ChoosePostOnly(id string) (models.DraftEstimate, error) {
	prev, err := s.Store.Load()
	if err != nil {
		return models.DraftEstimate{}, err
	}
	next, err := SelectPostOnly(s.Catalog, id, prev, s.Now())
	if err != nil {
		return models.DraftEstimate{}, err
	}
	return s.save(next)
}

func (s *Session) save(next models.DraftEstimate) (models.DraftEstimate, error) {
	if err := s.Store.Save(next); err != nil {
		return models.DraftEstimate{}, fmt.Errorf("save estimate: %w", err)
	}
	return next, nil
}

// Summary formats the stored draft.
func (s *Session) Summary() (string, error) {
	est, err := s.Store.Load()
	if err != nil {
		return "", err
	}
	return Summary(est, s.Catalog.Business()), nil
}
