// Package catalog holds the read-only price list the estimator works from.
package catalog

import (
	"fmt"

	"cerberus/models"

	"github.com/spf13/viper"
)

// Catalog wraps models.Catalog with id lookups.
type Catalog struct {
	data     models.Catalog
	packages map[string]models.CatalogPackage
	addons   map[string]models.CatalogAddon
	postOnly map[string]models.PostOnlyService
}

// New validates data and indexes it by id.
func New(data models.Catalog) (*Catalog, error) {
	data.Packages = append([]models.CatalogPackage(nil), data.Packages...)
	data.Addons = append([]models.CatalogAddon(nil), data.Addons...)
	data.PostOnly = append([]models.PostOnlyService(nil), data.PostOnly...)

	c := &Catalog{
		data:     data,
		packages: make(map[string]models.CatalogPackage, len(data.Packages)),
		addons:   make(map[string]models.CatalogAddon, len(data.Addons)),
		postOnly: make(map[string]models.PostOnlyService, len(data.PostOnly)),
	}

	for _, p := range data.Packages {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: package %q has no id", p.Name)
		}
		if _, dup := c.packages[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate package id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog: package %q has a negative price", p.ID)
		}
		c.packages[p.ID] = p
	}

	for _, a := range data.Addons {
		if a.ID == "" {
			return nil, fmt.Errorf("catalog: add-on %q has no id", a.Name)
		}
		if _, dup := c.addons[a.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate add-on id %q", a.ID)
		}
		switch a.Type {
		case models.AddonFixed:
			if a.Price <= 0 {
				return nil, fmt.Errorf("catalog: fixed add-on %q needs a price", a.ID)
			}
		case models.AddonQuoted:
			if a.Price != 0 {
				return nil, fmt.Errorf("catalog: quoted add-on %q must not carry a price", a.ID)
			}
		default:
			return nil, fmt.Errorf("catalog: add-on %q has unknown type %q", a.ID, a.Type)
		}
		c.addons[a.ID] = a
	}

	for _, s := range data.PostOnly {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog: post-only service %q has no id", s.Name)
		}
		if _, dup := c.postOnly[s.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate post-only id %q", s.ID)
		}
		c.postOnly[s.ID] = s
	}

	return c, nil
}

// Load reads a catalog from a YAML or JSON file. An empty path returns the
// built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var data models.Catalog
	if err := v.Unmarshal(&data); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return New(data)
}

// Data returns the underlying catalog for serialisation.
func (c *Catalog) Data() models.Catalog { return c.data }

// Business returns the site metadata.
func (c *Catalog) Business() models.Business { return c.data.Business }

func (c *Catalog) Package(id string) (models.CatalogPackage, bool) {
	p, ok := c.packages[id]
	return p, ok
}

func (c *Catalog) Addon(id string) (models.CatalogAddon, bool) {
	a, ok := c.addons[id]
	return a, ok
}

func (c *Catalog) PostOnly(id string) (models.PostOnlyService, bool) {
	s, ok := c.postOnly[id]
	return s, ok
}
