package catalog

import "cerberus/models"

func price(v int64) *int64 { return &v }

var defaultData = models.Catalog{
	Business: models.Business{
		Name:         "Cerberus Visuals",
		BookingEmail: "bookings@cerberusvisuals.com",
		CreditLine:   `"Shot by Cerberus Visuals" in the video description and a tag on every post.`,
	},
	Packages: []models.CatalogPackage{
		{
			ID:          "starter",
			Name:        "Starter",
			Price:       300,
			Description: "One location, one look, a clean performance edit.",
			Includes:    []string{"Up to 2 hours on set", "1 location", "Performance edit", "Basic colour grade"},
			Timeline:    []string{"Shoot within 2 weeks of booking", "First cut in 7 days", "1 revision round"},
			BestFor:     "First releases and freestyle drops",
		},
		{
			ID:          "standard",
			Name:        "Standard",
			Price:       500,
			Description: "Two locations with a light storyline woven into the performance.",
			Includes:    []string{"Up to 4 hours on set", "2 locations", "Story + performance edit", "Full colour grade"},
			Timeline:    []string{"Shoot within 2 weeks of booking", "First cut in 10 days", "2 revision rounds"},
			BestFor:     "Singles with a concept",
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Price:       900,
			Description: "A full day, a planned treatment and cinematic finishing.",
			Includes:    []string{"Up to 8 hours on set", "3 locations", "Treatment and shot list", "Cinematic grade", "Vertical cutdowns"},
			Timeline:    []string{"Pre-production call", "Shoot within 3 weeks of booking", "First cut in 14 days", "3 revision rounds"},
			BestFor:     "Lead singles and label releases",
		},
	},
	Addons: []models.CatalogAddon{
		{ID: "extra-location", Name: "Extra location", Type: models.AddonFixed, Price: 100},
		{ID: "bts-reel", Name: "Behind-the-scenes reel", Type: models.AddonFixed, Price: 150},
		{ID: "vertical-cuts", Name: "Vertical cutdowns (3x)", Type: models.AddonFixed, Price: 50},
		{ID: "drone", Name: "Drone footage", Type: models.AddonQuoted, PriceNote: "$150–$300 depending on location"},
		{ID: "vfx", Name: "Visual effects", Type: models.AddonQuoted, PriceNote: "Quoted after treatment review"},
	},
	PostOnly: []models.PostOnlyService{
		{ID: "edit-only", Name: "Edit only (your footage)", Price: price(250), PriceNote: "$250 flat"},
		{ID: "grade-only", Name: "Colour grade only", PriceNote: "From $150, quoted per project"},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultData)
	if err != nil {
		panic(err)
	}
	return c
}
