package repository

import (
	"github.com/shopspring/decimal"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/entity"
)

// SeedCatalog is the menu a fresh (or unrecoverable) store starts with.
func SeedCatalog() []entity.MenuItem {
	return []entity.MenuItem{
		{
			ID:          "idly",
			Name:        "Idly",
			Price:       decimal.NewFromInt(30),
			Image:       "https://images.unsplash.com/photo-1607434472257-d9c17982a805?auto=format&fit=crop&w=400&q=80",
			Description: "Steamed rice cakes served with chutney.",
		},
		{
			ID:          "puttu",
			Name:        "Puttu",
			Price:       decimal.NewFromInt(45),
			Image:       "https://images.unsplash.com/photo-1559628233-b9f95c707ae9?auto=format&fit=crop&w=400&q=80",
			Description: "Fluffy rice logs with coconut & banana.",
		},
		{
			ID:          "poori",
			Name:        "Poori",
			Price:       decimal.NewFromInt(40),
			Image:       "https://images.unsplash.com/photo-1612198527553-427a01145880?auto=format&fit=crop&w=400&q=80",
			Description: "Golden fried bread with masala curry.",
		},
		{
			ID:          "coffee",
			Name:        "Filter Coffee",
			Price:       decimal.NewFromInt(35),
			Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=400&q=80",
			Description: "Strong decoction with frothy milk.",
		},
		{
			ID:          "dosai",
			Name:        "Dosai",
			Price:       decimal.NewFromInt(50),
			Image:       "https://images.unsplash.com/photo-1612874472290-20ca9cb35ffb?auto=format&fit=crop&w=400&q=80",
			Description: "Crisp dosa with sambar and chutney.",
		},
		{
			ID:          "vada",
			Name:        "Medu Vada",
			Price:       decimal.NewFromInt(25),
			Image:       "https://images.unsplash.com/photo-1641743517677-fe7f33c074a2?auto=format&fit=crop&w=400&q=80",
			Description: "Crispy lentil doughnuts.",
		},
		{
			ID:          "pazhampori",
			Name:        "Pazhampori",
			Price:       decimal.NewFromInt(20),
			Image:       "https://images.unsplash.com/photo-1528839590813-7dc16def4ff7?auto=format&fit=crop&w=400&q=80",
			Description: "Sweet banana fritters.",
		},
	}
}
