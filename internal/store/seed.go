package store

import "github.com/lewtec/galeria/internal/domain"

type seedItem struct {
	data string
	tags []string
}

// placeholders shown on a fresh gallery
var seedItems = []seedItem{
	{
		data: `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="400" height="300"%3E%3Crect fill="%234a90e2" width="400" height="300"/%3E%3Ctext x="50%25" y="50%25" font-size="24" fill="white" text-anchor="middle" dy=".3em"%3EBettiah Palace%3C/text%3E%3C/svg%3E`,
		tags: []string{"palace", "historical", "architecture"},
	},
	{
		data: `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="400" height="300"%3E%3Crect fill="%23e74c3c" width="400" height="300"/%3E%3Ctext x="50%25" y="50%25" font-size="24" fill="white" text-anchor="middle" dy=".3em"%3EAncient Temple%3C/text%3E%3C/svg%3E`,
		tags: []string{"temple", "religious", "ancient"},
	},
	{
		data: `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="400" height="300"%3E%3Crect fill="%2327ae60" width="400" height="300"/%3E%3Ctext x="50%25" y="50%25" font-size="24" fill="white" text-anchor="middle" dy=".3em"%3EColonial Building%3C/text%3E%3C/svg%3E`,
		tags: []string{"colonial-era", "architecture", "historical"},
	},
	{
		data: `data:image/svg+xml,%3Csvg xmlns="http://www.w3.org/2000/svg" width="400" height="300"%3E%3Crect fill="%23f39c12" width="400" height="300"/%3E%3Ctext x="50%25" y="50%25" font-size="24" fill="white" text-anchor="middle" dy=".3em"%3ELocal Monument%3C/text%3E%3C/svg%3E`,
		tags: []string{"monument", "heritage", "landmark"},
	},
}

// SeedItems returns the placeholder collection with ids taken from ids
func SeedItems(ids *IDSource) []domain.Item {
	items := make([]domain.Item, 0, len(seedItems))
	for _, seed := range seedItems {
		items = append(items, domain.Item{
			ID:   ids.Next(),
			Data: seed.data,
			Tags: append([]string(nil), seed.tags...),
		})
	}
	return items
}
