package catalog

import "github.com/shelterpaws/cattery/pkg/types"

// seedCats is the fixed record set inserted on first run, when the store
// comes up empty. IDs are fixed so reseeding after a partial failure never
// duplicates records.
var seedCats = []*types.Cat{
	{
		ID:         "c1",
		Name:       "מרשל",
		LocationID: "1",
		Description: types.Description{
			ShelterEntryYear: 2023,
			About:            "מרשל הוא חתול ג'ינג'י וידידותי שאוהב להתפנק בשמש. הוא מסתדר נהדר עם חתולים אחרים ומחפש בית חם ואוהב.",
		},
		Media: []types.MediaItem{
			{Kind: types.MediaImage, Content: "https://picsum.photos/seed/marshal/400/300"},
		},
	},
}

// SeedCats returns deep copies of the seed records so callers can never
// mutate the originals.
func SeedCats() []*types.Cat {
	out := make([]*types.Cat, len(seedCats))
	for i, cat := range seedCats {
		out[i] = cat.Clone()
	}
	return out
}
