package weapons

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

// GroupByType buckets weapons by item type name. Groups are ordered by type
// name and weapons within a group by display name.
func GroupByType(weapons []domain.VaultItem) []domain.WeaponGroup {
	// collators keep internal buffers, so one per call
	c := collate.New(language.English, collate.IgnoreCase)

	index := make(map[string]int)
	var groups []domain.WeaponGroup
	for _, w := range weapons {
		itemType := orDefault(w.ItemTypeDisplayName(), domain.DefaultUnknown)
		i, ok := index[itemType]
		if !ok {
			i = len(groups)
			index[itemType] = i
			groups = append(groups, domain.WeaponGroup{ItemType: itemType})
		}
		groups[i].Weapons = append(groups[i].Weapons, w)
	}

	slices.SortFunc(groups, func(a, b domain.WeaponGroup) int {
		return c.CompareString(a.ItemType, b.ItemType)
	})
	for i := range groups {
		slices.SortStableFunc(groups[i].Weapons, func(a, b domain.VaultItem) int {
			return c.CompareString(a.Name(), b.Name())
		})
	}
	return groups
}
