package weapons

import "github.com/osse101/GudGuns_Go/internal/domain"

// ExtractWeapons returns the enriched weapon records for items whose definition
// is a weapon, in input order. Items without a definition and non-weapons are
// dropped without error.
func ExtractWeapons(items []domain.VaultItem, defs Definitions, components domain.InstanceComponents) []domain.VaultItem {
	out := make([]domain.VaultItem, 0, len(items))
	for _, item := range items {
		def, ok := lookup(item, defs)
		if !ok || !IsWeapon(def) {
			continue
		}
		out = append(out, MergeInstance(enrich(item, def), item.InstanceID(), components))
	}
	return out
}
