package weapons

import (
	"slices"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

// Definitions resolves item hashes to manifest entries
type Definitions interface {
	Lookup(hash string) (domain.ItemDefinition, bool)
}

// EnrichItem merges the item's manifest display fields into a copy of the item.
// Items without a definition come back as an unchanged copy.
func EnrichItem(item domain.VaultItem, defs Definitions) domain.VaultItem {
	def, ok := lookup(item, defs)
	if !ok {
		return item.Clone()
	}
	return enrich(item, def)
}

// MergeInstance returns a copy of an enriched item with its per-instance
// components attached. Each component is an empty object when the item has no
// instance id or the component map has no entry for it.
func MergeInstance(enriched domain.VaultItem, instanceID string, components domain.InstanceComponents) domain.VaultItem {
	out := enriched.Clone()
	out[domain.FieldInstanceStats] = componentFor(components.Stats, instanceID)
	out[domain.FieldInstanceTalentGrid] = componentFor(components.TalentGrids, instanceID)
	out[domain.FieldInstancePerks] = componentFor(components.Perks, instanceID)
	return out
}

func lookup(item domain.VaultItem, defs Definitions) (domain.ItemDefinition, bool) {
	hash, ok := item.ItemHash()
	if !ok || defs == nil {
		return domain.ItemDefinition{}, false
	}
	return defs.Lookup(hash)
}

// enrich copies item and overlays the definition fields; definition wins on conflicts
func enrich(item domain.VaultItem, def domain.ItemDefinition) domain.VaultItem {
	out := item.Clone()
	out[domain.FieldName] = orDefault(def.DisplayProperties.Name, domain.DefaultUnknown)
	out[domain.FieldDescription] = def.DisplayProperties.Description
	out[domain.FieldIcon] = def.DisplayProperties.Icon
	out[domain.FieldItemTypeDisplayName] = orDefault(def.ItemTypeDisplayName, domain.DefaultUnknown)
	out[domain.FieldTierTypeName] = orDefault(def.Tier(), domain.DefaultUnknown)

	categories := []uint32{}
	if len(def.ItemCategoryHashes) > 0 {
		categories = slices.Clone(def.ItemCategoryHashes)
	}
	out[domain.FieldItemCategoryHashes] = categories
	return out
}

func componentFor(data map[string]any, instanceID string) any {
	if instanceID == "" {
		return map[string]any{}
	}
	if v, ok := data[instanceID]; ok && v != nil {
		return v
	}
	return map[string]any{}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
