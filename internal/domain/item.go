package domain

import (
	"encoding/json"
	"maps"
	"strconv"
)

// DisplayProperties holds the user-facing strings of a manifest entry
type DisplayProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// InventoryBlock is the subset of a definition's inventory block we read
type InventoryBlock struct {
	TierTypeName string `json:"tierTypeName"`
}

// ItemDefinition is a static manifest record, keyed by item hash in the manifest.
// Definitions are loaded once at startup and never mutated.
type ItemDefinition struct {
	Hash                uint32            `json:"hash"`
	DisplayProperties   DisplayProperties `json:"displayProperties"`
	ItemTypeDisplayName string            `json:"itemTypeDisplayName"`
	TierTypeName        string            `json:"tierTypeName"`
	Inventory           *InventoryBlock   `json:"inventory,omitempty"`
	ItemCategoryHashes  []uint32          `json:"itemCategoryHashes"`
}

// Tier returns the tier name, preferring the top-level field over the inventory block
func (d ItemDefinition) Tier() string {
	if d.TierTypeName != "" {
		return d.TierTypeName
	}
	if d.Inventory != nil {
		return d.Inventory.TierTypeName
	}
	return ""
}

// VaultItem is one inventory entry as returned by the platform. It is kept as an
// open object so that fields we do not model pass through untouched.
// Enriched weapon records share the same shape with extra keys set.
type VaultItem map[string]any

// ItemHash returns the item hash in its text form, the manifest key format.
func (v VaultItem) ItemHash() (string, bool) {
	return textValue(v[FieldItemHash])
}

// InstanceID returns the per-instance id, or "" for items without instance state.
func (v VaultItem) InstanceID() string {
	id, _ := textValue(v[FieldItemInstanceID])
	return id
}

// Quantity returns the stack size, or 0 when the platform did not send one
func (v VaultItem) Quantity() int {
	raw, ok := textValue(v[FieldQuantity])
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// Name returns the enriched display name, if any
func (v VaultItem) Name() string {
	s, _ := v[FieldName].(string)
	return s
}

// ItemTypeDisplayName returns the enriched item type name, if any
func (v VaultItem) ItemTypeDisplayName() string {
	s, _ := v[FieldItemTypeDisplayName].(string)
	return s
}

// Clone returns a shallow copy of the item
func (v VaultItem) Clone() VaultItem {
	out := make(VaultItem, len(v)+FieldCountEnriched)
	maps.Copy(out, v)
	return out
}

// textValue renders scalar JSON values the way they appear as manifest keys
func textValue(raw any) (string, bool) {
	switch t := raw.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	default:
		return "", false
	}
}

// InstanceComponents are the per-instance payloads returned alongside vault items.
// Each map is keyed by item instance id.
type InstanceComponents struct {
	Stats       map[string]any
	TalentGrids map[string]any
	Perks       map[string]any
}

// WeaponGroup is a set of weapons sharing an item type, used by the rendered view
type WeaponGroup struct {
	ItemType string
	Weapons  []VaultItem
}
