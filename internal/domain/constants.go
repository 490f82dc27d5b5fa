package domain

// Vault item and enriched record keys
const (
	FieldItemHash       = "itemHash"
	FieldItemInstanceID = "itemInstanceId"
	FieldQuantity       = "quantity"

	FieldName                = "name"
	FieldDescription         = "description"
	FieldIcon                = "icon"
	FieldItemTypeDisplayName = "itemTypeDisplayName"
	FieldTierTypeName        = "tierTypeName"
	FieldItemCategoryHashes  = "itemCategoryHashes"

	FieldInstanceStats      = "instanceStats"
	FieldInstanceTalentGrid = "instanceTalentGrid"
	FieldInstancePerks      = "instancePerks"

	// FieldCountEnriched is the number of keys enrichment may add
	FieldCountEnriched = 9
)

// Defaults applied when a definition lacks a display field
const (
	DefaultUnknown = "Unknown"
)

// Item category hashes for weapon archetypes
const (
	CategoryAutoRifle         uint32 = 5
	CategoryHandCannon        uint32 = 6
	CategoryPulseRifle        uint32 = 7
	CategoryScoutRifle        uint32 = 8
	CategoryFusionRifle       uint32 = 9
	CategorySniperRifle       uint32 = 10
	CategoryShotgun           uint32 = 11
	CategoryMachineGun        uint32 = 12
	CategoryRocketLauncher    uint32 = 13
	CategorySidearm           uint32 = 14
	CategorySword             uint32 = 54
	CategoryGrenadeLauncher   uint32 = 153950757
	CategoryLinearFusionRifle uint32 = 1504945536
	CategoryTraceRifle        uint32 = 2489664120
	CategoryBow               uint32 = 3317538576
	CategoryGlaive            uint32 = 3871742104
	CategorySubmachineGun     uint32 = 3954685534
)

// Destiny profile component selectors
const (
	ComponentProfileInventories = 102
	ComponentItemPerks          = 302
	ComponentItemStats          = 304
	ComponentItemTalentGrids    = 306
)
