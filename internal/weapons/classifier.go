package weapons

import "github.com/osse101/GudGuns_Go/internal/domain"

// categoryHashes is the fixed set of item categories that mark a weapon archetype
var categoryHashes = map[uint32]struct{}{
	domain.CategoryAutoRifle:         {},
	domain.CategoryHandCannon:        {},
	domain.CategoryPulseRifle:        {},
	domain.CategoryScoutRifle:        {},
	domain.CategorySidearm:           {},
	domain.CategorySubmachineGun:     {},
	domain.CategoryBow:               {},
	domain.CategoryFusionRifle:       {},
	domain.CategoryGlaive:            {},
	domain.CategoryShotgun:           {},
	domain.CategorySniperRifle:       {},
	domain.CategoryTraceRifle:        {},
	domain.CategoryRocketLauncher:    {},
	domain.CategoryLinearFusionRifle: {},
	domain.CategorySword:             {},
	domain.CategoryGrenadeLauncher:   {},
	domain.CategoryMachineGun:        {},
}

// IsWeapon reports whether any of the definition's category hashes is a weapon category
func IsWeapon(def domain.ItemDefinition) bool {
	for _, h := range def.ItemCategoryHashes {
		if IsWeaponCategory(h) {
			return true
		}
	}
	return false
}

// IsWeaponCategory reports whether a single category hash is a weapon archetype
func IsWeaponCategory(hash uint32) bool {
	_, ok := categoryHashes[hash]
	return ok
}
