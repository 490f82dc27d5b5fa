package handler

import (
	"html/template"
	"net/http"

	"github.com/osse101/GudGuns_Go/internal/bungie"
	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/logger"
	"github.com/osse101/GudGuns_Go/internal/metrics"
	"github.com/osse101/GudGuns_Go/internal/weapons"
)

// profileComponents are requested for every inventory view
var profileComponents = []int{
	domain.ComponentProfileInventories,
	domain.ComponentItemPerks,
	domain.ComponentItemStats,
	domain.ComponentItemTalentGrids,
}

// InventoryDeps bundles what the inventory handlers need
type InventoryDeps struct {
	Platform    Platform
	Definitions weapons.Definitions
	// Fallback is used when the session has no resolved membership
	Fallback domain.Membership
}

// HandleInventory returns the caller's vault weapons as JSON
// @Summary Vault weapons
// @Description Vault items classified as weapons, enriched with manifest display fields (name, description, icon, itemTypeDisplayName, tierTypeName, itemCategoryHashes) and per-instance instanceStats, instanceTalentGrid and instancePerks objects
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.VaultItem
// @Success 302 {string} string "Redirect to / when not signed in"
// @Failure 500 {object} UpstreamErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /inventory [get]
func HandleInventory(deps InventoryDeps) CredentialedHandler {
	return func(w http.ResponseWriter, r *http.Request, creds domain.Credentials) {
		result, ok := fetchWeapons(w, r, deps, creds)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleInventoryRaw passes the profile response through untouched
// @Summary Raw profile
// @Description Destiny profile response with inventory, perk, stat and talent grid components, passed through with the upstream status
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 302 {string} string "Redirect to / when not signed in"
// @Failure 500 {object} UpstreamErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /inventory/raw [get]
func HandleInventoryRaw(deps InventoryDeps) CredentialedHandler {
	return func(w http.ResponseWriter, r *http.Request, creds domain.Credentials) {
		m := membershipFor(creds, deps.Fallback)
		raw, err := deps.Platform.GetProfile(r.Context(), creds.Token, m.MembershipType, m.MembershipID, profileComponents...)
		if err != nil {
			respondUpstreamError(w, err)
			return
		}
		if _, err := raw.Decode(); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgUpstreamDecodeError, "endpoint", "profile", "status", raw.StatusCode, "error", err)
			respondUpstreamDecodeError(w, raw.StatusCode, raw.Body, err)
			return
		}
		respondRawJSON(w, raw.StatusCode, raw.Body)
	}
}

// inventoryPage is the data handed to the inventory template
type inventoryPage struct {
	Membership domain.Membership
	Total      int
	Groups     []domain.WeaponGroup
}

// HandleInventoryView renders the caller's weapons grouped by type
// @Summary Weapons page
// @Description Vault weapons grouped by item type and sorted by name
// @Tags inventory
// @Produce html
// @Success 200 {string} string
// @Success 302 {string} string "Redirect to / when not signed in"
// @Failure 500 {object} UpstreamErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /inventory/view [get]
func HandleInventoryView(deps InventoryDeps, tmpl *template.Template) CredentialedHandler {
	return func(w http.ResponseWriter, r *http.Request, creds domain.Credentials) {
		result, ok := fetchWeapons(w, r, deps, creds)
		if !ok {
			return
		}

		page := inventoryPage{
			Membership: membershipFor(creds, deps.Fallback),
			Total:      len(result),
			Groups:     weapons.GroupByType(result),
		}

		buf := getBuffer()
		defer putBuffer(buf)
		if err := tmpl.ExecuteTemplate(buf, inventoryTemplateName, page); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgRenderFailed)
			return
		}
		respondHTML(w, http.StatusOK, buf.Bytes())
	}
}

// fetchWeapons loads the profile and extracts enriched weapons. On failure
// the response has already been written.
func fetchWeapons(w http.ResponseWriter, r *http.Request, deps InventoryDeps, creds domain.Credentials) ([]domain.VaultItem, bool) {
	ctx := r.Context()
	log := logger.FromContext(ctx)
	m := membershipFor(creds, deps.Fallback)

	raw, err := deps.Platform.GetProfile(ctx, creds.Token, m.MembershipType, m.MembershipID, profileComponents...)
	if err != nil {
		respondUpstreamError(w, err)
		return nil, false
	}

	doc, err := raw.Decode()
	if err != nil {
		log.Error(LogMsgUpstreamDecodeError, "endpoint", "profile", "status", raw.StatusCode, "error", err)
		respondUpstreamDecodeError(w, raw.StatusCode, raw.Body, err)
		return nil, false
	}
	if raw.StatusCode >= http.StatusBadRequest {
		log.Warn(LogMsgUpstreamStatus, "status", raw.StatusCode,
			"error_status", doc["ErrorStatus"], "message", doc["Message"])
	}

	items, components := bungie.ParseInventory(doc)
	log.Info(LogMsgVaultItems, "count", len(items))
	metrics.VaultItemsProcessed.Add(float64(len(items)))

	result := weapons.ExtractWeapons(items, deps.Definitions, components)
	log.Info(LogMsgWeaponsExtracted, "count", len(result))
	metrics.WeaponsExtracted.Add(float64(len(result)))

	return result, true
}

func membershipFor(creds domain.Credentials, fallback domain.Membership) domain.Membership {
	if creds.Membership != nil && creds.Membership.MembershipID != "" {
		return *creds.Membership
	}
	return fallback
}
