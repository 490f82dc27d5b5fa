package bungie

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

// Decode parses the body as a JSON object. Numbers are kept as json.Number
// so item hashes and instance ids survive a round trip without float rounding.
func (r *RawResponse) Decode() (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamDecode, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", domain.ErrUpstreamDecode)
	}
	return doc, nil
}

// ParseInventory pulls vault items and per-instance components out of a
// profile response. Any missing key yields an empty result rather than an error.
func ParseInventory(doc map[string]any) ([]domain.VaultItem, domain.InstanceComponents) {
	rawItems, _ := dig(doc, "Response", "profileInventory", "data", "items").([]any)

	items := make([]domain.VaultItem, 0, len(rawItems))
	for _, raw := range rawItems {
		if m, ok := raw.(map[string]any); ok {
			items = append(items, domain.VaultItem(m))
		}
	}

	components := domain.InstanceComponents{
		Stats:       componentData(doc, "stats"),
		TalentGrids: componentData(doc, "talentGrids"),
		Perks:       componentData(doc, "perks"),
	}
	return items, components
}

func componentData(doc map[string]any, name string) map[string]any {
	if m, ok := dig(doc, "Response", "itemComponents", name, "data").(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// ParseMemberships lists the Destiny memberships in a memberships response
func ParseMemberships(doc map[string]any) []domain.Membership {
	raw, _ := dig(doc, "Response", "destinyMemberships").([]any)

	out := make([]domain.Membership, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		id, _ := scalarString(m["membershipId"])
		if id == "" {
			continue
		}
		membershipType, _ := strconv.Atoi(mustScalar(m["membershipType"]))
		name, _ := m["displayName"].(string)
		out = append(out, domain.Membership{
			MembershipType: membershipType,
			MembershipID:   id,
			DisplayName:    name,
		})
	}
	return out
}

// PrimaryMembership picks the account's primary (cross save) membership, or
// the first one listed when no primary is flagged.
func PrimaryMembership(doc map[string]any) (domain.Membership, bool) {
	memberships := ParseMemberships(doc)
	if len(memberships) == 0 {
		return domain.Membership{}, false
	}

	if primary, ok := scalarString(dig(doc, "Response", "primaryMembershipId")); ok {
		for _, m := range memberships {
			if m.MembershipID == primary {
				return m, true
			}
		}
	}
	return memberships[0], true
}

// dig walks nested objects, returning nil at the first missing key
func dig(doc map[string]any, path ...string) any {
	var v any = doc
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}
	return v
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}

func mustScalar(v any) string {
	s, _ := scalarString(v)
	return s
}
