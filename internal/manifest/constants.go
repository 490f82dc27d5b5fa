package manifest

// DefaultPath is where the item definition manifest is expected by default
const DefaultPath = "DestinyInventoryItemDefinition.json"

// File operation error messages
const (
	ErrMsgReadManifestFailed   = "%w: failed to read manifest file %s: %w"
	ErrMsgDecodeManifestFailed = "%w: failed to decode manifest file %s: %w"
)

// Log messages
const (
	LogMsgManifestLoaded = "Item definition manifest loaded"
)
