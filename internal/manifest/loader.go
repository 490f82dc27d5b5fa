package manifest

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

// Sentinel errors for manifest loading
var (
	ErrManifestRead   = errors.New("manifest read failed")
	ErrManifestDecode = errors.New("manifest decode failed")
)

// Manifest is an immutable handle over the item definitions, keyed by item hash
// in its text form. It is safe for concurrent readers since nothing mutates it
// after construction.
type Manifest struct {
	defs map[string]domain.ItemDefinition
}

// New wraps an in-memory definition map. The map must not be modified afterwards.
func New(defs map[string]domain.ItemDefinition) *Manifest {
	if defs == nil {
		defs = map[string]domain.ItemDefinition{}
	}
	return &Manifest{defs: defs}
}

// Load reads the whole manifest document into memory.
// Only the fields of domain.ItemDefinition are retained; everything else in
// the file is discarded while decoding.
func Load(path string) (*Manifest, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadManifestFailed, ErrManifestRead, path, err)
	}
	defer f.Close()

	var defs map[string]domain.ItemDefinition
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&defs); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeManifestFailed, ErrManifestDecode, path, err)
	}

	slog.Default().Info(LogMsgManifestLoaded,
		"path", path,
		"definitions", len(defs),
		"duration", time.Since(start))

	return New(defs), nil
}

// Lookup returns the definition for an item hash
func (m *Manifest) Lookup(hash string) (domain.ItemDefinition, bool) {
	if m == nil {
		return domain.ItemDefinition{}, false
	}
	def, ok := m.defs[hash]
	return def, ok
}

// Len returns the number of definitions
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.defs)
}
