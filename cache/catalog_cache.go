package catalog_cache

import (
	"sync"
	"time"

	"github.com/HamzaDalhoumi/plant-shop/models"
)

const TTL = 5 * time.Minute

// ── Classified catalog snapshot cache ────────────────────────────────────────
// Stores the full Active catalog, already classified and attribute-decoded.
// The compatibility and filter endpoints all read from this; facet building
// and filtering still run per request on top of it, since those depend on
// the selection state. Callers must treat the returned slice as read-only.

type snapshotEntry struct {
	products  []models.ClassifiedProduct
	fetchedAt time.Time
}

var (
	snapMu    sync.RWMutex
	snapCache *snapshotEntry
)

func GetSnapshot() ([]models.ClassifiedProduct, bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapCache != nil && time.Since(snapCache.fetchedAt) < TTL {
		return snapCache.products, true
	}
	return nil, false
}

func SetSnapshot(products []models.ClassifiedProduct) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapCache = &snapshotEntry{products: products, fetchedAt: time.Now()}
}

// ── Invalidate (call on any product create/update/delete) ────────────────────

func Invalidate() {
	snapMu.Lock()
	snapCache = nil
	snapMu.Unlock()
}
