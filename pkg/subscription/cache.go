package subscription

import (
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/CropperFinance/cropper-instructions/pkg/swap"
)

// PoolEntry is the latest decoded state of a watched pool.
type PoolEntry struct {
	Pool       swap.PoolAccount
	Raw        []byte
	Slot       uint64
	LastUpdate time.Time
}

// poolCache keeps the most recent state per pool account, keyed by the
// pool's state address.
type poolCache struct {
	mu    sync.RWMutex
	pools map[solana.PublicKey]*PoolEntry
}

func newPoolCache() *poolCache {
	return &poolCache{pools: make(map[solana.PublicKey]*PoolEntry)}
}

func (pc *poolCache) set(id solana.PublicKey, pool swap.PoolAccount, raw []byte, slot uint64) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if entry, ok := pc.pools[id]; ok && entry.Slot > slot {
		// Notifications can arrive out of order across reconnects.
		return
	}
	pc.pools[id] = &PoolEntry{
		Pool:       pool,
		Raw:        raw,
		Slot:       slot,
		LastUpdate: time.Now(),
	}
}

func (pc *poolCache) get(id solana.PublicKey) (*PoolEntry, bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	entry, ok := pc.pools[id]
	return entry, ok
}

func (pc *poolCache) remove(id solana.PublicKey) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	delete(pc.pools, id)
}

func (pc *poolCache) all() map[solana.PublicKey]*PoolEntry {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	out := make(map[solana.PublicKey]*PoolEntry, len(pc.pools))
	for id, entry := range pc.pools {
		out[id] = entry
	}
	return out
}

func (pc *poolCache) size() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.pools)
}

// stale returns the pool IDs not updated within maxAge.
func (pc *poolCache) stale(maxAge time.Duration) []solana.PublicKey {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := time.Now()
	var ids []solana.PublicKey
	for id, entry := range pc.pools {
		if now.Sub(entry.LastUpdate) > maxAge {
			ids = append(ids, id)
		}
	}
	return ids
}
