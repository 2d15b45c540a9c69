package subscription

import (
	"context"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/CropperFinance/cropper-instructions/pkg/swap"
)

// PoolUpdateHandler is called with the freshly decoded pool state after
// every accepted notification.
type PoolUpdateHandler func(poolID solana.PublicKey, pool swap.PoolAccount, slot uint64)

// PoolWatcher subscribes to pool state accounts and keeps their decoded
// state cached. Updates that fail to decode are dropped with a warning;
// a pool account mid-creation is not worth tearing the session down for.
type PoolWatcher struct {
	ws       *WebSocketClient
	cache    *poolCache
	mu       sync.RWMutex
	subIDs   map[solana.PublicKey]uint64
	handlers map[solana.PublicKey]PoolUpdateHandler
	log      *logrus.Entry
}

// NewPoolWatcher dials wsURL and returns a watcher ready for WatchPool
// calls.
func NewPoolWatcher(ctx context.Context, wsURL string) (*PoolWatcher, error) {
	ws, err := NewWebSocketClient(ctx, wsURL)
	if err != nil {
		return nil, errors.Wrap(err, "create websocket client")
	}

	return &PoolWatcher{
		ws:       ws,
		cache:    newPoolCache(),
		subIDs:   make(map[solana.PublicKey]uint64),
		handlers: make(map[solana.PublicKey]PoolUpdateHandler),
		log:      logrus.WithField("component", "pool-watcher"),
	}, nil
}

// WatchPool subscribes to the pool state account. handler may be nil,
// in which case updates only refresh the cache. Watching an already
// watched pool replaces its handler.
func (w *PoolWatcher) WatchPool(poolID solana.PublicKey, handler PoolUpdateHandler) error {
	w.mu.Lock()
	if handler != nil {
		w.handlers[poolID] = handler
	}
	_, already := w.subIDs[poolID]
	w.mu.Unlock()
	if already {
		return nil
	}

	subID, err := w.ws.SubscribeAccount(poolID, func(account solana.PublicKey, data []byte, slot uint64) {
		w.handleUpdate(account, data, slot)
	})
	if err != nil {
		return errors.Wrapf(err, "subscribe pool %s", poolID)
	}

	w.mu.Lock()
	w.subIDs[poolID] = subID
	w.mu.Unlock()

	w.log.WithFields(logrus.Fields{"pool": poolID, "sub": subID}).Info("watching pool")
	return nil
}

// UnwatchPool cancels the pool's subscription and evicts its cache entry.
func (w *PoolWatcher) UnwatchPool(poolID solana.PublicKey) error {
	w.mu.Lock()
	subID, ok := w.subIDs[poolID]
	delete(w.subIDs, poolID)
	delete(w.handlers, poolID)
	w.mu.Unlock()

	w.cache.remove(poolID)
	if !ok {
		return nil
	}
	return w.ws.Unsubscribe(subID)
}

func (w *PoolWatcher) handleUpdate(poolID solana.PublicKey, data []byte, slot uint64) {
	pool, err := swap.UnpackPool(data)
	if err != nil {
		w.log.WithError(err).WithFields(logrus.Fields{"pool": poolID, "slot": slot}).Warn("undecodable pool update")
		return
	}

	w.cache.set(poolID, pool, data, slot)

	w.mu.RLock()
	handler := w.handlers[poolID]
	w.mu.RUnlock()
	if handler != nil {
		handler(poolID, pool, slot)
	}
}

// Pool returns the latest cached state for poolID.
func (w *PoolWatcher) Pool(poolID solana.PublicKey) (*PoolEntry, bool) {
	return w.cache.get(poolID)
}

// Pools returns a snapshot of every cached pool.
func (w *PoolWatcher) Pools() map[solana.PublicKey]*PoolEntry {
	return w.cache.all()
}

// StalePools returns watched pools with no update within maxAge.
func (w *PoolWatcher) StalePools(maxAge time.Duration) []solana.PublicKey {
	return w.cache.stale(maxAge)
}

// IsConnected reports whether the underlying websocket session is live.
func (w *PoolWatcher) IsConnected() bool {
	return w.ws.IsConnected()
}

// Close cancels all subscriptions and closes the websocket.
func (w *PoolWatcher) Close() error {
	w.mu.Lock()
	w.subIDs = make(map[solana.PublicKey]uint64)
	w.handlers = make(map[solana.PublicKey]PoolUpdateHandler)
	w.mu.Unlock()

	return w.ws.Close()
}
