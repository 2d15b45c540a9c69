package sol

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// RPCPool spreads requests across multiple RPC endpoints round-robin, so a
// single throttled provider does not stall account fetching.
type RPCPool struct {
	clients []*Client
	index   uint64
}

// NewRPCPool creates one rate-limited client per endpoint.
func NewRPCPool(endpoints []string, reqLimitPerSecond int) (*RPCPool, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("no rpc endpoints configured")
	}

	pool := &RPCPool{
		clients: make([]*Client, 0, len(endpoints)),
	}
	for _, endpoint := range endpoints {
		pool.clients = append(pool.clients, NewClient(endpoint, reqLimitPerSecond))
	}
	return pool, nil
}

// GetClient returns the next client in round-robin fashion.
func (p *RPCPool) GetClient() *Client {
	if len(p.clients) == 1 {
		return p.clients[0]
	}
	idx := atomic.AddUint64(&p.index, 1) % uint64(len(p.clients))
	return p.clients[idx]
}

// Size returns the number of clients in the pool.
func (p *RPCPool) Size() int {
	return len(p.clients)
}
