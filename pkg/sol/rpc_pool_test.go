package sol

import (
	"testing"

	cosmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRPCPoolRequiresEndpoints(t *testing.T) {
	_, err := NewRPCPool(nil, 10)
	assert.Error(t, err)
}

func TestRPCPoolRoundRobin(t *testing.T) {
	endpoints := []string{
		"https://rpc-a.example.com",
		"https://rpc-b.example.com",
		"https://rpc-c.example.com",
	}
	pool, err := NewRPCPool(endpoints, 10)
	require.NoError(t, err)
	require.Equal(t, 3, pool.Size())

	seen := make(map[string]int)
	for i := 0; i < 3*len(endpoints); i++ {
		seen[pool.GetClient().Endpoint()]++
	}
	for _, endpoint := range endpoints {
		assert.Equal(t, 3, seen[endpoint], endpoint)
	}
}

func TestRPCPoolSingleEndpoint(t *testing.T) {
	pool, err := NewRPCPool([]string{"https://rpc.example.com"}, 10)
	require.NoError(t, err)

	first := pool.GetClient()
	for i := 0; i < 5; i++ {
		assert.Same(t, first, pool.GetClient())
	}
}

func TestReservesInvariant(t *testing.T) {
	r := Reserves{
		TokenA: cosmath.NewIntFromUint64(1_000_000),
		TokenB: cosmath.NewIntFromUint64(2_000_000),
	}
	assert.Equal(t, "2000000000000", r.Invariant().String())

	// Two max u64 balances overflow 64 bits but not 128.
	max := ^uint64(0)
	r = Reserves{
		TokenA: cosmath.NewIntFromUint64(max),
		TokenB: cosmath.NewIntFromUint64(max),
	}
	assert.Equal(t, "340282366920938463426481119284349108225", r.Invariant().String())
}
