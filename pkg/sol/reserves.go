package sol

import (
	"context"
	"encoding/binary"

	cosmath "cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"lukechampine.com/uint128"

	"github.com/CropperFinance/cropper-instructions/pkg/swap"
)

// SPL token account layout: the balance is a little-endian u64 at offset 64.
const (
	tokenAmountOffset  = 64
	tokenAccountMinLen = tokenAmountOffset + 8
)

// Reserves is a snapshot of a pool's two vault balances at a single slot.
type Reserves struct {
	TokenA cosmath.Int
	TokenB cosmath.Int
}

// Invariant returns the constant-product invariant a*b. Two u64 balances
// need up to 128 bits.
func (r Reserves) Invariant() uint128.Uint128 {
	a := uint128.From64(r.TokenA.Uint64())
	return a.Mul64(r.TokenB.Uint64())
}

// FetchReserves reads the balances of the pool's token A and token B vault
// accounts in a single batched request.
func FetchReserves(ctx context.Context, client *Client, pool swap.PoolAccount) (Reserves, error) {
	accounts := []solana.PublicKey{pool.TokenAAccount(), pool.TokenBAccount()}
	results, err := client.GetMultipleAccounts(ctx, accounts...)
	if err != nil {
		return Reserves{}, errors.Wrap(err, "fetch pool vaults")
	}

	balances := make([]cosmath.Int, len(accounts))
	for i, result := range results.Value {
		if result == nil {
			return Reserves{}, errors.Errorf("vault account %s not found", accounts[i])
		}
		data := result.Data.GetBinary()
		if len(data) < tokenAccountMinLen {
			return Reserves{}, errors.Errorf("vault account %s too short: %d bytes", accounts[i], len(data))
		}
		amount := binary.LittleEndian.Uint64(data[tokenAmountOffset : tokenAmountOffset+8])
		balances[i] = cosmath.NewIntFromUint64(amount)
	}

	return Reserves{TokenA: balances[0], TokenB: balances[1]}, nil
}

// FetchPool fetches and unpacks a versioned pool state account.
func FetchPool(ctx context.Context, client *Client, poolID solana.PublicKey) (swap.PoolAccount, error) {
	data, err := client.GetAccountData(ctx, poolID)
	if err != nil {
		return nil, err
	}
	pool, err := swap.UnpackPool(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unpack pool %s", poolID)
	}
	return pool, nil
}
