package swap

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metaExpectation struct {
	key      solana.PublicKey
	writable bool
	signer   bool
}

func assertMetas(t *testing.T, ix solana.Instruction, expected []metaExpectation) {
	t.Helper()

	metas := ix.Accounts()
	require.Len(t, metas, len(expected))
	for i, want := range expected {
		assert.Equal(t, want.key, metas[i].PublicKey, "account %d key", i)
		assert.Equal(t, want.writable, metas[i].IsWritable, "account %d writable", i)
		assert.Equal(t, want.signer, metas[i].IsSigner, "account %d signer", i)
	}
}

func TestNewInitializeInstruction(t *testing.T) {
	accounts := InitializeAccounts{
		Swap:         testKey(0x01),
		Authority:    testKey(0x02),
		State:        testKey(0x03),
		AmmID:        testKey(0x04),
		TokenA:       testKey(0x05),
		TokenB:       testKey(0x06),
		PoolMint:     testKey(0x07),
		Destination:  testKey(0x08),
		Market:       testKey(0x09),
		TokenProgram: testKey(0x0a),
		DexProgram:   testKey(0x0b),
	}

	ix := NewInitializeInstruction(CropperSwapProgramID, accounts, Initialize{Nonce: 254})

	assert.Equal(t, CropperSwapProgramID, ix.ProgramID())
	assertMetas(t, ix, []metaExpectation{
		{accounts.Swap, true, true},
		{accounts.Authority, false, false},
		{accounts.State, false, false},
		{accounts.AmmID, false, false},
		{accounts.TokenA, false, false},
		{accounts.TokenB, false, false},
		{accounts.PoolMint, true, false},
		{accounts.Destination, true, false},
		{accounts.Market, true, false},
		{accounts.TokenProgram, false, false},
		{accounts.DexProgram, false, false},
	})

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 254}, data)
}

func TestNewSwapInstruction(t *testing.T) {
	accounts := SwapAccounts{
		Swap:                  testKey(0x01),
		Authority:             testKey(0x02),
		UserTransferAuthority: testKey(0x03),
		State:                 testKey(0x04),
		Source:                testKey(0x05),
		SwapSource:            testKey(0x06),
		SwapDestination:       testKey(0x07),
		Destination:           testKey(0x08),
		PoolMint:              testKey(0x09),
		FeeAccount:            testKey(0x0a),
		TokenProgram:          testKey(0x0b),
	}

	swapIx := Swap{AmountIn: 1_000_000, MinimumAmountOut: 990_000}
	ix := NewSwapInstruction(CropperSwapProgramID, accounts, swapIx)

	assertMetas(t, ix, []metaExpectation{
		{accounts.Swap, false, false},
		{accounts.Authority, false, false},
		{accounts.UserTransferAuthority, false, true},
		{accounts.State, false, true},
		{accounts.Source, true, false},
		{accounts.SwapSource, true, false},
		{accounts.SwapDestination, true, false},
		{accounts.Destination, true, false},
		{accounts.PoolMint, true, false},
		{accounts.FeeAccount, true, false},
		{accounts.TokenProgram, false, false},
	})

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, EncodeInstruction(swapIx), data)
}

func TestNewDepositAllTokenTypesInstruction(t *testing.T) {
	accounts := DepositAllAccounts{
		Swap:                  testKey(0x01),
		Authority:             testKey(0x02),
		UserTransferAuthority: testKey(0x03),
		State:                 testKey(0x04),
		DepositTokenA:         testKey(0x05),
		DepositTokenB:         testKey(0x06),
		SwapTokenA:            testKey(0x07),
		SwapTokenB:            testKey(0x08),
		PoolMint:              testKey(0x09),
		Destination:           testKey(0x0a),
		TokenProgram:          testKey(0x0b),
	}

	deposit := DepositAllTokenTypes{PoolTokenAmount: 1, MaximumTokenAAmount: 2, MaximumTokenBAmount: 3}
	ix := NewDepositAllTokenTypesInstruction(CropperSwapProgramID, accounts, deposit)

	assertMetas(t, ix, []metaExpectation{
		{accounts.Swap, false, false},
		{accounts.Authority, false, false},
		{accounts.UserTransferAuthority, false, true},
		{accounts.State, false, false},
		{accounts.DepositTokenA, true, false},
		{accounts.DepositTokenB, true, false},
		{accounts.SwapTokenA, true, false},
		{accounts.SwapTokenB, true, false},
		{accounts.PoolMint, true, false},
		{accounts.Destination, true, false},
		{accounts.TokenProgram, false, false},
	})

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, EncodeInstruction(deposit), data)
}

func TestNewWithdrawAllTokenTypesInstruction(t *testing.T) {
	accounts := WithdrawAllAccounts{
		Swap:                  testKey(0x01),
		Authority:             testKey(0x02),
		UserTransferAuthority: testKey(0x03),
		State:                 testKey(0x04),
		PoolMint:              testKey(0x05),
		Source:                testKey(0x06),
		SwapTokenA:            testKey(0x07),
		SwapTokenB:            testKey(0x08),
		DestinationTokenA:     testKey(0x09),
		DestinationTokenB:     testKey(0x0a),
		TokenProgram:          testKey(0x0b),
	}

	withdraw := WithdrawAllTokenTypes{PoolTokenAmount: 9, MinimumTokenAAmount: 8, MinimumTokenBAmount: 7}
	ix := NewWithdrawAllTokenTypesInstruction(CropperSwapProgramID, accounts, withdraw)

	assertMetas(t, ix, []metaExpectation{
		{accounts.Swap, false, false},
		{accounts.Authority, false, false},
		{accounts.UserTransferAuthority, false, true},
		{accounts.State, false, false},
		{accounts.PoolMint, true, false},
		{accounts.Source, true, false},
		{accounts.SwapTokenA, true, false},
		{accounts.SwapTokenB, true, false},
		{accounts.DestinationTokenA, true, false},
		{accounts.DestinationTokenB, true, false},
		{accounts.TokenProgram, false, false},
	})

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, EncodeInstruction(withdraw), data)
}

func TestNewDepositSingleInstruction(t *testing.T) {
	accounts := DepositSingleAccounts{
		Swap:                  testKey(0x01),
		Authority:             testKey(0x02),
		UserTransferAuthority: testKey(0x03),
		Source:                testKey(0x04),
		SwapTokenA:            testKey(0x05),
		SwapTokenB:            testKey(0x06),
		PoolMint:              testKey(0x07),
		Destination:           testKey(0x08),
		TokenProgram:          testKey(0x09),
	}

	deposit := DepositSingleTokenTypeExactAmountIn{SourceTokenAmount: 100, MinimumPoolTokenAmount: 90}
	ix := NewDepositSingleTokenTypeExactAmountInInstruction(CropperSwapProgramID, accounts, deposit)

	assertMetas(t, ix, []metaExpectation{
		{accounts.Swap, false, false},
		{accounts.Authority, false, false},
		{accounts.UserTransferAuthority, false, true},
		{accounts.Source, true, false},
		{accounts.SwapTokenA, true, false},
		{accounts.SwapTokenB, true, false},
		{accounts.PoolMint, true, false},
		{accounts.Destination, true, false},
		{accounts.TokenProgram, false, false},
	})

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, EncodeInstruction(deposit), data)
}

func TestNewWithdrawSingleInstruction(t *testing.T) {
	accounts := WithdrawSingleAccounts{
		Swap:                  testKey(0x01),
		Authority:             testKey(0x02),
		UserTransferAuthority: testKey(0x03),
		PoolMint:              testKey(0x04),
		Source:                testKey(0x05),
		SwapTokenA:            testKey(0x06),
		SwapTokenB:            testKey(0x07),
		Destination:           testKey(0x08),
		TokenProgram:          testKey(0x09),
	}

	withdraw := WithdrawSingleTokenTypeExactAmountOut{DestinationTokenAmount: 55, MaximumPoolTokenAmount: 60}
	ix := NewWithdrawSingleTokenTypeExactAmountOutInstruction(CropperSwapProgramID, accounts, withdraw)

	assertMetas(t, ix, []metaExpectation{
		{accounts.Swap, false, false},
		{accounts.Authority, false, false},
		{accounts.UserTransferAuthority, false, true},
		{accounts.PoolMint, true, false},
		{accounts.Source, true, false},
		{accounts.SwapTokenA, true, false},
		{accounts.SwapTokenB, true, false},
		{accounts.Destination, true, false},
		{accounts.TokenProgram, false, false},
	})

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, EncodeInstruction(withdraw), data)
}
