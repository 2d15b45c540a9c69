package farm

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStakeAccounts() StakeAccounts {
	return StakeAccounts{
		Farm:            testKey(0x01),
		Authority:       testKey(0x02),
		Owner:           testKey(0x03),
		UserInfo:        testKey(0x04),
		UserLPToken:     testKey(0x05),
		PoolLPToken:     testKey(0x06),
		UserRewardToken: testKey(0x07),
		PoolRewardToken: testKey(0x08),
		PoolLPMint:      testKey(0x09),
		FeeRewardATA:    testKey(0x0a),
		ProgramData:     testKey(0x0b),
		TokenProgram:    testKey(0x0c),
	}
}

func TestNewDepositInstruction(t *testing.T) {
	accounts := testStakeAccounts()
	deposit := Deposit{Amount: 500}

	ix, err := NewDepositInstruction(CropperFarmProgramID, accounts, deposit)
	require.NoError(t, err)
	assert.Equal(t, CropperFarmProgramID, ix.ProgramID())

	metas := ix.Accounts()
	require.Len(t, metas, 13)

	// The owner signs but stays read-only on deposit.
	assert.Equal(t, accounts.Owner, metas[2].PublicKey)
	assert.True(t, metas[2].IsSigner)
	assert.False(t, metas[2].IsWritable)

	// Reward accrual reads the clock sysvar.
	last := metas[len(metas)-1]
	assert.Equal(t, solana.SysVarClockPubkey, last.PublicKey)
	assert.False(t, last.IsWritable)
	assert.False(t, last.IsSigner)

	data, err := ix.Data()
	require.NoError(t, err)
	expected, err := EncodeInstruction(deposit)
	require.NoError(t, err)
	assert.Equal(t, expected, data)
}

func TestNewWithdrawInstructionOwnerWritable(t *testing.T) {
	accounts := testStakeAccounts()

	ix, err := NewWithdrawInstruction(CropperFarmProgramID, accounts, Withdraw{Amount: 500})
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 13)

	assert.Equal(t, accounts.Owner, metas[2].PublicKey)
	assert.True(t, metas[2].IsSigner)
	assert.True(t, metas[2].IsWritable)
}

func TestDepositWithdrawSameOrder(t *testing.T) {
	accounts := testStakeAccounts()

	dep, err := NewDepositInstruction(CropperFarmProgramID, accounts, Deposit{Amount: 1})
	require.NoError(t, err)
	wd, err := NewWithdrawInstruction(CropperFarmProgramID, accounts, Withdraw{Amount: 1})
	require.NoError(t, err)

	depMetas := dep.Accounts()
	wdMetas := wd.Accounts()
	require.Len(t, wdMetas, len(depMetas))
	for i := range depMetas {
		assert.Equal(t, depMetas[i].PublicKey, wdMetas[i].PublicKey, "account %d", i)
	}
}

func TestNewSetProgramDataInstruction(t *testing.T) {
	accounts := SetProgramDataAccounts{
		ProgramData: testKey(0x01),
		SuperOwner:  testKey(0x02),
	}

	ix, err := NewSetProgramDataInstruction(CropperFarmProgramID, accounts, SetProgramData{FarmFee: 5})
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 2)
	assert.True(t, metas[0].IsWritable)
	assert.False(t, metas[0].IsSigner)
	assert.True(t, metas[1].IsWritable)
	assert.True(t, metas[1].IsSigner)
}

func TestNewInitializeFarmInstruction(t *testing.T) {
	accounts := InitializeFarmAccounts{
		Farm:            testKey(0x01),
		Authority:       testKey(0x02),
		Owner:           testKey(0x03),
		PoolLPToken:     testKey(0x04),
		PoolRewardToken: testKey(0x05),
		PoolMint:        testKey(0x06),
		RewardMint:      testKey(0x07),
		AmmID:           testKey(0x08),
		ProgramData:     testKey(0x09),
	}

	ix, err := NewInitializeFarmInstruction(CropperFarmProgramID, accounts, InitializeFarm{Nonce: 3})
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 9)
	assert.Equal(t, accounts.Farm, metas[0].PublicKey)
	assert.True(t, metas[0].IsWritable)
	assert.Equal(t, accounts.Owner, metas[2].PublicKey)
	assert.True(t, metas[2].IsSigner)
	assert.False(t, metas[2].IsWritable)
	assert.Equal(t, accounts.ProgramData, metas[8].PublicKey)
	assert.False(t, metas[8].IsWritable)
}

func TestNewAddRewardInstruction(t *testing.T) {
	accounts := AddRewardAccounts{
		Farm:            testKey(0x01),
		Authority:       testKey(0x02),
		Owner:           testKey(0x03),
		UserRewardToken: testKey(0x04),
		PoolRewardToken: testKey(0x05),
		PoolLPToken:     testKey(0x06),
		PoolLPMint:      testKey(0x07),
		ProgramData:     testKey(0x08),
		TokenProgram:    testKey(0x09),
	}

	ix, err := NewAddRewardInstruction(CropperFarmProgramID, accounts, AddReward{Amount: 10})
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 10)
	assert.Equal(t, solana.SysVarClockPubkey, metas[9].PublicKey)
}

func TestNewPayFarmFeeInstruction(t *testing.T) {
	accounts := PayFarmFeeAccounts{
		Farm:          testKey(0x01),
		Authority:     testKey(0x02),
		Owner:         testKey(0x03),
		UserUSDCToken: testKey(0x04),
		FeeUSDCATA:    testKey(0x05),
		ProgramData:   testKey(0x06),
		TokenProgram:  testKey(0x07),
	}

	fee := PayFarmFee{Amount: 5_000_000}
	ix, err := NewPayFarmFeeInstruction(CropperFarmProgramID, accounts, fee)
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 7)
	assert.Equal(t, accounts.Owner, metas[2].PublicKey)
	assert.True(t, metas[2].IsSigner)

	data, err := ix.Data()
	require.NoError(t, err)
	expected, err := EncodeInstruction(fee)
	require.NoError(t, err)
	assert.Equal(t, expected, data)
}
