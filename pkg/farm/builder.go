package farm

import "github.com/gagliardetto/solana-go"

// Call builders for the farm program, account order matching the on-chain
// dispatcher. Staking operations reference the clock sysvar because reward
// accrual is time-based.

// SetProgramDataAccounts lists the accounts for the configuration update.
type SetProgramDataAccounts struct {
	ProgramData solana.PublicKey // writable
	SuperOwner  solana.PublicKey // writable signer
}

// NewSetProgramDataInstruction builds the call that replaces the farm
// program's global configuration.
func NewSetProgramDataInstruction(programID solana.PublicKey, accounts SetProgramDataAccounts, ix SetProgramData) (solana.Instruction, error) {
	data, err := EncodeInstruction(ix)
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.ProgramData, true, false),
		solana.NewAccountMeta(accounts.SuperOwner, true, true),
	}
	return solana.NewInstruction(programID, metas, data), nil
}

// InitializeFarmAccounts lists the accounts for farm creation.
type InitializeFarmAccounts struct {
	Farm            solana.PublicKey // writable, new farm account
	Authority       solana.PublicKey // writable
	Owner           solana.PublicKey // signer, farm creator
	PoolLPToken     solana.PublicKey // writable, holds staked LP tokens
	PoolRewardToken solana.PublicKey // writable, holds the reward supply
	PoolMint        solana.PublicKey
	RewardMint      solana.PublicKey
	AmmID           solana.PublicKey
	ProgramData     solana.PublicKey
}

// NewInitializeFarmInstruction builds the call that creates a farm pool.
func NewInitializeFarmInstruction(programID solana.PublicKey, accounts InitializeFarmAccounts, ix InitializeFarm) (solana.Instruction, error) {
	data, err := EncodeInstruction(ix)
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Farm, true, false),
		solana.NewAccountMeta(accounts.Authority, true, false),
		solana.NewAccountMeta(accounts.Owner, false, true),
		solana.NewAccountMeta(accounts.PoolLPToken, true, false),
		solana.NewAccountMeta(accounts.PoolRewardToken, true, false),
		solana.NewAccountMeta(accounts.PoolMint, false, false),
		solana.NewAccountMeta(accounts.RewardMint, false, false),
		solana.NewAccountMeta(accounts.AmmID, false, false),
		solana.NewAccountMeta(accounts.ProgramData, false, false),
	}
	return solana.NewInstruction(programID, metas, data), nil
}

// StakeAccounts lists the accounts shared by deposit and withdraw.
type StakeAccounts struct {
	Farm            solana.PublicKey // writable
	Authority       solana.PublicKey
	Owner           solana.PublicKey // signer
	UserInfo        solana.PublicKey // writable, per-user staking record
	UserLPToken     solana.PublicKey // writable
	PoolLPToken     solana.PublicKey // writable
	UserRewardToken solana.PublicKey // writable
	PoolRewardToken solana.PublicKey // writable
	PoolLPMint      solana.PublicKey // writable
	FeeRewardATA    solana.PublicKey // writable, receives harvest fees
	ProgramData     solana.PublicKey // writable
	TokenProgram    solana.PublicKey // writable
}

// NewDepositInstruction builds the call that stakes LP tokens.
func NewDepositInstruction(programID solana.PublicKey, accounts StakeAccounts, ix Deposit) (solana.Instruction, error) {
	data, err := EncodeInstruction(ix)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, stakeMetas(accounts, false), data), nil
}

// NewWithdrawInstruction builds the call that unstakes LP tokens.
func NewWithdrawInstruction(programID solana.PublicKey, accounts StakeAccounts, ix Withdraw) (solana.Instruction, error) {
	data, err := EncodeInstruction(ix)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(programID, stakeMetas(accounts, true), data), nil
}

// The deployed program marks the owner writable on withdraw but not on
// deposit; both orders are otherwise identical.
func stakeMetas(accounts StakeAccounts, ownerWritable bool) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Farm, true, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.Owner, ownerWritable, true),
		solana.NewAccountMeta(accounts.UserInfo, true, false),
		solana.NewAccountMeta(accounts.UserLPToken, true, false),
		solana.NewAccountMeta(accounts.PoolLPToken, true, false),
		solana.NewAccountMeta(accounts.UserRewardToken, true, false),
		solana.NewAccountMeta(accounts.PoolRewardToken, true, false),
		solana.NewAccountMeta(accounts.PoolLPMint, true, false),
		solana.NewAccountMeta(accounts.FeeRewardATA, true, false),
		solana.NewAccountMeta(accounts.ProgramData, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, true, false),
		solana.NewAccountMeta(solana.SysVarClockPubkey, false, false),
	}
}

// AddRewardAccounts lists the accounts for a reward top-up.
type AddRewardAccounts struct {
	Farm            solana.PublicKey // writable
	Authority       solana.PublicKey
	Owner           solana.PublicKey // signer, farm creator
	UserRewardToken solana.PublicKey // writable
	PoolRewardToken solana.PublicKey // writable
	PoolLPToken     solana.PublicKey // writable
	PoolLPMint      solana.PublicKey // writable
	ProgramData     solana.PublicKey // writable
	TokenProgram    solana.PublicKey // writable
}

// NewAddRewardInstruction builds the call that tops up the reward vault.
func NewAddRewardInstruction(programID solana.PublicKey, accounts AddRewardAccounts, ix AddReward) (solana.Instruction, error) {
	data, err := EncodeInstruction(ix)
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Farm, true, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.Owner, false, true),
		solana.NewAccountMeta(accounts.UserRewardToken, true, false),
		solana.NewAccountMeta(accounts.PoolRewardToken, true, false),
		solana.NewAccountMeta(accounts.PoolLPToken, true, false),
		solana.NewAccountMeta(accounts.PoolLPMint, true, false),
		solana.NewAccountMeta(accounts.ProgramData, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, true, false),
		solana.NewAccountMeta(solana.SysVarClockPubkey, false, false),
	}
	return solana.NewInstruction(programID, metas, data), nil
}

// PayFarmFeeAccounts lists the accounts for the farm fee payment.
type PayFarmFeeAccounts struct {
	Farm          solana.PublicKey // writable
	Authority     solana.PublicKey
	Owner         solana.PublicKey // signer, farm creator
	UserUSDCToken solana.PublicKey // writable
	FeeUSDCATA    solana.PublicKey // writable
	ProgramData   solana.PublicKey // writable
	TokenProgram  solana.PublicKey // writable
}

// NewPayFarmFeeInstruction builds the call that pays the farm creation fee.
func NewPayFarmFeeInstruction(programID solana.PublicKey, accounts PayFarmFeeAccounts, ix PayFarmFee) (solana.Instruction, error) {
	data, err := EncodeInstruction(ix)
	if err != nil {
		return nil, err
	}
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Farm, true, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.Owner, false, true),
		solana.NewAccountMeta(accounts.UserUSDCToken, true, false),
		solana.NewAccountMeta(accounts.FeeUSDCATA, true, false),
		solana.NewAccountMeta(accounts.ProgramData, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, true, false),
	}
	return solana.NewInstruction(programID, metas, data), nil
}
