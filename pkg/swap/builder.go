package swap

import "github.com/gagliardetto/solana-go"

// Call builders. Each constructor assembles the account list for one
// operation, in the exact positional order the on-chain dispatcher indexes,
// and bundles it with the encoded instruction. No key is validated here;
// ownership and signatures are checked at execution time.

// InitializeAccounts lists every account the initialize operation touches.
type InitializeAccounts struct {
	Swap         solana.PublicKey // new pool account, writable signer
	Authority    solana.PublicKey // derived from the pool account and nonce
	State        solana.PublicKey // global program configuration
	AmmID        solana.PublicKey
	TokenA       solana.PublicKey // pool reserve account, owned by authority
	TokenB       solana.PublicKey
	PoolMint     solana.PublicKey // writable, must be empty
	Destination  solana.PublicKey // writable, receives the initial pool token supply
	Market       solana.PublicKey // external market, writable
	TokenProgram solana.PublicKey
	DexProgram   solana.PublicKey
}

// NewInitializeInstruction builds the call that creates a pool.
func NewInitializeInstruction(programID solana.PublicKey, accounts InitializeAccounts, ix Initialize) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Swap, true, true),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.State, false, false),
		solana.NewAccountMeta(accounts.AmmID, false, false),
		solana.NewAccountMeta(accounts.TokenA, false, false),
		solana.NewAccountMeta(accounts.TokenB, false, false),
		solana.NewAccountMeta(accounts.PoolMint, true, false),
		solana.NewAccountMeta(accounts.Destination, true, false),
		solana.NewAccountMeta(accounts.Market, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
		solana.NewAccountMeta(accounts.DexProgram, false, false),
	}
	return solana.NewInstruction(programID, metas, EncodeInstruction(ix))
}

// SwapAccounts lists every account the swap operation touches.
type SwapAccounts struct {
	Swap                  solana.PublicKey
	Authority             solana.PublicKey
	UserTransferAuthority solana.PublicKey // signer, may transfer the source amount
	State                 solana.PublicKey
	Source                solana.PublicKey // user source token account, writable
	SwapSource            solana.PublicKey // pool reserve swapped into, writable
	SwapDestination       solana.PublicKey // pool reserve swapped from, writable
	Destination           solana.PublicKey // user destination token account, writable
	PoolMint              solana.PublicKey // writable, trading fees are minted here
	FeeAccount            solana.PublicKey // writable, receives trading fees
	TokenProgram          solana.PublicKey
}

// NewSwapInstruction builds the call that trades against a pool.
//
// The state account is marked as a signer. That matches the deployed
// program's account contract, odd as it looks, and changing it would break
// dispatch against already-deployed pools.
func NewSwapInstruction(programID solana.PublicKey, accounts SwapAccounts, ix Swap) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Swap, false, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.UserTransferAuthority, false, true),
		solana.NewAccountMeta(accounts.State, false, true),
		solana.NewAccountMeta(accounts.Source, true, false),
		solana.NewAccountMeta(accounts.SwapSource, true, false),
		solana.NewAccountMeta(accounts.SwapDestination, true, false),
		solana.NewAccountMeta(accounts.Destination, true, false),
		solana.NewAccountMeta(accounts.PoolMint, true, false),
		solana.NewAccountMeta(accounts.FeeAccount, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
	}
	return solana.NewInstruction(programID, metas, EncodeInstruction(ix))
}

// DepositAllAccounts lists every account the both-sided deposit touches.
type DepositAllAccounts struct {
	Swap                  solana.PublicKey
	Authority             solana.PublicKey
	UserTransferAuthority solana.PublicKey // signer
	State                 solana.PublicKey
	DepositTokenA         solana.PublicKey // user token A account, writable
	DepositTokenB         solana.PublicKey // user token B account, writable
	SwapTokenA            solana.PublicKey // pool reserve A, writable
	SwapTokenB            solana.PublicKey // pool reserve B, writable
	PoolMint              solana.PublicKey // writable
	Destination           solana.PublicKey // user pool token account, writable
	TokenProgram          solana.PublicKey
}

// NewDepositAllTokenTypesInstruction builds the call that deposits both
// tokens at the current pool ratio.
func NewDepositAllTokenTypesInstruction(programID solana.PublicKey, accounts DepositAllAccounts, ix DepositAllTokenTypes) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Swap, false, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.UserTransferAuthority, false, true),
		solana.NewAccountMeta(accounts.State, false, false),
		solana.NewAccountMeta(accounts.DepositTokenA, true, false),
		solana.NewAccountMeta(accounts.DepositTokenB, true, false),
		solana.NewAccountMeta(accounts.SwapTokenA, true, false),
		solana.NewAccountMeta(accounts.SwapTokenB, true, false),
		solana.NewAccountMeta(accounts.PoolMint, true, false),
		solana.NewAccountMeta(accounts.Destination, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
	}
	return solana.NewInstruction(programID, metas, EncodeInstruction(ix))
}

// WithdrawAllAccounts lists every account the both-sided withdrawal touches.
type WithdrawAllAccounts struct {
	Swap                  solana.PublicKey
	Authority             solana.PublicKey
	UserTransferAuthority solana.PublicKey // signer
	State                 solana.PublicKey
	PoolMint              solana.PublicKey // writable
	Source                solana.PublicKey // user pool token account, writable
	SwapTokenA            solana.PublicKey // pool reserve A, writable
	SwapTokenB            solana.PublicKey // pool reserve B, writable
	DestinationTokenA     solana.PublicKey // user token A account, writable
	DestinationTokenB     solana.PublicKey // user token B account, writable
	TokenProgram          solana.PublicKey
}

// NewWithdrawAllTokenTypesInstruction builds the call that burns pool tokens
// for both tokens at the current pool ratio.
func NewWithdrawAllTokenTypesInstruction(programID solana.PublicKey, accounts WithdrawAllAccounts, ix WithdrawAllTokenTypes) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Swap, false, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.UserTransferAuthority, false, true),
		solana.NewAccountMeta(accounts.State, false, false),
		solana.NewAccountMeta(accounts.PoolMint, true, false),
		solana.NewAccountMeta(accounts.Source, true, false),
		solana.NewAccountMeta(accounts.SwapTokenA, true, false),
		solana.NewAccountMeta(accounts.SwapTokenB, true, false),
		solana.NewAccountMeta(accounts.DestinationTokenA, true, false),
		solana.NewAccountMeta(accounts.DestinationTokenB, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
	}
	return solana.NewInstruction(programID, metas, EncodeInstruction(ix))
}

// DepositSingleAccounts lists every account the single-sided deposit
// touches. Source may hold either token A or token B.
type DepositSingleAccounts struct {
	Swap                  solana.PublicKey
	Authority             solana.PublicKey
	UserTransferAuthority solana.PublicKey // signer
	Source                solana.PublicKey // user token account, writable
	SwapTokenA            solana.PublicKey // pool reserve A, writable
	SwapTokenB            solana.PublicKey // pool reserve B, writable
	PoolMint              solana.PublicKey // writable
	Destination           solana.PublicKey // user pool token account, writable
	TokenProgram          solana.PublicKey
}

// NewDepositSingleTokenTypeExactAmountInInstruction builds the call that
// deposits one token for pool tokens.
func NewDepositSingleTokenTypeExactAmountInInstruction(programID solana.PublicKey, accounts DepositSingleAccounts, ix DepositSingleTokenTypeExactAmountIn) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Swap, false, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.UserTransferAuthority, false, true),
		solana.NewAccountMeta(accounts.Source, true, false),
		solana.NewAccountMeta(accounts.SwapTokenA, true, false),
		solana.NewAccountMeta(accounts.SwapTokenB, true, false),
		solana.NewAccountMeta(accounts.PoolMint, true, false),
		solana.NewAccountMeta(accounts.Destination, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
	}
	return solana.NewInstruction(programID, metas, EncodeInstruction(ix))
}

// WithdrawSingleAccounts lists every account the single-sided withdrawal
// touches. Destination may hold either token A or token B.
type WithdrawSingleAccounts struct {
	Swap                  solana.PublicKey
	Authority             solana.PublicKey
	UserTransferAuthority solana.PublicKey // signer
	PoolMint              solana.PublicKey // writable
	Source                solana.PublicKey // user pool token account, writable
	SwapTokenA            solana.PublicKey // pool reserve A, writable
	SwapTokenB            solana.PublicKey // pool reserve B, writable
	Destination           solana.PublicKey // user token account, writable
	TokenProgram          solana.PublicKey
}

// NewWithdrawSingleTokenTypeExactAmountOutInstruction builds the call that
// withdraws an exact amount of one token.
func NewWithdrawSingleTokenTypeExactAmountOutInstruction(programID solana.PublicKey, accounts WithdrawSingleAccounts, ix WithdrawSingleTokenTypeExactAmountOut) solana.Instruction {
	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Swap, false, false),
		solana.NewAccountMeta(accounts.Authority, false, false),
		solana.NewAccountMeta(accounts.UserTransferAuthority, false, true),
		solana.NewAccountMeta(accounts.PoolMint, true, false),
		solana.NewAccountMeta(accounts.Source, true, false),
		solana.NewAccountMeta(accounts.SwapTokenA, true, false),
		solana.NewAccountMeta(accounts.SwapTokenB, true, false),
		solana.NewAccountMeta(accounts.Destination, true, false),
		solana.NewAccountMeta(accounts.TokenProgram, false, false),
	}
	return solana.NewInstruction(programID, metas, EncodeInstruction(ix))
}
