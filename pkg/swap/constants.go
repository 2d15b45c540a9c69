package swap

import "github.com/gagliardetto/solana-go"

// Cropper AMM Program ID
const (
	CROPPER_SWAP_PROGRAM_ID = "CTMAxxk34HjKWxQ3QLZK1HpaLXmBveao3ESePXbiyfzh"
)

var (
	CropperSwapProgramID = solana.MustPublicKeyFromBase58(CROPPER_SWAP_PROGRAM_ID)
)

// Record sizes (bytes). The on-chain program allocates accounts of exactly
// these lengths, so encode and decode are both pinned to them.
const (
	FeesSize         = 24
	SwapCurveSize    = 33
	ProgramStateSize = 1 + 32 + 32 + 8 + FeesSize + SwapCurveSize // 130
	PoolStateV1Size  = 1 + 1 + 9*32                               // 290
	PoolStateSize    = 1 + PoolStateV1Size                        // 291, version byte first
)
