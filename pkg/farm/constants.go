package farm

import "github.com/gagliardetto/solana-go"

// Cropper Yield Farming Program ID
const (
	CROPPER_FARM_PROGRAM_ID = "DmDsMBncYEXwNK2TCQ9fbPeaJzbm8mdTDoU3GNm4joWg"
)

var (
	CropperFarmProgramID = solana.MustPublicKeyFromBase58(CROPPER_FARM_PROGRAM_ID)
)
