package farm

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(fill byte) solana.PublicKey {
	var key solana.PublicKey
	for i := range key {
		key[i] = fill
	}
	return key
}

func TestFarmInstructionRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		ix   Instruction
	}{
		{
			"set_program_data",
			SetProgramData{
				SuperOwner:            testKey(0x01),
				FeeOwner:              testKey(0x02),
				AllowedCreator:        testKey(0x03),
				AmmProgramID:          testKey(0x04),
				FarmFee:               5_000_000,
				HarvestFeeNumerator:   1,
				HarvestFeeDenominator: 1000,
			},
		},
		{
			"initialize_farm",
			InitializeFarm{Nonce: 250, StartTimestamp: 1_700_000_000, EndTimestamp: 1_800_000_000},
		},
		{"deposit", Deposit{Amount: 12_345}},
		{"withdraw", Withdraw{Amount: 67_890}},
		{"add_reward", AddReward{Amount: 1}},
		{"pay_farm_fee", PayFarmFee{Amount: 5_000_000}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeInstruction(tc.ix)
			require.NoError(t, err)
			require.NotEmpty(t, data)
			assert.Equal(t, tc.ix.variant(), data[0])

			decoded, err := DecodeInstruction(data)
			require.NoError(t, err)
			assert.Equal(t, tc.ix, decoded)
		})
	}
}

func TestFarmInstructionSizes(t *testing.T) {
	for _, tc := range []struct {
		ix   Instruction
		size int
	}{
		{SetProgramData{}, 1 + 4*32 + 3*8},
		{InitializeFarm{}, 1 + 1 + 2*8},
		{Deposit{}, 1 + 8},
		{Withdraw{}, 1 + 8},
		{AddReward{}, 1 + 8},
		{PayFarmFee{}, 1 + 8},
	} {
		data, err := EncodeInstruction(tc.ix)
		require.NoError(t, err)
		assert.Len(t, data, tc.size)
	}
}

func TestDecodeFarmUnknownVariant(t *testing.T) {
	_, err := DecodeInstruction([]byte{6, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = DecodeInstruction([]byte{255})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestDecodeFarmTruncated(t *testing.T) {
	_, err := DecodeInstruction(nil)
	assert.Error(t, err)

	// Deposit needs eight bytes after the variant index.
	_, err = DecodeInstruction([]byte{variantDeposit, 1, 2, 3})
	assert.Error(t, err)

	full, err := EncodeInstruction(SetProgramData{SuperOwner: testKey(0xaa)})
	require.NoError(t, err)
	_, err = DecodeInstruction(full[:len(full)-1])
	assert.Error(t, err)
}

func TestDepositWireFormat(t *testing.T) {
	data, err := EncodeInstruction(Deposit{Amount: 1_000_000})
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0x40, 0x42, 0x0f, 0, 0, 0, 0, 0}, data)
}
