// Package farm encodes instructions for the yield-farming program that sits
// next to the AMM. Unlike the swap program's hand-packed layouts, farm
// instructions are borsh-encoded: a one-byte variant index followed by the
// variant's fields.
package farm

import (
	"bytes"
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// Borsh enum variant indices, in declaration order of the on-chain enum.
const (
	variantSetProgramData byte = iota
	variantInitializeFarm
	variantDeposit
	variantWithdraw
	variantAddReward
	variantPayFarmFee
)

var (
	// ErrUnknownVariant is returned for a variant index outside the defined
	// instruction set.
	ErrUnknownVariant = errors.New("unknown farm instruction variant")
)

// Instruction is one of the fixed instruction variants understood by the
// farm program.
type Instruction interface {
	variant() byte
	encodeFields(enc *bin.Encoder) error
}

// SetProgramData replaces the farm program's global configuration.
type SetProgramData struct {
	SuperOwner            solana.PublicKey
	FeeOwner              solana.PublicKey
	AllowedCreator        solana.PublicKey
	AmmProgramID          solana.PublicKey
	FarmFee               uint64
	HarvestFeeNumerator   uint64
	HarvestFeeDenominator uint64
}

// InitializeFarm creates a farm pool running between the two timestamps.
type InitializeFarm struct {
	Nonce          uint8
	StartTimestamp uint64
	EndTimestamp   uint64
}

// Deposit stakes LP tokens. A zero amount performs a harvest only.
type Deposit struct {
	Amount uint64
}

// Withdraw unstakes LP tokens, harvesting pending rewards first.
type Withdraw struct {
	Amount uint64
}

// AddReward tops up the farm's reward vault.
type AddReward struct {
	Amount uint64
}

// PayFarmFee pays the one-time farm creation fee.
type PayFarmFee struct {
	Amount uint64
}

func (SetProgramData) variant() byte { return variantSetProgramData }
func (InitializeFarm) variant() byte { return variantInitializeFarm }
func (Deposit) variant() byte        { return variantDeposit }
func (Withdraw) variant() byte       { return variantWithdraw }
func (AddReward) variant() byte      { return variantAddReward }
func (PayFarmFee) variant() byte     { return variantPayFarmFee }

func (ix SetProgramData) encodeFields(enc *bin.Encoder) error {
	for _, key := range []solana.PublicKey{ix.SuperOwner, ix.FeeOwner, ix.AllowedCreator, ix.AmmProgramID} {
		if err := enc.WriteBytes(key[:], false); err != nil {
			return err
		}
	}
	for _, v := range []uint64{ix.FarmFee, ix.HarvestFeeNumerator, ix.HarvestFeeDenominator} {
		if err := enc.WriteUint64(v, binary.LittleEndian); err != nil {
			return err
		}
	}
	return nil
}

func (ix InitializeFarm) encodeFields(enc *bin.Encoder) error {
	if err := enc.WriteUint8(ix.Nonce); err != nil {
		return err
	}
	if err := enc.WriteUint64(ix.StartTimestamp, binary.LittleEndian); err != nil {
		return err
	}
	return enc.WriteUint64(ix.EndTimestamp, binary.LittleEndian)
}

func (ix Deposit) encodeFields(enc *bin.Encoder) error {
	return enc.WriteUint64(ix.Amount, binary.LittleEndian)
}

func (ix Withdraw) encodeFields(enc *bin.Encoder) error {
	return enc.WriteUint64(ix.Amount, binary.LittleEndian)
}

func (ix AddReward) encodeFields(enc *bin.Encoder) error {
	return enc.WriteUint64(ix.Amount, binary.LittleEndian)
}

func (ix PayFarmFee) encodeFields(enc *bin.Encoder) error {
	return enc.WriteUint64(ix.Amount, binary.LittleEndian)
}

// EncodeInstruction packs a farm instruction into its borsh wire form.
func EncodeInstruction(ix Instruction) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)
	if err := enc.WriteUint8(ix.variant()); err != nil {
		return nil, err
	}
	if err := ix.encodeFields(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeInstruction unpacks borsh instruction data received by the farm
// program.
func DecodeInstruction(data []byte) (Instruction, error) {
	dec := bin.NewBorshDecoder(data)
	variant, err := dec.ReadUint8()
	if err != nil {
		return nil, errors.Wrap(err, "read variant index")
	}

	readKey := func() (solana.PublicKey, error) {
		var key solana.PublicKey
		raw, err := dec.ReadNBytes(32)
		if err != nil {
			return key, err
		}
		copy(key[:], raw)
		return key, nil
	}
	readUint64 := func() (uint64, error) {
		return dec.ReadUint64(binary.LittleEndian)
	}

	switch variant {
	case variantSetProgramData:
		var ix SetProgramData
		keys := []*solana.PublicKey{&ix.SuperOwner, &ix.FeeOwner, &ix.AllowedCreator, &ix.AmmProgramID}
		for _, dst := range keys {
			key, err := readKey()
			if err != nil {
				return nil, err
			}
			*dst = key
		}
		values := []*uint64{&ix.FarmFee, &ix.HarvestFeeNumerator, &ix.HarvestFeeDenominator}
		for _, dst := range values {
			v, err := readUint64()
			if err != nil {
				return nil, err
			}
			*dst = v
		}
		return ix, nil

	case variantInitializeFarm:
		var ix InitializeFarm
		nonce, err := dec.ReadUint8()
		if err != nil {
			return nil, err
		}
		ix.Nonce = nonce
		if ix.StartTimestamp, err = readUint64(); err != nil {
			return nil, err
		}
		if ix.EndTimestamp, err = readUint64(); err != nil {
			return nil, err
		}
		return ix, nil

	case variantDeposit:
		amount, err := readUint64()
		if err != nil {
			return nil, err
		}
		return Deposit{Amount: amount}, nil

	case variantWithdraw:
		amount, err := readUint64()
		if err != nil {
			return nil, err
		}
		return Withdraw{Amount: amount}, nil

	case variantAddReward:
		amount, err := readUint64()
		if err != nil {
			return nil, err
		}
		return AddReward{Amount: amount}, nil

	case variantPayFarmFee:
		amount, err := readUint64()
		if err != nil {
			return nil, err
		}
		return PayFarmFee{Amount: amount}, nil

	default:
		return nil, ErrUnknownVariant
	}
}
