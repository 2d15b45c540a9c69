package swap

// Instruction discriminants. The leading byte of every instruction payload
// selects one of these; the set is closed and the values are part of the
// deployed wire format.
const (
	TagInitialize byte = iota
	TagSwap
	TagDepositAllTokenTypes
	TagWithdrawAllTokenTypes
	TagDepositSingleTokenTypeExactAmountIn
	TagWithdrawSingleTokenTypeExactAmountOut
)

// Instruction is one of the fixed instruction variants understood by the
// Cropper AMM program. The set is closed: only the types in this file
// implement it.
type Instruction interface {
	Tag() byte
	appendPayload(buf []byte) []byte
}

// Initialize creates a new pool. The nonce is the bump seed that makes the
// pool's derived authority address valid.
type Initialize struct {
	Nonce uint8
}

// Swap trades a fixed input amount for at least MinimumAmountOut of the
// other token.
type Swap struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

// DepositAllTokenTypes deposits both tokens at the current pool ratio in
// exchange for pool tokens.
type DepositAllTokenTypes struct {
	PoolTokenAmount     uint64
	MaximumTokenAAmount uint64
	MaximumTokenBAmount uint64
}

// WithdrawAllTokenTypes burns pool tokens in exchange for both tokens at the
// current pool ratio.
type WithdrawAllTokenTypes struct {
	PoolTokenAmount     uint64
	MinimumTokenAAmount uint64
	MinimumTokenBAmount uint64
}

// DepositSingleTokenTypeExactAmountIn deposits exactly SourceTokenAmount of
// one token, as if a swap and a both-sided deposit were performed.
type DepositSingleTokenTypeExactAmountIn struct {
	SourceTokenAmount      uint64
	MinimumPoolTokenAmount uint64
}

// WithdrawSingleTokenTypeExactAmountOut withdraws exactly
// DestinationTokenAmount of one token, burning at most
// MaximumPoolTokenAmount pool tokens.
type WithdrawSingleTokenTypeExactAmountOut struct {
	DestinationTokenAmount uint64
	MaximumPoolTokenAmount uint64
}

func (Initialize) Tag() byte                            { return TagInitialize }
func (Swap) Tag() byte                                  { return TagSwap }
func (DepositAllTokenTypes) Tag() byte                  { return TagDepositAllTokenTypes }
func (WithdrawAllTokenTypes) Tag() byte                 { return TagWithdrawAllTokenTypes }
func (DepositSingleTokenTypeExactAmountIn) Tag() byte   { return TagDepositSingleTokenTypeExactAmountIn }
func (WithdrawSingleTokenTypeExactAmountOut) Tag() byte { return TagWithdrawSingleTokenTypeExactAmountOut }

func (ix Initialize) appendPayload(buf []byte) []byte {
	return append(buf, ix.Nonce)
}

func (ix Swap) appendPayload(buf []byte) []byte {
	buf = appendUint64(buf, ix.AmountIn)
	return appendUint64(buf, ix.MinimumAmountOut)
}

func (ix DepositAllTokenTypes) appendPayload(buf []byte) []byte {
	buf = appendUint64(buf, ix.PoolTokenAmount)
	buf = appendUint64(buf, ix.MaximumTokenAAmount)
	return appendUint64(buf, ix.MaximumTokenBAmount)
}

func (ix WithdrawAllTokenTypes) appendPayload(buf []byte) []byte {
	buf = appendUint64(buf, ix.PoolTokenAmount)
	buf = appendUint64(buf, ix.MinimumTokenAAmount)
	return appendUint64(buf, ix.MinimumTokenBAmount)
}

func (ix DepositSingleTokenTypeExactAmountIn) appendPayload(buf []byte) []byte {
	buf = appendUint64(buf, ix.SourceTokenAmount)
	return appendUint64(buf, ix.MinimumPoolTokenAmount)
}

func (ix WithdrawSingleTokenTypeExactAmountOut) appendPayload(buf []byte) []byte {
	buf = appendUint64(buf, ix.DestinationTokenAmount)
	return appendUint64(buf, ix.MaximumPoolTokenAmount)
}

// EncodeInstruction packs an instruction into its canonical wire form: the
// discriminant byte followed by each field little-endian, nothing after.
func EncodeInstruction(ix Instruction) []byte {
	buf := make([]byte, 0, 1+3*8)
	buf = append(buf, ix.Tag())
	return ix.appendPayload(buf)
}

// DecodeInstruction unpacks instruction data received by the program.
//
// Initialize (tag 0) is strict: the payload must be exactly the nonce byte.
// The multi-field variants read their fixed fields and ignore anything after
// them. Deployed callers pad instruction data, so the looseness is part of
// the wire contract and must not be tightened.
func DecodeInstruction(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, ErrMissingDiscriminant
	}
	tag, rest := data[0], data[1:]

	switch tag {
	case TagInitialize:
		if len(rest) != 1 {
			return nil, ErrMalformedPayload
		}
		return Initialize{Nonce: rest[0]}, nil

	case TagSwap:
		amountIn, rest, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		minimumAmountOut, _, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		return Swap{
			AmountIn:         amountIn,
			MinimumAmountOut: minimumAmountOut,
		}, nil

	case TagDepositAllTokenTypes:
		poolTokenAmount, rest, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		maximumTokenAAmount, rest, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		maximumTokenBAmount, _, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		return DepositAllTokenTypes{
			PoolTokenAmount:     poolTokenAmount,
			MaximumTokenAAmount: maximumTokenAAmount,
			MaximumTokenBAmount: maximumTokenBAmount,
		}, nil

	case TagWithdrawAllTokenTypes:
		poolTokenAmount, rest, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		minimumTokenAAmount, rest, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		minimumTokenBAmount, _, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		return WithdrawAllTokenTypes{
			PoolTokenAmount:     poolTokenAmount,
			MinimumTokenAAmount: minimumTokenAAmount,
			MinimumTokenBAmount: minimumTokenBAmount,
		}, nil

	case TagDepositSingleTokenTypeExactAmountIn:
		sourceTokenAmount, rest, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		minimumPoolTokenAmount, _, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		return DepositSingleTokenTypeExactAmountIn{
			SourceTokenAmount:      sourceTokenAmount,
			MinimumPoolTokenAmount: minimumPoolTokenAmount,
		}, nil

	case TagWithdrawSingleTokenTypeExactAmountOut:
		destinationTokenAmount, rest, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		maximumPoolTokenAmount, _, err := readUint64(rest)
		if err != nil {
			return nil, err
		}
		return WithdrawSingleTokenTypeExactAmountOut{
			DestinationTokenAmount: destinationTokenAmount,
			MaximumPoolTokenAmount: maximumPoolTokenAmount,
		}, nil

	default:
		return nil, ErrUnknownDiscriminant
	}
}
