package swap

import "encoding/binary"

// CurveType selects the pricing formula a pool runs on.
type CurveType uint8

const (
	ConstantProduct CurveType = iota
	ConstantPrice
	Stable
)

func (t CurveType) String() string {
	switch t {
	case ConstantProduct:
		return "constant_product"
	case ConstantPrice:
		return "constant_price"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// SwapCurve is the curve selector stored inside ProgramState: one type byte
// followed by a 32-byte calculator parameter block. ConstantProduct carries
// no parameters; ConstantPrice stores the token B price and Stable the
// amplification factor in the first 8 bytes, little-endian. The rest of the
// block is zero padding reserved for future calculators.
type SwapCurve struct {
	CurveType  CurveType
	Calculator [32]byte
}

var swapCurveLayout = recordLayout{
	{"curve_type", 0, 1},
	{"calculator", 1, 32},
}

// NewConstantProductCurve returns the x*y=k curve selector.
func NewConstantProductCurve() SwapCurve {
	return SwapCurve{CurveType: ConstantProduct}
}

// NewConstantPriceCurve returns a fixed-price curve selector.
func NewConstantPriceCurve(tokenBPrice uint64) SwapCurve {
	c := SwapCurve{CurveType: ConstantPrice}
	binary.LittleEndian.PutUint64(c.Calculator[:8], tokenBPrice)
	return c
}

// NewStableCurve returns a stableswap curve selector with the given
// amplification factor.
func NewStableCurve(amp uint64) SwapCurve {
	c := SwapCurve{CurveType: Stable}
	binary.LittleEndian.PutUint64(c.Calculator[:8], amp)
	return c
}

// TokenBPrice reads the fixed-price parameter. Meaningful only when
// CurveType is ConstantPrice.
func (c *SwapCurve) TokenBPrice() uint64 {
	return binary.LittleEndian.Uint64(c.Calculator[:8])
}

// AmpFactor reads the amplification parameter. Meaningful only when
// CurveType is Stable.
func (c *SwapCurve) AmpFactor() uint64 {
	return binary.LittleEndian.Uint64(c.Calculator[:8])
}

// Marshal packs the curve selector into its fixed 33-byte form.
func (c *SwapCurve) Marshal() []byte {
	b := make([]byte, SwapCurveSize)
	swapCurveLayout.slice(b, "curve_type")[0] = byte(c.CurveType)
	copy(swapCurveLayout.slice(b, "calculator"), c.Calculator[:])
	return b
}

// Unmarshal reads the curve selector from the first 33 bytes of b.
func (c *SwapCurve) Unmarshal(b []byte) error {
	if len(b) < SwapCurveSize {
		return ErrBufferTooSmall
	}
	curveType := CurveType(swapCurveLayout.slice(b, "curve_type")[0])
	switch curveType {
	case ConstantProduct, ConstantPrice, Stable:
	default:
		return ErrUnknownCurveType
	}
	c.CurveType = curveType
	copy(c.Calculator[:], swapCurveLayout.slice(b, "calculator"))
	return nil
}
