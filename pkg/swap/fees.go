package swap

import "encoding/binary"

// Fees is the pool fee schedule, stored inside ProgramState as a fixed
// 24-byte record of three little-endian u64 fields. The owner trade fee
// shares TradeFeeDenominator.
type Fees struct {
	TradeFeeNumerator      uint64
	TradeFeeDenominator    uint64
	OwnerTradeFeeNumerator uint64
}

var feesLayout = recordLayout{
	{"trade_fee_numerator", 0, 8},
	{"trade_fee_denominator", 8, 8},
	{"owner_trade_fee_numerator", 16, 8},
}

// Marshal packs the fee schedule into its fixed 24-byte form.
func (f *Fees) Marshal() []byte {
	b := make([]byte, FeesSize)
	binary.LittleEndian.PutUint64(feesLayout.slice(b, "trade_fee_numerator"), f.TradeFeeNumerator)
	binary.LittleEndian.PutUint64(feesLayout.slice(b, "trade_fee_denominator"), f.TradeFeeDenominator)
	binary.LittleEndian.PutUint64(feesLayout.slice(b, "owner_trade_fee_numerator"), f.OwnerTradeFeeNumerator)
	return b
}

// Unmarshal reads the fee schedule from the first 24 bytes of b.
func (f *Fees) Unmarshal(b []byte) error {
	if len(b) < FeesSize {
		return ErrBufferTooSmall
	}
	f.TradeFeeNumerator = binary.LittleEndian.Uint64(feesLayout.slice(b, "trade_fee_numerator"))
	f.TradeFeeDenominator = binary.LittleEndian.Uint64(feesLayout.slice(b, "trade_fee_denominator"))
	f.OwnerTradeFeeNumerator = binary.LittleEndian.Uint64(feesLayout.slice(b, "owner_trade_fee_numerator"))
	return nil
}
