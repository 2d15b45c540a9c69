package swap

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// ProgramState is the global program configuration account. It is created
// once per deployment and only the designated state owner may change it; the
// codec here just moves it in and out of its 130-byte form.
type ProgramState struct {
	IsInitialized bool
	StateOwner    solana.PublicKey
	FeeOwner      solana.PublicKey
	InitialSupply uint64
	Fees          Fees
	SwapCurve     SwapCurve
}

var programStateLayout = recordLayout{
	{"is_initialized", 0, 1},
	{"state_owner", 1, 32},
	{"fee_owner", 33, 32},
	{"initial_supply", 65, 8},
	{"fees", 73, FeesSize},
	{"swap_curve", 97, SwapCurveSize},
}

// Marshal packs the configuration into its fixed 130-byte form.
func (s *ProgramState) Marshal() []byte {
	b := make([]byte, ProgramStateSize)
	programStateLayout.slice(b, "is_initialized")[0] = flagByte(s.IsInitialized)
	copy(programStateLayout.slice(b, "state_owner"), s.StateOwner[:])
	copy(programStateLayout.slice(b, "fee_owner"), s.FeeOwner[:])
	binary.LittleEndian.PutUint64(programStateLayout.slice(b, "initial_supply"), s.InitialSupply)
	copy(programStateLayout.slice(b, "fees"), s.Fees.Marshal())
	copy(programStateLayout.slice(b, "swap_curve"), s.SwapCurve.Marshal())
	return b
}

// Unmarshal reads the configuration from the first 130 bytes of b. Trailing
// bytes are ignored; account buffers are allowed to be over-allocated.
func (s *ProgramState) Unmarshal(b []byte) error {
	if len(b) < ProgramStateSize {
		return ErrBufferTooSmall
	}
	initialized, err := readFlag(programStateLayout.slice(b, "is_initialized")[0])
	if err != nil {
		return err
	}
	s.IsInitialized = initialized
	copy(s.StateOwner[:], programStateLayout.slice(b, "state_owner"))
	copy(s.FeeOwner[:], programStateLayout.slice(b, "fee_owner"))
	s.InitialSupply = binary.LittleEndian.Uint64(programStateLayout.slice(b, "initial_supply"))
	if err := s.Fees.Unmarshal(programStateLayout.slice(b, "fees")); err != nil {
		return err
	}
	return s.SwapCurve.Unmarshal(programStateLayout.slice(b, "swap_curve"))
}

// PoolAccount is the version-oblivious read view of a pool state account.
// Callers holding a versioned buffer never need to know which layout
// version backs it.
type PoolAccount interface {
	IsInitialized() bool
	Nonce() uint8
	TokenProgramID() solana.PublicKey
	TokenAAccount() solana.PublicKey
	TokenBAccount() solana.PublicKey
	PoolMint() solana.PublicKey
	TokenAMint() solana.PublicKey
	TokenBMint() solana.PublicKey
}

// PoolStateV1 is the only pool layout defined so far: a 290-byte record of
// flag, nonce and nine account keys. New layouts get a new version value and
// a new type; this one stays frozen for accounts already on chain.
type PoolStateV1 struct {
	Initialized    bool
	BumpSeed       uint8
	AmmID          solana.PublicKey
	DexProgramID   solana.PublicKey
	MarketID       solana.PublicKey
	TokenProgram   solana.PublicKey
	TokenA         solana.PublicKey
	TokenB         solana.PublicKey
	PoolTokenMint  solana.PublicKey
	TokenAMintAddr solana.PublicKey
	TokenBMintAddr solana.PublicKey
}

var poolStateV1Layout = recordLayout{
	{"is_initialized", 0, 1},
	{"nonce", 1, 1},
	{"amm_id", 2, 32},
	{"dex_program_id", 34, 32},
	{"market_id", 66, 32},
	{"token_program_id", 98, 32},
	{"token_a", 130, 32},
	{"token_b", 162, 32},
	{"pool_mint", 194, 32},
	{"token_a_mint", 226, 32},
	{"token_b_mint", 258, 32},
}

func (p *PoolStateV1) IsInitialized() bool              { return p.Initialized }
func (p *PoolStateV1) Nonce() uint8                     { return p.BumpSeed }
func (p *PoolStateV1) TokenProgramID() solana.PublicKey { return p.TokenProgram }
func (p *PoolStateV1) TokenAAccount() solana.PublicKey  { return p.TokenA }
func (p *PoolStateV1) TokenBAccount() solana.PublicKey  { return p.TokenB }
func (p *PoolStateV1) PoolMint() solana.PublicKey       { return p.PoolTokenMint }
func (p *PoolStateV1) TokenAMint() solana.PublicKey     { return p.TokenAMintAddr }
func (p *PoolStateV1) TokenBMint() solana.PublicKey     { return p.TokenBMintAddr }

// Marshal packs the pool state into its fixed 290-byte form, without the
// version prefix.
func (p *PoolStateV1) Marshal() []byte {
	b := make([]byte, PoolStateV1Size)
	poolStateV1Layout.slice(b, "is_initialized")[0] = flagByte(p.Initialized)
	poolStateV1Layout.slice(b, "nonce")[0] = p.BumpSeed
	copy(poolStateV1Layout.slice(b, "amm_id"), p.AmmID[:])
	copy(poolStateV1Layout.slice(b, "dex_program_id"), p.DexProgramID[:])
	copy(poolStateV1Layout.slice(b, "market_id"), p.MarketID[:])
	copy(poolStateV1Layout.slice(b, "token_program_id"), p.TokenProgram[:])
	copy(poolStateV1Layout.slice(b, "token_a"), p.TokenA[:])
	copy(poolStateV1Layout.slice(b, "token_b"), p.TokenB[:])
	copy(poolStateV1Layout.slice(b, "pool_mint"), p.PoolTokenMint[:])
	copy(poolStateV1Layout.slice(b, "token_a_mint"), p.TokenAMintAddr[:])
	copy(poolStateV1Layout.slice(b, "token_b_mint"), p.TokenBMintAddr[:])
	return b
}

// Unmarshal reads the pool state from the first 290 bytes of b.
func (p *PoolStateV1) Unmarshal(b []byte) error {
	if len(b) < PoolStateV1Size {
		return ErrBufferTooSmall
	}
	initialized, err := readFlag(poolStateV1Layout.slice(b, "is_initialized")[0])
	if err != nil {
		return err
	}
	p.Initialized = initialized
	p.BumpSeed = poolStateV1Layout.slice(b, "nonce")[0]
	copy(p.AmmID[:], poolStateV1Layout.slice(b, "amm_id"))
	copy(p.DexProgramID[:], poolStateV1Layout.slice(b, "dex_program_id"))
	copy(p.MarketID[:], poolStateV1Layout.slice(b, "market_id"))
	copy(p.TokenProgram[:], poolStateV1Layout.slice(b, "token_program_id"))
	copy(p.TokenA[:], poolStateV1Layout.slice(b, "token_a"))
	copy(p.TokenB[:], poolStateV1Layout.slice(b, "token_b"))
	copy(p.PoolTokenMint[:], poolStateV1Layout.slice(b, "pool_mint"))
	copy(p.TokenAMintAddr[:], poolStateV1Layout.slice(b, "token_a_mint"))
	copy(p.TokenBMintAddr[:], poolStateV1Layout.slice(b, "token_b_mint"))
	return nil
}

// Pool state version values.
const poolVersionV1 = 1

// PackPool writes the versioned 291-byte form of a pool state: the version
// byte, then the layout it selects.
func PackPool(p *PoolStateV1) []byte {
	b := make([]byte, 0, PoolStateSize)
	b = append(b, poolVersionV1)
	return append(b, p.Marshal()...)
}

// UnpackPool reads a versioned pool buffer and returns the read view for
// whichever layout the version byte selects.
func UnpackPool(b []byte) (PoolAccount, error) {
	if len(b) == 0 {
		return nil, ErrBufferTooSmall
	}
	switch b[0] {
	case poolVersionV1:
		p := new(PoolStateV1)
		if err := p.Unmarshal(b[1:]); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, ErrUnsupportedVersion
	}
}

// PoolInitialized reports whether a versioned pool buffer decodes to an
// initialized pool. It is a cheap pre-check before full validation, so any
// decode failure reads as uninitialized rather than an error.
func PoolInitialized(b []byte) bool {
	pool, err := UnpackPool(b)
	if err != nil {
		return false
	}
	return pool.IsInitialized()
}

func flagByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func readFlag(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidFlagByte
	}
}
