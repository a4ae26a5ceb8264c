package cost

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenRequest is a single desired output token. A nil Amount requests
// everything that remains available after all other requests are resolved.
type TokenRequest struct {
	Token  common.Address
	Amount *big.Int
}

func (r TokenRequest) IsSweep() bool {
	return r.Amount == nil
}

type FundingTarget struct {
	ChainID uint64
	Tokens  []TokenRequest
}

// AccessRestriction limits which balances can fund a target. Either ChainTokens
// or the ChainIDs/Symbols pair may be set, never both. An empty ChainIDs or
// Symbols set leaves that dimension unrestricted.
type AccessRestriction struct {
	ChainTokens map[uint64][]common.Address

	ChainIDs []uint64
	Symbols  []string
}

func (r *AccessRestriction) mapped() bool {
	return len(r.ChainTokens) > 0
}

func (r *AccessRestriction) unmapped() bool {
	return len(r.ChainIDs) > 0 || len(r.Symbols) > 0
}

// Outcome is either Covered or Shortfall
type Outcome interface {
	HasFulfilledAll() bool
	isOutcome()
}

type TokenReceipt struct {
	Token        common.Address
	HasFulfilled bool
	AmountSpent  *big.Int
	TargetAmount *big.Int
	Fee          *big.Int
}

// Covered lists exactly what is debited from every chain and what every
// requested token receives
type Covered struct {
	// chainID -> token -> amount in the source token's base units
	TokensSpent    map[uint64]map[common.Address]*big.Int
	TokensReceived []TokenReceipt
}

func (Covered) HasFulfilledAll() bool { return true }
func (Covered) isOutcome()            {}

type TokenShortfall struct {
	Token        common.Address
	Symbol       string
	Decimals     uint8
	TargetAmount *big.Int
	AmountSpent  *big.Int
	Fee          *big.Int
	// TargetAmount + Fee - AmountSpent
	Missing *big.Int
}

// Shortfall lists every requested token that could not be fully funded
type Shortfall struct {
	Tokens   []TokenShortfall
	TotalUSD *big.Float
}

func (Shortfall) HasFulfilledAll() bool { return false }
func (Shortfall) isOutcome()            {}
