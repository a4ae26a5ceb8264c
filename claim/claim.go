package claim

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusExpired Status = "EXPIRED"
	StatusClaimed Status = "CLAIMED"
	// StatusUnknown marks a claim whose origin chain data could not be read
	StatusUnknown Status = "UNKNOWN"
)

// ParseStatus maps a wire value to a Status. Unrecognised values map to
// StatusUnknown together with an error.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusExpired, StatusClaimed, StatusUnknown:
		return Status(s), nil
	default:
		return StatusUnknown, fmt.Errorf("unknown claim status %s", s)
	}
}

type ClaimPayload struct {
	ChainID uint64
	To      common.Address
	Data    []byte
	Value   *big.Int
}

// DepositEvent is an origin chain deposit contributing to a bundle
type DepositEvent struct {
	ClaimPayload ClaimPayload

	InputToken   common.Address
	InputAmount  *big.Int
	OutputToken  common.Address
	OutputAmount *big.Int

	OriginChainID      uint64
	DestinationChainID uint64
	DepositID          *big.Int

	QuoteTimestamp      time.Time
	FillDeadline        time.Time
	ExclusivityDeadline time.Time

	Depositor        common.Address
	Recipient        common.Address
	ExclusiveRelayer common.Address
	Message          []byte
}

// Record is the on-chain evidence of a completed claim
type Record struct {
	Timestamp time.Time
	TxHash    common.Hash
}

type Claim struct {
	DepositID            *big.Int
	ChainID              uint64
	Status               Status
	ClaimTimestamp       *time.Time
	ClaimTransactionHash *common.Hash
}
