package bundle

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-settlement/claim"
)

var ErrBundleNotFound = errors.New("bundle not found")

type Status string

const (
	StatusPending            Status = "PENDING"
	StatusFilled             Status = "FILLED"
	StatusPreconfirmed       Status = "PRECONFIRMED"
	StatusPartiallyCompleted Status = "PARTIALLY_COMPLETED"
	StatusCompleted          Status = "COMPLETED"
	StatusFailed             Status = "FAILED"
	StatusExpired            Status = "EXPIRED"
	StatusUnknown            Status = "UNKNOWN"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending,
		StatusFilled,
		StatusPreconfirmed,
		StatusPartiallyCompleted,
		StatusCompleted,
		StatusFailed,
		StatusExpired,
		StatusUnknown:
		return Status(s), nil
	default:
		return StatusUnknown, fmt.Errorf("unknown bundle status %s", s)
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusExpired:
		return true
	default:
		return false
	}
}

// FillRecord is the target chain execution of a bundle
type FillRecord struct {
	ChainID       uint64
	Timestamp     time.Time
	TxHash        common.Hash
	Confirmations uint64
}

type FillState int

const (
	FillAbsent FillState = iota
	FillUnconfirmed
	FillPreconfirmed
	// FillUnknown marks a fill lookup that failed
	FillUnknown
)

// FillStateOf classifies a fill against the relayer confirmation quorum.
// A nil fill means no fill happened yet.
func FillStateOf(fill *FillRecord, quorum uint64) FillState {
	if fill == nil {
		return FillAbsent
	}
	if fill.Confirmations >= quorum {
		return FillPreconfirmed
	}
	return FillUnconfirmed
}

// DeriveStatus aggregates claim statuses and the fill state into a single
// bundle status. deadlinePassed is only consulted for a bundle without
// claims and without a fill.
func DeriveStatus(claims []claim.Status, fill FillState, deadlinePassed bool) Status {
	pending, expired, claimed := 0, 0, 0
	for _, c := range claims {
		switch c {
		case claim.StatusPending:
			pending++
		case claim.StatusExpired:
			expired++
		case claim.StatusClaimed:
			claimed++
		default:
			return StatusUnknown
		}
	}

	switch fill {
	case FillAbsent:
		switch {
		case len(claims) == 0 && deadlinePassed:
			return StatusExpired
		case pending == len(claims):
			return StatusPending
		case expired == len(claims):
			return StatusExpired
		default:
			return StatusPartiallyCompleted
		}
	case FillUnconfirmed, FillPreconfirmed:
		switch {
		case len(claims) > 0 && claimed == len(claims):
			return StatusCompleted
		// one expired claim fails a filled bundle even while others are pending
		case expired > 0:
			return StatusFailed
		case fill == FillPreconfirmed:
			return StatusPreconfirmed
		default:
			return StatusFilled
		}
	default:
		return StatusUnknown
	}
}
