package claim

import (
	"time"
)

// Classify returns the status of a deposit claim at the given time. A
// present record always wins over deadlines.
func Classify(deposit DepositEvent, record *Record, now time.Time) Status {
	if record != nil {
		return StatusClaimed
	}
	if now.After(deposit.FillDeadline) {
		return StatusExpired
	}
	return StatusPending
}

// Track builds the claim for a deposit from the result of its claim lookup.
// A failed lookup yields StatusUnknown instead of guessing from deadlines.
func Track(deposit DepositEvent, record *Record, lookupErr error, now time.Time) Claim {
	c := Claim{
		DepositID: deposit.DepositID,
		ChainID:   deposit.OriginChainID,
	}
	if lookupErr != nil {
		c.Status = StatusUnknown
		return c
	}

	c.Status = Classify(deposit, record, now)
	if c.Status == StatusClaimed {
		timestamp := record.Timestamp
		txHash := record.TxHash
		c.ClaimTimestamp = &timestamp
		c.ClaimTransactionHash = &txHash
	}
	return c
}

// Statuses returns the status of every claim in order
func Statuses(claims []Claim) []Status {
	statuses := make([]Status, len(claims))
	for i, c := range claims {
		statuses[i] = c.Status
	}
	return statuses
}
