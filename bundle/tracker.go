package bundle

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/sprintertech/sprinter-settlement/claim"
)

type EventIndexer interface {
	DepositEvents(ctx context.Context, bundleID *big.Int) ([]claim.DepositEvent, error)
	// FillEvent returns nil when the bundle has not been filled yet
	FillEvent(ctx context.Context, bundleID *big.Int) (*FillRecord, error)
	// Deadline returns the time after which the bundle can no longer be filled
	Deadline(ctx context.Context, bundleID *big.Int) (time.Time, error)
}

type ClaimFetcher interface {
	// Claim returns nil when the deposit has not been claimed yet
	Claim(ctx context.Context, bundleID *big.Int, deposit claim.DepositEvent) (*claim.Record, error)
}

type Metrics interface {
	TrackBundleStatus(status string)
	TrackRegressionRefused()
}

type Result struct {
	BundleID            *big.Int
	Status              Status
	FillTimestamp       *time.Time
	FillTransactionHash *common.Hash
	Claims              []claim.Claim
}

type Tracker struct {
	indexer EventIndexer
	claims  ClaimFetcher
	guard   *Guard
	metrics Metrics
	quorum  uint64
	timeout time.Duration
}

func NewTracker(
	indexer EventIndexer,
	claims ClaimFetcher,
	guard *Guard,
	metrics Metrics,
	quorum uint64,
	timeout time.Duration,
) *Tracker {
	return &Tracker{
		indexer: indexer,
		claims:  claims,
		guard:   guard,
		metrics: metrics,
		quorum:  quorum,
		timeout: timeout,
	}
}

// Status recomputes the bundle status from the latest indexed data. Lookups
// that fail degrade the affected part of the bundle to UNKNOWN and the
// result is passed through the regression guard.
func (t *Tracker) Status(ctx context.Context, bundleID *big.Int) (*Result, error) {
	logger := log.With().Str("bundleID", bundleID.String()).Logger()
	now := time.Now()
	complete := true

	deposits, err := t.indexer.DepositEvents(ctx, bundleID)
	if errors.Is(err, ErrBundleNotFound) {
		return nil, err
	}
	depositsKnown := err == nil
	if err != nil {
		logger.Warn().Msgf("Failed fetching deposit events: %s", err)
		complete = false
	}

	result := &Result{
		BundleID: bundleID,
	}
	fillState := FillAbsent
	fill, err := t.indexer.FillEvent(ctx, bundleID)
	if err != nil {
		logger.Warn().Msgf("Failed fetching fill event: %s", err)
		fillState = FillUnknown
		complete = false
	} else if fill != nil {
		fillState = FillStateOf(fill, t.quorum)
		timestamp := fill.Timestamp
		txHash := fill.TxHash
		result.FillTimestamp = &timestamp
		result.FillTransactionHash = &txHash
	}

	deadlinePassed := false
	deadline, err := t.indexer.Deadline(ctx, bundleID)
	deadlineKnown := err == nil
	if err != nil {
		logger.Warn().Msgf("Failed fetching bundle deadline: %s", err)
		complete = false
	} else {
		deadlinePassed = now.After(deadline)
	}

	result.Claims = t.trackClaims(ctx, bundleID, deposits, now)
	for _, c := range result.Claims {
		if c.Status == claim.StatusUnknown {
			complete = false
		}
	}

	// the deadline only decides the status of a bundle without claims or fill
	status := StatusUnknown
	if depositsKnown && (deadlineKnown || len(result.Claims) > 0 || fillState != FillAbsent) {
		status = DeriveStatus(claim.Statuses(result.Claims), fillState, deadlinePassed)
	}

	result.Status, err = t.guard.Apply(bundleID.String(), status, complete)
	if errors.Is(err, ErrRegressionRefused) {
		logger.Warn().Msgf("Keeping status %s instead of %s computed from incomplete data", result.Status, status)
		if t.metrics != nil {
			t.metrics.TrackRegressionRefused()
		}
	}

	if t.metrics != nil {
		t.metrics.TrackBundleStatus(string(result.Status))
	}
	return result, nil
}

func (t *Tracker) trackClaims(ctx context.Context, bundleID *big.Int, deposits []claim.DepositEvent, now time.Time) []claim.Claim {
	claims := make([]claim.Claim, len(deposits))
	p := pool.New()
	for i, deposit := range deposits {
		p.Go(func() {
			ctx := ctx
			if t.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, t.timeout)
				defer cancel()
			}

			record, err := t.claims.Claim(ctx, bundleID, deposit)
			if err != nil {
				log.Warn().Str("bundleID", bundleID.String()).Uint64("chainID", deposit.OriginChainID).Msgf(
					"Failed fetching claim for deposit %s: %s", deposit.DepositID, err)
			}
			claims[i] = claim.Track(deposit, record, err, now)
		})
	}
	p.Wait()
	return claims
}
