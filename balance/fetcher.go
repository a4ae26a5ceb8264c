package balance

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

type Provider interface {
	// Balances returns token balances of the account on a single chain
	Balances(ctx context.Context, account common.Address, chainID uint64) (map[common.Address]*big.Int, error)
}

type Metrics interface {
	TrackChainFailure(chainID uint64)
}

// PartialDataError lists chains whose balance query failed
type PartialDataError struct {
	Errs map[uint64]error
}

func (e *PartialDataError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, chainID := range e.Chains() {
		msgs = append(msgs, fmt.Sprintf("chain %d: %s", chainID, e.Errs[chainID]))
	}
	return fmt.Sprintf("partial balance data: %s", strings.Join(msgs, "; "))
}

func (e *PartialDataError) Chains() []uint64 {
	return slices.Sorted(maps.Keys(e.Errs))
}

func (e *PartialDataError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errs))
	for _, chainID := range e.Chains() {
		errs = append(errs, e.Errs[chainID])
	}
	return errs
}

type chainBalances struct {
	chainID  uint64
	balances map[common.Address]*big.Int
	err      error
}

type Fetcher struct {
	provider Provider
	chains   []uint64
	timeout  time.Duration
	metrics  Metrics
}

func NewFetcher(provider Provider, chains []uint64, timeout time.Duration, metrics Metrics) *Fetcher {
	return &Fetcher{
		provider: provider,
		chains:   chains,
		timeout:  timeout,
		metrics:  metrics,
	}
}

// Snapshot queries all chains concurrently and merges the results into a single snapshot.
// If some of the chains failed the snapshot marks them as missing and is returned
// together with a *PartialDataError.
func (f *Fetcher) Snapshot(ctx context.Context, account common.Address) (*Snapshot, error) {
	p := pool.NewWithResults[chainBalances]().WithContext(ctx)
	for _, chainID := range f.chains {
		p.Go(func(ctx context.Context) (chainBalances, error) {
			if f.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, f.timeout)
				defer cancel()
			}

			balances, err := f.provider.Balances(ctx, account, chainID)
			return chainBalances{
				chainID:  chainID,
				balances: balances,
				err:      err,
			}, nil
		})
	}
	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	balances := make(map[Key]*big.Int)
	failed := make(map[uint64]error)
	for _, r := range results {
		if r.err != nil {
			log.Warn().Uint64("chainID", r.chainID).Msgf("Failed fetching balances for %s: %s", account.Hex(), r.err)
			if f.metrics != nil {
				f.metrics.TrackChainFailure(r.chainID)
			}
			failed[r.chainID] = r.err
			continue
		}

		for token, amount := range r.balances {
			balances[Key{ChainID: r.chainID, Token: token}] = amount
		}
	}

	snapshot, err := NewSnapshot(balances, slices.Collect(maps.Keys(failed))...)
	if err != nil {
		return nil, err
	}

	if len(failed) > 0 {
		return snapshot, &PartialDataError{Errs: failed}
	}
	return snapshot, nil
}

// IsPartial reports whether the error only marks missing chains
func IsPartial(err error) bool {
	var partialErr *PartialDataError
	return errors.As(err, &partialErr)
}
