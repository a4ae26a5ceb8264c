package cost

import (
	"context"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-settlement/balance"
	"github.com/sprintertech/sprinter-settlement/config"
)

const BPS_DENOMINATOR = 10_000

type TokenRegistry interface {
	ConfigByAddress(chainID uint64, address common.Address) (string, config.TokenConfig, error)
}

type PriceOracle interface {
	// USDValue converts a token amount in base units into its USD value
	USDValue(ctx context.Context, token common.Address, chainID uint64, amount *big.Int) (*big.Float, error)
}

type allocation struct {
	request  TokenRequest
	symbol   string
	decimals uint8

	target    *big.Int
	spent     *big.Int
	fee       *big.Int
	fulfilled bool
}

type Resolver struct {
	tokens TokenRegistry
	oracle PriceOracle
}

func NewResolver(tokens TokenRegistry, oracle PriceOracle) *Resolver {
	return &Resolver{
		tokens: tokens,
		oracle: oracle,
	}
}

// Resolve decides whether the snapshot can fund the target. Requests are
// funded in the order given, each one from the largest remaining same-symbol
// balances first. Balances are compared in the requested token's decimals. The sweep request, if any, is funded last from everything
// left. The snapshot itself is never modified.
func (r *Resolver) Resolve(
	ctx context.Context,
	target FundingTarget,
	snapshot *balance.Snapshot,
	restriction *AccessRestriction,
	feeBps uint64,
) (Outcome, error) {
	allocations, err := r.validate(target, restriction, feeBps)
	if err != nil {
		return nil, err
	}

	working, holdings := r.eligibleBalances(snapshot, restriction)
	spent := make(map[uint64]map[common.Address]*big.Int)

	var sweep *allocation
	for _, a := range allocations {
		if a.request.IsSweep() {
			sweep = a
			continue
		}

		r.allocate(a, working, holdings, spent, feeBps)
	}
	if sweep != nil {
		r.sweep(sweep, working, holdings, spent, feeBps)
	}

	shortfalls := make([]*allocation, 0)
	for _, a := range allocations {
		if !a.fulfilled {
			shortfalls = append(shortfalls, a)
		}
	}

	if len(shortfalls) > 0 {
		return r.shortfall(ctx, target.ChainID, shortfalls)
	}

	received := make([]TokenReceipt, len(allocations))
	for i, a := range allocations {
		received[i] = TokenReceipt{
			Token:        a.request.Token,
			HasFulfilled: true,
			AmountSpent:  a.spent,
			TargetAmount: a.target,
			Fee:          a.fee,
		}
	}
	return Covered{
		TokensSpent:    spent,
		TokensReceived: received,
	}, nil
}

func (r *Resolver) validate(target FundingTarget, restriction *AccessRestriction, feeBps uint64) ([]*allocation, error) {
	if restriction != nil && restriction.mapped() && restriction.unmapped() {
		return nil, invalidTarget("access restriction sets both chain tokens and chain/symbol sets")
	}
	if feeBps > BPS_DENOMINATOR {
		return nil, invalidTarget("fee %d bps exceeds %d", feeBps, BPS_DENOMINATOR)
	}
	if len(target.Tokens) == 0 {
		return nil, invalidTarget("no tokens requested")
	}

	sweeps := 0
	allocations := make([]*allocation, len(target.Tokens))
	for i, req := range target.Tokens {
		if req.IsSweep() {
			sweeps++
		} else if req.Amount.Sign() < 0 {
			return nil, invalidTarget("negative amount %s for token %s", req.Amount, req.Token.Hex())
		}

		symbol, c, err := r.tokens.ConfigByAddress(target.ChainID, req.Token)
		if err != nil {
			return nil, invalidTarget("token %s not supported on chain %d", req.Token.Hex(), target.ChainID)
		}

		allocations[i] = &allocation{
			request:  req,
			symbol:   symbol,
			decimals: c.Decimals,
			spent:    big.NewInt(0),
		}
	}
	if sweeps > 1 {
		return nil, invalidTarget("%d tokens without amount, at most one allowed", sweeps)
	}

	return allocations, nil
}

type holding struct {
	symbol   string
	decimals uint8
}

// eligibleBalances copies snapshot balances of known tokens allowed by the restriction
func (r *Resolver) eligibleBalances(
	snapshot *balance.Snapshot,
	restriction *AccessRestriction,
) (map[balance.Key]*big.Int, map[balance.Key]holding) {
	working := make(map[balance.Key]*big.Int)
	holdings := make(map[balance.Key]holding)
	for _, e := range snapshot.Entries() {
		symbol, c, err := r.tokens.ConfigByAddress(e.ChainID, e.Token)
		if err != nil {
			continue
		}
		if !allowed(restriction, e.Key, symbol) {
			continue
		}

		working[e.Key] = e.Amount
		holdings[e.Key] = holding{
			symbol:   symbol,
			decimals: c.Decimals,
		}
	}
	return working, holdings
}

func allowed(restriction *AccessRestriction, key balance.Key, symbol string) bool {
	if restriction == nil {
		return true
	}

	if restriction.mapped() {
		return slices.Contains(restriction.ChainTokens[key.ChainID], key.Token)
	}

	if len(restriction.ChainIDs) > 0 && !slices.Contains(restriction.ChainIDs, key.ChainID) {
		return false
	}
	if len(restriction.Symbols) > 0 && !slices.ContainsFunc(restriction.Symbols, func(s string) bool {
		return strings.EqualFold(s, symbol)
	}) {
		return false
	}
	return true
}

// available is the source balance expressed in the target denomination,
// truncated so that it never exceeds the source value
func available(working map[balance.Key]*big.Int, holdings map[balance.Key]holding, key balance.Key, decimals uint8) *big.Int {
	return balance.ScaleDecimals(working[key], holdings[key].decimals, decimals, false)
}

// sources returns keys holding the symbol with a non-zero amount in the target
// denomination, ordered by descending amount, ties broken by ascending chain ID
// and token address
func sources(
	working map[balance.Key]*big.Int,
	holdings map[balance.Key]holding,
	symbol string,
	decimals uint8,
) []balance.Key {
	amounts := make(map[balance.Key]*big.Int)
	for k := range working {
		if holdings[k].symbol != symbol {
			continue
		}
		amount := available(working, holdings, k, decimals)
		if amount.Sign() > 0 {
			amounts[k] = amount
		}
	}

	keys := slices.Collect(maps.Keys(amounts))
	slices.SortFunc(keys, func(a, b balance.Key) int {
		if c := amounts[b].Cmp(amounts[a]); c != 0 {
			return c
		}
		return a.Compare(b)
	})
	return keys
}

// take moves amount, given in the target denomination, out of the source.
// The source is debited in its own denomination rounded up.
func take(
	a *allocation,
	working map[balance.Key]*big.Int,
	holdings map[balance.Key]holding,
	spent map[uint64]map[common.Address]*big.Int,
	key balance.Key,
	amount *big.Int,
) {
	debit(working, spent, key, balance.ScaleDecimals(amount, a.decimals, holdings[key].decimals, true))
	a.spent.Add(a.spent, amount)
}

func (r *Resolver) allocate(
	a *allocation,
	working map[balance.Key]*big.Int,
	holdings map[balance.Key]holding,
	spent map[uint64]map[common.Address]*big.Int,
	feeBps uint64,
) {
	fee := Fee(a.request.Amount, feeBps)
	required := new(big.Int).Add(a.request.Amount, fee)

	for _, k := range sources(working, holdings, a.symbol, a.decimals) {
		if a.spent.Cmp(required) >= 0 {
			break
		}

		amount := new(big.Int).Sub(required, a.spent)
		if left := available(working, holdings, k, a.decimals); left.Cmp(amount) < 0 {
			amount = left
		}
		take(a, working, holdings, spent, k, amount)
	}

	a.target = new(big.Int).Set(a.request.Amount)
	if a.spent.Cmp(required) >= 0 {
		a.fee = fee
		a.fulfilled = true
		return
	}

	a.fee = Fee(a.spent, feeBps)
	a.fulfilled = false
}

func (r *Resolver) sweep(
	a *allocation,
	working map[balance.Key]*big.Int,
	holdings map[balance.Key]holding,
	spent map[uint64]map[common.Address]*big.Int,
	feeBps uint64,
) {
	for _, k := range sources(working, holdings, a.symbol, a.decimals) {
		take(a, working, holdings, spent, k, available(working, holdings, k, a.decimals))
	}

	if a.spent.Sign() == 0 {
		log.Warn().Msgf("No remaining %s balance to sweep into token %s", a.symbol, a.request.Token.Hex())
	}

	a.fee = Fee(a.spent, feeBps)
	a.target = new(big.Int).Sub(a.spent, a.fee)
	a.fulfilled = true
}

func (r *Resolver) shortfall(ctx context.Context, chainID uint64, allocations []*allocation) (Outcome, error) {
	total := new(big.Float)
	tokens := make([]TokenShortfall, len(allocations))
	for i, a := range allocations {
		missing := new(big.Int).Add(a.target, a.fee)
		missing.Sub(missing, a.spent)

		value, err := r.oracle.USDValue(ctx, a.request.Token, chainID, missing)
		if err != nil {
			return nil, fmt.Errorf("failed valuing %s shortfall: %w", a.symbol, err)
		}
		total.Add(total, value)

		tokens[i] = TokenShortfall{
			Token:        a.request.Token,
			Symbol:       a.symbol,
			Decimals:     a.decimals,
			TargetAmount: a.target,
			AmountSpent:  a.spent,
			Fee:          a.fee,
			Missing:      missing,
		}
	}

	return Shortfall{
		Tokens:   tokens,
		TotalUSD: total,
	}, nil
}

func debit(
	working map[balance.Key]*big.Int,
	spent map[uint64]map[common.Address]*big.Int,
	key balance.Key,
	amount *big.Int,
) {
	working[key] = new(big.Int).Sub(working[key], amount)

	chainSpent, ok := spent[key.ChainID]
	if !ok {
		chainSpent = make(map[common.Address]*big.Int)
		spent[key.ChainID] = chainSpent
	}
	tokenSpent, ok := chainSpent[key.Token]
	if !ok {
		tokenSpent = big.NewInt(0)
		chainSpent[key.Token] = tokenSpent
	}
	tokenSpent.Add(tokenSpent, amount)
}

// Fee returns the fee charged on the amount rounded up to the next base unit
func Fee(amount *big.Int, feeBps uint64) *big.Int {
	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(feeBps))
	fee.Add(fee, big.NewInt(BPS_DENOMINATOR-1))
	return fee.Quo(fee, big.NewInt(BPS_DENOMINATOR))
}
