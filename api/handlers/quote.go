package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-settlement/balance"
	"github.com/sprintertech/sprinter-settlement/cost"
)

type SnapshotFetcher interface {
	Snapshot(ctx context.Context, account common.Address) (*balance.Snapshot, error)
}

type CostResolver interface {
	Resolve(
		ctx context.Context,
		target cost.FundingTarget,
		snapshot *balance.Snapshot,
		restriction *cost.AccessRestriction,
		feeBps uint64,
	) (cost.Outcome, error)
}

type QuoteMetrics interface {
	TrackQuote(fulfilled bool)
}

type TokenTransfer struct {
	TokenAddress string  `json:"tokenAddress"`
	Amount       *BigInt `json:"amount,omitempty"`
}

type AccountAccess struct {
	ChainId      uint64 `json:"chainId"`
	TokenAddress string `json:"tokenAddress"`
}

type QuoteBody struct {
	TargetChainId     uint64          `json:"targetChainId"`
	TokenTransfers    []TokenTransfer `json:"tokenTransfers"`
	AccountAccessList []AccountAccess `json:"accountAccessList,omitempty"`
	ChainIds          []uint64        `json:"chainIds,omitempty"`
	TokenSymbols      []string        `json:"tokenSymbols,omitempty"`
}

type TokenReceived struct {
	TokenAddress common.Address `json:"tokenAddress"`
	HasFulfilled bool           `json:"hasFulfilled"`
	AmountSpent  *BigInt        `json:"amountSpent"`
	TargetAmount *BigInt        `json:"targetAmount"`
	Fee          *BigInt        `json:"fee"`
}

type TokenShortfall struct {
	TokenAddress  common.Address `json:"tokenAddress"`
	TokenSymbol   string         `json:"tokenSymbol"`
	TokenDecimals uint8          `json:"tokenDecimals"`
	TargetAmount  *BigInt        `json:"targetAmount"`
	AmountSpent   *BigInt        `json:"amountSpent"`
	Fee           *BigInt        `json:"fee"`
	Missing       *BigInt        `json:"missing"`
}

type TokenChainBalance struct {
	ChainId       uint64         `json:"chainId"`
	TokenAddress  common.Address `json:"tokenAddress"`
	TokenDecimals uint8          `json:"tokenDecimals"`
	Balance       *BigInt        `json:"balance"`
}

type UserTokenBalance struct {
	TokenName         string              `json:"tokenName"`
	TokenDecimals     uint8               `json:"tokenDecimals"`
	Balance           *BigInt             `json:"balance"`
	TokenChainBalance []TokenChainBalance `json:"tokenChainBalance"`
}

type QuoteResponse struct {
	HasFulfilledAll bool `json:"hasFulfilledAll"`

	TokensSpent    map[string]map[common.Address]*BigInt `json:"tokensSpent,omitempty"`
	TokensReceived []TokenReceived                       `json:"tokensReceived,omitempty"`

	TokenShortfalls  []TokenShortfall `json:"tokenShortfalls,omitempty"`
	TotalAmountInUSD string           `json:"totalAmountInUSD,omitempty"`

	Balances      []UserTokenBalance `json:"balances"`
	MissingChains []uint64           `json:"missingChains,omitempty"`
}

type QuoteHandler struct {
	snapshots SnapshotFetcher
	resolver  CostResolver
	tokens    balance.TokenRegistry
	metrics   QuoteMetrics
	feeBps    uint64
}

func NewQuoteHandler(
	snapshots SnapshotFetcher,
	resolver CostResolver,
	tokens balance.TokenRegistry,
	metrics QuoteMetrics,
	feeBps uint64,
) *QuoteHandler {
	return &QuoteHandler{
		snapshots: snapshots,
		resolver:  resolver,
		tokens:    tokens,
		metrics:   metrics,
		feeBps:    feeBps,
	}
}

// HandleRequest resolves whether the account balances can fund the requested
// token transfers. Insufficient balances are reported as a successful response
// with hasFulfilledAll set to false.
func (h *QuoteHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	account := vars["account"]
	if !common.IsHexAddress(account) {
		JSONError(w, fmt.Errorf("invalid account %s", account), http.StatusBadRequest)
		return
	}

	b := &QuoteBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	target, restriction, err := h.parse(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	snapshot, err := h.snapshots.Snapshot(r.Context(), common.HexToAddress(account))
	if err != nil && !balance.IsPartial(err) {
		JSONError(w, fmt.Errorf("failed fetching balances: %s", err), http.StatusInternalServerError)
		return
	}
	if err != nil {
		log.Warn().Str("account", account).Msgf("Resolving quote with partial balances: %s", err)
	}

	outcome, err := h.resolver.Resolve(r.Context(), target, snapshot, restriction, h.feeBps)
	if cost.IsInvalidTarget(err) {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	if err != nil {
		JSONError(w, fmt.Errorf("failed resolving quote: %s", err), http.StatusInternalServerError)
		return
	}

	resp := QuoteResponse{
		Balances:      userBalances(balance.Aggregate(snapshot, h.tokens)),
		MissingChains: snapshot.Missing(),
	}
	switch o := outcome.(type) {
	case cost.Covered:
		resp.HasFulfilledAll = true
		resp.TokensSpent = tokensSpent(o.TokensSpent)
		resp.TokensReceived = tokensReceived(o.TokensReceived)
	case cost.Shortfall:
		resp.HasFulfilledAll = false
		resp.TokenShortfalls = tokenShortfalls(o.Tokens)
		resp.TotalAmountInUSD = o.TotalUSD.Text('f', 2)
	default:
		JSONError(w, fmt.Errorf("unexpected outcome %T", outcome), http.StatusInternalServerError)
		return
	}

	if h.metrics != nil {
		h.metrics.TrackQuote(resp.HasFulfilledAll)
	}

	JSONResponse(w, resp)
}

func (h *QuoteHandler) parse(b *QuoteBody) (cost.FundingTarget, *cost.AccessRestriction, error) {
	if b.TargetChainId == 0 {
		return cost.FundingTarget{}, nil, errors.New("missing field 'targetChainId'")
	}
	if len(b.TokenTransfers) == 0 {
		return cost.FundingTarget{}, nil, errors.New("missing field 'tokenTransfers'")
	}

	target := cost.FundingTarget{
		ChainID: b.TargetChainId,
		Tokens:  make([]cost.TokenRequest, len(b.TokenTransfers)),
	}
	for i, t := range b.TokenTransfers {
		if !common.IsHexAddress(t.TokenAddress) {
			return cost.FundingTarget{}, nil, fmt.Errorf("invalid token address %s", t.TokenAddress)
		}

		var amount *big.Int
		if t.Amount != nil {
			amount = t.Amount.Int
		}
		target.Tokens[i] = cost.TokenRequest{
			Token:  common.HexToAddress(t.TokenAddress),
			Amount: amount,
		}
	}

	if len(b.AccountAccessList) == 0 && len(b.ChainIds) == 0 && len(b.TokenSymbols) == 0 {
		return target, nil, nil
	}

	restriction := &cost.AccessRestriction{
		ChainIDs: b.ChainIds,
		Symbols:  b.TokenSymbols,
	}
	if len(b.AccountAccessList) > 0 {
		restriction.ChainTokens = make(map[uint64][]common.Address)
		for _, a := range b.AccountAccessList {
			if !common.IsHexAddress(a.TokenAddress) {
				return cost.FundingTarget{}, nil, fmt.Errorf("invalid access list token %s", a.TokenAddress)
			}
			restriction.ChainTokens[a.ChainId] = append(restriction.ChainTokens[a.ChainId], common.HexToAddress(a.TokenAddress))
		}
	}
	return target, restriction, nil
}

func tokensSpent(spent map[uint64]map[common.Address]*big.Int) map[string]map[common.Address]*BigInt {
	resp := make(map[string]map[common.Address]*BigInt, len(spent))
	for chainID, tokens := range spent {
		chainSpent := make(map[common.Address]*BigInt, len(tokens))
		for token, amount := range tokens {
			chainSpent[token] = &BigInt{amount}
		}
		resp[strconv.FormatUint(chainID, 10)] = chainSpent
	}
	return resp
}

func tokensReceived(receipts []cost.TokenReceipt) []TokenReceived {
	resp := make([]TokenReceived, len(receipts))
	for i, r := range receipts {
		resp[i] = TokenReceived{
			TokenAddress: r.Token,
			HasFulfilled: r.HasFulfilled,
			AmountSpent:  &BigInt{r.AmountSpent},
			TargetAmount: &BigInt{r.TargetAmount},
			Fee:          &BigInt{r.Fee},
		}
	}
	return resp
}

func tokenShortfalls(shortfalls []cost.TokenShortfall) []TokenShortfall {
	resp := make([]TokenShortfall, len(shortfalls))
	for i, s := range shortfalls {
		resp[i] = TokenShortfall{
			TokenAddress:  s.Token,
			TokenSymbol:   s.Symbol,
			TokenDecimals: s.Decimals,
			TargetAmount:  &BigInt{s.TargetAmount},
			AmountSpent:   &BigInt{s.AmountSpent},
			Fee:           &BigInt{s.Fee},
			Missing:       &BigInt{s.Missing},
		}
	}
	return resp
}

func userBalances(balances []balance.TokenBalance) []UserTokenBalance {
	resp := make([]UserTokenBalance, len(balances))
	for i, b := range balances {
		chains := make([]TokenChainBalance, len(b.Chains))
		for j, c := range b.Chains {
			chains[j] = TokenChainBalance{
				ChainId:       c.ChainID,
				TokenAddress:  c.Token,
				TokenDecimals: c.Decimals,
				Balance:       &BigInt{c.Balance},
			}
		}
		resp[i] = UserTokenBalance{
			TokenName:         b.Symbol,
			TokenDecimals:     b.Decimals,
			Balance:           &BigInt{b.Balance},
			TokenChainBalance: chains,
		}
	}
	return resp
}
