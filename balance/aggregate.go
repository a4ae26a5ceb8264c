package balance

import (
	"math/big"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-settlement/config"
)

type TokenRegistry interface {
	ConfigByAddress(chainID uint64, address common.Address) (string, config.TokenConfig, error)
}

type ChainBalance struct {
	ChainID  uint64
	Token    common.Address
	Decimals uint8
	Balance  *big.Int
}

// TokenBalance is the balance of a single token symbol summed over all chains.
// Balance is expressed in the largest decimals the symbol has on any chain.
type TokenBalance struct {
	Symbol   string
	Decimals uint8
	Balance  *big.Int
	Chains   []ChainBalance
}

// Aggregate groups snapshot entries by token symbol. Entries of tokens unknown
// to the registry are skipped. Results are sorted by symbol.
func Aggregate(s *Snapshot, tokens TokenRegistry) []TokenBalance {
	bySymbol := make(map[string]*TokenBalance)
	for _, e := range s.entries {
		symbol, c, err := tokens.ConfigByAddress(e.ChainID, e.Token)
		if err != nil {
			continue
		}

		tb, ok := bySymbol[symbol]
		if !ok {
			tb = &TokenBalance{
				Symbol: symbol,
			}
			bySymbol[symbol] = tb
		}

		tb.Decimals = max(tb.Decimals, c.Decimals)
		tb.Chains = append(tb.Chains, ChainBalance{
			ChainID:  e.ChainID,
			Token:    e.Token,
			Decimals: c.Decimals,
			Balance:  new(big.Int).Set(e.Amount),
		})
	}

	for _, tb := range bySymbol {
		tb.Balance = big.NewInt(0)
		for _, c := range tb.Chains {
			tb.Balance.Add(tb.Balance, ScaleDecimals(c.Balance, c.Decimals, tb.Decimals, false))
		}
	}

	balances := make([]TokenBalance, 0, len(bySymbol))
	for _, tb := range bySymbol {
		balances = append(balances, *tb)
	}
	slices.SortFunc(balances, func(a, b TokenBalance) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return balances
}
