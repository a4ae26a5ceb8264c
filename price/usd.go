package price

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-settlement/config"
)

type PriceAPI interface {
	TokenPrice(ctx context.Context, symbol string) (float64, error)
}

type TokenRegistry interface {
	ConfigByAddress(chainID uint64, address common.Address) (string, config.TokenConfig, error)
}

type PriceCache interface {
	Get(symbol string) (float64, bool)
	Set(symbol string, price float64)
}

// USDValuer values token amounts with the latest USD price of the token symbol
type USDValuer struct {
	api    PriceAPI
	tokens TokenRegistry
	prices PriceCache
}

func NewUSDValuer(api PriceAPI, tokens TokenRegistry, prices PriceCache) *USDValuer {
	return &USDValuer{
		api:    api,
		tokens: tokens,
		prices: prices,
	}
}

func (v *USDValuer) USDValue(ctx context.Context, token common.Address, chainID uint64, amount *big.Int) (*big.Float, error) {
	symbol, tc, err := v.tokens.ConfigByAddress(chainID, token)
	if err != nil {
		return nil, err
	}

	price, err := v.price(ctx, strings.ToUpper(symbol))
	if err != nil {
		return nil, fmt.Errorf("failed fetching %s price: %w", symbol, err)
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(tc.Decimals)), nil)
	value := new(big.Float).SetInt(amount)
	value.Quo(value, new(big.Float).SetInt(unit))
	return value.Mul(value, big.NewFloat(price)), nil
}

func (v *USDValuer) price(ctx context.Context, symbol string) (float64, error) {
	if price, ok := v.prices.Get(symbol); ok {
		return price, nil
	}

	price, err := v.api.TokenPrice(ctx, symbol)
	if err != nil {
		return 0, err
	}

	log.Debug().Msgf("Fetched %s price: %f", symbol, price)
	v.prices.Set(symbol, price)
	return price, nil
}
