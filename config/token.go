package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type TokenConfig struct {
	Address  common.Address `mapstructure:"address" json:"address"`
	Decimals uint8          `mapstructure:"decimals" json:"decimals"`
}

// TokenStore holds token configurations keyed by chain ID and lowercase symbol
type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		Tokens: make(map[uint64]map[string]TokenConfig),
	}
}

// AddChainTokens registers tokens for a chain, overriding already configured symbols
func (s *TokenStore) AddChainTokens(chainID uint64, tokens map[string]TokenConfig) {
	if s.Tokens == nil {
		s.Tokens = make(map[uint64]map[string]TokenConfig)
	}

	chainTokens, ok := s.Tokens[chainID]
	if !ok {
		chainTokens = make(map[string]TokenConfig)
		s.Tokens[chainID] = chainTokens
	}

	for symbol, c := range tokens {
		chainTokens[strings.ToLower(symbol)] = c
	}
}

func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[strings.ToLower(symbol)]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// Chains returns configured chain IDs in ascending order
func (s *TokenStore) Chains() []uint64 {
	chains := make([]uint64, 0, len(s.Tokens))
	for chainID := range s.Tokens {
		chains = append(chains, chainID)
	}
	slices.Sort(chains)
	return chains
}
