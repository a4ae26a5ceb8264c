// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"

	solverConfig "github.com/sprintertech/solver-config/go/config"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	// symbol -> token config, zero address marks the native token
	Tokens map[string]config.TokenConfig
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Tokens                   map[string]RawTokenConfig `mapstructure:"tokens"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	for symbol, t := range c.Tokens {
		if !common.IsHexAddress(t.Address) {
			return fmt.Errorf("invalid address %s for token %s on chain %d", t.Address, symbol, *c.Id)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config. Tokens from the solver config take precedence over
// tokens configured inline.
func NewEVMConfig(chainConfig map[string]interface{}, solverConfig solverConfig.SolverConfig) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	for symbol, t := range c.Tokens {
		err = defaults.Set(&t)
		if err != nil {
			return nil, err
		}
		c.Tokens[symbol] = t
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	id := fmt.Sprintf("eip155:%d", *c.Id)
	sc, ok := solverConfig.Chains[id]
	if ok {
		for s, c := range sc.Tokens {
			tokens[s] = config.TokenConfig{
				Address:  common.HexToAddress(c.Address),
				Decimals: uint8(c.Decimals),
			}
		}
	}

	inlineTokens := make(map[string]config.TokenConfig)
	for s, t := range c.Tokens {
		inlineTokens[s] = config.TokenConfig{
			Address:  common.HexToAddress(t.Address),
			Decimals: t.Decimals,
		}
	}
	err = mergo.Merge(&tokens, inlineTokens)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens configured for chain %d", *c.Id)
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Tokens:             tokens,
	}, nil
}
