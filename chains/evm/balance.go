package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-settlement/chains/evm/calls/consts"
	"github.com/sprintertech/sprinter-settlement/config"
)

type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// BalanceProvider reads configured token balances of an account from EVM chains
type BalanceProvider struct {
	clients    map[uint64]ContractCaller
	tokenStore *config.TokenStore
}

func NewBalanceProvider(clients map[uint64]ContractCaller, tokenStore *config.TokenStore) *BalanceProvider {
	return &BalanceProvider{
		clients:    clients,
		tokenStore: tokenStore,
	}
}

// Balances returns latest balances of all configured tokens on the chain.
// The zero token address is read as the native balance.
func (p *BalanceProvider) Balances(ctx context.Context, account common.Address, chainID uint64) (map[common.Address]*big.Int, error) {
	client, ok := p.clients[chainID]
	if !ok {
		return nil, fmt.Errorf("no client for chain %d", chainID)
	}

	tokens, ok := p.tokenStore.Tokens[chainID]
	if !ok {
		return nil, fmt.Errorf("no tokens for chain %d", chainID)
	}

	balances := make(map[common.Address]*big.Int, len(tokens))
	for symbol, t := range tokens {
		var amount *big.Int
		var err error
		if t.Address == (common.Address{}) {
			amount, err = client.BalanceAt(ctx, account, nil)
		} else {
			amount, err = p.tokenBalance(ctx, client, t.Address, account)
		}
		if err != nil {
			return nil, fmt.Errorf("failed fetching %s balance on chain %d: %w", symbol, chainID, err)
		}

		balances[t.Address] = amount
	}

	return balances, nil
}

func (p *BalanceProvider) tokenBalance(
	ctx context.Context,
	client ContractCaller,
	token common.Address,
	account common.Address,
) (*big.Int, error) {
	input, err := consts.ERC20ABI.Pack("balanceOf", account)
	if err != nil {
		return nil, err
	}

	output, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &token,
		Data: input,
	}, nil)
	if err != nil {
		return nil, err
	}

	res, err := consts.ERC20ABI.Unpack("balanceOf", output)
	if err != nil {
		return nil, err
	}

	amount, ok := res[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf output %v", res[0])
	}
	return amount, nil
}
