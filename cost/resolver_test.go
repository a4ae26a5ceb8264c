package cost_test

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-settlement/balance"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/cost"
	mock_cost "github.com/sprintertech/sprinter-settlement/cost/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	ethUsdc      = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	optimismUsdc = common.HexToAddress("0x0b2C639c533813f4Aa9D7837cAf62653d097Ff85")
	baseUsdc     = common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	ethWeth      = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	optimismWeth = common.HexToAddress("0x4200000000000000000000000000000000000006")
	baseWeth     = common.HexToAddress("0x4200000000000000000000000000000000000006")
	bscUsdc      = common.HexToAddress("0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d")
)

func usdc(amount float64) *big.Int {
	return big.NewInt(int64(math.Round(amount * 1e6)))
}

// bscUsdc amounts use 18 decimals
func usdc18(amount float64) *big.Int {
	return new(big.Int).Mul(usdc(amount), big.NewInt(1e12))
}

type ResolverTestSuite struct {
	suite.Suite

	resolver   *cost.Resolver
	mockOracle *mock_cost.MockPriceOracle
	tokens     *config.TokenStore
}

func TestRunResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockOracle = mock_cost.NewMockPriceOracle(ctrl)

	s.tokens = config.NewTokenStore()
	s.tokens.AddChainTokens(1, map[string]config.TokenConfig{
		"usdc": {Address: ethUsdc, Decimals: 6},
		"weth": {Address: ethWeth, Decimals: 18},
	})
	s.tokens.AddChainTokens(10, map[string]config.TokenConfig{
		"usdc": {Address: optimismUsdc, Decimals: 6},
		"weth": {Address: optimismWeth, Decimals: 18},
	})
	s.tokens.AddChainTokens(8453, map[string]config.TokenConfig{
		"usdc": {Address: baseUsdc, Decimals: 6},
		"weth": {Address: baseWeth, Decimals: 18},
	})
	s.tokens.AddChainTokens(56, map[string]config.TokenConfig{
		"usdc": {Address: bscUsdc, Decimals: 18},
	})

	s.resolver = cost.NewResolver(s.tokens, s.mockOracle)
}

func (s *ResolverTestSuite) snapshot(balances map[balance.Key]*big.Int) *balance.Snapshot {
	snapshot, err := balance.NewSnapshot(balances)
	s.Nil(err)
	return snapshot
}

func (s *ResolverTestSuite) Test_Resolve_MultipleSweepTokens() {
	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc},
			{Token: optimismWeth},
		},
	}, s.snapshot(nil), nil, 30)

	s.True(cost.IsInvalidTarget(err))
}

func (s *ResolverTestSuite) Test_Resolve_NegativeAmount() {
	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: big.NewInt(-1)},
		},
	}, s.snapshot(nil), nil, 30)

	s.True(cost.IsInvalidTarget(err))
}

func (s *ResolverTestSuite) Test_Resolve_ConflictingRestriction() {
	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(1)},
		},
	}, s.snapshot(nil), &cost.AccessRestriction{
		ChainTokens: map[uint64][]common.Address{1: {ethUsdc}},
		ChainIDs:    []uint64{1},
	}, 30)

	s.True(cost.IsInvalidTarget(err))
}

func (s *ResolverTestSuite) Test_Resolve_UnsupportedToken() {
	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: ethUsdc, Amount: usdc(1)},
		},
	}, s.snapshot(nil), nil, 30)

	s.True(cost.IsInvalidTarget(err))
}

func (s *ResolverTestSuite) Test_Resolve_EmptyTarget() {
	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{ChainID: 10}, s.snapshot(nil), nil, 30)

	s.True(cost.IsInvalidTarget(err))
}

func (s *ResolverTestSuite) Test_Resolve_FeeTooLarge() {
	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(1)},
		},
	}, s.snapshot(nil), nil, 10_001)

	s.True(cost.IsInvalidTarget(err))
}

func (s *ResolverTestSuite) Test_Resolve_CoveredAcrossChains() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(100)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:     usdc(60),
		{ChainID: 8453, Token: baseUsdc}: usdc(50),
	}), nil, 30)

	s.Nil(err)
	s.True(outcome.HasFulfilledAll())
	covered := outcome.(cost.Covered)
	s.Len(covered.TokensSpent, 2)
	s.Equal(usdc(60).String(), covered.TokensSpent[1][ethUsdc].String())
	s.Equal(usdc(40.3).String(), covered.TokensSpent[8453][baseUsdc].String())
	s.Len(covered.TokensReceived, 1)
	s.True(covered.TokensReceived[0].HasFulfilled)
	s.Equal(optimismUsdc, covered.TokensReceived[0].Token)
	s.Equal(usdc(100.3).String(), covered.TokensReceived[0].AmountSpent.String())
	s.Equal(usdc(100).String(), covered.TokensReceived[0].TargetAmount.String())
	s.Equal(usdc(0.3).String(), covered.TokensReceived[0].Fee.String())
}

func (s *ResolverTestSuite) Test_Resolve_Shortfall() {
	s.mockOracle.EXPECT().USDValue(gomock.Any(), optimismUsdc, uint64(10), gomock.Any()).DoAndReturn(
		func(ctx context.Context, token common.Address, chainID uint64, amount *big.Int) (*big.Float, error) {
			s.Equal(usdc(60.12).String(), amount.String())
			return big.NewFloat(60.12), nil
		})

	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(100)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}: usdc(40),
	}), nil, 30)

	s.Nil(err)
	s.False(outcome.HasFulfilledAll())
	shortfall := outcome.(cost.Shortfall)
	s.Len(shortfall.Tokens, 1)
	s.Equal("usdc", shortfall.Tokens[0].Symbol)
	s.Equal(uint8(6), shortfall.Tokens[0].Decimals)
	s.Equal(usdc(100).String(), shortfall.Tokens[0].TargetAmount.String())
	s.Equal(usdc(40).String(), shortfall.Tokens[0].AmountSpent.String())
	s.Equal(usdc(0.12).String(), shortfall.Tokens[0].Fee.String())
	s.Equal(usdc(60.12).String(), shortfall.Tokens[0].Missing.String())
	total, _ := shortfall.TotalUSD.Float64()
	s.InDelta(60.12, total, 1e-9)
}

func (s *ResolverTestSuite) Test_Resolve_ShortfallReportsEveryToken() {
	s.mockOracle.EXPECT().USDValue(gomock.Any(), optimismUsdc, uint64(10), gomock.Any()).Return(big.NewFloat(10), nil)
	s.mockOracle.EXPECT().USDValue(gomock.Any(), optimismWeth, uint64(10), gomock.Any()).Return(big.NewFloat(2500), nil)

	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(100)},
			{Token: optimismWeth, Amount: big.NewInt(1e18)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}: usdc(90),
	}), nil, 0)

	s.Nil(err)
	shortfall := outcome.(cost.Shortfall)
	s.Len(shortfall.Tokens, 2)
	s.Equal(optimismUsdc, shortfall.Tokens[0].Token)
	s.Equal(optimismWeth, shortfall.Tokens[1].Token)
	s.Equal("0", shortfall.Tokens[1].AmountSpent.String())
	total, _ := shortfall.TotalUSD.Float64()
	s.Equal(float64(2510), total)
}

func (s *ResolverTestSuite) Test_Resolve_ShortfallOmitsCoveredTokens() {
	s.mockOracle.EXPECT().USDValue(gomock.Any(), optimismWeth, uint64(10), gomock.Any()).Return(big.NewFloat(2500), nil)

	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(10)},
			{Token: optimismWeth, Amount: big.NewInt(1e18)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}: usdc(90),
	}), nil, 30)

	s.Nil(err)
	shortfall := outcome.(cost.Shortfall)
	s.Len(shortfall.Tokens, 1)
	s.Equal("weth", shortfall.Tokens[0].Symbol)
}

func (s *ResolverTestSuite) Test_Resolve_OracleFailure() {
	s.mockOracle.EXPECT().USDValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("price unavailable"))

	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(100)},
		},
	}, s.snapshot(nil), nil, 30)

	s.NotNil(err)
	s.False(cost.IsInvalidTarget(err))
}

func (s *ResolverTestSuite) Test_Resolve_RequestOrderDeterminesPrecedence() {
	s.mockOracle.EXPECT().USDValue(gomock.Any(), optimismUsdc, uint64(10), gomock.Any()).Return(big.NewFloat(20), nil)

	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(80)},
			{Token: optimismUsdc, Amount: usdc(40)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:     usdc(60),
		{ChainID: 8453, Token: baseUsdc}: usdc(40),
	}), nil, 0)

	s.Nil(err)
	shortfall := outcome.(cost.Shortfall)
	s.Len(shortfall.Tokens, 1)
	s.Equal(usdc(40).String(), shortfall.Tokens[0].TargetAmount.String())
	s.Equal(usdc(20).String(), shortfall.Tokens[0].AmountSpent.String())
}

func (s *ResolverTestSuite) Test_Resolve_EqualBalancesSpendLowerChainFirst() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(30)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 8453, Token: baseUsdc}: usdc(50),
		{ChainID: 1, Token: ethUsdc}:     usdc(50),
	}), nil, 0)

	s.Nil(err)
	covered := outcome.(cost.Covered)
	s.Len(covered.TokensSpent, 1)
	s.Equal(usdc(30).String(), covered.TokensSpent[1][ethUsdc].String())
}

func (s *ResolverTestSuite) Test_Resolve_SweepAfterFixedAmounts() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc},
			{Token: optimismUsdc, Amount: usdc(50)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:     usdc(60),
		{ChainID: 8453, Token: baseUsdc}: usdc(50.15),
	}), nil, 30)

	s.Nil(err)
	covered := outcome.(cost.Covered)
	s.Len(covered.TokensReceived, 2)

	fixed := covered.TokensReceived[1]
	s.Equal(usdc(50).String(), fixed.TargetAmount.String())
	s.Equal(usdc(50.15).String(), fixed.AmountSpent.String())

	sweep := covered.TokensReceived[0]
	s.True(sweep.HasFulfilled)
	s.Equal(usdc(60).String(), sweep.AmountSpent.String())
	s.Equal(usdc(0.18).String(), sweep.Fee.String())
	s.Equal(usdc(59.82).String(), sweep.TargetAmount.String())

	s.Equal(usdc(60).String(), covered.TokensSpent[1][ethUsdc].String())
	s.Equal(usdc(50.15).String(), covered.TokensSpent[8453][baseUsdc].String())
}

func (s *ResolverTestSuite) Test_Resolve_MappedRestriction() {
	s.mockOracle.EXPECT().USDValue(gomock.Any(), optimismUsdc, uint64(10), gomock.Any()).Return(big.NewFloat(50.3), nil)

	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(100)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:     usdc(60),
		{ChainID: 8453, Token: baseUsdc}: usdc(50),
	}), &cost.AccessRestriction{
		ChainTokens: map[uint64][]common.Address{
			8453: {baseUsdc},
		},
	}, 30)

	s.Nil(err)
	shortfall := outcome.(cost.Shortfall)
	s.Equal(usdc(50).String(), shortfall.Tokens[0].AmountSpent.String())
}

func (s *ResolverTestSuite) Test_Resolve_UnmappedRestriction() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(40)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:     usdc(60),
		{ChainID: 8453, Token: baseUsdc}: usdc(50),
	}), &cost.AccessRestriction{
		ChainIDs: []uint64{8453},
		Symbols:  []string{"USDC"},
	}, 0)

	s.Nil(err)
	covered := outcome.(cost.Covered)
	s.Len(covered.TokensSpent, 1)
	s.Equal(usdc(40).String(), covered.TokensSpent[8453][baseUsdc].String())
}

func (s *ResolverTestSuite) Test_Resolve_DoesNotMutateSnapshot() {
	key := balance.Key{ChainID: 1, Token: ethUsdc}
	snapshot := s.snapshot(map[balance.Key]*big.Int{
		key: usdc(60),
	})

	_, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(50)},
		},
	}, snapshot, nil, 30)

	s.Nil(err)
	s.Equal(usdc(60).String(), snapshot.Amount(key).String())
}

func (s *ResolverTestSuite) Test_Resolve_CoveredSpendsAtLeastTargetAndFee() {
	r := rand.New(rand.NewSource(42))
	s.mockOracle.EXPECT().USDValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewFloat(1), nil).AnyTimes()

	for i := 0; i < 200; i++ {
		balances := map[balance.Key]*big.Int{
			{ChainID: 1, Token: ethUsdc}:        big.NewInt(r.Int63n(1_000_000)),
			{ChainID: 10, Token: optimismUsdc}: big.NewInt(r.Int63n(1_000_000)),
			{ChainID: 8453, Token: baseUsdc}:    big.NewInt(r.Int63n(1_000_000)),
			{ChainID: 1, Token: ethWeth}:        big.NewInt(r.Int63n(1_000_000)),
		}
		requests := []cost.TokenRequest{
			{Token: optimismUsdc, Amount: big.NewInt(r.Int63n(1_500_000))},
			{Token: optimismWeth, Amount: big.NewInt(r.Int63n(1_000_000))},
		}
		if r.Intn(2) == 0 {
			requests = append(requests, cost.TokenRequest{Token: optimismUsdc})
		}

		outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
			ChainID: 10,
			Tokens:  requests,
		}, s.snapshot(balances), nil, uint64(r.Intn(100)))
		s.Nil(err)

		covered, ok := outcome.(cost.Covered)
		if !ok {
			continue
		}

		spent := big.NewInt(0)
		for chainID, tokens := range covered.TokensSpent {
			for token, amount := range tokens {
				s.True(amount.Sign() >= 0)
				s.True(amount.Cmp(balances[balance.Key{ChainID: chainID, Token: token}]) <= 0)
				spent.Add(spent, amount)
			}
		}
		received := big.NewInt(0)
		for _, receipt := range covered.TokensReceived {
			s.True(receipt.TargetAmount.Sign() >= 0)
			received.Add(received, receipt.TargetAmount)
			received.Add(received, receipt.Fee)
		}
		s.True(spent.Cmp(received) >= 0)
	}
}

func (s *ResolverTestSuite) Test_Resolve_HigherDecimalsDustDoesNotCover() {
	s.mockOracle.EXPECT().USDValue(gomock.Any(), optimismUsdc, uint64(10), gomock.Any()).DoAndReturn(
		func(ctx context.Context, token common.Address, chainID uint64, amount *big.Int) (*big.Float, error) {
			s.Equal(usdc(100).String(), amount.String())
			return big.NewFloat(100), nil
		})

	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(100)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 56, Token: bscUsdc}: big.NewInt(100_300_000),
	}), nil, 30)

	s.Nil(err)
	s.False(outcome.HasFulfilledAll())
	shortfall := outcome.(cost.Shortfall)
	s.Equal("0", shortfall.Tokens[0].AmountSpent.String())
	s.Equal(usdc(100).String(), shortfall.Tokens[0].Missing.String())
}

func (s *ResolverTestSuite) Test_Resolve_MixedDecimalsCovered() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(100)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:  usdc(60),
		{ChainID: 56, Token: bscUsdc}: usdc18(50),
	}), nil, 30)

	s.Nil(err)
	s.True(outcome.HasFulfilledAll())
	covered := outcome.(cost.Covered)
	s.Equal(usdc(60).String(), covered.TokensSpent[1][ethUsdc].String())
	s.Equal(usdc18(40.3).String(), covered.TokensSpent[56][bscUsdc].String())
	s.Equal(usdc(100.3).String(), covered.TokensReceived[0].AmountSpent.String())
}

func (s *ResolverTestSuite) Test_Resolve_LargerBalanceInTargetDecimalsSpentFirst() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc, Amount: usdc(10)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:  usdc(20),
		{ChainID: 56, Token: bscUsdc}: usdc18(15),
	}), nil, 0)

	s.Nil(err)
	covered := outcome.(cost.Covered)
	s.Len(covered.TokensSpent, 1)
	s.Equal(usdc(10).String(), covered.TokensSpent[1][ethUsdc].String())
}

func (s *ResolverTestSuite) Test_Resolve_LowerDecimalsSourceDebitRoundsUp() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 56,
		Tokens: []cost.TokenRequest{
			{Token: bscUsdc, Amount: big.NewInt(1)},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}: big.NewInt(5),
	}), nil, 0)

	s.Nil(err)
	s.True(outcome.HasFulfilledAll())
	covered := outcome.(cost.Covered)
	s.Equal("1", covered.TokensSpent[1][ethUsdc].String())
	s.Equal("1", covered.TokensReceived[0].AmountSpent.String())
}

func (s *ResolverTestSuite) Test_Resolve_SweepMixedDecimals() {
	outcome, err := s.resolver.Resolve(context.Background(), cost.FundingTarget{
		ChainID: 10,
		Tokens: []cost.TokenRequest{
			{Token: optimismUsdc},
		},
	}, s.snapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}:  usdc(10),
		{ChainID: 56, Token: bscUsdc}: new(big.Int).Add(usdc18(5), big.NewInt(7)),
	}), nil, 0)

	s.Nil(err)
	covered := outcome.(cost.Covered)
	s.Equal(usdc(10).String(), covered.TokensSpent[1][ethUsdc].String())
	s.Equal(usdc18(5).String(), covered.TokensSpent[56][bscUsdc].String())
	s.Equal(usdc(15).String(), covered.TokensReceived[0].TargetAmount.String())
}

func (s *ResolverTestSuite) Test_Fee_RoundsUp() {
	s.Equal("1", cost.Fee(big.NewInt(1), 30).String())
	s.Equal("0", cost.Fee(big.NewInt(0), 30).String())
	s.Equal("300000", cost.Fee(usdc(100), 30).String())
	s.Equal("3", cost.Fee(big.NewInt(1000), 30).String())
	s.Equal("4", cost.Fee(big.NewInt(1001), 30).String())
}
