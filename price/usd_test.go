package price_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/price"
	mock_price "github.com/sprintertech/sprinter-settlement/price/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type USDValuerTestSuite struct {
	suite.Suite

	valuer    *price.USDValuer
	mockAPI   *mock_price.MockPriceAPI
	mockCache *mock_price.MockPriceCache

	usdc common.Address
	weth common.Address
}

func TestRunUSDValuerTestSuite(t *testing.T) {
	suite.Run(t, new(USDValuerTestSuite))
}

func (s *USDValuerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockAPI = mock_price.NewMockPriceAPI(ctrl)
	s.mockCache = mock_price.NewMockPriceCache(ctrl)

	s.usdc = common.HexToAddress("0x0b2C639c533813f4Aa9D7837cAf62653d097Ff85")
	s.weth = common.HexToAddress("0x4200000000000000000000000000000000000006")
	tokens := config.NewTokenStore()
	tokens.AddChainTokens(10, map[string]config.TokenConfig{
		"usdc": {Address: s.usdc, Decimals: 6},
		"weth": {Address: s.weth, Decimals: 18},
	})

	s.valuer = price.NewUSDValuer(s.mockAPI, tokens, s.mockCache)
}

func (s *USDValuerTestSuite) Test_USDValue_UnknownToken() {
	_, err := s.valuer.USDValue(context.Background(), common.HexToAddress("0x1"), 10, big.NewInt(1))

	s.NotNil(err)
}

func (s *USDValuerTestSuite) Test_USDValue_PriceFetchFails() {
	s.mockCache.EXPECT().Get("USDC").Return(float64(0), false)
	s.mockAPI.EXPECT().TokenPrice(gomock.Any(), "USDC").Return(float64(0), fmt.Errorf("error"))

	_, err := s.valuer.USDValue(context.Background(), s.usdc, 10, big.NewInt(60120000))

	s.NotNil(err)
}

func (s *USDValuerTestSuite) Test_USDValue_FetchesAndCachesPrice() {
	s.mockCache.EXPECT().Get("USDC").Return(float64(0), false)
	s.mockAPI.EXPECT().TokenPrice(gomock.Any(), "USDC").Return(float64(1), nil)
	s.mockCache.EXPECT().Set("USDC", float64(1))

	value, err := s.valuer.USDValue(context.Background(), s.usdc, 10, big.NewInt(60120000))

	s.Nil(err)
	f, _ := value.Float64()
	s.InDelta(60.12, f, 1e-9)
}

func (s *USDValuerTestSuite) Test_USDValue_CachedPrice() {
	s.mockCache.EXPECT().Get("WETH").Return(float64(2500), true)

	amount, _ := new(big.Int).SetString("1500000000000000000", 10)
	value, err := s.valuer.USDValue(context.Background(), s.weth, 10, amount)

	s.Nil(err)
	f, _ := value.Float64()
	s.InDelta(3750, f, 1e-9)
}
