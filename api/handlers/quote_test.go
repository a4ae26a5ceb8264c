package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/sprintertech/sprinter-settlement/api/handlers"
	mock_handlers "github.com/sprintertech/sprinter-settlement/api/handlers/mock"
	"github.com/sprintertech/sprinter-settlement/balance"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/cost"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	account      = "0x6Dc7354cEA1b225B299Fe06b97aC12ac5066B899"
	ethUsdc      = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	optimismUsdc = common.HexToAddress("0x0b2C639c533813f4Aa9D7837cAf62653d097Ff85")
)

type QuoteHandlerTestSuite struct {
	suite.Suite

	handler       *handlers.QuoteHandler
	mockSnapshots *mock_handlers.MockSnapshotFetcher
	mockResolver  *mock_handlers.MockCostResolver
	mockMetrics   *mock_handlers.MockQuoteMetrics

	snapshot *balance.Snapshot
}

func TestRunQuoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockSnapshots = mock_handlers.NewMockSnapshotFetcher(ctrl)
	s.mockResolver = mock_handlers.NewMockCostResolver(ctrl)
	s.mockMetrics = mock_handlers.NewMockQuoteMetrics(ctrl)

	tokens := config.NewTokenStore()
	tokens.AddChainTokens(1, map[string]config.TokenConfig{
		"usdc": {Address: ethUsdc, Decimals: 6},
	})
	tokens.AddChainTokens(10, map[string]config.TokenConfig{
		"usdc": {Address: optimismUsdc, Decimals: 6},
	})

	s.snapshot, _ = balance.NewSnapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}: big.NewInt(60000000),
	})

	s.handler = handlers.NewQuoteHandler(s.mockSnapshots, s.mockResolver, tokens, s.mockMetrics, 30)
}

func (s *QuoteHandlerTestSuite) request(body interface{}, acc string) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v1/accounts/%s/quotes", acc), bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, map[string]string{
		"account": acc,
	})
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_InvalidAccount() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{}, "invalid"))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/x/quotes", bytes.NewReader([]byte("{invalid")))
	req = mux.SetURLVars(req, map[string]string{
		"account": account,
	})
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_MissingTransfers() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{TargetChainId: 10}, account))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_InvalidTokenAddress() {
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{
		TargetChainId: 10,
		TokenTransfers: []handlers.TokenTransfer{
			{TokenAddress: "invalid"},
		},
	}, account))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_SnapshotFails() {
	s.mockSnapshots.EXPECT().Snapshot(gomock.Any(), common.HexToAddress(account)).Return(nil, fmt.Errorf("error"))
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{
		TargetChainId: 10,
		TokenTransfers: []handlers.TokenTransfer{
			{TokenAddress: optimismUsdc.Hex(), Amount: &handlers.BigInt{Int: big.NewInt(100000000)}},
		},
	}, account))

	s.Equal(http.StatusInternalServerError, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_InvalidTarget() {
	s.mockSnapshots.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(s.snapshot, nil)
	s.mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), s.snapshot, gomock.Any(), uint64(30)).Return(nil, &cost.InvalidTargetError{Reason: "two sweeps"})
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{
		TargetChainId: 10,
		TokenTransfers: []handlers.TokenTransfer{
			{TokenAddress: optimismUsdc.Hex()},
			{TokenAddress: optimismUsdc.Hex()},
		},
	}, account))

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_Covered() {
	s.mockSnapshots.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(s.snapshot, nil)
	s.mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), s.snapshot, gomock.Any(), uint64(30)).DoAndReturn(
		func(_, target, _, restriction, _ interface{}) (cost.Outcome, error) {
			t := target.(cost.FundingTarget)
			s.Equal(uint64(10), t.ChainID)
			s.Equal("50000000", t.Tokens[0].Amount.String())
			s.Nil(restriction.(*cost.AccessRestriction))

			return cost.Covered{
				TokensSpent: map[uint64]map[common.Address]*big.Int{
					1: {ethUsdc: big.NewInt(50150000)},
				},
				TokensReceived: []cost.TokenReceipt{
					{
						Token:        optimismUsdc,
						HasFulfilled: true,
						AmountSpent:  big.NewInt(50150000),
						TargetAmount: big.NewInt(50000000),
						Fee:          big.NewInt(150000),
					},
				},
			}, nil
		})
	s.mockMetrics.EXPECT().TrackQuote(true)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{
		TargetChainId: 10,
		TokenTransfers: []handlers.TokenTransfer{
			{TokenAddress: optimismUsdc.Hex(), Amount: &handlers.BigInt{Int: big.NewInt(50000000)}},
		},
	}, account))

	s.Equal(http.StatusOK, recorder.Code)
	resp := handlers.QuoteResponse{}
	err := json.NewDecoder(recorder.Body).Decode(&resp)
	s.Nil(err)
	s.True(resp.HasFulfilledAll)
	s.Equal("50150000", resp.TokensSpent["1"][ethUsdc].String())
	s.Equal("150000", resp.TokensReceived[0].Fee.String())
	s.Len(resp.Balances, 1)
	s.Equal("usdc", resp.Balances[0].TokenName)
	s.Equal("60000000", resp.Balances[0].Balance.String())
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_Shortfall() {
	s.mockSnapshots.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(s.snapshot, nil)
	s.mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), s.snapshot, gomock.Any(), uint64(30)).DoAndReturn(
		func(_, _, _, restriction, _ interface{}) (cost.Outcome, error) {
			r := restriction.(*cost.AccessRestriction)
			s.Equal([]common.Address{ethUsdc}, r.ChainTokens[1])

			return cost.Shortfall{
				Tokens: []cost.TokenShortfall{
					{
						Token:        optimismUsdc,
						Symbol:       "usdc",
						Decimals:     6,
						TargetAmount: big.NewInt(100000000),
						AmountSpent:  big.NewInt(60000000),
						Fee:          big.NewInt(180000),
						Missing:      big.NewInt(40120000),
					},
				},
				TotalUSD: big.NewFloat(40.12),
			}, nil
		})
	s.mockMetrics.EXPECT().TrackQuote(false)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{
		TargetChainId: 10,
		TokenTransfers: []handlers.TokenTransfer{
			{TokenAddress: optimismUsdc.Hex(), Amount: &handlers.BigInt{Int: big.NewInt(100000000)}},
		},
		AccountAccessList: []handlers.AccountAccess{
			{ChainId: 1, TokenAddress: ethUsdc.Hex()},
		},
	}, account))

	s.Equal(http.StatusOK, recorder.Code)
	resp := handlers.QuoteResponse{}
	err := json.NewDecoder(recorder.Body).Decode(&resp)
	s.Nil(err)
	s.False(resp.HasFulfilledAll)
	s.Len(resp.TokenShortfalls, 1)
	s.Equal("40120000", resp.TokenShortfalls[0].Missing.String())
	s.Equal("40.12", resp.TotalAmountInUSD)
}

func (s *QuoteHandlerTestSuite) Test_HandleRequest_PartialBalances() {
	partial, _ := balance.NewSnapshot(map[balance.Key]*big.Int{
		{ChainID: 1, Token: ethUsdc}: big.NewInt(60000000),
	}, 10)
	s.mockSnapshots.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(partial, &balance.PartialDataError{
		Errs: map[uint64]error{10: fmt.Errorf("timeout")},
	})
	s.mockResolver.EXPECT().Resolve(gomock.Any(), gomock.Any(), partial, gomock.Any(), uint64(30)).Return(cost.Covered{
		TokensSpent:    map[uint64]map[common.Address]*big.Int{},
		TokensReceived: []cost.TokenReceipt{},
	}, nil)
	s.mockMetrics.EXPECT().TrackQuote(true)
	recorder := httptest.NewRecorder()

	s.handler.HandleRequest(recorder, s.request(handlers.QuoteBody{
		TargetChainId: 10,
		TokenTransfers: []handlers.TokenTransfer{
			{TokenAddress: optimismUsdc.Hex(), Amount: &handlers.BigInt{Int: big.NewInt(0)}},
		},
		ChainIds: []uint64{1},
	}, account))

	s.Equal(http.StatusOK, recorder.Code)
	resp := handlers.QuoteResponse{}
	err := json.NewDecoder(recorder.Body).Decode(&resp)
	s.Nil(err)
	s.Equal([]uint64{10}, resp.MissingChains)
}
