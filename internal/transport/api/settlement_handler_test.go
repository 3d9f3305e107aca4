package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/logger"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-shop/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-shop/internal/transport/gateway"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SettlementHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockSettlementService *mocks.MockSettlementServicer
}

func TestSettlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}

func (s *SettlementHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockSettlementService = mocks.NewMockSettlementServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		SettlementService: s.mockSettlementService,
	})
}

func (s *SettlementHandlerTestSuite) TestCreateSession() {
	s.mockSettlementService.EXPECT().
		CreateCheckoutSession(gomock.Any(), newDecimalMatcher(decimal.NewFromFloat(499.99))).
		Return("https://checkout.gateway.example/pay/cs_test_200", nil).Times(1)
	s.mockSettlementService.EXPECT().
		CreateCheckoutSession(gomock.Any(), newDecimalMatcher(decimal.NewFromInt(100))).
		Return("", gateway.NewStatusCodeError(http.StatusUnauthorized)).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantURL    string
	}{
		{
			name:       "all ok",
			payload:    `{"amount":499.99,"user_id":1}`,
			wantStatus: http.StatusOK,
			wantURL:    "https://checkout.gateway.example/pay/cs_test_200",
		}, {
			name:       "gateway failure",
			payload:    `{"amount":100,"user_id":1}`,
			wantStatus: http.StatusBadGateway,
		}, {
			name:       "non-positive amount",
			payload:    `{"amount":-10,"user_id":1}`,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "missing user_id",
			payload:    `{"amount":100}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    CreateCheckoutSessionRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantURL != "" {
				body, readErr := io.ReadAll(res.Body)
				s.Require().NoError(readErr)

				var response CreateCheckoutSessionResponse
				s.Require().NoError(json.Unmarshal(body, &response))
				s.Equal(t.wantURL, response.URL)
			}
		})
	}
}

func (s *SettlementHandlerTestSuite) TestSave() {
	validArgs := service.SettleArgs{
		SessionID:    "cs_test_1",
		UserID:       1,
		ReferralCode: "JOHN10",
	}
	gatewayFailArgs := service.SettleArgs{
		SessionID: "cs_test_broken",
		UserID:    1,
	}

	s.mockSettlementService.EXPECT().
		Settle(gomock.Any(), validArgs).
		Return(&domain.Transaction{TransactionID: "pi_100"}, nil).Times(1)
	s.mockSettlementService.EXPECT().
		Settle(gomock.Any(), gatewayFailArgs).
		Return(nil, gateway.NewStatusCodeError(http.StatusNotFound)).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantTxID   string
	}{
		{
			name:       "all ok",
			payload:    `{"session_id":"cs_test_1","user_id":1,"referral_code":"JOHN10"}`,
			wantStatus: http.StatusOK,
			wantTxID:   "pi_100",
		}, {
			name:       "gateway failure",
			payload:    `{"session_id":"cs_test_broken","user_id":1}`,
			wantStatus: http.StatusBadGateway,
		}, {
			name:       "missing session_id",
			payload:    `{"user_id":1}`,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "malformed json",
			payload:    `{session_id}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    SaveTransactionRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantTxID != "" {
				body, readErr := io.ReadAll(res.Body)
				s.Require().NoError(readErr)

				var response SaveTransactionResponse
				s.Require().NoError(json.Unmarshal(body, &response))
				s.True(response.Success)
				s.Equal(t.wantTxID, response.TransactionID)
			}
		})
	}
}

func (s *SettlementHandlerTestSuite) TestDetails() {
	details := &service.TransactionDetails{
		Transaction: &domain.Transaction{
			TransactionID: "pi_100",
			Amount:        decimal.NewFromInt(500),
			Currency:      "inr",
			Status:        "paid",
		},
		Products: []repoargs.PricedOrderItem{
			{ProductID: 1, Quantity: 2, Title: "Widget", Price: decimal.NewFromInt(250)},
		},
	}

	s.mockSettlementService.EXPECT().
		Details(gomock.Any(), "pi_100").
		Return(details, nil).Times(1)
	s.mockSettlementService.EXPECT().
		Details(gomock.Any(), "pi_missing").
		Return(nil, domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name          string
		transactionID string
		wantStatus    int
		wantMessage   string
	}{
		{
			name:          "all ok",
			transactionID: "pi_100",
			wantStatus:    http.StatusOK,
		}, {
			name:          "not found",
			transactionID: "pi_missing",
			wantStatus:    http.StatusNotFound,
			wantMessage:   "Transaction not found",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    "/transaction-details/" + t.transactionID,
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			body, readErr := io.ReadAll(res.Body)
			s.Require().NoError(readErr)

			if t.wantMessage != "" {
				var response map[string]string
				s.Require().NoError(json.Unmarshal(body, &response))
				s.Equal(t.wantMessage, response["message"])
				return
			}

			var response TransactionDetailsResponse
			s.Require().NoError(json.Unmarshal(body, &response))
			s.Equal("pi_100", response.TransactionID)
			s.InDelta(500, response.Amount, 0.001)
			s.Len(response.Products, 1)
		})
	}
}
