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
	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-shop/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CouponsHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCouponService *mocks.MockCouponServicer
}

func TestCouponsHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponsHandlerTestSuite))
}

func (s *CouponsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockCouponService = mocks.NewMockCouponServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		CouponService: s.mockCouponService,
	})
}

func (s *CouponsHandlerTestSuite) TestValidate() {
	amount := decimal.NewFromInt(250)
	lowAmount := decimal.NewFromInt(150)

	s.mockCouponService.EXPECT().
		Validate(gomock.Any(), "SAVE50", newDecimalMatcher(amount), int64(1)).
		Return(&service.CouponDiscount{
			Discount: decimal.NewFromInt(50),
			Message:  "Coupon applied! You save ₹50",
		}, nil).Times(1)
	s.mockCouponService.EXPECT().
		Validate(gomock.Any(), "SAVE50", newDecimalMatcher(lowAmount), int64(1)).
		Return(nil, domain.NewMinAmountError(decimal.NewFromInt(200))).Times(1)
	s.mockCouponService.EXPECT().
		Validate(gomock.Any(), "NOPE", newDecimalMatcher(amount), int64(1)).
		Return(nil, domain.NewCouponRejectedError("Invalid or expired coupon")).Times(1)

	cases := []struct {
		name         string
		payload      string
		wantStatus   int
		wantValid    bool
		wantDiscount float64
		wantMessage  string
	}{
		{
			name:         "all ok",
			payload:      `{"code":"SAVE50","amount":250,"user_id":1}`,
			wantStatus:   http.StatusOK,
			wantValid:    true,
			wantDiscount: 50,
			wantMessage:  "Coupon applied! You save ₹50",
		}, {
			name:        "below min amount",
			payload:     `{"code":"SAVE50","amount":150,"user_id":1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Minimum order amount is ₹200",
		}, {
			name:        "unknown code",
			payload:     `{"code":"NOPE","amount":250,"user_id":1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid or expired coupon",
		}, {
			name:       "missing code",
			payload:    `{"amount":250,"user_id":1}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    CouponValidateRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantMessage == "" {
				return
			}

			body, readErr := io.ReadAll(res.Body)
			s.Require().NoError(readErr)

			var response ValidateCouponResponse
			s.Require().NoError(json.Unmarshal(body, &response))
			s.Equal(t.wantValid, response.Valid)
			s.Equal(t.wantMessage, response.Message)
			s.InDelta(t.wantDiscount, response.Discount, 0.001)
		})
	}
}

func (s *CouponsHandlerTestSuite) TestCreate_DuplicateCode() {
	s.mockCouponService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    CouponsRoute,
		Body:   bytes.NewReader([]byte(`{"code":"SAVE50","discount_amount":50,"min_amount":200}`)),
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusConflict, res.StatusCode)
}
