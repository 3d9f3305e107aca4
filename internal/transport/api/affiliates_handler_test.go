package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/logger"
	"github.com/fsdevblog/groph-shop/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-shop/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AffiliatesHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockAffiliateService  *mocks.MockAffiliateServicer
	mockCommissionService *mocks.MockCommissionServicer
}

func TestAffiliatesHandlerSuite(t *testing.T) {
	suite.Run(t, new(AffiliatesHandlerTestSuite))
}

func (s *AffiliatesHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAffiliateService = mocks.NewMockAffiliateServicer(mockCtrl)
	s.mockCommissionService = mocks.NewMockCommissionServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		AffiliateService:  s.mockAffiliateService,
		CommissionService: s.mockCommissionService,
	})
}

func (s *AffiliatesHandlerTestSuite) TestUpdateCommissionStatus() {
	s.mockCommissionService.EXPECT().
		UpdateCommissionStatus(gomock.Any(), int64(1), domain.CommissionStatusPaid).
		Return(nil).Times(1)
	s.mockCommissionService.EXPECT().
		UpdateCommissionStatus(gomock.Any(), int64(2), domain.CommissionStatusPaid).
		Return(domain.ErrRecordNotFound).Times(1)

	cases := []struct {
		name        string
		url         string
		payload     string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "all ok",
			url:        "/affiliate-commissions/1/status",
			payload:    `{"status":"paid"}`,
			wantStatus: http.StatusOK,
		}, {
			name:        "invalid status",
			url:         "/affiliate-commissions/1/status",
			payload:     `{"status":"shipped"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid status",
		}, {
			name:       "unknown commission",
			url:        "/affiliate-commissions/2/status",
			payload:    `{"status":"paid"}`,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "missing status",
			url:        "/affiliate-commissions/1/status",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    t.url,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantMessage != "" {
				body, readErr := io.ReadAll(res.Body)
				s.Require().NoError(readErr)

				var response map[string]string
				s.Require().NoError(json.Unmarshal(body, &response))
				s.Equal(t.wantMessage, response["message"])
			}
		})
	}
}

func (s *AffiliatesHandlerTestSuite) TestMakeAffiliate() {
	s.mockAffiliateService.EXPECT().
		MakeAffiliate(gomock.Any(), int64(1), "JOHN10").
		Return(nil).Times(1)
	s.mockAffiliateService.EXPECT().
		MakeAffiliate(gomock.Any(), int64(2), "JOHN10").
		Return(domain.ErrDuplicateKey).Times(1)

	cases := []struct {
		name       string
		url        string
		payload    string
		wantStatus int
	}{
		{
			name:       "all ok",
			url:        "/users/1/make-affiliate",
			payload:    `{"affiliate_code":"JOHN10"}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "code taken",
			url:        "/users/2/make-affiliate",
			payload:    `{"affiliate_code":"JOHN10"}`,
			wantStatus: http.StatusConflict,
		}, {
			name:       "missing code",
			url:        "/users/1/make-affiliate",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    t.url,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
