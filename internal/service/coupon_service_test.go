package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service/mocks"

	"github.com/fsdevblog/groph-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-shop/pkg/uow/mocks"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CouponServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockCouponRepo *mocks.MockCouponRepository
	couponService  *CouponService
}

func TestCouponServiceSuite(t *testing.T) {
	suite.Run(t, new(CouponServiceTestSuite))
}

func (s *CouponServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockCouponRepo = mocks.NewMockCouponRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CouponRepoName)).
		Return(s.mockCouponRepo, nil).AnyTimes()

	couponService, servErr := NewCouponService(s.mockUOW, newTestLogger())
	s.Require().NoError(servErr)
	s.couponService = couponService
}

func (s *CouponServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// TestValidate Сценарий жизни купона SAVE50 (скидка 50, минимальный заказ 200):
// заказ на 150 отклоняется по минимальной сумме, заказ на 250 получает скидку,
// повторная попытка того же юзера отклоняется как уже использованный.
func (s *CouponServiceTestSuite) TestValidate() {
	var userID int64 = 1
	coupon := &domain.Coupon{
		ID:             10,
		Code:           "SAVE50",
		DiscountAmount: decimal.NewFromInt(50),
		MinAmount:      decimal.NewFromInt(200),
		IsActive:       true,
	}

	s.mockCouponRepo.EXPECT().FindValidByCode(gomock.Any(), "SAVE50").Return(coupon, nil).Times(3)

	// Заказ на 150: до проверки использования дело не доходит.
	_, belowErr := s.couponService.Validate(context.Background(), "SAVE50", decimal.NewFromInt(150), userID)
	var rejectedErr *domain.CouponRejectedError
	s.Require().ErrorAs(belowErr, &rejectedErr)
	s.Equal("Minimum order amount is ₹200", rejectedErr.Message)

	// Заказ на 250: скидка выдается и использование фиксируется.
	s.mockCouponRepo.EXPECT().HasUsage(gomock.Any(), userID, coupon.ID).Return(false, nil)
	s.mockCouponRepo.EXPECT().RecordUsage(gomock.Any(), userID, coupon.ID).Return(nil)

	discount, validErr := s.couponService.Validate(context.Background(), "SAVE50", decimal.NewFromInt(250), userID)
	s.Require().NoError(validErr)
	s.True(discount.Discount.Equal(decimal.NewFromInt(50)))
	s.Equal("Coupon applied! You save ₹50", discount.Message)

	// Повторная попытка.
	s.mockCouponRepo.EXPECT().HasUsage(gomock.Any(), userID, coupon.ID).Return(true, nil)

	_, usedErr := s.couponService.Validate(context.Background(), "SAVE50", decimal.NewFromInt(250), userID)
	s.Require().ErrorAs(usedErr, &rejectedErr)
	s.Equal("Coupon already used", rejectedErr.Message)
}

func (s *CouponServiceTestSuite) TestValidate_UnknownCode() {
	s.mockCouponRepo.EXPECT().
		FindValidByCode(gomock.Any(), "NOPE").
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.couponService.Validate(context.Background(), "NOPE", decimal.NewFromInt(500), 1)
	var rejectedErr *domain.CouponRejectedError
	s.Require().ErrorAs(err, &rejectedErr)
	s.Equal("Invalid or expired coupon", rejectedErr.Message)
}

// TestValidate_ConcurrentUsage Гонку двух параллельных валидаций решает
// уникальный индекс: проигравший получает отказ.
func (s *CouponServiceTestSuite) TestValidate_ConcurrentUsage() {
	coupon := &domain.Coupon{
		ID:             10,
		Code:           "SAVE50",
		DiscountAmount: decimal.NewFromInt(50),
		IsActive:       true,
	}
	s.mockCouponRepo.EXPECT().FindValidByCode(gomock.Any(), "SAVE50").Return(coupon, nil)
	s.mockCouponRepo.EXPECT().HasUsage(gomock.Any(), int64(1), coupon.ID).Return(false, nil)
	s.mockCouponRepo.EXPECT().RecordUsage(gomock.Any(), int64(1), coupon.ID).Return(domain.ErrDuplicateKey)

	_, err := s.couponService.Validate(context.Background(), "SAVE50", decimal.NewFromInt(500), 1)
	var rejectedErr *domain.CouponRejectedError
	s.Require().ErrorAs(err, &rejectedErr)
	s.Equal("Coupon already used", rejectedErr.Message)
}

// TestValidate_RecordUsageFailure Сбой записи использования (не дубликат)
// логируется, но скидку не блокирует.
func (s *CouponServiceTestSuite) TestValidate_RecordUsageFailure() {
	coupon := &domain.Coupon{
		ID:             10,
		Code:           "SAVE50",
		DiscountAmount: decimal.NewFromInt(50),
		IsActive:       true,
	}
	s.mockCouponRepo.EXPECT().FindValidByCode(gomock.Any(), "SAVE50").Return(coupon, nil)
	s.mockCouponRepo.EXPECT().HasUsage(gomock.Any(), int64(1), coupon.ID).Return(false, nil)
	s.mockCouponRepo.EXPECT().RecordUsage(gomock.Any(), int64(1), coupon.ID).Return(domain.ErrUnknown)

	discount, err := s.couponService.Validate(context.Background(), "SAVE50", decimal.NewFromInt(500), 1)
	s.Require().NoError(err)
	s.True(discount.Discount.Equal(decimal.NewFromInt(50)))
}
