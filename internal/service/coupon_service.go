package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type CouponService struct {
	uow        uow.UOW
	couponRepo CouponRepository
	l          *logrus.Entry
}

func NewCouponService(u uow.UOW, l *logrus.Logger) (*CouponService, error) {
	couponRepo, couponRepoErr := uow.GetRepositoryAs[CouponRepository](u, uow.RepositoryName(repoargs.CouponRepoName))
	if couponRepoErr != nil {
		return nil, couponRepoErr
	}
	return &CouponService{
		uow:        u,
		couponRepo: couponRepo,
		l:          l.WithField("component", "coupon_service"),
	}, nil
}

type CouponDiscount struct {
	Discount decimal.Decimal
	Message  string
}

// Validate проверяет купон для чекаута. Правила применяются по порядку, первый
// отказ выигрывает:
//  1. Купон существует, активен и не истек. Иначе - "Invalid or expired coupon".
//  2. Сумма заказа не меньше min_amount купона.
//  3. Юзер этот купон еще не использовал.
//
// На успехе фиксируется запись использования. Это side-effecting read: чистая
// валидация с побочной записью. Уникальный индекс пары (user_id, coupon_id)
// закрывает гонку двух параллельных валидаций - проигравшая получает отказ
// "Coupon already used". Любая другая ошибка записи логируется, но скидку не
// блокирует.
//
// Скидка - фиксированная сумма в валюте, не процент.
func (s *CouponService) Validate(
	ctx context.Context,
	code string,
	amount decimal.Decimal,
	userID int64,
) (*CouponDiscount, error) {
	coupon, couponErr := s.couponRepo.FindValidByCode(ctx, code)
	if couponErr != nil {
		if errors.Is(couponErr, domain.ErrRecordNotFound) {
			return nil, domain.NewCouponRejectedError("Invalid or expired coupon")
		}
		return nil, fmt.Errorf("validating coupon: %w", couponErr)
	}

	if amount.LessThan(coupon.MinAmount) {
		return nil, domain.NewMinAmountError(coupon.MinAmount)
	}

	used, usedErr := s.couponRepo.HasUsage(ctx, userID, coupon.ID)
	if usedErr != nil {
		return nil, fmt.Errorf("validating coupon: %w", usedErr)
	}
	if used {
		return nil, domain.NewCouponRejectedError("Coupon already used")
	}

	if recordErr := s.couponRepo.RecordUsage(ctx, userID, coupon.ID); recordErr != nil {
		if errors.Is(recordErr, domain.ErrDuplicateKey) {
			// Параллельная валидация успела раньше.
			return nil, domain.NewCouponRejectedError("Coupon already used")
		}
		s.l.WithError(recordErr).WithFields(logrus.Fields{
			"couponID": coupon.ID,
			"userID":   userID,
		}).Error("recording coupon usage failed, discount still granted")
	}

	return &CouponDiscount{
		Discount: coupon.DiscountAmount,
		Message:  fmt.Sprintf("Coupon applied! You save ₹%s", coupon.DiscountAmount.String()),
	}, nil
}

func (s *CouponService) GetAll(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := s.couponRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return coupons, nil
}

// Create создает купон. Код уникален без учета регистра (хранится в верхнем),
// дубликат возвращается как domain.ErrDuplicateKey.
func (s *CouponService) Create(ctx context.Context, args repoargs.CouponSave) (*domain.Coupon, error) {
	coupon, err := s.couponRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating coupon: %w", err)
	}
	return coupon, nil
}

func (s *CouponService) Update(ctx context.Context, id int64, args repoargs.CouponSave) error {
	if err := s.couponRepo.Update(ctx, id, args); err != nil {
		return fmt.Errorf("updating coupon: %w", err)
	}
	return nil
}

func (s *CouponService) ToggleActive(ctx context.Context, id int64) error {
	if err := s.couponRepo.ToggleActive(ctx, id); err != nil {
		return fmt.Errorf("toggling coupon: %w", err)
	}
	return nil
}

func (s *CouponService) Delete(ctx context.Context, id int64) error {
	if err := s.couponRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting coupon: %w", err)
	}
	return nil
}
