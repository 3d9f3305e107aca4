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

var percentDivisor = decimal.NewFromInt(100)

type CommissionService struct {
	uow            uow.UOW
	rateRepo       CommissionRateRepository
	commissionRepo AffiliateCommissionRepository
	userRepo       UserRepository
	productRepo    ProductRepository
	l              *logrus.Entry
}

func NewCommissionService(u uow.UOW, l *logrus.Logger) (*CommissionService, error) {
	rateRepo, rateRepoErr :=
		uow.GetRepositoryAs[CommissionRateRepository](u, uow.RepositoryName(repoargs.CommissionRateRepoName))
	if rateRepoErr != nil {
		return nil, rateRepoErr
	}
	commissionRepo, commissionRepoErr :=
		uow.GetRepositoryAs[AffiliateCommissionRepository](u, uow.RepositoryName(repoargs.AffiliateCommissionRepoName))
	if commissionRepoErr != nil {
		return nil, commissionRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	productRepo, productRepoErr :=
		uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if productRepoErr != nil {
		return nil, productRepoErr
	}
	return &CommissionService{
		uow:            u,
		rateRepo:       rateRepo,
		commissionRepo: commissionRepo,
		userRepo:       userRepo,
		productRepo:    productRepo,
		l:              l.WithField("component", "commission_service"),
	}, nil
}

// ResolveRate выбирает процент комиссии для суммы заказа: активный уровень с
// наибольшим min_sales_amount <= amount. Если сумма ниже всех порогов, берется
// активный уровень с наименьшим порогом. Если активных уровней нет вообще,
// возвращается domain.ErrNoActiveRate - вызывающий код трактует это как
// "комиссия не создается", а не как сбой.
func (s *CommissionService) ResolveRate(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	rate, err := s.rateRepo.FindBestForAmount(ctx, amount)
	if err == nil {
		return rate.CommissionPercentage, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return decimal.Zero, fmt.Errorf("resolving rate: %w", err)
	}

	entryRate, entryErr := s.rateRepo.FindEntryLevel(ctx)
	if entryErr != nil {
		if errors.Is(entryErr, domain.ErrRecordNotFound) {
			return decimal.Zero, domain.ErrNoActiveRate
		}
		return decimal.Zero, fmt.Errorf("resolving entry level rate: %w", entryErr)
	}
	return entryRate.CommissionPercentage, nil
}

type AttributeArgs struct {
	OrderID        string
	OrderAmount    decimal.Decimal
	ReferredUserID int64
	ReferralCode   string
}

// Attribute создает запись комиссии для завершенной продажи. Шаг сугубо
// рекомендательный: любой его исход не влияет на судьбу самой продажи, ошибки
// сюда возвращаются только чтобы воркер их залогировал.
//
// Алгоритм работы:
//  1. Пустой реферальный код - не делаем ничего.
//  2. Ищем юзера с данным affiliate_code и включенным флагом аффилиата.
//     Не нашли - выходим с логом, это штатный случай (кривая ссылка).
//  3. Резолвим процент через таблицу уровней.
//  4. commission_amount = order_amount * rate / 100. Храним без округления,
//     округляет только слой выдачи.
//  5. Вставляем комиссию со статусом pending. Дубликат по order_id означает что
//     заказ уже атрибуцирован (ретрай запроса) - молча выходим, двойной выплаты
//     быть не должно.
func (s *CommissionService) Attribute(ctx context.Context, args AttributeArgs) error {
	if args.ReferralCode == "" {
		return nil
	}

	l := s.l.WithFields(logrus.Fields{
		"orderID":      args.OrderID,
		"referralCode": args.ReferralCode,
	})

	affiliate, affiliateErr := s.userRepo.FindAffiliateByCode(ctx, args.ReferralCode)
	if affiliateErr != nil {
		if errors.Is(affiliateErr, domain.ErrRecordNotFound) {
			l.Info("no affiliate found for referral code")
			return nil
		}
		return fmt.Errorf("attributing commission: %w", affiliateErr)
	}

	rate, rateErr := s.ResolveRate(ctx, args.OrderAmount)
	if rateErr != nil {
		if errors.Is(rateErr, domain.ErrNoActiveRate) {
			l.Info("no active commission rate, commission not created")
			return nil
		}
		return fmt.Errorf("attributing commission: %w", rateErr)
	}

	commissionAmount := args.OrderAmount.Mul(rate).Div(percentDivisor)

	commission, createErr := s.commissionRepo.Create(ctx, repoargs.AffiliateCommissionCreate{
		AffiliateUserID:  affiliate.ID,
		OrderID:          args.OrderID,
		OrderAmount:      args.OrderAmount,
		CommissionRate:   rate,
		CommissionAmount: commissionAmount,
		ReferredUserID:   args.ReferredUserID,
		ReferralCode:     args.ReferralCode,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			l.Info("order already attributed, skipping")
			return nil
		}
		return fmt.Errorf("attributing commission: %w", createErr)
	}

	l.WithFields(logrus.Fields{
		"commissionID": commission.ID,
		"rate":         rate,
		"amount":       commissionAmount,
	}).Info("commission created")
	return nil
}

type ProductCommission struct {
	ProductPrice     decimal.Decimal
	CommissionRate   decimal.Decimal
	CommissionAmount decimal.Decimal
}

// ProductCommission считает потенциальную комиссию с одной продажи товара по
// его цене в каталоге. Для витрины аффилиата; при пустой таблице уровней ставка
// нулевая.
func (s *CommissionService) ProductCommission(ctx context.Context, productID int64) (*ProductCommission, error) {
	product, productErr := s.productRepo.GetByID(ctx, productID)
	if productErr != nil {
		return nil, productErr //nolint:wrapcheck
	}

	rate, rateErr := s.ResolveRate(ctx, product.Price)
	if rateErr != nil {
		if !errors.Is(rateErr, domain.ErrNoActiveRate) {
			return nil, rateErr
		}
		rate = decimal.Zero
	}

	return &ProductCommission{
		ProductPrice:     product.Price,
		CommissionRate:   rate,
		CommissionAmount: product.Price.Mul(rate).Div(percentDivisor),
	}, nil
}

// Rates возвращает таблицу уровней, отсортированную по возрастанию порога.
func (s *CommissionService) Rates(ctx context.Context) ([]domain.CommissionRate, error) {
	rates, err := s.rateRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return rates, nil
}

func (s *CommissionService) CreateRate(
	ctx context.Context,
	args repoargs.CommissionRateSave,
) (*domain.CommissionRate, error) {
	rate, err := s.rateRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating commission rate: %w", err)
	}
	return rate, nil
}

func (s *CommissionService) UpdateRate(ctx context.Context, id int64, args repoargs.CommissionRateSave) error {
	if err := s.rateRepo.Update(ctx, id, args); err != nil {
		return fmt.Errorf("updating commission rate: %w", err)
	}
	return nil
}

func (s *CommissionService) DeleteRate(ctx context.Context, id int64) error {
	if err := s.rateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting commission rate: %w", err)
	}
	return nil
}

func (s *CommissionService) Commissions(ctx context.Context) ([]repoargs.CommissionWithAffiliate, error) {
	commissions, err := s.commissionRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return commissions, nil
}

func (s *CommissionService) CommissionsByAffiliate(
	ctx context.Context,
	affiliateUserID int64,
) ([]domain.AffiliateCommission, error) {
	commissions, err := s.commissionRepo.GetByAffiliate(ctx, affiliateUserID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return commissions, nil
}

// UpdateCommissionStatus переводит комиссию в один из трех допустимых статусов.
// Переходы выполняются только явно, автоматических смен статуса нет.
func (s *CommissionService) UpdateCommissionStatus(
	ctx context.Context,
	id int64,
	status domain.CommissionStatusType,
) error {
	if !domain.ValidCommissionStatus(status) {
		return fmt.Errorf("updating commission status: invalid status `%s`", status)
	}
	if err := s.commissionRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("updating commission status: %w", err)
	}
	return nil
}
