package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-shop/pkg/uow"
)

type AppServices struct {
	SettlementService *SettlementService
	CommissionService *CommissionService
	CouponService     *CouponService
	CartService       *CartService
	AffiliateService  *AffiliateService
	CatalogService    *CatalogService
}

type FactoryArgs struct {
	UOW           uow.UOW
	Gateway       GatewayClient
	AttributionCh chan<- AttributeArgs
	Logger        *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	settlementService, settlementServiceErr :=
		NewSettlementService(args.UOW, args.Gateway, args.AttributionCh, args.Logger)
	if settlementServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", settlementServiceErr.Error())
	}

	commissionService, commissionServiceErr := NewCommissionService(args.UOW, args.Logger)
	if commissionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", commissionServiceErr.Error())
	}

	couponService, couponServiceErr := NewCouponService(args.UOW, args.Logger)
	if couponServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", couponServiceErr.Error())
	}

	cartService, cartServiceErr := NewCartService(args.UOW)
	if cartServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", cartServiceErr.Error())
	}

	affiliateService, affiliateServiceErr := NewAffiliateService(args.UOW)
	if affiliateServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", affiliateServiceErr.Error())
	}

	catalogService, catalogServiceErr := NewCatalogService(args.UOW)
	if catalogServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", catalogServiceErr.Error())
	}

	return &AppServices{
		SettlementService: settlementService,
		CommissionService: commissionService,
		CouponService:     couponService,
		CartService:       cartService,
		AffiliateService:  affiliateService,
		CatalogService:    catalogService,
	}, nil
}
