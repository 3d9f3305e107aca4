package api

import (
	"time"

	"github.com/fsdevblog/groph-shop/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// SettlementTimeout длиннее дефолтного: внутри сидит сетевой поход к
	// платежному шлюзу.
	SettlementTimeout = 15 * time.Second
)

const (
	CreateCheckoutSessionRoute = "/create-checkout-session"
	SaveTransactionRoute       = "/save-transaction"
	TransactionDetailsRoute    = "/transaction-details/:transaction_id"

	ProductsRoute          = "/products"
	ProductRoute           = "/products/:id"
	ProductCommissionRoute = "/products/:id/commission"

	CartAddRoute    = "/cart/add"
	CartRoute       = "/cart/:user_id"
	CartUpdateRoute = "/cart/update"
	CartRemoveRoute = "/cart/remove/:id"

	CouponsRoute        = "/coupons"
	CouponRoute         = "/coupons/:id"
	CouponToggleRoute   = "/coupons/:id/toggle"
	CouponValidateRoute = "/coupons/validate"

	UsersRoute           = "/users"
	AffiliatesRoute      = "/affiliates"
	MakeAffiliateRoute   = "/users/:id/make-affiliate"
	RemoveAffiliateRoute = "/users/:id/remove-affiliate"

	CommissionRatesRoute        = "/commission-rates"
	CommissionRateRoute         = "/commission-rates/:id"
	AffiliateCommissionsRoute   = "/affiliate-commissions"
	CommissionStatusRoute       = "/affiliate-commissions/:id/status"
	CommissionsByAffiliateRoute = "/affiliates/:id/commissions"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	SettlementService SettlementServicer
	CommissionService CommissionServicer
	CouponService     CouponServicer
	CartService       CartServicer
	AffiliateService  AffiliateServicer
	CatalogService    CatalogServicer
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	settlementHandler := NewSettlementHandler(args.SettlementService)
	couponsHandler := NewCouponsHandler(args.CouponService)
	productsHandler := NewProductsHandler(args.CatalogService, args.CommissionService)
	cartHandler := NewCartHandler(args.CartService)
	affiliatesHandler := NewAffiliatesHandler(args.AffiliateService, args.CommissionService)

	r.POST(CreateCheckoutSessionRoute, settlementHandler.CreateSession)
	r.POST(SaveTransactionRoute, settlementHandler.Save)
	r.GET(TransactionDetailsRoute, settlementHandler.Details)

	r.GET(ProductsRoute, productsHandler.Index)
	r.GET(ProductRoute, productsHandler.Show)
	r.POST(ProductsRoute, productsHandler.Create)
	r.PUT(ProductRoute, productsHandler.Update)
	r.DELETE(ProductRoute, productsHandler.Delete)
	r.GET(ProductCommissionRoute, productsHandler.Commission)

	r.POST(CartAddRoute, cartHandler.Add)
	r.GET(CartRoute, cartHandler.Index)
	r.POST(CartUpdateRoute, cartHandler.UpdateQty)
	r.DELETE(CartRemoveRoute, cartHandler.Remove)

	r.GET(CouponsRoute, couponsHandler.Index)
	r.POST(CouponsRoute, couponsHandler.Create)
	r.PUT(CouponRoute, couponsHandler.Update)
	r.PUT(CouponToggleRoute, couponsHandler.Toggle)
	r.DELETE(CouponRoute, couponsHandler.Delete)
	r.POST(CouponValidateRoute, couponsHandler.Validate)

	r.GET(UsersRoute, affiliatesHandler.Users)
	r.GET(AffiliatesRoute, affiliatesHandler.Index)
	r.PUT(MakeAffiliateRoute, affiliatesHandler.MakeAffiliate)
	r.PUT(RemoveAffiliateRoute, affiliatesHandler.RemoveAffiliate)

	r.GET(CommissionRatesRoute, affiliatesHandler.Rates)
	r.POST(CommissionRatesRoute, affiliatesHandler.CreateRate)
	r.PUT(CommissionRateRoute, affiliatesHandler.UpdateRate)
	r.DELETE(CommissionRateRoute, affiliatesHandler.DeleteRate)

	r.GET(AffiliateCommissionsRoute, affiliatesHandler.Commissions)
	r.GET(CommissionsByAffiliateRoute, affiliatesHandler.CommissionsByAffiliate)
	r.PUT(CommissionStatusRoute, affiliatesHandler.UpdateCommissionStatus)

	return r
}
