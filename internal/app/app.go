package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"

	"github.com/fsdevblog/groph-shop/internal/attribution"

	"github.com/fsdevblog/groph-shop/pkg/uow"

	"github.com/fsdevblog/groph-shop/internal/config"
	"github.com/fsdevblog/groph-shop/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/api"
	"github.com/fsdevblog/groph-shop/internal/transport/gateway"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	gatewayClient := gateway.New(gateway.Args{
		BaseURL:    a.Config.GatewayBaseURL,
		SecretKey:  a.Config.GatewaySecret,
		SuccessURL: a.Config.CheckoutSuccessURL,
		CancelURL:  a.Config.CheckoutCancelURL,
	})

	// Буферизованная очередь развязывает проведение платежа и начисление
	// комиссии: Settle пишет в канал, воркеры атрибуции читают.
	attributionCh := make(chan service.AttributeArgs, attribution.DefaultQueueSize)

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:           unitOfWork,
		Gateway:       gatewayClient,
		AttributionCh: attributionCh,
		Logger:        a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:            a.Logger,
		SettlementService: services.SettlementService,
		CommissionService: services.CommissionService,
		CouponService:     services.CouponService,
		CartService:       services.CartService,
		AffiliateService:  services.AffiliateService,
		CatalogService:    services.CatalogService,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := attribution.New(services.CommissionService, attributionCh, a.Logger).
		SetWorkers(5) //nolint:mnd

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.ProductRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProductRepository(dbtx)
		},
		repoargs.CartRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCartRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.OrderItemRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderItemRepository(dbtx)
		},
		repoargs.CommissionRateRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCommissionRateRepository(dbtx)
		},
		repoargs.AffiliateCommissionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAffiliateCommissionRepository(dbtx)
		},
		repoargs.CouponRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCouponRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
