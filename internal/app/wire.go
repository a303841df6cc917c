//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	order_get "curior/internal/handlers/rest/order_get"
	order_post "curior/internal/handlers/rest/order_post"
	order_status_put "curior/internal/handlers/rest/order_status_put"
	orders_get "curior/internal/handlers/rest/orders_get"
	parcel_assign_put "curior/internal/handlers/rest/parcel_assign_put"
	parcel_get "curior/internal/handlers/rest/parcel_get"
	parcel_post "curior/internal/handlers/rest/parcel_post"
	parcel_put "curior/internal/handlers/rest/parcel_put"
	parcel_status_put "curior/internal/handlers/rest/parcel_status_put"
	parcel_track_get "curior/internal/handlers/rest/parcel_track_get"
	parcels_assigned_get "curior/internal/handlers/rest/parcels_assigned_get"
	parcels_get "curior/internal/handlers/rest/parcels_get"
	status_report_get "curior/internal/handlers/rest/status_report_get"
	users_get "curior/internal/handlers/rest/users_get"
	"curior/internal/handlers/tasks/status_metrics"
	"curior/internal/pkg/config"

	orderRepo "curior/internal/repository/order"
	parcelRepo "curior/internal/repository/parcel"
	userRepo "curior/internal/repository/user"
	orderService "curior/internal/service/order"
	parcelService "curior/internal/service/parcel"
	userService "curior/internal/service/user"

	"curior/pkg/background"
	"curior/pkg/logger"
	"curior/pkg/querier"
	"curior/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MetricsInterval time.Duration
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceOrder      ServiceOrder
	ServiceUser       ServiceUser
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcel_get.Service
	parcel_post.Service
	parcel_put.Service
	parcels_get.Service
	parcels_assigned_get.Service
	parcel_track_get.Service
	parcel_status_put.Service
	parcel_assign_put.Service
	status_report_get.Service
}

type ServiceOrder interface {
	order_get.Service
	order_post.Service
	orders_get.Service
	order_status_put.Service
}

type ServiceUser interface {
	users_get.Service
}

// InitializeApplication assembles the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMetricsInterval,

		provideParcelRepository,
		provideOrderRepository,
		provideUserRepository,

		provideServiceParcel,
		provideServiceOrder,
		provideServiceUser,

		provideStatusMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceUser), new(*userService.User)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(status_metrics.Service), new(*parcelService.Parcel)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ParcelService *parcelService.Parcel
}

// InitializeKafkaWorkerApp assembles the scan-event consumer (cmd/worker-parcel-scan).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		provideServiceParcel,

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceParcel(
	repository parcelService.Repository,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideMetricsInterval(cfg *config.Config) MetricsInterval {
	return MetricsInterval(cfg.Tasks.StatusMetricsUpdateInterval)
}

func provideStatusMetricsTask(
	log logger.Logger,
	parcelService status_metrics.Service,
	interval MetricsInterval,
) *status_metrics.StatusMetrics {
	return status_metrics.NewStatusMetrics(log, parcelService, time.Duration(interval))
}

func provideTaskList(
	statusMetricsTask *status_metrics.StatusMetrics,
) []background.Task {
	return []background.Task{
		statusMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
