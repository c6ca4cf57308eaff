//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch/internal/gateway/whatsapp"
	"dispatch/internal/handlers/rest/socket_get"
	"dispatch/internal/handlers/tasks/relay_status"
	"dispatch/internal/hub"
	"dispatch/internal/pkg/config"

	courierRepo "dispatch/internal/repository/courier"
	customerRepo "dispatch/internal/repository/customer"
	deliveryRepo "dispatch/internal/repository/delivery"
	courierService "dispatch/internal/service/courier"
	customerService "dispatch/internal/service/customer"
	deliveryService "dispatch/internal/service/delivery"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
)

type (
	RelayPollInterval time.Duration
)

type Application struct {
	SocketHandler     *socket_get.Handler
	BackgroundWorkers *background.Worker
}

// InitializeApplication for the HTTP service (cmd/service)
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
		provideRelayPollInterval,

		provideCustomerRepository,
		provideDeliveryRepository,
		provideCourierRepository,

		provideCredentialVerifier,
		provideServiceCustomer,
		provideServiceDelivery,
		provideServiceCourier,

		provideBridgeClient,
		provideWhatsappGateway,

		provideHub,
		provideSocketHandler,

		provideRelayStatusTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(hub.Deliveries), new(*deliveryService.Delivery)),
		wire.Bind(new(hub.Customers), new(*customerService.Customer)),
		wire.Bind(new(hub.Couriers), new(*courierService.Courier)),
		wire.Bind(new(hub.Relay), new(*whatsapp.Gateway)),

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),

		wire.Bind(new(customerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(socket_get.Hub), new(*hub.Hub)),
		wire.Bind(new(relay_status.Relay), new(*whatsapp.Gateway)),
		wire.Bind(new(relay_status.Hub), new(*hub.Hub)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DeliveryService *deliveryService.Delivery
}

// InitializeKafkaWorkerApp for the intake worker (cmd/worker-delivery-intake)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideDeliveryRepository,
		provideServiceDelivery,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),

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

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

// provideCredentialVerifier wires the lookup-only check the dispatch desk
// relies on today. Swap for PlaintextVerifier once the dashboard sends real
// passwords.
func provideCredentialVerifier() courierService.CredentialVerifier {
	return courierService.LookupVerifier{}
}

func provideServiceCustomer(
	repository customerService.Repository,
	txManager customerService.TxManager,
) *customerService.Customer {
	return customerService.New(repository, txManager)
}

func provideServiceDelivery(repository deliveryService.Repository) *deliveryService.Delivery {
	return deliveryService.New(repository)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
	verifier courierService.CredentialVerifier,
) *courierService.Courier {
	return courierService.New(repository, txManager, verifier)
}

func provideBridgeClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.WhatsappBridge.RequestTimeout,
	}
}

func provideWhatsappGateway(client *http.Client, cfg *config.Config) *whatsapp.Gateway {
	return whatsapp.New(client, cfg.WhatsappBridge.BaseURL)
}

func provideHub(
	log logger.Logger,
	deliveries hub.Deliveries,
	customers hub.Customers,
	couriers hub.Couriers,
	relay hub.Relay,
) *hub.Hub {
	return hub.New(deliveries, customers, couriers, relay, log)
}

func provideSocketHandler(log logger.Logger, h socket_get.Hub) *socket_get.Handler {
	return socket_get.New(log, h)
}

func provideRelayPollInterval(cfg *config.Config) RelayPollInterval {
	return RelayPollInterval(cfg.WhatsappBridge.StatusPollInterval)
}

func provideRelayStatusTask(
	log logger.Logger,
	relay relay_status.Relay,
	h relay_status.Hub,
	interval RelayPollInterval,
) *relay_status.RelayStatus {
	return relay_status.NewRelayStatus(log, relay, h, time.Duration(interval))
}

func provideTaskList(
	relayStatusTask *relay_status.RelayStatus,
) []background.Task {
	return []background.Task{
		relayStatusTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
