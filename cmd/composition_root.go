package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "ordermanager/internal/adapters/in/http"
	"ordermanager/internal/adapters/out/kafka"
	"ordermanager/internal/adapters/out/memory"
	"ordermanager/internal/adapters/out/postgres"
	"ordermanager/internal/core/application/usecases/commands"
	"ordermanager/internal/core/application/usecases/queries"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/jobs"
	"ordermanager/internal/pkg/metrics"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory ports.UnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	uowFactory ports.UnitOfWorkFactory,
	appMetrics *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		uowFactory: uowFactory,
		metrics:    appMetrics,
		logger:     logger,
	}
}

// NewEventPublisher returns the Kafka producer when brokers are configured
// and a log-only publisher otherwise. closeFn releases the producer.
func NewEventPublisher(cfg Config, logger *slog.Logger) (ports.OrderEventPublisher, func() error, error) {
	brokers := kafka.ParseBrokers(cfg.KafkaHost)
	if len(brokers) == 0 {
		logger.Info("Kafka is not configured, order events are only logged")
		return kafka.NewLogPublisher(logger), func() error { return nil }, nil
	}

	producer, err := kafka.NewOrderChangedProducer(brokers, cfg.KafkaOrderChangedTopic)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Publishing order events to Kafka", "brokers", brokers, "topic", cfg.KafkaOrderChangedTopic)
	return producer, producer.Close, nil
}

// NewUnitOfWorkFactory opens the configured storage.
func NewUnitOfWorkFactory(
	ctx context.Context,
	cfg Config,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) (ports.UnitOfWorkFactory, func() error, error) {
	switch cfg.Storage {
	case StorageMemory:
		logger.Info("Using in-memory storage")
		return memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, logger), func() error { return nil }, nil
	case StoragePostgres:
		db, err := postgres.Open(ctx, cfg.DBConfig(), logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewGormUnitOfWorkFactory(db, publisher, logger), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReadUoWFactory() queries.OrderReadUoWFactory {
	return FuncOrderReadUoWFactory(func() queries.OrderReadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.cfg.TransitionPolicy(), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.cfg.TransitionPolicy(), c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReadUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReadUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersPageQueryHandler() queries.ListOrdersPageQueryHandler {
	return queries.NewListOrdersPageQueryHandler(c.orderReadUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersByCustomerEmailQueryHandler() queries.GetOrdersByCustomerEmailQueryHandler {
	return queries.NewGetOrdersByCustomerEmailQueryHandler(c.orderReadUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orderReadUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersByDateRangeQueryHandler() queries.GetOrdersByDateRangeQueryHandler {
	return queries.NewGetOrdersByDateRangeQueryHandler(c.orderReadUoWFactory())
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.orderReadUoWFactory())
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		UpdateOrder:          c.CreateUpdateOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:          c.CreateDeleteOrderCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		ListOrdersPage:       c.CreateListOrdersPageQueryHandler(),
		GetOrdersByEmail:     c.CreateGetOrdersByCustomerEmailQueryHandler(),
		GetOrdersByStatus:    c.CreateGetOrdersByStatusQueryHandler(),
		GetOrdersByDateRange: c.CreateGetOrdersByDateRangeQueryHandler(),
		CountOrdersByStatus:  c.CreateCountOrdersByStatusQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOrdersByStatusQueryHandler(), c.metrics, c.cfg.OrderStatsSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderReadUoWFactory func() queries.OrderReadUoW

func (f FuncOrderReadUoWFactory) Create() queries.OrderReadUoW {
	return f()
}
