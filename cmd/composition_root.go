package cmd

import (
	"context"
	"errors"
	"log/slog"

	"fastfood/internal/adapters/in/ws"
	"fastfood/internal/adapters/out/cache"
	"fastfood/internal/adapters/out/nominatim"
	"fastfood/internal/adapters/out/postgres"
	"fastfood/internal/adapters/out/postgres/catalogrepo"
	"fastfood/internal/adapters/out/rabbitmq"
	"fastfood/internal/adapters/out/vnpay"
	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"
	"fastfood/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Create one per process.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	catalog  ports.Catalog
	gateway  ports.PaymentGateway
	geocoder ports.Geocoder

	locationCache *cache.TTLLocationCache
	hub           *ws.Hub
	amqpPublisher *rabbitmq.Publisher
	publisher     ports.LocationPublisher

	logger *slog.Logger
}

// NewCompositionRoot builds every shared adapter from the config. The AMQP
// publisher is optional; with no broker URL the websocket hub is the only
// fanout target.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	gateway, err := vnpay.NewClient(vnpay.Config{
		BaseURL:    config.VNPayBaseURL,
		TmnCode:    config.VNPayTmnCode,
		HashSecret: config.VNPayHashSecret,
		ReturnURL:  config.VNPayReturnURL,
	})
	if err != nil {
		return nil, err
	}

	geocoder, err := nominatim.NewGeocoder(config.GeocoderBaseURL)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:       catalogrepo.NewGormCatalog(gormDB),
		gateway:       gateway,
		geocoder:      geocoder,
		locationCache: cache.NewTTLLocationCache(cache.DefaultTTL),
		hub:           ws.NewHub(),
		logger:        logger,
	}

	targets := []ports.LocationPublisher{root.hub}
	if config.AmqpURL != "" {
		amqpPublisher, err := rabbitmq.NewPublisher(config.AmqpURL, config.AmqpLocationExchange)
		if err != nil {
			return nil, err
		}
		root.amqpPublisher = amqpPublisher
		targets = append(targets, amqpPublisher)
	}
	root.publisher = fanoutLocationPublisher(targets)

	return root, nil
}

// Start launches the hub and the cache janitor. Blocks only until the
// goroutines are spawned.
func (c *CompositionRoot) Start(ctx context.Context) {
	go c.hub.Run(ctx)
	go c.locationCache.Start()
}

// Close releases the broker connection and stops the cache janitor.
func (c *CompositionRoot) Close() error {
	c.locationCache.Stop()
	if c.amqpPublisher != nil {
		return c.amqpPublisher.Close()
	}
	return nil
}

// Hub returns the websocket fanout hub.
func (c *CompositionRoot) Hub() *ws.Hub { return c.hub }

// Catalog returns the reference-data reader.
func (c *CompositionRoot) Catalog() ports.Catalog { return c.catalog }

// Gateway returns the payment gateway adapter.
func (c *CompositionRoot) Gateway() ports.PaymentGateway { return c.gateway }

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelExpiredOrdersCommandHandler() commands.CancelExpiredOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelExpiredOrdersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateResolvePaymentCallbackCommandHandler() commands.ResolvePaymentCallbackCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})

	dispatchHandler := c.CreateCreateDeliveryCommandHandler()
	var dispatcher ports.DeliveryDispatcher = FuncDeliveryDispatcher(func(ctx context.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewCreateDeliveryCommand(orderID)
		if err != nil {
			return err
		}
		_, err = dispatchHandler.Handle(ctx, cmd)
		return err
	})

	return commands.NewResolvePaymentCallbackCommandHandler(f, dispatcher, c.logger)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.catalog, c.geocoder)
}

func (c *CompositionRoot) CreateRecordDroneLocationCommandHandler() commands.RecordDroneLocationCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDroneLocationCommandHandler(
		f, c.catalog, c.locationCache, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneLocationQueryHandler() queries.GetDroneLocationQueryHandler {
	return queries.NewGetDroneLocationQueryHandler(c.locationCache, c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

// FuncDeliveryDispatcher adapts a closure to the dispatcher port.
type FuncDeliveryDispatcher func(ctx context.Context, orderID kernel.UUID) error

func (f FuncDeliveryDispatcher) DispatchForOrder(ctx context.Context, orderID kernel.UUID) error {
	return f(ctx, orderID)
}

// fanoutLocationPublisher forwards each sample to every target and joins the
// failures.
type fanoutLocationPublisher []ports.LocationPublisher

func (p fanoutLocationPublisher) PublishLocation(ctx context.Context, sample tracking.Sample) error {
	var errsJoined error
	for _, target := range p {
		if err := target.PublishLocation(ctx, sample); err != nil {
			errsJoined = errors.Join(errsJoined, err)
		}
	}
	return errsJoined
}
