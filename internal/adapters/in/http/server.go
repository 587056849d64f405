// Package http exposes the REST surface: order checkout and lifecycle,
// payment attempts and the gateway callback, delivery dispatch and drone
// position reads. Transport concerns only; all behavior lives in the command
// and query handlers.
package http

import (
	"errors"
	"net/http"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP requests to the application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	createPaymentHandler     commands.CreatePaymentCommandHandler
	resolveCallbackHandler   commands.ResolvePaymentCallbackCommandHandler
	createDeliveryHandler    commands.CreateDeliveryCommandHandler
	recordLocationHandler    commands.RecordDroneLocationCommandHandler

	getOrderHandler       queries.GetOrderQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
	getDeliveriesHandler  queries.GetDeliveriesQueryHandler
	getLocationHandler    queries.GetDroneLocationQueryHandler
	paymentGateway        ports.PaymentGateway
	subscribeLocationFunc echo.HandlerFunc
}

// ServerParams carries the handlers the server dispatches to.
type ServerParams struct {
	CreateOrderHandler       commands.CreateOrderCommandHandler
	UpdateOrderHandler       commands.UpdateOrderCommandHandler
	ChangeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	CancelOrderHandler       commands.CancelOrderCommandHandler
	CreatePaymentHandler     commands.CreatePaymentCommandHandler
	ResolveCallbackHandler   commands.ResolvePaymentCallbackCommandHandler
	CreateDeliveryHandler    commands.CreateDeliveryCommandHandler
	RecordLocationHandler    commands.RecordDroneLocationCommandHandler

	GetOrderHandler      queries.GetOrderQueryHandler
	GetOrdersHandler     queries.GetOrdersQueryHandler
	GetDeliveriesHandler queries.GetDeliveriesQueryHandler
	GetLocationHandler   queries.GetDroneLocationQueryHandler

	PaymentGateway ports.PaymentGateway

	// SubscribeLocationFunc serves the websocket subscription endpoint.
	SubscribeLocationFunc echo.HandlerFunc
}

// NewServer creates the HTTP server.
func NewServer(params ServerParams) *Server {
	return &Server{
		createOrderHandler:       params.CreateOrderHandler,
		updateOrderHandler:       params.UpdateOrderHandler,
		changeOrderStatusHandler: params.ChangeOrderStatusHandler,
		cancelOrderHandler:       params.CancelOrderHandler,
		createPaymentHandler:     params.CreatePaymentHandler,
		resolveCallbackHandler:   params.ResolveCallbackHandler,
		createDeliveryHandler:    params.CreateDeliveryHandler,
		recordLocationHandler:    params.RecordLocationHandler,
		getOrderHandler:          params.GetOrderHandler,
		getOrdersHandler:         params.GetOrdersHandler,
		getDeliveriesHandler:     params.GetDeliveriesHandler,
		getLocationHandler:       params.GetLocationHandler,
		paymentGateway:           params.PaymentGateway,
		subscribeLocationFunc:    params.SubscribeLocationFunc,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/orders/:id/payments", s.CreatePayment)
	api.GET("/payments/callback", s.PaymentCallback)

	api.POST("/orders/:id/deliveries", s.CreateDelivery)
	api.GET("/orders/:id/deliveries", s.GetOrderDeliveries)
	api.GET("/drones/:id/deliveries", s.GetDroneDeliveries)

	api.POST("/drones/:id/location", s.RecordDroneLocation)
	api.GET("/drones/:id/location", s.GetDroneLocation)
	if s.subscribeLocationFunc != nil {
		api.GET("/drones/:id/location/ws", s.subscribeLocationFunc)
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	params, err := req.toParams()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: cmd.OrderID().String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders filtered by customerId or
// restaurantId.
func (s *Server) GetOrders(ctx echo.Context) error {
	var query queries.GetOrdersQuery

	switch {
	case ctx.QueryParam("customerId") != "":
		customerID, err := kernel.UUIDFromString(ctx.QueryParam("customerId"))
		if err != nil {
			return badRequest(ctx, "invalid customer id")
		}
		query, err = queries.NewGetOrdersByCustomerQuery(customerID)
		if err != nil {
			return writeError(ctx, err)
		}
	case ctx.QueryParam("restaurantId") != "":
		restaurantID, err := kernel.UUIDFromString(ctx.QueryParam("restaurantId"))
		if err != nil {
			return badRequest(ctx, "invalid restaurant id")
		}
		query, err = queries.NewGetOrdersByRestaurantQuery(restaurantID)
		if err != nil {
			return writeError(ctx, err)
		}
	default:
		return badRequest(ctx, "customerId or restaurantId query parameter is required")
	}

	response, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.receiverPatch(), req.addressPatch(), req.Note, req.ShippingFee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Cancellation through
// this endpoint is unconditional.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePayment handles POST /api/v1/orders/:id/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req createPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if req.Method == "" {
		req.Method = "VNPAY"
	}

	cmd, err := commands.NewCreatePaymentCommand(orderID, req.Method, ctx.RealIP())
	if err != nil {
		return writeError(ctx, err)
	}

	p, err := s.createPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentResponse{
		ID:               p.ID().String(),
		OrderID:          p.OrderID().String(),
		Amount:           p.Amount(),
		Method:           p.Method(),
		TxnRef:           p.TxnRef(),
		Status:           p.Status().String(),
		AuthorizationURL: p.AuthorizationURL(),
	})
}

// PaymentCallback handles GET /api/v1/payments/callback, the gateway's
// server-to-server notification. Responses follow the provider's
// acknowledgment protocol: HTTP 200 always, the outcome in RspCode.
func (s *Server) PaymentCallback(ctx echo.Context) error {
	params := make(map[string]string)
	for key, values := range ctx.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	result, err := s.paymentGateway.VerifyCallback(params)
	if err != nil {
		if errors.Is(err, errs.ErrSignatureMismatch) {
			return ctx.JSON(http.StatusOK, callbackAck{RspCode: "97", Message: "Invalid signature"})
		}
		return ctx.JSON(http.StatusOK, callbackAck{RspCode: "99", Message: "Unknown error"})
	}

	cmd, err := commands.NewResolvePaymentCallbackCommand(
		result.TxnRef, result.Success, result.Amount, gatewayResult(result))
	if err != nil {
		return ctx.JSON(http.StatusOK, callbackAck{RspCode: "99", Message: "Unknown error"})
	}

	if err = s.resolveCallbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusOK, callbackAck{RspCode: "01", Message: "Order not found"})
		}
		return ctx.JSON(http.StatusOK, callbackAck{RspCode: "99", Message: "Unknown error"})
	}

	return ctx.JSON(http.StatusOK, callbackAck{RspCode: "00", Message: "Confirm success"})
}

// CreateDelivery handles POST /api/v1/orders/:id/deliveries, the manual
// dispatch endpoint. Settled payments dispatch automatically; this exists for
// re-dispatch after a geocoding failure.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	trip, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryFromDomain(trip))
}

// GetOrderDeliveries handles GET /api/v1/orders/:id/deliveries.
func (s *Server) GetOrderDeliveries(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetDeliveriesByOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDroneDeliveries handles GET /api/v1/drones/:id/deliveries.
func (s *Server) GetDroneDeliveries(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid drone id")
	}

	query, err := queries.NewGetDeliveriesByDroneQuery(droneID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordDroneLocation handles POST /api/v1/drones/:id/location.
func (s *Server) RecordDroneLocation(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid drone id")
	}

	var req recordLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordDroneLocationCommand(droneID, req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetDroneLocation handles GET /api/v1/drones/:id/location.
func (s *Server) GetDroneLocation(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid drone id")
	}

	query, err := queries.NewGetDroneLocationQuery(droneID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
