package http

import (
	"errors"
	"net/http"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type orderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`

	ReceiverName  string `json:"receiverName"`
	ReceiverEmail string `json:"receiverEmail"`
	ReceiverPhone string `json:"receiverPhone"`

	Street string `json:"street"`
	Ward   string `json:"ward"`
	City   string `json:"city"`
	Note   string `json:"note"`

	Items []orderItemRequest `json:"items"`

	ShippingFee *int64 `json:"shippingFee"`
}

// toParams converts the raw request into command params, minting the new
// order's identifier.
func (r createOrderRequest) toParams() (commands.CreateOrderParams, error) {
	customerID, err := kernel.UUIDFromString(r.CustomerID)
	if err != nil {
		return commands.CreateOrderParams{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	restaurantID, err := kernel.UUIDFromString(r.RestaurantID)
	if err != nil {
		return commands.CreateOrderParams{}, errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}

	items := make([]commands.OrderItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return commands.CreateOrderParams{}, errs.NewValueIsInvalidErrorWithCause("menuItemId", err)
		}
		items = append(items, commands.OrderItemRequest{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	return commands.CreateOrderParams{
		OrderID:       kernel.NewUUID(),
		CustomerID:    customerID,
		RestaurantID:  restaurantID,
		ReceiverName:  r.ReceiverName,
		ReceiverEmail: r.ReceiverEmail,
		ReceiverPhone: r.ReceiverPhone,
		Street:        r.Street,
		Ward:          r.Ward,
		City:          r.City,
		Note:          r.Note,
		Items:         items,
		ShippingFee:   r.ShippingFee,
	}, nil
}

type receiverRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type addressRequest struct {
	Street string `json:"street"`
	Ward   string `json:"ward"`
	City   string `json:"city"`
}

type updateOrderRequest struct {
	Receiver    *receiverRequest `json:"receiver"`
	Address     *addressRequest  `json:"address"`
	Note        *string          `json:"note"`
	ShippingFee *int64           `json:"shippingFee"`
}

func (r updateOrderRequest) receiverPatch() *commands.ReceiverPatch {
	if r.Receiver == nil {
		return nil
	}
	return &commands.ReceiverPatch{
		Name:  r.Receiver.Name,
		Email: r.Receiver.Email,
		Phone: r.Receiver.Phone,
	}
}

func (r updateOrderRequest) addressPatch() *commands.AddressPatch {
	if r.Address == nil {
		return nil
	}
	return &commands.AddressPatch{
		Street: r.Address.Street,
		Ward:   r.Address.Ward,
		City:   r.Address.City,
	}
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type createPaymentRequest struct {
	Method string `json:"method"`
}

type recordLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type idResponse struct {
	ID string `json:"id"`
}

type paymentResponse struct {
	ID               string `json:"id"`
	OrderID          string `json:"orderId"`
	Amount           int64  `json:"amount"`
	Method           string `json:"method"`
	TxnRef           string `json:"txnRef"`
	Status           string `json:"status"`
	AuthorizationURL string `json:"authorizationUrl"`
}

// callbackAck is the gateway acknowledgment body; the provider retries the
// notification unless it reads RspCode "00".
type callbackAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func deliveryFromDomain(trip *delivery.Delivery) queries.DeliveryResponse {
	response := queries.DeliveryResponse{
		ID:             trip.ID().String(),
		OrderID:        trip.OrderID().String(),
		StartLatitude:  trip.Start().Latitude(),
		StartLongitude: trip.Start().Longitude(),
		EndLatitude:    trip.End().Latitude(),
		EndLongitude:   trip.End().Longitude(),
		Status:         trip.Status().String(),
		DeliveredAt:    trip.DeliveredAt(),
		CreatedAt:      trip.CreatedAt(),
	}
	if droneID := trip.DroneID(); droneID != nil {
		id := droneID.String()
		response.DroneID = &id
	}
	return response
}

func gatewayResult(result ports.CallbackResult) payment.GatewayResult {
	return payment.GatewayResult{
		TransactionNo: result.TransactionNo,
		BankCode:      result.BankCode,
		ResponseCode:  result.ResponseCode,
		PayDate:       result.PayDate,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain and application errors to HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrSignatureMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrPaymentWindowExpired):
		status = http.StatusGone
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
