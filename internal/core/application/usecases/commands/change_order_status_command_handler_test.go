package commands_test

import (
	"testing"
	"time"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_AllowedEdge(t *testing.T) {
	ctx := t.Context()
	o := makeOrderInStatus(t, order.Confirmed, time.Now())

	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), order.Preparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, o.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_DisallowedEdge(t *testing.T) {
	ctx := t.Context()
	o := makePendingOrder(t, time.Now().Add(10*time.Minute))

	cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), order.Delivered)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, o.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommand_RejectsInvalidTarget(t *testing.T) {
	o := makePendingOrder(t, time.Now())

	_, err := commands.NewChangeOrderStatusCommand(o.ID(), order.Unknown)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCancelOrderCommandHandler_Handle_CancelsShippingOrder(t *testing.T) {
	ctx := t.Context()
	o := makeOrderInStatus(t, order.Shipping, time.Now())

	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	// The guarded path forbids Shipping -> Cancelled; the escape does not.
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
}

func TestUpdateOrderCommandHandler_Handle_RejectedWhenShipping(t *testing.T) {
	ctx := t.Context()
	o := makeOrderInStatus(t, order.Shipping, time.Now())

	note := "ring the bell"
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), nil, nil, &note, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestUpdateOrderCommand_RejectsEmptyPatch(t *testing.T) {
	o := makePendingOrder(t, time.Now())

	_, err := commands.NewUpdateOrderCommand(o.ID(), nil, nil, nil, nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
