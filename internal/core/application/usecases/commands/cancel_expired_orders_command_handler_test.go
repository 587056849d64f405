package commands_test

import (
	"testing"
	"time"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelExpiredOrdersCommandHandler_Handle_CancelsAllExpired(t *testing.T) {
	ctx := t.Context()
	first := makePendingOrder(t, time.Now().Add(-5*time.Minute))
	second := makePendingOrder(t, time.Now().Add(-20*time.Minute))

	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listRepo.On("GetAllExpiredPending", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	listUow := new(MockOrderUoW)
	listUow.On("Begin", ctx).Return(nil).Once()
	listUow.On("OrderRepository").Return(listRepo).Once()
	listUow.On("Rollback", ctx).Return(nil).Once()

	cancelRepo := new(MockOrderRepository)
	cancelRepo.On("Get", ctx, first.ID()).Return(first, nil).Once()
	cancelRepo.On("Get", ctx, second.ID()).Return(second, nil).Once()
	cancelRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	cancelUow := new(MockOrderUoW)
	cancelUow.On("Begin", ctx).Return(nil).Twice()
	cancelUow.On("OrderRepository").Return(cancelRepo).Twice()
	cancelUow.On("Commit", ctx).Return(nil).Twice()
	cancelUow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(cancelUow).Twice()

	h := commands.NewCancelExpiredOrdersCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	listRepo.AssertExpectations(t)
	cancelRepo.AssertExpectations(t)
}

func TestCancelExpiredOrdersCommandHandler_Handle_OneFailureDoesNotBlockRest(t *testing.T) {
	ctx := t.Context()
	first := makePendingOrder(t, time.Now().Add(-5*time.Minute))
	second := makePendingOrder(t, time.Now().Add(-20*time.Minute))

	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listRepo.On("GetAllExpiredPending", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	listUow := new(MockOrderUoW)
	listUow.On("Begin", ctx).Return(nil).Once()
	listUow.On("OrderRepository").Return(listRepo).Once()
	listUow.On("Rollback", ctx).Return(nil).Once()

	cancelRepo := new(MockOrderRepository)
	cancelRepo.On("Get", ctx, first.ID()).Return(nil, assert.AnError).Once()
	cancelRepo.On("Get", ctx, second.ID()).Return(second, nil).Once()
	cancelRepo.On("Update", ctx, second).Return(nil).Once()
	cancelUow := new(MockOrderUoW)
	cancelUow.On("Begin", ctx).Return(nil).Twice()
	cancelUow.On("OrderRepository").Return(cancelRepo).Twice()
	cancelUow.On("Commit", ctx).Return(nil).Once()
	cancelUow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(cancelUow).Twice()

	h := commands.NewCancelExpiredOrdersCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	// Sweep errors are logged, never raised.
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, second.Status())
}

func TestCancelExpiredOrdersCommandHandler_Handle_SkipsSettledOrder(t *testing.T) {
	ctx := t.Context()
	// Listed as expired, but a late callback confirmed it before the sweep
	// re-read the row.
	settled := makeOrderInStatus(t, order.Confirmed, time.Now().Add(-5*time.Minute))

	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listRepo.On("GetAllExpiredPending", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{settled}, nil).Once()
	listUow := new(MockOrderUoW)
	listUow.On("Begin", ctx).Return(nil).Once()
	listUow.On("OrderRepository").Return(listRepo).Once()
	listUow.On("Rollback", ctx).Return(nil).Once()

	cancelRepo := new(MockOrderRepository)
	cancelRepo.On("Get", ctx, settled.ID()).Return(settled, nil).Once()
	cancelUow := new(MockOrderUoW)
	cancelUow.On("Begin", ctx).Return(nil).Once()
	cancelUow.On("OrderRepository").Return(cancelRepo).Once()
	cancelUow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(cancelUow).Once()

	h := commands.NewCancelExpiredOrdersCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, settled.Status())
	cancelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	cancelUow.AssertNotCalled(t, "Commit", mock.Anything)
}
