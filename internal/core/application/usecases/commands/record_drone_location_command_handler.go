package commands

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/domain/model/tracking"
	"fastfood/internal/core/ports"
)

// RecordDroneLocationCommandHandler processes drone position reports.
//
// The history append is authoritative: once it committed, the report is
// accepted. The TTL-cache write and the broadcast to subscribers happen
// afterwards; a broadcast failure is logged and never surfaces to the drone.
type RecordDroneLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
	catalog    ports.Catalog
	cache      ports.LocationCache
	publisher  ports.LocationPublisher
	logger     *slog.Logger
}

// NewRecordDroneLocationCommandHandler creates a handler for position
// reports.
func NewRecordDroneLocationCommandHandler(
	uowFactory TrackingUoWFactory,
	catalog ports.Catalog,
	cache ports.LocationCache,
	publisher ports.LocationPublisher,
	logger *slog.Logger,
) RecordDroneLocationCommandHandler {
	return RecordDroneLocationCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		cache:      cache,
		publisher:  publisher,
		logger:     logger.With("component", "record_drone_location"),
	}
}

// Handle verifies the drone exists, appends the history sample, refreshes
// the cache entry and broadcasts the update.
func (h *RecordDroneLocationCommandHandler) Handle(ctx context.Context, cmd RecordDroneLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.GetDrone(ctx, cmd.DroneID()); err != nil {
		return err
	}

	sample, err := tracking.NewSample(cmd.DroneID(), cmd.Point(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TrackingRepository().Add(ctx, sample); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Set(cmd.DroneID(), sample)

	if err = h.publisher.PublishLocation(ctx, sample); err != nil {
		h.logger.WarnContext(ctx, "location broadcast failed",
			"droneID", cmd.DroneID().String(), "error", err)
	}

	return nil
}
