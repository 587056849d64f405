package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
)

// User is the catalog read model for a customer.
type User struct {
	ID   kernel.UUID
	Name string
}

// Restaurant is the catalog read model for a restaurant. Coordinate is
// (0, 0) until the restaurant's address has been geocoded once.
type Restaurant struct {
	ID         kernel.UUID
	Name       string
	Address    string
	Coordinate kernel.GeoPoint
}

// MenuItem is the catalog read model for a menu item; Price is in VND.
type MenuItem struct {
	ID    kernel.UUID
	Name  string
	Price int64
}

// Drone is the catalog read model for a delivery drone.
type Drone struct {
	ID   kernel.UUID
	Name string
}

// Catalog exposes the reference data this core consumes but does not own:
// users, restaurants, menu items and drones. Full CRUD for these lives in a
// separate subsystem; the core only needs existence checks, price/name
// snapshots and the restaurant-coordinate cache.
type Catalog interface {
	// GetUser retrieves a user by id. Returns an ObjectNotFoundError when
	// the user does not exist.
	GetUser(ctx context.Context, id kernel.UUID) (User, error)

	// GetRestaurant retrieves a restaurant by id.
	GetRestaurant(ctx context.Context, id kernel.UUID) (Restaurant, error)

	// SetRestaurantCoordinate persists a geocoded coordinate onto the
	// restaurant so later dispatches skip the geocoder.
	SetRestaurantCoordinate(ctx context.Context, id kernel.UUID, point kernel.GeoPoint) error

	// GetMenuItem retrieves a menu item with its current name and price.
	GetMenuItem(ctx context.Context, id kernel.UUID) (MenuItem, error)

	// GetDrone retrieves a drone by id.
	GetDrone(ctx context.Context, id kernel.UUID) (Drone, error)
}
