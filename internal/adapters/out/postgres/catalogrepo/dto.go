// Package catalogrepo reads the reference data the core consumes but does
// not own: users, restaurants, menu items and drones. The owning subsystem
// maintains these tables; the only write here is the restaurant-coordinate
// cache.
package catalogrepo

import (
	"github.com/google/uuid"
)

// UserDTO maps the users table.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// RestaurantDTO maps the restaurants table. Latitude and longitude stay at
// (0, 0) until the restaurant's address has been geocoded once.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO maps the menu_items table. Price is in VND.
type MenuItemDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Price int64
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// DroneDTO maps the drones table.
type DroneDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName overrides GORM's default naming to use "drones".
func (DroneDTO) TableName() string {
	return "drones"
}
