package kernel

import (
	"fmt"

	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

const (
	// MinLatitude is the southern bound of a valid WGS84 latitude.
	MinLatitude = -90.0
	// MaxLatitude is the northern bound of a valid WGS84 latitude.
	MaxLatitude = 90.0
	// MinLongitude is the western bound of a valid WGS84 longitude.
	MinLongitude = -180.0
	// MaxLongitude is the eastern bound of a valid WGS84 longitude.
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero-value GeoPoint bypassed
// the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a validated WGS84 coordinate.
// It is used for restaurant and customer locations, delivery endpoints and
// drone position samples.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(10.762622, 106.660172)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after range-checking both coordinates:
// latitude must lie in [-90, 90] and longitude in [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := point.setLatitude(latitude); err != nil {
		return GeoPoint{}, err
	}
	if err := point.setLongitude(longitude); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsZero reports whether the point sits exactly on (0, 0). Stored restaurant
// coordinates use (0, 0) as the "not geocoded yet" marker.
func (p GeoPoint) IsZero() bool {
	return p.latitude == 0 && p.longitude == 0
}

// IsEqual compares two points coordinate-wise.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String renders the point as "(lat, lon)" for logs and errors.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%f, %f)", p.latitude, p.longitude)
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	p.longitude = longitude
	return nil
}
