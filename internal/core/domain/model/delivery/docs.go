// Package delivery contains the Delivery aggregate: the physical trip from a
// restaurant coordinate to a customer coordinate, created once an order is
// confirmed and optionally assigned to a drone.
package delivery
