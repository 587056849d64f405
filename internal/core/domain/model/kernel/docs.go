// Package kernel provides the core domain primitives shared by every
// aggregate in the system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison behavior
//   - GeoPoint: a value object for WGS84 coordinates with range validation
//
// Both primitives are immutable, enforce their invariants at construction,
// and expose Validate for detecting zero values that bypassed a constructor.
package kernel
