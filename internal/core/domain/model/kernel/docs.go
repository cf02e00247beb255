// Package kernel provides the shared value objects of the routing domain.
//
// The package includes:
//   - UUID: identifier of persisted Actions, wrapping github.com/google/uuid
//   - Coordinate: the unique key of a physical Location
//
// Zero values of both types are invalid; Validate reports them so that
// aggregates built from persistence or API input cannot carry empty keys.
package kernel
