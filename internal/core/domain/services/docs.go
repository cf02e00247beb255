// Package services provides the domain services of the routing system.
//
// The package includes:
//   - ActionMatrix: the action resolution engine. Given a route and the current
//     position of a transport order it finds the Action to perform next, falling
//     back from the exact location to the location's group and then up the
//     remote LocationGroup hierarchy.
//
// ActionMatrix holds no mutable state; one instance serves concurrent
// resolutions without coordination.
package services
