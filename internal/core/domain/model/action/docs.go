// Package action models the routing rules of the transport system.
//
// An Action associates a Route and a target with the program to run next for a
// transport order. The target is either a single Location (by coordinate) or a
// LocationGroup (by name), never both. At most one Action exists per
// (route, target) pair; a second one is a data-integrity fault.
package action
