// Package location models the physical positions a transport order passes.
//
// A Location is addressed by its Coordinate and belongs to exactly one named
// LocationGroup. LocationGroups form a tree owned by a remote location service;
// a group references its parent only through a hypermedia Link that has to be
// dereferenced, never through an embedded object. A group without a parent
// link is a root.
package location
