package ports

import (
	"context"

	"routing/internal/core/domain/model/location"
)

// LocationGroupGateway materializes the LocationGroup a hypermedia link points to.
//
// One call is one round trip to the location service: no caching, no retry.
// Any failure to produce a representation, including "resource does not exist",
// is an errs.RemoteLookupFailedError.
type LocationGroupGateway interface {
	FetchParent(ctx context.Context, link location.Link) (*location.LocationGroup, error)
}
