package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/location"
	"routing/internal/core/domain/model/route"
	"routing/internal/core/ports"
	"routing/internal/pkg/errs"
)

var (
	// ErrInvalidInput is returned before any lookup when the caller supplied no
	// route, or neither a location nor a location group.
	ErrInvalidInput = errors.New("invalid resolution input")

	// ErrHierarchyCycle is the cause of a RemoteLookupFailedError when a parent
	// link leads back to a group already visited in the same walk.
	ErrHierarchyCycle = errors.New("location group hierarchy contains a cycle")
)

// Step names the fallback step that decided a resolution.
type Step string

const (
	StepNone          Step = "none"
	StepLocation      Step = "location"
	StepLocationGroup Step = "location_group"
	StepHierarchy     Step = "hierarchy"
)

// ActionMatrix resolves the next Action of a transport order. Lookup order:
//
//  1. (route, location coordinate)
//  2. (route, name of the location's own group)
//  3. (route, group name) for the caller-supplied location group and each of
//     its ancestors, fetched one parent link at a time
//
// Without a location the walk (3) starts right away. The walk starts from the
// supplied group even when it differs from the location's own group.
type ActionMatrix struct {
	store   ports.ActionStore
	gateway ports.LocationGroupGateway
	logger  *slog.Logger
}

// NewActionMatrix wires the engine to its rule store and the location service.
func NewActionMatrix(store ports.ActionStore, gateway ports.LocationGroupGateway, logger *slog.Logger) *ActionMatrix {
	return &ActionMatrix{
		store:   store,
		gateway: gateway,
		logger:  logger.With("component", "action_matrix"),
	}
}

// resolution carries the inputs of one Resolve call for diagnostics.
type resolution struct {
	actionType string
	route      route.Route
	location   *location.Location
	group      *location.LocationGroup
}

// Resolve returns the Action for route at the given position. location and
// locationGroup are optional, but at least one of them is required.
//
// Errors:
//   - ErrInvalidInput (wrapping errs.ErrValueIsRequired) for missing input
//   - errs.ErrNoRouteFound when the fallback chain is exhausted
//   - errs.ErrRemoteLookupFailed when a parent link could not be resolved
//   - any other error is a rule store failure
//
// Example:
//
//	a, err := matrix.Resolve(ctx, "MOVE", r1, loc, zoneA)
//	switch {
//	case errors.Is(err, errs.ErrNoRouteFound):
//	    // hold the order
//	case errors.Is(err, errs.ErrRemoteLookupFailed):
//	    // retry the whole resolution later
//	}
func (m *ActionMatrix) Resolve(
	ctx context.Context,
	actionType string,
	r route.Route,
	loc *location.Location,
	locationGroup *location.LocationGroup,
) (*action.Action, error) {
	start := time.Now()
	res := resolution{actionType: actionType, route: r, location: loc, group: locationGroup}

	if err := validateInput(res); err != nil {
		m.fail(ctx, res, start, StepNone, err)
		return nil, err
	}

	found, step, err := m.resolve(ctx, res)
	if err != nil {
		m.fail(ctx, res, start, step, err)
		return nil, err
	}

	RoutingResolutionsTotal.WithLabelValues(outcomeMatched, string(step)).Inc()
	RoutingResolutionDuration.WithLabelValues(outcomeMatched).Observe(time.Since(start).Seconds())
	m.logger.DebugContext(ctx, "Action resolved",
		append(res.attrs(), "step", string(step), "action_id", found.ID().String(), "program_key", found.ProgramKey())...)

	return found, nil
}

func validateInput(res resolution) error {
	var problems []error
	if err := res.route.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("route", err))
	}
	if res.location == nil && res.group == nil {
		problems = append(problems, errs.NewValueIsRequiredError("location or location group"))
	}
	if res.location != nil {
		if err := res.location.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("location", err))
		}
	}
	if res.group != nil {
		if err := res.group.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("location group", err))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(problems...))
}

func (m *ActionMatrix) resolve(ctx context.Context, res resolution) (*action.Action, Step, error) {
	if res.location != nil {
		found, err := m.store.FindByRouteAndLocationKey(ctx, res.route, res.location.Coordinate())
		if err != nil {
			return nil, StepLocation, fmt.Errorf("find action by route %s and location %s: %w",
				res.route, res.location.Coordinate(), err)
		}
		if found != nil {
			return found, StepLocation, nil
		}

		if name := res.location.LocationGroupName(); name != "" {
			found, err = m.store.FindByRouteAndLocationGroupName(ctx, res.route, name)
			if err != nil {
				return nil, StepLocationGroup, fmt.Errorf("find action by route %s and location group %s: %w",
					res.route, name, err)
			}
			if found != nil {
				return found, StepLocationGroup, nil
			}
		}
	}

	if res.group == nil {
		return nil, StepLocationGroup, res.noRouteFound()
	}

	found, err := m.walk(ctx, res.route, res.group)
	if err != nil {
		return nil, StepHierarchy, err
	}
	if found == nil {
		return nil, StepHierarchy, res.noRouteFound()
	}
	return found, StepHierarchy, nil
}

// walk tests (route, group name) from start up to the root. It returns
// (nil, nil) when the root was reached without a match.
func (m *ActionMatrix) walk(ctx context.Context, r route.Route, start *location.LocationGroup) (*action.Action, error) {
	visited := make(map[string]struct{})
	current := start
	for {
		visited[current.Name()] = struct{}{}

		found, err := m.store.FindByRouteAndLocationGroupName(ctx, r, current.Name())
		if err != nil {
			return nil, fmt.Errorf("find action by route %s and location group %s: %w", r, current.Name(), err)
		}
		if found != nil {
			return found, nil
		}

		parent, ok, err := m.parentOf(ctx, current)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if _, seen := visited[parent.Name()]; seen {
			link, _ := current.Parent()
			return nil, errs.NewRemoteLookupFailedError(link.Href(),
				fmt.Errorf("%w: %s revisited", ErrHierarchyCycle, parent.Name()))
		}
		current = parent
	}
}

// parentOf distinguishes three outcomes: no parent link (ok is false, err is
// nil), fetch failed (err is a RemoteLookupFailedError) and parent resolved.
func (m *ActionMatrix) parentOf(ctx context.Context, group *location.LocationGroup) (*location.LocationGroup, bool, error) {
	link, ok := group.Parent()
	if !ok {
		return nil, false, nil
	}

	parent, err := m.gateway.FetchParent(ctx, link)
	if err == nil && parent == nil {
		err = errs.NewObjectNotFoundError("location group", link.Href())
	}
	if err == nil {
		err = parent.Validate()
	}
	if err != nil {
		RoutingGatewayCallsTotal.WithLabelValues("failed").Inc()
		if !errors.Is(err, errs.ErrRemoteLookupFailed) {
			err = errs.NewRemoteLookupFailedError(link.Href(), err)
		}
		return nil, false, err
	}

	RoutingGatewayCallsTotal.WithLabelValues("ok").Inc()
	return parent, true, nil
}

// fail is the single place a failed resolution is logged and counted.
func (m *ActionMatrix) fail(ctx context.Context, res resolution, start time.Time, step Step, err error) {
	var (
		outcome string
		level   slog.Level
		msg     string
	)
	switch {
	case errors.Is(err, ErrInvalidInput):
		outcome, level, msg = outcomeInvalidInput, slog.LevelInfo, "Action resolution rejected"
	case errors.Is(err, errs.ErrNoRouteFound):
		outcome, level, msg = outcomeNoRoute, slog.LevelInfo, "No action found"
	case errors.Is(err, errs.ErrRemoteLookupFailed):
		outcome, level, msg = outcomeRemoteFailed, slog.LevelWarn, "Location group lookup failed"
	default:
		outcome, level, msg = outcomeStoreFailed, slog.LevelError, "Action store lookup failed"
	}

	RoutingResolutionsTotal.WithLabelValues(outcome, string(step)).Inc()
	RoutingResolutionDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	m.logger.Log(ctx, level, msg, append(res.attrs(), "step", string(step), "error", err)...)
}

func (res resolution) noRouteFound() error {
	var locationKey, groupName string
	if res.location != nil {
		locationKey = res.location.Coordinate().String()
		groupName = res.location.LocationGroupName()
	}
	if res.group != nil {
		groupName = res.group.Name()
	}
	return errs.NewNoRouteFoundError(res.actionType, res.route.ID(), locationKey, groupName)
}

func (res resolution) attrs() []any {
	attrs := []any{"action_type", res.actionType, "route", res.route.ID()}
	if res.location != nil {
		attrs = append(attrs,
			"location", res.location.Coordinate().String(),
			"location_own_group", res.location.LocationGroupName())
	}
	if res.group != nil {
		attrs = append(attrs, "location_group", res.group.Name())
	}
	return attrs
}
