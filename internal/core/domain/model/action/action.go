package action

import (
	"errors"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"
)

var ErrActionIsNotConstructed = errors.New("Action must be created via NewAction constructor")

// Definition describes what an Action does once it matched.
type Definition struct {
	// Name is a human readable rule name.
	Name string
	// ActionType classifies the request that triggers the rule, e.g. "REQ_" or "MOVE".
	ActionType string
	// ProgramKey is the operation to perform next.
	ProgramKey string
	// Description is optional.
	Description string
}

// Action is the routing rule aggregate.
type Action struct {
	id         kernel.UUID
	route      route.Route
	target     Target
	definition Definition

	isConstructed bool
}

// NewAction creates a valid Action. All validation problems are reported at once.
//
// Example:
//
//	target, _ := action.NewLocationGroupTarget("ZoneRoot")
//	a, err := action.NewAction(kernel.NewUUID(), r1, target, action.Definition{
//	    Name:       "store in zone",
//	    ActionType: "MOVE",
//	    ProgramKey: "STORE_ZONE",
//	})
func NewAction(id kernel.UUID, r route.Route, target Target, definition Definition) (*Action, error) {
	a := &Action{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setRoute(r),
		a.setTarget(target),
		a.setDefinition(definition),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Action was created through NewAction.
func (a *Action) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActionIsNotConstructed
	}
	return nil
}

func (a *Action) ID() kernel.UUID {
	return a.id
}

func (a *Action) Route() route.Route {
	return a.route
}

func (a *Action) Target() Target {
	return a.target
}

func (a *Action) Name() string {
	return a.definition.Name
}

func (a *Action) ActionType() string {
	return a.definition.ActionType
}

// ProgramKey returns the operation the transport order performs next.
func (a *Action) ProgramKey() string {
	return a.definition.ProgramKey
}

func (a *Action) Description() string {
	return a.definition.Description
}

// IsEqual compares Actions by identifier.
func (a *Action) IsEqual(other *Action) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Action) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Action) setRoute(r route.Route) error {
	if err := r.Validate(); err != nil {
		return err
	}
	a.route = r
	return nil
}

func (a *Action) setTarget(target Target) error {
	if err := target.Validate(); err != nil {
		return err
	}
	a.target = target
	return nil
}

func (a *Action) setDefinition(d Definition) error {
	var problems []error
	if d.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if d.ActionType == "" {
		problems = append(problems, errs.NewValueIsRequiredError("actionType"))
	}
	if d.ProgramKey == "" {
		problems = append(problems, errs.NewValueIsRequiredError("programKey"))
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}
	a.definition = d
	return nil
}
