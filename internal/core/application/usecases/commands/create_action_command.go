package commands

import (
	"errors"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var (
	ErrCreateActionCommandIsNotConstructed = errors.New(
		"CreateActionCommand must be created via NewCreateActionCommand constructor",
	)
)

// CreateActionCommand registers a new routing rule for one (route, target) pair.
// The target is either a location coordinate or a location group name, never both.
//
// Example:
//
//	cmd, err := NewCreateActionCommand(kernel.NewUUID(), "R1", "", "ZoneRoot", action.Definition{
//	    Name:       "store in zone",
//	    ActionType: "MOVE",
//	    ProgramKey: "STORE_ZONE",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid rule: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateActionCommand struct { //nolint:recvcheck //using for validation
	actionID   kernel.UUID
	route      route.Route
	target     action.Target
	definition action.Definition

	guard guard.ConstructorGuard
}

// NewCreateActionCommand validates every argument and reports all problems at once.
func NewCreateActionCommand(
	actionID kernel.UUID,
	routeID string,
	locationKey string,
	locationGroupName string,
	definition action.Definition,
) (CreateActionCommand, error) {
	cmd := CreateActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActionID(actionID),
		cmd.setRoute(routeID),
		cmd.setTarget(locationKey, locationGroupName),
		cmd.setDefinition(definition),
	); err != nil {
		return CreateActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateActionCommand) Validate() error {
	return c.guard.Validate(ErrCreateActionCommandIsNotConstructed)
}

func (c CreateActionCommand) ActionID() kernel.UUID {
	return c.actionID
}

func (c CreateActionCommand) Route() route.Route {
	return c.route
}

func (c CreateActionCommand) Target() action.Target {
	return c.target
}

func (c CreateActionCommand) Definition() action.Definition {
	return c.definition
}

func (c *CreateActionCommand) setActionID(actionID kernel.UUID) error {
	if err := actionID.Validate(); err != nil {
		return err
	}

	c.actionID = actionID
	return nil
}

func (c *CreateActionCommand) setRoute(routeID string) error {
	r, err := route.NewRoute(routeID)
	if err != nil {
		return err
	}

	c.route = r
	return nil
}

func (c *CreateActionCommand) setTarget(locationKey, locationGroupName string) error {
	target, err := action.NewTarget(locationKey, locationGroupName)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *CreateActionCommand) setDefinition(d action.Definition) error {
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

	c.definition = d
	return nil
}
