package action_test

import (
	"testing"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDefinition() action.Definition {
	return action.Definition{
		Name:        "store in zone",
		ActionType:  "MOVE",
		ProgramKey:  "STORE_ZONE",
		Description: "forward to zone storage",
	}
}

func TestNewAction(t *testing.T) {
	r1, _ := route.NewRoute("R1")
	groupTarget, _ := action.NewLocationGroupTarget("ZoneRoot")

	t.Run("should create valid action", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := action.NewAction(id, r1, groupTarget, validDefinition())

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "R1", a.Route().ID())
		assert.Equal(t, action.LocationGroupTarget, a.Target().Kind())
		assert.Equal(t, "store in zone", a.Name())
		assert.Equal(t, "MOVE", a.ActionType())
		assert.Equal(t, "STORE_ZONE", a.ProgramKey())
		assert.Equal(t, "forward to zone storage", a.Description())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		a, err := action.NewAction(kernel.UUID{}, route.Route{}, action.Target{}, action.Definition{})

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "Route must be created")
		assert.Contains(t, err.Error(), "value is required: target")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "value is required: actionType")
		assert.Contains(t, err.Error(), "value is required: programKey")
	})

	t.Run("description is optional", func(t *testing.T) {
		d := validDefinition()
		d.Description = ""

		_, err := action.NewAction(kernel.NewUUID(), r1, groupTarget, d)

		require.NoError(t, err)
	})
}

func TestAction_Validate(t *testing.T) {
	var a *action.Action

	assert.Equal(t, action.ErrActionIsNotConstructed, a.Validate())
	assert.Equal(t, action.ErrActionIsNotConstructed, (&action.Action{}).Validate())
}

func TestNewTarget(t *testing.T) {
	t.Run("location key only", func(t *testing.T) {
		target, err := action.NewTarget("L-01", "")

		require.NoError(t, err)
		key, ok := target.LocationKey()
		require.True(t, ok)
		assert.Equal(t, "L-01", key.String())
		_, ok = target.LocationGroupName()
		assert.False(t, ok)
		assert.Equal(t, "location:L-01", target.String())
	})

	t.Run("location group only", func(t *testing.T) {
		target, err := action.NewTarget("", "ZoneA")

		require.NoError(t, err)
		name, ok := target.LocationGroupName()
		require.True(t, ok)
		assert.Equal(t, "ZoneA", name)
		assert.Equal(t, "ZoneA", target.Key())
	})

	t.Run("both keys are rejected", func(t *testing.T) {
		_, err := action.NewTarget("L-01", "ZoneA")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("no key is rejected", func(t *testing.T) {
		_, err := action.NewTarget("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid coordinate is rejected", func(t *testing.T) {
		_, err := action.NewTarget(" L-01", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
