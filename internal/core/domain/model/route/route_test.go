package route_test

import (
	"testing"

	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("should create route with id", func(t *testing.T) {
		r, err := route.NewRoute("R1")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "R1", r.ID())
		assert.Equal(t, "R1", r.String())
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := route.NewRoute("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "routeId")
	})

	t.Run("should reject padded id", func(t *testing.T) {
		_, err := route.NewRoute("R1 ")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRoute_Validate(t *testing.T) {
	var r route.Route

	assert.Equal(t, route.ErrRouteIsNotConstructed, r.Validate())
}

func TestRoute_IsEqual(t *testing.T) {
	a, _ := route.NewRoute("R1")
	b, _ := route.NewRoute("R1")
	c, _ := route.NewRoute("R2")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
