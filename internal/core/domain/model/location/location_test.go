package location_test

import (
	"testing"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/location"
	"routing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	t.Run("should accept absolute http href", func(t *testing.T) {
		l, err := location.NewParentLink("http://lgs:8080/v1/location-groups/ZoneRoot")

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, location.ParentRel, l.Rel())
		assert.Equal(t, "http://lgs:8080/v1/location-groups/ZoneRoot", l.Href())
	})

	t.Run("should reject invalid hrefs", func(t *testing.T) {
		testCases := []struct {
			name string
			href string
			want error
		}{
			{"empty", "", errs.ErrValueIsRequired},
			{"relative", "/v1/location-groups/ZoneRoot", errs.ErrValueIsInvalid},
			{"unsupported scheme", "ftp://lgs/ZoneRoot", errs.ErrValueIsInvalid},
			{"missing host", "http:///ZoneRoot", errs.ErrValueIsInvalid},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := location.NewParentLink(tc.href)

				require.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("should require rel", func(t *testing.T) {
		_, err := location.NewLink("", "http://lgs/ZoneRoot")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewLocation(t *testing.T) {
	t.Run("should keep coordinate and group name", func(t *testing.T) {
		loc, err := location.NewLocation(kernel.MustNewCoordinate("L-01"), "ZoneA")

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.Equal(t, "L-01", loc.Coordinate().String())
		assert.Equal(t, "ZoneA", loc.LocationGroupName())
	})

	t.Run("should allow location without group", func(t *testing.T) {
		loc, err := location.NewLocation(kernel.MustNewCoordinate("L-02"), "")

		require.NoError(t, err)
		assert.Empty(t, loc.LocationGroupName())
	})

	t.Run("should reject zero coordinate", func(t *testing.T) {
		loc, err := location.NewLocation(kernel.Coordinate{}, "ZoneA")

		require.Error(t, err)
		assert.Nil(t, loc)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var loc *location.Location

		assert.Equal(t, location.ErrLocationIsNotConstructed, loc.Validate())
		assert.Equal(t, location.ErrLocationIsNotConstructed, (&location.Location{}).Validate())
	})
}

func TestLocationGroup(t *testing.T) {
	t.Run("root group has no parent", func(t *testing.T) {
		g, err := location.NewRootLocationGroup("ZoneRoot")

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		_, ok := g.Parent()
		assert.False(t, ok)
		assert.True(t, g.IsRoot())
	})

	t.Run("child group exposes parent link", func(t *testing.T) {
		parent, _ := location.NewParentLink("http://lgs/v1/location-groups/ZoneRoot")
		g, err := location.NewLocationGroup("ZoneA", parent)

		require.NoError(t, err)
		link, ok := g.Parent()
		require.True(t, ok)
		assert.False(t, g.IsRoot())
		assert.Equal(t, "http://lgs/v1/location-groups/ZoneRoot", link.Href())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := location.NewRootLocationGroup("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero parent link", func(t *testing.T) {
		_, err := location.NewLocationGroup("ZoneA", location.Link{})

		require.ErrorIs(t, err, location.ErrLinkIsNotConstructed)
	})

	t.Run("nil group is not constructed", func(t *testing.T) {
		var g *location.LocationGroup

		assert.Equal(t, location.ErrLocationGroupIsNotConstructed, g.Validate())
	})
}
