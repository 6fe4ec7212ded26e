package geo_test

import (
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.HaversineDistance(23.81, 90.41, 23.81, 90.41))
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		// 6371 * pi / 180
		assert.InDelta(t, 111.195, geo.HaversineDistance(0, 0, 0, 1), 0.001)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := geo.HaversineDistance(23.834145, 90.363833, 23.738265, 90.396151)
		b := geo.HaversineDistance(23.738265, 90.396151, 23.834145, 90.363833)
		assert.InDelta(t, a, b, 1e-9)
		assert.InDelta(t, 11.2, a, 0.3)
	})
}

func TestKeyOf(t *testing.T) {
	t.Run("parsing noise below the grid collapses to one key", func(t *testing.T) {
		a := geo.KeyOf(23.8100001, 90.4100002)
		b := geo.KeyOf(23.8099999, 90.4099998)
		assert.Equal(t, a, b)
		assert.Equal(t, 0, a.Compare(b))
	})

	t.Run("distinct points get distinct keys", func(t *testing.T) {
		a := geo.KeyOf(23.810001, 90.41)
		b := geo.KeyOf(23.810003, 90.41)
		assert.NotEqual(t, a, b)
		assert.True(t, a.Less(b))
		assert.False(t, b.Less(a))
	})

	t.Run("order is latitude first", func(t *testing.T) {
		a := geo.KeyOf(1, 5)
		b := geo.KeyOf(2, 0)
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
	})
}

func TestBoundingBox(t *testing.T) {
	corner, lengths := geo.BoundingBox(0, 0, 111.195)
	assert.InDelta(t, -1.0, corner[0], 1e-3)
	assert.InDelta(t, -1.0, corner[1], 1e-3)
	assert.InDelta(t, 2.0, lengths[0], 1e-3)
	assert.InDelta(t, 2.0, lengths[1], 1e-3)
}
