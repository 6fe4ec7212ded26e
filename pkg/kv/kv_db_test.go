package kv_test

import (
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/routingalgorithm"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/Afroza0808/1638-GraphProject/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary() itinerary.Itinerary {
	a := datastructure.NewLocation(23.834145, 90.363833)
	b := datastructure.NewLocation(23.8, 90.37)
	c := datastructure.NewLocation(23.738265, 90.396151)
	return itinerary.Itinerary{
		Status:      routingalgorithm.RouteFound,
		Objective:   costpolicy.ObjectiveCost,
		Source:      a,
		Destination: c,
		Segments: []itinerary.Segment{
			{From: a, To: b, Mode: datastructure.Car, Dist: 4.2, Cost: 84},
			{From: b, To: c, Mode: datastructure.Metro, Dist: 7.5, Cost: 37.5, FromName: "Pallabi", ToName: "Shahbag"},
		},
		Total: 121.5,
	}
}

func TestCompressItinerary(t *testing.T) {
	it := sampleItinerary()
	bb, err := kv.CompressItinerary(it)
	require.NoError(t, err)

	got, err := kv.LoadItinerary(bb)
	require.NoError(t, err)
	assert.Equal(t, it, got)

	_, err = kv.LoadItinerary([]byte("not zstd"))
	assert.Error(t, err)
}

func TestKVDB(t *testing.T) {
	db, err := kv.OpenMemKVDB(2)
	require.NoError(t, err)
	defer db.Close()

	src := datastructure.NewLocation(23.834145, 90.363833)
	dst := datastructure.NewLocation(23.738265, 90.396151)

	t.Run("miss", func(t *testing.T) {
		_, ok, err := db.GetItinerary(3, src, dst)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("hit", func(t *testing.T) {
		it := sampleItinerary()
		require.NoError(t, db.SaveItinerary(3, src, dst, it))

		got, ok, err := db.GetItinerary(3, src, dst)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, it, got)

		_, ok, err = db.GetItinerary(2, src, dst)
		require.NoError(t, err)
		assert.False(t, ok, "keyed by problem")
	})

	t.Run("evicts when full", func(t *testing.T) {
		require.NoError(t, db.SaveItinerary(2, src, dst, sampleItinerary()))
		assert.Equal(t, 2, db.Len())

		require.NoError(t, db.SaveItinerary(1, src, dst, sampleItinerary()))
		assert.Equal(t, 1, db.Len())

		_, ok, err := db.GetItinerary(3, src, dst)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = db.GetItinerary(1, src, dst)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestRouteKey(t *testing.T) {
	a := datastructure.NewLocation(23.81, 90.37)
	b := datastructure.NewLocation(23.75, 90.395)
	assert.Equal(t, "route/4/23.81,90.37/23.75,90.395", string(kv.RouteKey(4, a, b)))
	assert.NotEqual(t, kv.RouteKey(4, a, b), kv.RouteKey(4, b, a))
}
