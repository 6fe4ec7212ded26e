package network_test

import (
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(lat, lon float64) datastructure.Location {
	return datastructure.NewLocation(lat, lon)
}

func TestGraphAddEdge(t *testing.T) {
	g := network.NewGraph()
	p, q, r := loc(0, 0), loc(0, 1), loc(1, 1)
	g.AddEdge(datastructure.NewEdge(p, q, 10, datastructure.Car))
	g.AddEdge(datastructure.NewEdge(q, p, 10, datastructure.Car))
	g.AddEdge(datastructure.NewEdge(q, r, 3, datastructure.Metro))

	assert.Equal(t, 3, g.LocationCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.IsEmpty())

	t.Run("neighbors keyed by origin", func(t *testing.T) {
		out := g.Neighbors(q)
		require.Len(t, out, 2)
		assert.Equal(t, datastructure.Car, out[0].Mode)
		assert.Equal(t, datastructure.Metro, out[1].Mode)
		assert.Empty(t, g.Neighbors(r))
		assert.Empty(t, g.Neighbors(loc(5, 5)))
	})

	t.Run("points within the grid tolerance share a bucket", func(t *testing.T) {
		noisy := loc(0.0000002, 0.9999997)
		assert.True(t, noisy.Equal(q))
		assert.Len(t, g.Neighbors(noisy), 2)

		g.AddEdge(datastructure.NewEdge(noisy, loc(2, 2), 1, datastructure.Car))
		assert.Equal(t, 4, g.LocationCount())
		assert.Len(t, g.Neighbors(q), 3)
	})
}

func TestNearestLocation(t *testing.T) {
	t.Run("empty network returns the query point", func(t *testing.T) {
		g := network.NewGraph()
		pt := loc(23.81, 90.41)
		assert.True(t, g.IsEmpty())
		assert.Equal(t, pt, g.NearestLocation(pt))
		assert.Equal(t, 0.0, g.DistanceToNearestLocation(pt))
	})

	t.Run("picks the closest known location", func(t *testing.T) {
		g := network.NewGraph()
		g.AddEdge(datastructure.NewEdge(loc(23.80, 90.40), loc(23.90, 90.40), 11, datastructure.Car))
		got := g.NearestLocation(loc(23.88, 90.41))
		assert.Equal(t, loc(23.90, 90.40), got)
		assert.Greater(t, g.DistanceToNearestLocation(loc(23.88, 90.41)), 0.0)
	})

	t.Run("ties go to the smallest key", func(t *testing.T) {
		g := network.NewGraph()
		g.AddEdge(datastructure.NewEdge(loc(0, 1), loc(0, -1), 1, datastructure.Car))
		for i := 0; i < 20; i++ {
			assert.Equal(t, loc(0, -1), g.NearestLocation(loc(0, 0)))
		}
	})
}

func TestStationName(t *testing.T) {
	g := network.NewGraph()
	a := loc(23.75, 90.39)
	b := loc(23.76, 90.39)
	c := loc(23.77, 90.39)

	g.AddUttaraStop(a, "Uttara A")
	g.AddBikolpoStop(a, "Bikolpo A")
	g.AddMetroStation(a, "Metro A")
	g.AddUttaraStop(b, "Uttara B")
	g.AddBikolpoStop(b, "Bikolpo B")
	g.AddStation(datastructure.BusUttara, c, "Uttara C")
	g.AddStation(datastructure.Car, loc(1, 1), "ignored")

	assert.Equal(t, "Metro A", g.StationName(a))
	assert.Equal(t, "Bikolpo B", g.StationName(b))
	assert.Equal(t, "Uttara C", g.StationName(c))
	assert.Equal(t, "Metro A", g.StationName(loc(23.7500002, 90.3899999)))
	assert.Equal(t, "", g.StationName(loc(1, 1)))
	assert.Equal(t, 6, g.StationCount())
}

func TestNearbyStations(t *testing.T) {
	g := network.NewGraph()
	g.AddMetroStation(loc(23.7500, 90.3900), "Shahbag")
	g.AddMetroStation(loc(23.7600, 90.3900), "Karwan Bazar")
	g.AddBikolpoStop(loc(23.7510, 90.3900), "Bikolpo Shahbag")
	g.AddUttaraStop(loc(23.8700, 90.4000), "Uttara")

	t.Run("within radius nearest first", func(t *testing.T) {
		got := g.NearbyStations(loc(23.7500, 90.3900), 0.5, 0)
		require.Len(t, got, 2)
		assert.Equal(t, "Shahbag", got[0].Name)
		assert.InDelta(t, 0.0, got[0].DistKm, 1e-9)
		assert.Equal(t, "Bikolpo Shahbag", got[1].Name)
		assert.Equal(t, datastructure.BusBikolpo, got[1].Mode)
	})

	t.Run("limit", func(t *testing.T) {
		got := g.NearbyStations(loc(23.7500, 90.3900), 5, 1)
		require.Len(t, got, 1)
		assert.Equal(t, "Shahbag", got[0].Name)
	})

	t.Run("non positive radius", func(t *testing.T) {
		assert.Empty(t, g.NearbyStations(loc(23.75, 90.39), 0, 0))
	})
}
