package itinerary_test

import (
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/routingalgorithm"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/Afroza0808/1638-GraphProject/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(lat, lon float64) datastructure.Location {
	return datastructure.NewLocation(lat, lon)
}

func found(edges ...datastructure.Edge) routingalgorithm.Route {
	return routingalgorithm.Route{
		Status: routingalgorithm.RouteFound,
		From:   edges[0].From,
		To:     edges[len(edges)-1].To,
		Edges:  edges,
	}
}

var (
	a = loc(23.70, 90.40)
	b = loc(23.71, 90.40)
	c = loc(23.72, 90.40)
	d = loc(23.73, 90.40)
	e = loc(23.74, 90.40)
)

func fineEdges() []datastructure.Edge {
	return []datastructure.Edge{
		datastructure.NewEdge(a, b, 1.0, datastructure.Car),
		datastructure.NewEdge(b, c, 1.5, datastructure.Car),
		datastructure.NewEdge(c, d, 2.0, datastructure.Metro),
		datastructure.NewEdge(d, e, 0.5, datastructure.Metro),
	}
}

func stations() *network.Graph {
	g := network.NewGraph()
	g.AddMetroStation(c, "Karwan Bazar")
	g.AddMetroStation(e, "Shahbag")
	return g
}

func TestCoalesce(t *testing.T) {
	t.Run("merges same mode runs", func(t *testing.T) {
		segs := itinerary.Coalesce(fineEdges())
		require.Len(t, segs, 2)
		assert.Equal(t, datastructure.Car, segs[0].Mode)
		assert.Equal(t, a, segs[0].From)
		assert.Equal(t, c, segs[0].To)
		assert.InDelta(t, 2.5, segs[0].Dist, 1e-12)
		assert.Equal(t, datastructure.Metro, segs[1].Mode)
		assert.InDelta(t, 2.5, segs[1].Dist, 1e-12)
	})

	t.Run("a gap in the chain splits a run", func(t *testing.T) {
		segs := itinerary.Coalesce([]datastructure.Edge{
			datastructure.NewEdge(a, b, 1, datastructure.Car),
			datastructure.NewEdge(c, d, 1, datastructure.Car),
		})
		assert.Len(t, segs, 2)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, itinerary.Coalesce(nil))
	})
}

func TestAssemble(t *testing.T) {
	asm := itinerary.NewAssembler(stations())

	t.Run("no walk legs when the endpoints are on the network", func(t *testing.T) {
		it := asm.Assemble(found(fineEdges()...), a, e, costpolicy.AllModes)
		require.Len(t, it.Segments, 2)
		assert.Equal(t, routingalgorithm.RouteFound, it.Status)
		assert.Equal(t, "", it.Segments[0].FromName)
		assert.Equal(t, "Karwan Bazar", it.Segments[0].ToName)
		assert.Equal(t, "Karwan Bazar", it.Segments[1].FromName)
		assert.Equal(t, "Shahbag", it.Segments[1].ToName)

		assert.InDelta(t, 2.5*20.0, it.Segments[0].Cost, 1e-9)
		assert.InDelta(t, 2.5*5.0, it.Segments[1].Cost, 1e-9)
		assert.InDelta(t, 62.5, it.Total, 1e-9)
		assert.InDelta(t, it.TotalCost(), it.Total, 1e-12)
		assert.Equal(t, []datastructure.Location{a, c, e}, it.Trace())
	})

	t.Run("distance objective sums distances and prices nothing", func(t *testing.T) {
		it := asm.Assemble(found(fineEdges()...), a, e, costpolicy.Distance)
		assert.InDelta(t, 5.0, it.Total, 1e-9)
		assert.Zero(t, it.TotalCost())
		assert.Equal(t, costpolicy.ObjectiveDistance, it.Objective)
	})

	t.Run("walk legs for far endpoints", func(t *testing.T) {
		src := loc(23.695, 90.40) // ~0.56 km south of a
		dst := loc(23.745, 90.40)
		it := asm.Assemble(found(fineEdges()...), src, dst, costpolicy.AllModes)
		require.Len(t, it.Segments, 4)

		first, last := it.Segments[0], it.Segments[3]
		assert.Equal(t, datastructure.Walk, first.Mode)
		assert.Equal(t, src, first.From)
		assert.Equal(t, a, first.To)
		assert.InDelta(t, src.DistanceTo(a), first.Dist, 1e-12)
		assert.Zero(t, first.Cost)
		assert.Empty(t, first.FromName)
		assert.Empty(t, first.ToName)

		assert.Equal(t, datastructure.Walk, last.Mode)
		assert.Equal(t, e, last.From)
		assert.Equal(t, dst, last.To)
		assert.InDelta(t, 62.5, it.Total, 1e-9)
	})

	t.Run("walk legs only above the threshold", func(t *testing.T) {
		// 0.0000005 deg of latitude is ~0.056 m, 0.00002 deg is ~2.2 m
		near := loc(23.7000005, 90.40)
		it := asm.Assemble(found(fineEdges()...), near, e, costpolicy.AllModes)
		assert.NotEqual(t, datastructure.Walk, it.Segments[0].Mode)

		beyond := loc(23.69998, 90.40)
		require.Greater(t, beyond.DistanceTo(a), itinerary.WalkThresholdKm)
		it = asm.Assemble(found(fineEdges()...), beyond, e, costpolicy.AllModes)
		assert.Equal(t, datastructure.Walk, it.Segments[0].Mode)
	})

	t.Run("unreachable has no segments", func(t *testing.T) {
		r := routingalgorithm.Route{Status: routingalgorithm.RouteUnreachable, From: a, To: e}
		it := asm.Assemble(r, loc(23.60, 90.40), loc(23.80, 90.40), costpolicy.AllModes)
		assert.Empty(t, it.Segments)
		assert.Zero(t, it.Total)
		assert.False(t, it.Found())
		assert.Empty(t, it.Trace())
	})

	t.Run("trivial route walks through the snapped location", func(t *testing.T) {
		r := routingalgorithm.Route{Status: routingalgorithm.RouteTrivial, From: c, To: c}
		src, dst := loc(23.719, 90.40), loc(23.721, 90.40)
		it := asm.Assemble(r, src, dst, costpolicy.Distance)
		require.Len(t, it.Segments, 2)
		assert.Equal(t, datastructure.Walk, it.Segments[0].Mode)
		assert.Equal(t, c, it.Segments[0].To)
		assert.Equal(t, c, it.Segments[1].From)
		assert.InDelta(t, src.DistanceTo(c)+c.DistanceTo(dst), it.Total, 1e-12)
		assert.True(t, it.Found())
	})

	t.Run("trivial route on the network is empty", func(t *testing.T) {
		r := routingalgorithm.Route{Status: routingalgorithm.RouteTrivial, From: c, To: c}
		it := asm.Assemble(r, c, c, costpolicy.AllModes)
		assert.Empty(t, it.Segments)
		assert.Zero(t, it.Total)
	})
}

func TestAssembleIsIdempotentOverCoalescing(t *testing.T) {
	asm := itinerary.NewAssembler(stations())
	src, dst := loc(23.69, 90.41), loc(23.75, 90.39)

	fine := asm.Assemble(found(fineEdges()...), src, dst, costpolicy.AllModes)

	coarse := []datastructure.Edge{}
	for _, s := range itinerary.Coalesce(fineEdges()) {
		coarse = append(coarse, datastructure.NewEdge(s.From, s.To, s.Dist, s.Mode))
	}
	again := asm.Assemble(found(coarse...), src, dst, costpolicy.AllModes)

	assert.Equal(t, fine.Segments, again.Segments)
	assert.Equal(t, fine.Total, again.Total)
}
