package costpolicy_test

import (
	"errors"
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edge(dist float64, mode datastructure.TransportMode) datastructure.Edge {
	return datastructure.NewEdge(datastructure.NewLocation(0, 0), datastructure.NewLocation(0, 1), dist, mode)
}

func TestPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy costpolicy.Policy
		modes  []datastructure.TransportMode
		costs  map[datastructure.TransportMode]float64 // edge cost for a 10 km edge
	}{
		{
			name:   "distance",
			policy: costpolicy.Distance,
			modes:  []datastructure.TransportMode{datastructure.Car},
			costs:  map[datastructure.TransportMode]float64{datastructure.Car: 10},
		},
		{
			name:   "economy",
			policy: costpolicy.Economy,
			modes:  []datastructure.TransportMode{datastructure.Car, datastructure.Metro},
			costs:  map[datastructure.TransportMode]float64{datastructure.Car: 200, datastructure.Metro: 50},
		},
		{
			name:   "all modes",
			policy: costpolicy.AllModes,
			modes: []datastructure.TransportMode{datastructure.Car, datastructure.Metro,
				datastructure.BusBikolpo, datastructure.BusUttara},
			costs: map[datastructure.TransportMode]float64{
				datastructure.Car: 200, datastructure.Metro: 50,
				datastructure.BusBikolpo: 70, datastructure.BusUttara: 70,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.modes, tt.policy.Modes())
			allowed := tt.policy.AllowedModes()
			for _, m := range datastructure.AllModes {
				want, ok := tt.costs[m]
				assert.Equal(t, ok, allowed.Contains(m), m.String())
				if ok {
					assert.InDelta(t, want, tt.policy.EdgeCost(edge(10, m)), 1e-9)
				}
			}
			assert.False(t, allowed.Contains(datastructure.Walk))
		})
	}
}

func TestSegmentCost(t *testing.T) {
	assert.Equal(t, 0.0, costpolicy.Distance.SegmentCost(datastructure.Car, 10))
	assert.InDelta(t, 200.0, costpolicy.Economy.SegmentCost(datastructure.Car, 10), 1e-9)
	assert.InDelta(t, 70.0, costpolicy.AllModes.SegmentCost(datastructure.BusUttara, 10), 1e-9)
	assert.Equal(t, 0.0, costpolicy.AllModes.SegmentCost(datastructure.Walk, 10))
}

func TestProblems(t *testing.T) {
	t.Run("six problems", func(t *testing.T) {
		ps := costpolicy.Problems()
		require.Len(t, ps, 6)
		for i, p := range ps {
			assert.Equal(t, i+1, p.ID)
			assert.NotEmpty(t, p.Title)
		}
	})

	t.Run("problems 4 to 6 alias problem 3", func(t *testing.T) {
		three, err := costpolicy.ProblemByID(3)
		require.NoError(t, err)
		assert.Zero(t, three.AliasOf)
		for _, id := range []int{4, 5, 6} {
			p, err := costpolicy.ProblemByID(id)
			require.NoError(t, err)
			assert.Equal(t, 3, p.AliasOf)
			assert.Equal(t, three.Policy.Kind, p.Policy.Kind)
			assert.Equal(t, three.Policy.Rates, p.Policy.Rates)
		}
	})

	t.Run("policy per problem", func(t *testing.T) {
		p1, _ := costpolicy.ProblemByID(1)
		p2, _ := costpolicy.ProblemByID(2)
		assert.Equal(t, costpolicy.KindDistance, p1.Policy.Kind)
		assert.Equal(t, costpolicy.ObjectiveDistance, p1.Policy.Objective)
		assert.Equal(t, costpolicy.KindEconomy, p2.Policy.Kind)
		assert.Equal(t, costpolicy.ObjectiveCost, p2.Policy.Objective)
	})

	t.Run("unknown problem", func(t *testing.T) {
		for _, id := range []int{0, 7, -1} {
			_, err := costpolicy.ProblemByID(id)
			assert.True(t, errors.Is(err, costpolicy.ErrUnknownProblem))
		}
	})
}
