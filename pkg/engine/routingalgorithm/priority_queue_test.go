package routingalgorithm_test

import (
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/engine/routingalgorithm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	t.Run("extracts in rank order with duplicates", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[int]()
		for i, r := range []float64{5, 1, 4, 1, 3, 9, 2} {
			h.Insert(routingalgorithm.PriorityQueueNode[int]{Rank: r, Item: i})
		}
		require.Equal(t, 7, h.Size())

		min, err := h.GetMin()
		require.NoError(t, err)
		assert.Equal(t, 1.0, min.Rank)

		got := []float64{}
		for h.Size() > 0 {
			n, err := h.ExtractMin()
			require.NoError(t, err)
			got = append(got, n.Rank)
		}
		assert.Equal(t, []float64{1, 1, 2, 3, 4, 5, 9}, got)
	})

	t.Run("empty heap", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[string]()
		_, err := h.ExtractMin()
		assert.Error(t, err)
		_, err = h.GetMin()
		assert.Error(t, err)
	})
}
