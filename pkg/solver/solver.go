package solver

import (
	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/routingalgorithm"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"golang.org/x/exp/slog"
)

type Network interface {
	Neighbors(loc datastructure.Location) []datastructure.Edge
	NearestLocation(point datastructure.Location) datastructure.Location
	StationName(loc datastructure.Location) string
	IsEmpty() bool
}

// Solver answers problem queries over one loaded network. It holds no
// per query state and is safe for concurrent use.
type Solver struct {
	network   Network
	routing   *routingalgorithm.RouteAlgorithm
	assembler *itinerary.Assembler
	log       *slog.Logger
}

func NewSolver(network Network, log *slog.Logger) *Solver {
	if log == nil {
		log = slog.Default()
	}
	return &Solver{
		network:   network,
		routing:   routingalgorithm.NewRouteAlgorithm(network),
		assembler: itinerary.NewAssembler(network),
		log:       log,
	}
}

// Solve runs problem problemID (1..6) between two arbitrary points.
func (s *Solver) Solve(problemID int, source, destination datastructure.Location) (itinerary.Itinerary, error) {
	problem, err := costpolicy.ProblemByID(problemID)
	if err != nil {
		return itinerary.Itinerary{}, err
	}
	return s.SolvePolicy(problem.Policy, source, destination), nil
}

// SolvePolicy snaps both points to the network, searches under policy and
// assembles the itinerary between the original points. On an empty network
// snapping leaves the points as they are and the result is unreachable
// unless both points coincide.
func (s *Solver) SolvePolicy(policy costpolicy.Policy, source, destination datastructure.Location) itinerary.Itinerary {
	if s.network.IsEmpty() {
		s.log.Warn("solving on an empty network, points are not snapped")
	}

	from := s.network.NearestLocation(source)
	to := s.network.NearestLocation(destination)

	route := s.routing.ShortestPath(from, to, policy.AllowedModes(), policy.EdgeCost)
	it := s.assembler.Assemble(route, source, destination, policy)

	s.log.Debug("route solved",
		slog.String("policy", policy.Kind.String()),
		slog.String("status", route.Status.String()),
		slog.Int("edges", len(route.Edges)),
		slog.Int("segments", len(it.Segments)),
		slog.Float64("total", it.Total))
	return it
}
