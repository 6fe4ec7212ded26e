package service

import (
	"context"
	"errors"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/Afroza0808/1638-GraphProject/pkg/network"
	"github.com/Afroza0808/1638-GraphProject/pkg/server"
	"golang.org/x/exp/slog"
)

type Solver interface {
	Solve(problemID int, source, destination datastructure.Location) (itinerary.Itinerary, error)
}

type Network interface {
	LocationCount() int
	EdgeCount() int
	StationCount() int
	NearbyStations(point datastructure.Location, radiusKm float64, limit int) []network.NearbyStation
}

type KVDB interface {
	GetItinerary(problemID int, source, destination datastructure.Location) (itinerary.Itinerary, bool, error)
	SaveItinerary(problemID int, source, destination datastructure.Location, it itinerary.Itinerary) error
}

type NetworkStats struct {
	Locations int `json:"locations"`
	Edges     int `json:"edges"`
	Stations  int `json:"stations"`
}

type NavigationService struct {
	solver  Solver
	network Network
	kv      KVDB
	log     *slog.Logger
}

// NewNavigationService kv may be nil, then every query is solved.
func NewNavigationService(solver Solver, network Network, kv KVDB, log *slog.Logger) *NavigationService {
	if log == nil {
		log = slog.Default()
	}
	return &NavigationService{solver: solver, network: network, kv: kv, log: log}
}

// ShortestPath itinerary of problemID between two raw points. cached reports
// whether the answer came from the itinerary cache. Cache failures are
// logged and never fail the query.
func (uc *NavigationService) ShortestPath(ctx context.Context, problemID int, srcLat, srcLon,
	dstLat, dstLon float64) (it itinerary.Itinerary, cached bool, err error) {
	if err := ctx.Err(); err != nil {
		return itinerary.Itinerary{}, false, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled")
	}

	src := datastructure.NewLocation(srcLat, srcLon)
	dst := datastructure.NewLocation(dstLat, dstLon)

	if uc.kv != nil {
		it, ok, err := uc.kv.GetItinerary(problemID, src, dst)
		if err != nil {
			uc.log.Warn("itinerary cache lookup failed", slog.String("error", err.Error()))
		} else if ok {
			return it, true, nil
		}
	}

	it, err = uc.solver.Solve(problemID, src, dst)
	if err != nil {
		if errors.Is(err, costpolicy.ErrUnknownProblem) {
			return itinerary.Itinerary{}, false, server.WrapErrorf(err, server.ErrNotFound, "problem %d not found, use 1..%d", problemID, len(costpolicy.Problems()))
		}
		return itinerary.Itinerary{}, false, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}

	if uc.kv != nil {
		if err := uc.kv.SaveItinerary(problemID, src, dst, it); err != nil {
			uc.log.Warn("itinerary cache save failed", slog.String("error", err.Error()))
		}
	}
	return it, false, nil
}

func (uc *NavigationService) Problems(ctx context.Context) []costpolicy.Problem {
	return costpolicy.Problems()
}

func (uc *NavigationService) NetworkStats(ctx context.Context) NetworkStats {
	return NetworkStats{
		Locations: uc.network.LocationCount(),
		Edges:     uc.network.EdgeCount(),
		Stations:  uc.network.StationCount(),
	}
}

func (uc *NavigationService) NearbyStations(ctx context.Context, lat, lon, radiusKm float64, limit int) []network.NearbyStation {
	return uc.network.NearbyStations(datastructure.NewLocation(lat, lon), radiusKm, limit)
}
