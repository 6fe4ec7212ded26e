package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/export"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/Afroza0808/1638-GraphProject/pkg/network"
	"github.com/Afroza0808/1638-GraphProject/pkg/server"
	"github.com/Afroza0808/1638-GraphProject/pkg/server/rest/service"
	"github.com/Afroza0808/1638-GraphProject/pkg/util"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, problemID int, srcLat, srcLon, dstLat, dstLon float64) (itinerary.Itinerary, bool, error)
	Problems(ctx context.Context) []costpolicy.Problem
	NetworkStats(ctx context.Context) service.NetworkStats
	NearbyStations(ctx context.Context, lat, lon, radiusKm float64, limit int) []network.NearbyStation
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api", func(r chi.Router) {
			r.Get("/problems", handler.problems)
			r.Route("/routes/{problem}", func(r chi.Router) {
				r.Post("/", handler.shortestPath)
				r.Post("/geojson", handler.shortestPathGeoJSON)
				r.Post("/kml", handler.shortestPathKML)
			})
			r.Get("/network/stats", handler.networkStats)
			r.Get("/stations/nearby", handler.nearbyStations)
		})
	})
}

// ShortestPathRequest model info
//
//	@Description	request body for a route query between two points in Dhaka
type ShortestPathRequest struct {
	SrcLat float64 `json:"src_lat" validate:"required,lt=90,gt=-90"`
	SrcLon float64 `json:"src_lon" validate:"required,lt=180,gt=-180"`
	DstLat float64 `json:"dst_lat" validate:"required,lt=90,gt=-90"`
	DstLon float64 `json:"dst_lon" validate:"required,lt=180,gt=-180"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.SrcLat == 0 || s.SrcLon == 0 || s.DstLat == 0 || s.DstLon == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// SegmentResponse model info
//
//	@Description	one leg of an itinerary, distance in km and cost in Taka rounded to 2 decimals
type SegmentResponse struct {
	Mode     string  `json:"mode"`
	ModeName string  `json:"mode_name"`
	FromLat  float64 `json:"from_lat"`
	FromLon  float64 `json:"from_lon"`
	ToLat    float64 `json:"to_lat"`
	ToLon    float64 `json:"to_lon"`
	FromName string  `json:"from_name,omitempty"`
	ToName   string  `json:"to_name,omitempty"`
	Dist     float64 `json:"distance_km"`
	Cost     float64 `json:"cost"`
}

// ShortestPathResponse	model info
//
//	@Description	response body for a route query
type ShortestPathResponse struct {
	Problem       int               `json:"problem"`
	Title         string            `json:"title"`
	Status        string            `json:"status"`
	Found         bool              `json:"found"`
	Objective     string            `json:"objective"`
	Segments      []SegmentResponse `json:"segments"`
	Total         float64           `json:"total"`
	TotalDistance float64           `json:"total_distance_km"`
	TotalCost     float64           `json:"total_cost"`
	Path          string            `json:"path"`
	Cached        bool              `json:"cached"`
}

func NewShortestPathResponse(problem costpolicy.Problem, it itinerary.Itinerary, cached bool) *ShortestPathResponse {
	segs := lo.Map(it.Segments, func(s itinerary.Segment, _ int) SegmentResponse {
		return SegmentResponse{
			Mode:     s.Mode.Code(),
			ModeName: s.Mode.String(),
			FromLat:  s.From.Lat,
			FromLon:  s.From.Lon,
			ToLat:    s.To.Lat,
			ToLon:    s.To.Lon,
			FromName: s.FromName,
			ToName:   s.ToName,
			Dist:     util.RoundFloat(s.Dist, 2),
			Cost:     util.RoundFloat(s.Cost, 2),
		}
	})
	return &ShortestPathResponse{
		Problem:       problem.ID,
		Title:         problem.Title,
		Status:        it.Status.String(),
		Found:         it.Found(),
		Objective:     it.Objective.String(),
		Segments:      segs,
		Total:         util.RoundFloat(it.Total, 2),
		TotalDistance: util.RoundFloat(it.TotalDistance(), 2),
		TotalCost:     util.RoundFloat(it.TotalCost(), 2),
		Path:          export.RenderPath(it),
		Cached:        cached,
	}
}

// route binds the body and the problem path param, then solves. On failure
// the error response is already rendered and ok is false.
func (h *NavigationHandler) route(w http.ResponseWriter, r *http.Request) (problem costpolicy.Problem, it itinerary.Itinerary, cached bool, ok bool) {
	problemID, err := strconv.Atoi(chi.URLParam(r, "problem"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("problem must be a number: %w", err)))
		return
	}

	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !validateRequest(w, r, *data) {
		return
	}

	it, cached, err = h.svc.ShortestPath(r.Context(), problemID, data.SrcLat, data.SrcLon, data.DstLat, data.DstLon)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	problem, err = costpolicy.ProblemByID(problemID)
	if err != nil {
		render.Render(w, r, ErrChi(server.WrapErrorf(err, server.ErrNotFound, "problem %d not found", problemID)))
		return
	}

	h.promeMetrics.RouteQueryCount.WithLabelValues(strconv.Itoa(problemID), it.Status.String()).Inc()
	h.promeMetrics.CacheLookups.WithLabelValues(lo.Ternary(cached, "hit", "miss")).Inc()
	return problem, it, cached, true
}

// shortestPath
//
//	@Summary		route query between 2 points for one of the six problems.
//	@Description	route query between 2 points. Both points are snapped to the nearest network location, the itinerary includes walk legs to the real points.
//	@Tags			routes
//	@Param			problem	path	int					true	"problem id, 1..6"
//	@Param			body	body	ShortestPathRequest	true	"request body route query between 2 points"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{problem} [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	problem, it, cached, ok := h.route(w, r)
	if !ok {
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewShortestPathResponse(problem, it, cached))
}

// shortestPathGeoJSON
//
//	@Summary		route query between 2 points as a GeoJSON FeatureCollection.
//	@Description	same query as /routes/{problem}, rendered as GeoJSON: the whole route, one LineString per segment and the two query points.
//	@Tags			routes
//	@Param			problem	path	int					true	"problem id, 1..6"
//	@Param			body	body	ShortestPathRequest	true	"request body route query between 2 points"
//	@Accept			application/json
//	@Produce		application/geo+json
//	@Router			/routes/{problem}/geojson [post]
//	@Success		200
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) shortestPathGeoJSON(w http.ResponseWriter, r *http.Request) {
	_, it, _, ok := h.route(w, r)
	if !ok {
		return
	}

	raw, err := export.GeoJSON(it).MarshalJSON()
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

// shortestPathKML
//
//	@Summary		route query between 2 points as a KML LineString.
//	@Tags			routes
//	@Param			problem	path	int					true	"problem id, 1..6"
//	@Param			body	body	ShortestPathRequest	true	"request body route query between 2 points"
//	@Accept			application/json
//	@Produce		application/vnd.google-earth.kml+xml
//	@Router			/routes/{problem}/kml [post]
//	@Success		200
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) shortestPathKML(w http.ResponseWriter, r *http.Request) {
	problem, it, _, ok := h.route(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.google-earth.kml+xml")
	w.WriteHeader(http.StatusOK)
	export.WriteKML(w, fmt.Sprintf("problem%d", problem.ID), it)
}

// ProblemResponse model info
//
//	@Description	one of the six route problems and the policy it runs
type ProblemResponse struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Policy    string   `json:"policy"`
	Objective string   `json:"objective"`
	Modes     []string `json:"modes"`
	AliasOf   int      `json:"alias_of,omitempty"`
}

// problems
//
//	@Summary		list the route problems.
//	@Description	list the six route problems with their policy, objective and allowed modes. Problems 4 to 6 run problem 3's policy.
//	@Tags			routes
//	@Produce		application/json
//	@Router			/problems [get]
//	@Success		200	{array}	ProblemResponse
func (h *NavigationHandler) problems(w http.ResponseWriter, r *http.Request) {
	res := lo.Map(h.svc.Problems(r.Context()), func(p costpolicy.Problem, _ int) ProblemResponse {
		return ProblemResponse{
			ID:        p.ID,
			Title:     p.Title,
			Policy:    p.Policy.Kind.String(),
			Objective: p.Policy.Objective.String(),
			Modes:     lo.Map(p.Policy.Modes(), func(m datastructure.TransportMode, _ int) string { return m.Code() }),
			AliasOf:   p.AliasOf,
		}
	})

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res)
}

// networkStats
//
//	@Summary		size of the loaded network.
//	@Tags			network
//	@Produce		application/json
//	@Router			/network/stats [get]
//	@Success		200	{object}	service.NetworkStats
func (h *NavigationHandler) networkStats(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.svc.NetworkStats(r.Context()))
}

// NearbyStationsRequest model info
//
//	@Description	query params of a nearby station lookup
type NearbyStationsRequest struct {
	Lat      float64 `validate:"required,lt=90,gt=-90"`
	Lon      float64 `validate:"required,lt=180,gt=-180"`
	RadiusKm float64 `validate:"gt=0,lte=50"`
	Limit    int     `validate:"gte=0,lte=100"`
}

// NearbyStationResponse model info
//
//	@Description	a named metro station or bus stop near the query point
type NearbyStationResponse struct {
	Name   string  `json:"name"`
	Mode   string  `json:"mode"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	DistKm float64 `json:"distance_km"`
}

// nearbyStations
//
//	@Summary		named stations and stops around a point.
//	@Description	metro stations and bus stops within radius_km of the point, nearest first.
//	@Tags			network
//	@Param			lat			query	number	true	"latitude"
//	@Param			lon			query	number	true	"longitude"
//	@Param			radius_km	query	number	false	"search radius in km, default 1"
//	@Param			limit		query	int		false	"max results, default 10"
//	@Produce		application/json
//	@Router			/stations/nearby [get]
//	@Success		200	{array}		NearbyStationResponse
//	@Failure		400	{object}	ErrResponse
func (h *NavigationHandler) nearbyStations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := NearbyStationsRequest{RadiusKm: 1, Limit: 10}

	var err error
	if data.Lat, err = strconv.ParseFloat(q.Get("lat"), 64); err != nil {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("lat: %w", err)))
		return
	}
	if data.Lon, err = strconv.ParseFloat(q.Get("lon"), 64); err != nil {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("lon: %w", err)))
		return
	}
	if v := q.Get("radius_km"); v != "" {
		if data.RadiusKm, err = strconv.ParseFloat(v, 64); err != nil {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("radius_km: %w", err)))
			return
		}
	}
	if v := q.Get("limit"); v != "" {
		if data.Limit, err = strconv.Atoi(v); err != nil {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("limit: %w", err)))
			return
		}
	}
	if !validateRequest(w, r, data) {
		return
	}

	res := lo.Map(h.svc.NearbyStations(r.Context(), data.Lat, data.Lon, data.RadiusKm, data.Limit),
		func(s network.NearbyStation, _ int) NearbyStationResponse {
			return NearbyStationResponse{
				Name:   s.Name,
				Mode:   s.Mode.Code(),
				Lat:    s.Location.Lat,
				Lon:    s.Location.Lon,
				DistKm: util.RoundFloat(s.DistKm, 3),
			}
		})

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res)
}

// validateRequest renders the translated validation errors and reports
// whether data is valid.
func validateRequest(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

// ErrResponse model info
//
//	@Description	model for error responses
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 500,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 422,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrConflict:
		return http.StatusConflict
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
