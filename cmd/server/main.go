package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	_ "github.com/Afroza0808/1638-GraphProject/docs"
	"github.com/Afroza0808/1638-GraphProject/pkg/config"
	"github.com/Afroza0808/1638-GraphProject/pkg/kv"
	"github.com/Afroza0808/1638-GraphProject/pkg/loader"
	"github.com/Afroza0808/1638-GraphProject/pkg/logging"
	"github.com/Afroza0808/1638-GraphProject/pkg/server/rest"
	"github.com/Afroza0808/1638-GraphProject/pkg/server/rest/service"
	"github.com/Afroza0808/1638-GraphProject/pkg/solver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/k0kubun/go-ansi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/exp/slog"
)

var (
	configFile = flag.String("config", "", "yaml config file, defaults are used when empty")
	listenAddr = flag.String("listenaddr", "", "server listen address, overrides server.listen_addr")
	roadmap    = flag.String("roadmap", "", "road map csv, overrides data.roadmap")
	metro      = flag.String("metro", "", "metro rail route csv, overrides data.metro")
	bikolpo    = flag.String("bikolpo", "", "Bikolpo bus route csv, overrides data.bikolpo")
	uttara     = flag.String("uttara", "", "Uttara bus route csv, overrides data.uttara")
	logLevel   = flag.String("loglevel", "", "debug, info, warn or error, overrides log.level")
)

//	@title			Dhaka multi-modal route planner API
//	@version		1.0
//	@description	shortest and cheapest routes over the Dhaka road, metro and bus network.

//	@contact.name	Afroza

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	overrideFromFlags(&cfg)

	log, err := logging.New(os.Stdout, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := loader.Load(cfg.Data, log, ansi.NewAnsiStdout())
	if err != nil {
		log.Error("loading network failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cache service.KVDB
	if cfg.Cache.Enabled {
		kvDB, err := kv.OpenMemKVDB(cfg.Cache.MaxEntries)
		if err != nil {
			log.Error("opening itinerary cache failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer kvDB.Close()
		cache = kvDB
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s := solver.NewSolver(g, log.With(slog.String("component", "solver")))
	navigatorSvc := service.NewNavigationService(s, g, cache, log.With(slog.String("component", "service")))
	rest.NavigatorRouter(r, navigatorSvc, m)

	log.Info("server started", slog.String("addr", cfg.Server.ListenAddr),
		slog.Int("locations", g.LocationCount()), slog.Int("edges", g.EdgeCount()),
		slog.Bool("cache", cfg.Cache.Enabled))
	if err := http.ListenAndServe(cfg.Server.ListenAddr, r); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func overrideFromFlags(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Server.ListenAddr, *listenAddr)
	set(&cfg.Data.Roadmap, *roadmap)
	set(&cfg.Data.Metro, *metro)
	set(&cfg.Data.Bikolpo, *bikolpo)
	set(&cfg.Data.Uttara, *uttara)
	set(&cfg.Log.Level, *logLevel)
}
