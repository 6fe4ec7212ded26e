package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Afroza0808/1638-GraphProject/pkg/concurrent"
	"github.com/Afroza0808/1638-GraphProject/pkg/config"
	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/export"
	"github.com/Afroza0808/1638-GraphProject/pkg/loader"
	"github.com/Afroza0808/1638-GraphProject/pkg/logging"
	"github.com/Afroza0808/1638-GraphProject/pkg/solver"
	"github.com/k0kubun/go-ansi"
	"golang.org/x/exp/slog"
)

var (
	configFile = flag.String("config", "", "yaml config file, defaults are used when empty")
	outDir     = flag.String("out", "", "directory of the kml files, overrides report.output_dir")
	workers    = flag.Int("workers", 0, "number of solver goroutines, overrides report.workers")
	logLevel   = flag.String("loglevel", "", "debug, info, warn or error, overrides log.level")
)

type reportJob struct {
	Case        int
	Problem     costpolicy.Problem
	Source      datastructure.Location
	Destination datastructure.Location
}

type reportResult struct {
	Case    int
	Problem int
	Text    string
	KMLFile string
	Err     error
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Report.OutputDir = *outDir
	}
	if *workers > 0 {
		cfg.Report.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := loader.Load(cfg.Data, log, ansi.NewAnsiStderr())
	if err != nil {
		log.Error("loading network failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Report.OutputDir, 0o755); err != nil {
		log.Error("creating output dir failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("  Dhaka Routing System - ALL 6 PROBLEMS")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Graph loaded: %d locations, %d edges\n\n", g.LocationCount(), g.EdgeCount())

	s := solver.NewSolver(g, log.With(slog.String("component", "solver")))
	results := run(s, cfg.Report, len(costpolicy.Problems()))

	failed := 0
	lastCase := -1
	for _, res := range results {
		if res.Case != lastCase {
			fmt.Printf("\nTEST CASE %d\n", res.Case+1)
			lastCase = res.Case
		}
		if res.Err != nil {
			failed++
			log.Error("problem failed", slog.Int("case", res.Case+1), slog.Int("problem", res.Problem),
				slog.String("error", res.Err.Error()))
			continue
		}
		fmt.Print(res.Text)
		fmt.Printf("KML: %s\n\n", res.KMLFile)
	}

	if failed > 0 {
		os.Exit(1)
	}
	fmt.Printf("All %d problems solved, %d KML files written\n", len(costpolicy.Problems()), len(results))
}

// run solves every problem for every test case on a worker pool and returns
// the results ordered by case, then problem.
func run(s *solver.Solver, cfg config.ReportConfig, numProblems int) []reportResult {
	numJobs := len(cfg.Cases) * numProblems
	wp := concurrent.NewWorkerPool[concurrent.Job[reportJob], reportResult](cfg.Workers, numJobs)

	id := 0
	for c, tc := range cfg.Cases {
		for _, p := range costpolicy.Problems() {
			wp.AddJob(concurrent.Job[reportJob]{ID: id, JobItem: reportJob{
				Case:        c,
				Problem:     p,
				Source:      datastructure.NewLocation(tc.Source[0], tc.Source[1]),
				Destination: datastructure.NewLocation(tc.Destination[0], tc.Destination[1]),
			}})
			id++
		}
	}
	wp.Close()

	wp.Start(func(job concurrent.Job[reportJob]) reportResult {
		return solveJob(s, cfg.OutputDir, job.JobItem)
	})
	wp.Wait()

	results := make([]reportResult, 0, numJobs)
	for res := range wp.CollectResults() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Case != results[j].Case {
			return results[i].Case < results[j].Case
		}
		return results[i].Problem < results[j].Problem
	})
	return results
}

func solveJob(s *solver.Solver, outDir string, job reportJob) reportResult {
	res := reportResult{Case: job.Case, Problem: job.Problem.ID}

	it, err := s.Solve(job.Problem.ID, job.Source, job.Destination)
	if err != nil {
		res.Err = err
		return res
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "PROBLEM %d: %s\n", job.Problem.ID, job.Problem.Title)
	if err := export.WriteReport(&buf, job.Problem.ID, it); err != nil {
		res.Err = err
		return res
	}
	res.Text = buf.String()

	name := fmt.Sprintf("problem%d_case%d", job.Problem.ID, job.Case+1)
	res.KMLFile = filepath.Join(outDir, name+".kml")
	f, err := os.Create(res.KMLFile)
	if err != nil {
		res.Err = err
		return res
	}
	defer f.Close()
	if err := export.WriteKML(f, name, it); err != nil {
		res.Err = fmt.Errorf("write %s: %w", res.KMLFile, err)
	}
	return res
}
