package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
	Cache  CacheConfig  `yaml:"cache"`
	Report ReportConfig `yaml:"report"`
}

type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DataConfig csv files of the road map and the three transit lines.
type DataConfig struct {
	Roadmap string `yaml:"roadmap"`
	Metro   string `yaml:"metro"`
	Bikolpo string `yaml:"bikolpo"`
	Uttara  string `yaml:"uttara"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
}

type ReportConfig struct {
	OutputDir string     `yaml:"output_dir"`
	Cases     []TestCase `yaml:"cases"`
	Workers   int        `yaml:"workers"`
}

// TestCase source and destination of one batch query, [lat, lon].
type TestCase struct {
	Source      [2]float64 `yaml:"source"`
	Destination [2]float64 `yaml:"destination"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{ListenAddr: ":5000"},
		Data: DataConfig{
			Roadmap: "Roadmap-Dhaka.csv",
			Metro:   "Routemap-DhakaMetroRail.csv",
			Bikolpo: "Routemap-BikolpoBus.csv",
			Uttara:  "Routemap-UttaraBus.csv",
		},
		Log:   LogConfig{Level: "info"},
		Cache: CacheConfig{Enabled: true, MaxEntries: 10000},
		Report: ReportConfig{
			OutputDir: ".",
			Workers:   4,
			Cases: []TestCase{
				{Source: [2]float64{23.834145, 90.363833}, Destination: [2]float64{23.738265, 90.396151}},
				{Source: [2]float64{23.810000, 90.370000}, Destination: [2]float64{23.750000, 90.395000}},
			},
		},
	}
}

// Load reads a yaml file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Data.Roadmap == "" {
		return fmt.Errorf("data.roadmap is required")
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must not be negative, got %d", c.Cache.MaxEntries)
	}
	if c.Report.Workers < 1 {
		return fmt.Errorf("report.workers must be at least 1, got %d", c.Report.Workers)
	}
	return nil
}
