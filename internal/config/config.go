package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/EduCatCode/104-test/internal/report"
	"github.com/EduCatCode/104-test/internal/scraper"
)

// DefaultPath is read when no -config flag is given
const DefaultPath = "config.yaml"

// Config holds all settings of a run
type Config struct {
	Scraper ScraperConfig `yaml:"scraper"`
	Report  ReportConfig  `yaml:"report"`
	Export  ExportConfig  `yaml:"export"`
}

// ScraperConfig controls what is fetched and how politely
type ScraperConfig struct {
	Keyword  string        `yaml:"keyword"`
	Pages    int           `yaml:"pages"`
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
	Proxy    string        `yaml:"proxy"`
}

// ReportConfig controls the aggregate views
type ReportConfig struct {
	Bins      int `yaml:"bins"`
	TopSkills int `yaml:"top_skills"`
}

// ExportConfig controls CSV output; an empty path disables it
type ExportConfig struct {
	CSVPath string `yaml:"csv_path"`
}

// Default returns the settings used when no config file exists
func Default() *Config {
	return &Config{
		Scraper: ScraperConfig{
			Keyword:  "Python 數據分析",
			Pages:    3,
			MinDelay: scraper.DefaultMinDelay,
			MaxDelay: scraper.DefaultMaxDelay,
		},
		Report: ReportConfig{
			Bins:      report.DefaultBins,
			TopSkills: report.DefaultTopSkills,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the ranges the scraper and report accept
func (c *Config) Validate() error {
	if c.Scraper.Pages < scraper.MinPages || c.Scraper.Pages > scraper.MaxPages {
		return fmt.Errorf("scraper.pages must be between %d and %d, got %d", scraper.MinPages, scraper.MaxPages, c.Scraper.Pages)
	}
	if c.Scraper.MinDelay < 0 || c.Scraper.MaxDelay < c.Scraper.MinDelay {
		return fmt.Errorf("scraper delay bounds are invalid: min %v, max %v", c.Scraper.MinDelay, c.Scraper.MaxDelay)
	}
	if c.Report.Bins < 1 {
		return fmt.Errorf("report.bins must be at least 1, got %d", c.Report.Bins)
	}
	if c.Report.TopSkills < 1 {
		return fmt.Errorf("report.top_skills must be at least 1, got %d", c.Report.TopSkills)
	}
	return nil
}
