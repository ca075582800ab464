package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Loaded once, then passed
// explicitly into each component; nothing reads ambient state afterwards.
type Config struct {
	DataSource struct {
		Provider        string `yaml:"provider"` // "alpaca", "yahoo", empty = auto
		AlpacaAPIKey    string `yaml:"alpaca_api_key"`
		AlpacaAPISecret string `yaml:"alpaca_api_secret"`
	} `yaml:"data_source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Universe struct {
		ListFile string `yaml:"list_file"`
	} `yaml:"universe"`
	Screen struct {
		LookbackDays    int     `yaml:"lookback_days"`
		GroupCap        int     `yaml:"group_cap"`
		StrongSlopeMin  float64 `yaml:"strong_slope_min"`
		SlopeMax        float64 `yaml:"slope_max"`
		VolatilityMax   float64 `yaml:"volatility_max"`
		DistanceBase    float64 `yaml:"distance_base"`
		DistanceVolMult float64 `yaml:"distance_vol_mult"`
		MinAvgVolume    float64 `yaml:"min_avg_volume"`
		MinAvgRange     float64 `yaml:"min_avg_range"`
	} `yaml:"screen"`
	Fetch struct {
		Workers    int `yaml:"workers"`
		MaxRetries int `yaml:"max_retries"`
	} `yaml:"fetch"`
	Output struct {
		Dir     string `yaml:"dir"`      // CSV exports
		SiteDir string `yaml:"site_dir"` // static HTML pages
	} `yaml:"output"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
	Debug bool   `yaml:"debug"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then fills defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.DataSource.AlpacaAPIKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.DataSource.AlpacaAPISecret = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Screen.LookbackDays = n
		}
	}
	if v := os.Getenv("GROUP_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Screen.GroupCap = n
		}
	}
	if v := os.Getenv("FETCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.Workers = n
		}
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DEBUG_MODE"); v == "true" {
		cfg.Debug = true
	}

	// Defaults
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/us_stocks.sqlite"
	}
	if cfg.Universe.ListFile == "" {
		cfg.Universe.ListFile = "data/us_stock_list.json"
	}
	if cfg.Screen.LookbackDays == 0 {
		cfg.Screen.LookbackDays = 120
	}
	if cfg.Screen.GroupCap == 0 {
		cfg.Screen.GroupCap = 6
	}
	if cfg.Screen.StrongSlopeMin == 0 {
		cfg.Screen.StrongSlopeMin = 0.8
	}
	if cfg.Screen.SlopeMax == 0 {
		cfg.Screen.SlopeMax = 2.0
	}
	if cfg.Screen.VolatilityMax == 0 {
		cfg.Screen.VolatilityMax = 0.08
	}
	if cfg.Screen.DistanceBase == 0 {
		cfg.Screen.DistanceBase = 0.03
	}
	if cfg.Screen.DistanceVolMult == 0 {
		cfg.Screen.DistanceVolMult = 1.5
	}
	if cfg.Screen.MinAvgVolume == 0 {
		cfg.Screen.MinAvgVolume = 1_000_000
	}
	if cfg.Screen.MinAvgRange == 0 {
		cfg.Screen.MinAvgRange = 0.50
	}
	if cfg.Fetch.Workers == 0 {
		cfg.Fetch.Workers = 4
	}
	if cfg.Fetch.MaxRetries == 0 {
		cfg.Fetch.MaxRetries = 3
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.Output.SiteDir == "" {
		cfg.Output.SiteDir = "docs"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Screen.LookbackDays < 25 {
		return fmt.Errorf("screen.lookback_days must be at least 25, got %d", c.Screen.LookbackDays)
	}
	if c.Screen.GroupCap <= 0 {
		return fmt.Errorf("screen.group_cap must be positive, got %d", c.Screen.GroupCap)
	}
	if c.Screen.SlopeMax <= c.Screen.StrongSlopeMin {
		return fmt.Errorf("screen.slope_max (%.2f) must exceed screen.strong_slope_min (%.2f)",
			c.Screen.SlopeMax, c.Screen.StrongSlopeMin)
	}
	if c.Screen.VolatilityMax <= 0 {
		return fmt.Errorf("screen.volatility_max must be positive, got %.4f", c.Screen.VolatilityMax)
	}
	if c.Screen.DistanceBase < 0 || c.Screen.DistanceVolMult < 0 {
		return fmt.Errorf("distance band parameters must be non-negative")
	}
	if c.Fetch.Workers <= 0 {
		return fmt.Errorf("fetch.workers must be positive, got %d", c.Fetch.Workers)
	}
	return nil
}
