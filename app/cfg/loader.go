package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Pipeline configuration
	ConfigPath string `long:"config" env:"CONFIG_PATH" default:"config/sources.yaml" description:"Path to the source definitions file"`
	OutputDir  string `long:"output-dir" env:"OUTPUT_DIR" default:"data/daily" description:"Directory for daily markdown reports"`
	FeedPath   string `long:"feed-path" env:"FEED_PATH" default:"feed.xml" description:"Path for the generated RSS feed"`
	Date       string `long:"date" description:"Report date (YYYY-MM-DD), defaults to yesterday in local time"`
	StaleDays  int    `long:"stale-days" env:"SOURCE_STALE_DAYS" default:"21" description:"A source is stale when its latest item age exceeds this many days"`
	FeedLimit  int    `long:"feed-limit" env:"DAILY_FEED_LIMIT" default:"60" description:"Maximum number of daily digest entries included in the feed"`

	// Fetch configuration
	WorkerCount int    `long:"worker-count" env:"WORKER_COUNT" default:"4" description:"Number of concurrent source fetches"`
	Timeout     int    `long:"timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-request timeout in seconds"`
	UserAgent   string `long:"user-agent" env:"USER_AGENT" default:"llm-vendor-daily/0.1" description:"User agent string for HTTP requests"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" description:"Timezone for report dates (e.g. UTC, Asia/Shanghai)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ConfigPath:  raw.ConfigPath,
		OutputDir:   raw.OutputDir,
		FeedPath:    raw.FeedPath,
		Date:        raw.Date,
		StaleDays:   raw.StaleDays,
		FeedLimit:   raw.FeedLimit,
		WorkerCount: raw.WorkerCount,
		Timeout:     raw.Timeout,
		UserAgent:   raw.UserAgent,
		Timezone:    raw.Timezone,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
