package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/lysyi3m/vendor-daily/app/cfg"
	"github.com/lysyi3m/vendor-daily/app/config"
	"github.com/lysyi3m/vendor-daily/app/digest"
	"github.com/lysyi3m/vendor-daily/app/feed"
	"github.com/lysyi3m/vendor-daily/app/report"
)

func main() {
	// .env is optional; real environment variables always apply
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	loc := time.Local

	reportDate, err := resolveReportDate(appCfg.Date, loc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid --date format, expected YYYY-MM-DD")
		os.Exit(2)
	}

	sources, err := config.NewLoader(appCfg.ConfigPath).Load()
	if err != nil {
		slog.Error("Failed to load sources", "error", err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		fmt.Fprintf(os.Stderr, "No sources configured. Update %s.\n", appCfg.ConfigPath)
		os.Exit(1)
	}
	slog.Info("Loaded sources", "count", len(sources), "date", reportDate.Format("2006-01-02"))

	httpClient := &http.Client{}
	timeout := time.Duration(appCfg.Timeout) * time.Second
	normalizer := feed.NewNormalizer(loc)
	extractor := feed.NewExtractor(httpClient, normalizer, appCfg.UserAgent, timeout)
	transform := feed.NewTransformExtractor(httpClient, normalizer, appCfg.UserAgent, timeout)
	collector := feed.NewCollector(extractor, transform, appCfg.WorkerCount)

	items, health := collector.Run(context.Background(), sources, reportDate)

	report.PrintHealth(os.Stdout, health, reportDate, appCfg.StaleDays)

	deduped := feed.NewDeduplicator().Run(items)
	filtered := feed.NewFilterer().Run(deduped, reportDate)

	body := "No items found for this date. / 当日未找到相关条目。\n"
	if len(filtered) > 0 {
		body = digest.NewWriter().Run(filtered, reportDate.Format("2006-01-02"))
	}

	reportPath, err := report.Write(appCfg.OutputDir, reportDate, body)
	if err != nil {
		slog.Error("Failed to write report", "error", err)
		os.Exit(1)
	}

	repoSlug := report.RepoSlug()
	channelLink := "https://github.com/"
	var feedURL string
	if repoSlug != "" {
		channelLink = "https://github.com/" + repoSlug
		feedURL = fmt.Sprintf("https://raw.githubusercontent.com/%s/master/feed.xml", repoSlug)
	}

	feedItems := report.FeedItems(appCfg.OutputDir, repoSlug, loc, appCfg.FeedLimit)
	feedXML := feed.NewGenerator().Run(feedItems, feed.ChannelOptions{
		Title:       "LLM Vendor Daily Digest",
		Link:        channelLink,
		Description: "Bilingual daily digests generated from vendor sources.",
		FeedURL:     feedURL,
	})
	if err := os.WriteFile(appCfg.FeedPath, []byte(feedXML), 0o644); err != nil {
		slog.Error("Failed to write feed", "error", err)
		os.Exit(1)
	}

	slog.Info("Run completed",
		"report", reportPath,
		"items", len(filtered),
		"feed", appCfg.FeedPath,
		"entries", len(feedItems))
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// resolveReportDate parses the requested date or defaults to yesterday
// in the local zone.
func resolveReportDate(value string, loc *time.Location) (time.Time, error) {
	if value != "" {
		return time.ParseInLocation("2006-01-02", value, loc)
	}
	yesterday := time.Now().In(loc).AddDate(0, 0, -1)
	return time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, loc), nil
}
