package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"MomentumScreener/internal/config"
	"MomentumScreener/internal/fetcher"
	"MomentumScreener/internal/logging"
	"MomentumScreener/internal/pricecache"
	"MomentumScreener/internal/recorder"
	"MomentumScreener/internal/report"
	"MomentumScreener/internal/scheduler"
	"MomentumScreener/internal/screen"
	"MomentumScreener/internal/universe"
)

func main() {
	// .env first so config overrides can see it
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("momentum screener starting")

	// Data source: Alpaca when credentials are present, Yahoo otherwise.
	var source fetcher.Source
	switch {
	case cfg.DataSource.Provider == "yahoo":
		source = fetcher.NewYahooSource(cfg.Proxy)
	case cfg.DataSource.AlpacaAPIKey != "" && cfg.DataSource.AlpacaAPISecret != "":
		source = fetcher.NewAlpacaSource(cfg.DataSource.AlpacaAPIKey, cfg.DataSource.AlpacaAPISecret)
	default:
		source = fetcher.NewYahooSource(cfg.Proxy)
	}
	logger.Info("data source selected", zap.String("source", source.Name()))

	store, err := pricecache.NewStore(cfg.Database.SQLitePath)
	if err != nil {
		logger.Fatal("open price store", zap.Error(err))
	}
	defer store.Close()

	cache := pricecache.NewCache(store, source, logger, pricecache.Options{
		Workers:    cfg.Fetch.Workers,
		MaxRetries: cfg.Fetch.MaxRetries,
	})

	var rec recorder.Recorder
	if sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath); err != nil {
		logger.Warn("init run recorder failed, using noop", zap.Error(err))
		rec = recorder.NewNoopRecorder()
	} else {
		rec = sr
		defer sr.Close()
	}

	provider := universe.NewProvider(cfg.Universe.ListFile, logger)
	engine := screen.NewEngine(cache, screen.Config{
		LookbackDays:   cfg.Screen.LookbackDays,
		GroupCap:       cfg.Screen.GroupCap,
		StrongSlopeMin: cfg.Screen.StrongSlopeMin,
		Criteria: screen.Criteria{
			SlopeMax:        cfg.Screen.SlopeMax,
			VolatilityMax:   cfg.Screen.VolatilityMax,
			DistanceBase:    cfg.Screen.DistanceBase,
			DistanceVolMult: cfg.Screen.DistanceVolMult,
			MinAvgVolume:    cfg.Screen.MinAvgVolume,
			MinAvgRange:     cfg.Screen.MinAvgRange,
		},
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	site := &report.Site{Dir: cfg.Output.SiteDir}
	runOnce := func() {
		res, err := engine.Run(ctx, provider.Symbols())
		if err != nil {
			logger.Error("screening run failed", zap.Error(err))
			return
		}
		for _, line := range splitLines(report.FormatSummary(res)) {
			logger.Info(line)
		}
		if path, err := report.WriteCSV(res, cfg.Output.Dir); err != nil {
			logger.Error("write csv", zap.Error(err))
		} else {
			logger.Info("results saved", zap.String("csv", path))
		}
		if err := site.Generate(res); err != nil {
			logger.Error("generate site", zap.Error(err))
		}
		if err := rec.RecordRun(res); err != nil {
			logger.Error("record run", zap.Error(err))
		}
	}

	if os.Getenv("DAEMON") != "true" {
		runOnce()
		return
	}

	// Daemon mode: screen on the configured cron schedule until signalled.
	sched := scheduler.NewScheduler(runOnce, logger)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		logger.Fatal("register cron task", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		go sched.RunNow()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutdown signal received, stopping")
	cancel()
}

func splitLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
