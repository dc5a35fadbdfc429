package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"WealthPlanner/internal/backtest"
	"WealthPlanner/internal/config"
	"WealthPlanner/internal/nav"
	"WealthPlanner/internal/planner"
	"WealthPlanner/internal/recorder"
	"WealthPlanner/internal/server"
	"WealthPlanner/internal/strategy"
	"WealthPlanner/internal/universe"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] WealthPlanner starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Load universe; a missing or corrupt source halts startup.
	policy := universe.NewPolicy(cfg.Policy.DefunctSchemes, cfg.Policy.RiskySectors, cfg.Policy.RiskyAllCategories)
	store, err := universe.LoadCSV(cfg.Universe.CSVPath, policy)
	if err != nil {
		log.Fatalf("[FATAL] load universe: %v", err)
	}
	log.Printf("[INFO] universe loaded: %d funds from %s", store.Len(), cfg.Universe.CSVPath)

	// Init NAV fetcher and backtest simulator
	fetcher := nav.NewHTTPFetcher(cfg.NAV.BaseURL, cfg.Proxy,
		time.Duration(cfg.NAV.TimeoutSeconds)*time.Second, cfg.NAV.Retries)
	log.Printf("[INFO] nav source: %s", fetcher.Name())
	sim := backtest.NewSimulator(fetcher, time.Duration(cfg.Cache.TTLHours)*time.Hour)

	// Init planning engine
	namePolicy := strategy.NewNamePolicy(cfg.Policy.BalancedNames,
		cfg.Policy.AggressiveExclusions, cfg.Policy.ConservativeExclusions)
	eng := planner.NewEngine(store, namePolicy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Scheduled cache maintenance
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Cache.SweepCron, func() {
		if n := sim.SweepCache(); n > 0 {
			log.Printf("[INFO] cache sweep removed %d entries", n)
		}
	}); err != nil {
		log.Fatalf("[FATAL] register cache sweep: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Start HTTP server
	app := server.New(eng, sim, store, rec)
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatalf("[FATAL] server listen: %v", err)
		}
	}()
	log.Printf("[INFO] WealthPlanner listening on :%s", cfg.Server.Port)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[ERROR] server shutdown: %v", err)
	}
	log.Println("[INFO] WealthPlanner stopped")
}
