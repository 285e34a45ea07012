package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"ruins-game/internal/backend"
	"ruins-game/internal/env"
	"ruins-game/internal/game"
	"ruins-game/internal/gameconfig"
	"ruins-game/internal/graphics"
	"ruins-game/internal/keybind"
	"ruins-game/internal/logger"
	"ruins-game/internal/physics"
	"ruins-game/internal/platform"
	"ruins-game/internal/storage"
	"ruins-game/internal/view"
)

const bootstrapTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", gameconfig.DefaultPath, "path to the YAML config file")
	backendURL := flag.String("backend", "", "REST API base URL (overrides config)")
	offline := flag.Bool("offline", false, "play without a server, using local defaults")
	flag.Parse()

	envCount, envErr := env.Load(".env")

	cfg, cfgErr := gameconfig.Load(*configPath)
	cfg.ApplyEnv(os.LookupEnv)
	if *backendURL != "" {
		cfg.Backend.BaseURL = *backendURL
	}
	if *offline {
		cfg.Backend.BaseURL = ""
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file unavailable, logging to memory only: %v\n", err)
		cfg.Logging.File = ""
		log, _ = logger.New(cfg.Logging)
	}
	defer log.Close()
	slog.SetDefault(log.Logger)

	if envErr != nil {
		log.Warn("failed to read .env", "error", envErr)
	} else if envCount > 0 {
		log.Debug("loaded .env", "vars", envCount)
	}
	if cfgErr != nil {
		log.Warn("invalid config, using defaults", "path", *configPath, "error", cfgErr)
	}

	var prefs storage.Store
	if s, err := storage.Open(cfg.Storage.Dir); err != nil {
		log.Warn("preferences storage unavailable, bindings will not persist", "error", err)
	} else {
		prefs = s
	}
	bindings := keybind.NewStore(prefs, log.Logger)

	var client backend.Client = backend.NewLocal(cfg.Wolf.Spawn)
	if cfg.Backend.BaseURL != "" {
		client = &backend.Fallback{
			Primary:   backend.NewHTTP(cfg.Backend.BaseURL, cfg.Backend.Timeout),
			Secondary: client,
			Log:       log.Logger,
		}
		log.Info("using backend", "url", cfg.Backend.BaseURL)
	} else {
		log.Info("running offline")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess := game.NewSession(cfg, bindings, client, physics.UnitSource(rng), log.Logger)
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	_ = sess.Bootstrap(ctx)
	cancel()

	poller := platform.NewPoller(sess)
	world := view.NewWorld(cfg)
	hud := view.NewHUD(log.Lines)

	update := func(nowMs float64) {
		poller.Poll()
		sess.Tick(nowMs)
	}
	draw := func() {
		v := sess.Snapshot()
		world.Draw(v)
		hud.Draw(v)
	}
	graphics.Run(cfg.Window, update, draw, world.Unload)
}
