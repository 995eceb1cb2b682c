// v3
// cmd/coldsim/main.go

// coldsim runs one forced-air cooling simulation: it loads a scenario,
// derives the stable step, advances the engine for the configured number of
// steps, and serves state, diagnostics and metrics over HTTP while
// optionally streaming snapshots to websocket clients, Kafka and SQLite.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyve-systems-inc/simulations-sub001/internal/api"
	"github.com/hyve-systems-inc/simulations-sub001/internal/config"
	"github.com/hyve-systems-inc/simulations-sub001/internal/diag"
	"github.com/hyve-systems-inc/simulations-sub001/internal/logging"
	"github.com/hyve-systems-inc/simulations-sub001/internal/observability"
	"github.com/hyve-systems-inc/simulations-sub001/internal/sim"
	"github.com/hyve-systems-inc/simulations-sub001/internal/sink"
	"github.com/hyve-systems-inc/simulations-sub001/internal/store"
	"github.com/hyve-systems-inc/simulations-sub001/internal/stream"
)

// ---- UUIDv4 (no external deps) ----
func uuidv4() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		now := time.Now().UnixNano()
		return fmt.Sprintf("uuid-%d", now)
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10
	hexs := hex.EncodeToString(b)
	return fmt.Sprintf("%s-%s-%s-%s-%s", hexs[0:8], hexs[8:12], hexs[12:16], hexs[16:20], hexs[20:32])
}

func main() {
	logger, logFile := logging.Init("coldsim", logging.FromEnv())
	defer logFile.Close()

	cfg := config.FromEnv(logger)

	params, initial, err := config.LoadScenario(cfg.ScenarioPath)
	if err != nil {
		logger.Error("scenario load failed", "path", cfg.ScenarioPath, "error", err)
		os.Exit(1)
	}

	eng, err := sim.NewEngine(params, 0, cfg.Seed)
	if err != nil {
		logger.Error("engine construction failed", "error", err)
		os.Exit(1)
	}
	mon, err := diag.NewMonitor(eng, initial)
	if err != nil {
		logger.Error("monitor construction failed", "error", err)
		os.Exit(1)
	}
	logger.Info("run configured",
		"zones", params.Zones, "layers", params.Layers,
		"dt", eng.DT(), "steps", cfg.Steps, "seed", cfg.Seed)

	metrics := observability.NewMetrics()
	hub := stream.NewHub(logger)
	defer hub.Close()

	publisher := sink.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	defer publisher.Close()

	var db *store.Store
	if cfg.DBPath != "" {
		db, err = store.Open(cfg.DBPath)
		if err != nil {
			logger.Error("snapshot db open failed", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	runID := uuidv4()
	logger.Info("run starting", "runId", runID)

	root := http.NewServeMux()
	root.Handle("/", api.NewServer(mon, logger, metrics).Router(logFile))
	root.HandleFunc("/ws", hub.ServeWS)
	httpSrv := &http.Server{Addr: cfg.BindAddr, Handler: root}
	go func() {
		logger.Info("http listening", "addr", cfg.BindAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		runLoop(ctx, logger, cfg, mon, metrics, hub, publisher, db, runID)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case <-done:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown incomplete", "error", err)
	}
}

func runLoop(ctx context.Context, logger *slog.Logger, cfg config.App,
	mon *diag.Monitor, metrics *observability.Metrics,
	hub *stream.Hub, publisher *sink.Publisher, db *store.Store, runID string) {

	for step := 1; step <= cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			logger.Info("run interrupted", "step", step-1)
			return
		default:
		}

		start := time.Now()
		state, err := mon.Step()
		if err != nil {
			logger.Error("step failed", "step", step, "error", err)
			return
		}
		metrics.ObserveStep(state, time.Since(start))

		if step%cfg.PublishEvery == 0 || step == cfg.Steps {
			metrics.SetEnergyDrift(mon.EnergyBalance().Drift)
			snap := sim.Snapshot{RunID: runID, Step: step, Timestamp: time.Now(), State: state}
			hub.Broadcast(snap)
			if err := publisher.Publish(ctx, snap); err != nil {
				logger.Warn("snapshot publish failed", "step", step, "error", err)
			}
			if db != nil {
				if err := db.Save(ctx, snap); err != nil {
					logger.Warn("snapshot persist failed", "step", step, "error", err)
				}
			}
		}
	}

	perf := mon.Performance()
	energy := mon.EnergyBalance()
	report := mon.Validate()
	logger.Info("run complete",
		"runId", runID,
		"steps", perf.Steps,
		"simTime", perf.Time,
		"tcpi", perf.TCPI,
		"uniformity", perf.UniformityIndex,
		"coolingRateIndex", perf.CoolingRateIndex,
		"energyDrift", energy.Drift,
		"coolingWork", energy.CoolingWork,
		"valid", report.Valid,
		"warnings", len(report.Warnings))
	for _, v := range report.Violations {
		logger.Warn("validation violation", "detail", v)
	}
}
