package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a .toml or .yaml config file.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 0, "The initial number of entities to create.")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error).")
	sequential := flag.Bool("sequential", false, "Disable parallel movement.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "entities":
			cfg.Entities = *entityCount
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "sequential":
			cfg.Parallel = !*sequential
		case "gc-pause-metrics":
			cfg.GCPauseMetrics = *gcPauseMetrics
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("stress test failed", zap.Error(err))
	}
	log.Info("stress test complete")
}

func run(cfg *Config, log *zap.Logger) error {
	log.Info("starting ECS stress test",
		zap.Int("entities", cfg.Entities),
		zap.Int("teams", cfg.Teams),
		zap.Bool("parallel", cfg.Parallel),
	)

	world := NewWorld(cfg, log)
	if err := world.Populate(cfg.Entities); err != nil {
		return err
	}
	log.Info("population complete", zap.Int("alive", world.Len()))

	report := &Report{
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Teams:          cfg.Teams,
		ChunkSize:      cfg.ChunkSize,
		Parallel:       cfg.Parallel,
		GCPauseMetrics: cfg.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running simulation", zap.Duration("duration", cfg.Duration))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			frame, err := world.Step(ctx)
			if err != nil {
				if ctx.Err() != nil {
					break Loop
				}
				return err
			}
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.Add(frame)
			log.Debug("frame",
				zap.Int64("frame", report.TotalUpdates),
				zap.Int("moved", frame.Moved),
				zap.Int("deaths", frame.Deaths),
				zap.Duration("took", updateDuration),
			)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.FinalEntities = world.Len()
	report.TeamScores = world.TeamScores()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished", zap.Int64("updates", report.TotalUpdates))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return err
	}
	fmt.Println("--- End of Report ---")
	return nil
}
