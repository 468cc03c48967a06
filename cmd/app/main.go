package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AbdulWasayUl/go-weather-widget/internal/channels"
	"github.com/AbdulWasayUl/go-weather-widget/internal/config"
	"github.com/AbdulWasayUl/go-weather-widget/internal/db"
	"github.com/AbdulWasayUl/go-weather-widget/internal/display"
	"github.com/AbdulWasayUl/go-weather-widget/internal/httpapi"
	"github.com/AbdulWasayUl/go-weather-widget/internal/logger"
	"github.com/AbdulWasayUl/go-weather-widget/internal/pipeline"
	"github.com/AbdulWasayUl/go-weather-widget/internal/scheduler"
	"github.com/AbdulWasayUl/go-weather-widget/internal/workpool"
	"github.com/AbdulWasayUl/go-weather-widget/models"
	"github.com/AbdulWasayUl/go-weather-widget/services/weather"
)

func main() {
	logger.Init()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	var presets *db.PresetStore
	if cfg.MongoURI != "" {
		client, err := db.ConnectMongoDB(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to MongoDB, presets disabled: %v", err)
		} else {
			defer func() {
				if err := db.DisconnectMongoDB(context.Background(), client); err != nil {
					logger.Error("Error disconnecting MongoDB: %v", err)
				}
			}()
			if err := db.RunMigrations(ctx, client, cfg); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
			presets = db.NewPresetStore(client, cfg)
		}
	}

	startLocation := cfg.DefaultLocation
	if presets != nil {
		if list, err := presets.List(ctx); err != nil {
			logger.Error("Failed to read presets: %v", err)
		} else if len(list) > 0 {
			startLocation = list[0].Name
		}
	}

	var locator pipeline.Locator
	if cfg.HasStaticPosition {
		locator = pipeline.StaticLocator{Position: models.Coordinates{Lat: cfg.GeoLat, Lon: cfg.GeoLon}}
	}

	state := display.NewState()
	surface := display.Multi{state, display.NewTerminal(os.Stdout)}
	weatherSvc := weather.NewService(cfg)
	pipe := pipeline.New(weatherSvc, surface, pipeline.OptionsFromConfig(cfg))
	defer pipe.Close()

	chans := channels.New(cfg.QueueSize)
	wp := workpool.New(chans, cfg.WorkerCount)
	wp.Start(ctx)

	sch := scheduler.New()
	if err := sch.StartJob(cfg.RefreshInterval, chans, pipe); err != nil {
		log.Fatalf("Failed to start scheduler job: %v", err)
	}
	if t, ok := pipe.PlaceTrigger(models.SourceStartup, startLocation); ok {
		if err := sch.RunImmediateJob(chans, t); err != nil {
			logger.Error("%v", err)
		}
	}

	var presetLister httpapi.PresetLister
	if presets != nil {
		presetLister = presets
	}
	srv := httpapi.NewServer(pipe, state, chans, locator, presetLister)
	httpSrv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening on :%s", cfg.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error: %v", err)
		}
	}()

	go readCommands(ctx, os.Stdin, os.Stdout, pipe, chans, locator, presets)

	<-quit
	logger.Info("Received interrupt signal. Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error: %v", err)
	}

	sch.Stop()
	wp.Stop()
	cancel()

	logger.Info("Waiting for pending triggers to finish...")
	chans.WG.Wait()
	logger.Info("All triggers finished. Shutdown complete.")
}

// readCommands treats each stdin line as an Enter key search. "/locate"
// asks for the current position and "/presets" lists preset places.
func readCommands(ctx context.Context, in io.Reader, out io.Writer, pipe *pipeline.Pipeline, chans *channels.Channels, locator pipeline.Locator, presets *db.PresetStore) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		var t models.Trigger
		switch line {
		case "":
			continue
		case "/locate":
			t = pipe.LocateTrigger(models.SourceLocate, locator)
		case "/presets":
			printPresets(ctx, out, presets)
			continue
		default:
			t, _ = pipe.PlaceTrigger(models.SourceEnter, line)
		}

		if err := chans.Submit(t); err != nil {
			logger.Error("Failed to queue %q: %v", t.Query, err)
			if errors.Is(err, channels.ErrClosed) {
				return
			}
		}
	}
}

func printPresets(ctx context.Context, out io.Writer, presets *db.PresetStore) {
	if presets == nil {
		fmt.Fprintln(out, "no presets configured")
		return
	}
	list, err := presets.List(ctx)
	if err != nil {
		logger.Error("Failed to list presets: %v", err)
		return
	}
	for _, p := range list {
		fmt.Fprintf(out, "  %s, %s\n", p.Name, p.Country)
	}
}
