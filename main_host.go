//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"colorpicky/app"
	"colorpicky/hal"
	"colorpicky/internal/buildinfo"
	"colorpicky/internal/config"
	"colorpicky/internal/logging"
	"colorpicky/internal/report"
	"colorpicky/internal/session"
)

func main() {
	var (
		headless   hal.HeadlessConfig
		configPath string
		sampling   bool
		httpAddr   string
		logLevel   string
		scale      int
	)
	flag.StringVar(&configPath, "config", "", "Config file (.toml or .yaml).")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window; the button clicks itself.")
	flag.IntVar(&headless.Hz, "hz", 100, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&sampling, "sampling", false, "Hold the button to sample, release to save.")
	flag.StringVar(&httpAddr, "http", "", "Serve the HTML report on this address (e.g. :8080).")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error).")
	flag.IntVar(&scale, "scale", 4, "Window scale factor.")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sampling":
			cfg.Gesture.Sampling = sampling
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logging.SetDefaultLevel(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New("main")
	log.Infow("starting",
		zap.String("version", buildinfo.String()),
		zap.Bool("headless", headless.Enabled),
		zap.Duration("tick", cfg.Tick),
		zap.Duration("sensorInterval", cfg.SensorInterval),
		zap.Bool("sampling", cfg.Gesture.Sampling),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if configPath != "" {
		if err := config.Watch(ctx, configPath, func(c app.Config) {
			if err := logging.SetDefaultLevel(c.LogLevel); err != nil {
				log.Warnw("config reload", zap.Error(err))
				return
			}
			log.Infow("config reloaded", zap.String("logLevel", c.LogLevel))
		}, func(err error) {
			log.Warnw("config reload", zap.Error(err))
		}); err != nil {
			log.Warnw("config watch disabled", zap.Error(err))
		}
	}

	var device atomic.Pointer[app.Device]
	newApp := func(h hal.HAL) func() error {
		d, err := app.NewDevice(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		device.Store(d)
		return d.Step
	}

	if httpAddr != "" {
		srv := &http.Server{
			Addr: httpAddr,
			Handler: report.Handler(cfg.Title, func() session.Snapshot {
				if d := device.Load(); d != nil {
					return d.Snapshot()
				}
				return session.Snapshot{}
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Infow("report server listening", zap.String("addr", httpAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorw("report server", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if headless.Enabled {
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Errorw("stopped", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{
		Title: cfg.Title,
		Scale: scale,
		TPS:   int(time.Second / cfg.Tick),
	}); err != nil {
		log.Errorw("stopped", zap.Error(err))
		os.Exit(1)
	}
}
