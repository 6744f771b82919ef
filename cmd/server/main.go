// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package main provides the entry point for the intentGate server. It wires
// the hybrid classifier, prompt selector, and history store behind the HTTP
// API and runs until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/traylinx/intentGate/internal/api"
	"github.com/traylinx/intentGate/internal/buildinfo"
	"github.com/traylinx/intentGate/internal/config"
	"github.com/traylinx/intentGate/internal/history"
	"github.com/traylinx/intentGate/internal/intent"
	"github.com/traylinx/intentGate/internal/intent/routes"
	"github.com/traylinx/intentGate/internal/intent/semantic"
	"github.com/traylinx/intentGate/internal/logging"
	"github.com/traylinx/intentGate/internal/prompt"
)

// Overridden via ldflags during release builds.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func init() {
	logging.SetupBaseLogger()
	buildinfo.Version = Version
	buildinfo.Commit = Commit
	buildinfo.BuildDate = BuildDate
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("intentgate %s (commit %s, built %s)\n", buildinfo.Version, buildinfo.Commit, buildinfo.BuildDate)
		return
	}

	cfg, err := config.LoadConfigOptional(*configPath, true)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.SetDebugLevel(cfg.Debug)
	if err = logging.ConfigureLogOutput(cfg.LoggingToFile, cfg.LogDir); err != nil {
		log.Fatalf("Failed to configure log output: %v", err)
	}
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := routes.FastCatalog()
	if cfg.Classifier.CatalogFile != "" {
		catalog, err = routes.LoadCatalog(cfg.Classifier.CatalogFile)
		if err != nil {
			log.Fatalf("Failed to load route catalog %s: %v", cfg.Classifier.CatalogFile, err)
		}
		log.Infof("Loaded route catalog from %s", cfg.Classifier.CatalogFile)
	}

	var factory intent.SlowFactory
	if cfg.Classifier.SemanticEnabled {
		locator := semantic.NewModelLocator()
		modelPath := cfg.Classifier.ModelPath
		if modelPath == "" {
			modelPath = locator.ModelPath(semantic.DefaultModelName)
		}
		vocabPath := cfg.Classifier.VocabPath
		if vocabPath == "" {
			vocabPath = locator.VocabPath(semantic.DefaultModelName)
		}
		sharedLib := cfg.Classifier.SharedLibraryPath
		if sharedLib == "" {
			sharedLib = locator.SharedLibraryPath()
		}
		factory = intent.OnnxSlowFactory(modelPath, vocabPath, sharedLib, cfg.Classifier.SemanticThreshold)
	} else {
		log.Info("Semantic tier disabled; running fast path only")
	}

	classifier := intent.NewHybrid(catalog, intent.Options{
		EscalationThreshold: cfg.Classifier.EscalationThreshold,
		SlowFactory:         factory,
	})
	if cfg.Classifier.WarmupOnStart {
		classifier.Warmup()
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.NewStore(cfg.History.DatabasePath, cfg.History.MaxTurns)
		if err != nil {
			log.Fatalf("Failed to open history store: %v", err)
		}
		initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
		err = store.Initialize(initCtx)
		cancelInit()
		if err != nil {
			log.Fatalf("Failed to initialize history store: %v", err)
		}
	}

	server := api.NewServer(classifier, prompt.NewSelector(cfg.Prompt.FallbackAfter), store)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctxSignal, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("intentGate %s listening on %s", buildinfo.Version, addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Server exited with error: %v", err)
		}
	case <-ctxSignal.Done():
		log.Info("Shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		if err = httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warnf("Server shutdown: %v", err)
		}
		cancelShutdown()
	}

	if store != nil {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
		if err = store.Shutdown(closeCtx); err != nil {
			log.Warnf("History store shutdown: %v", err)
		}
		cancelClose()
	}
}
