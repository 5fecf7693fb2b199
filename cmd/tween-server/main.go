package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/lixenwraith/tween/config"
	"github.com/lixenwraith/tween/curve"
	"github.com/lixenwraith/tween/server"
)

var (
	logger = logxi.New("tween-server")

	configFlag = flag.String("config", "", "Path to a TOML or YAML config file")
	addrFlag   = flag.String("addr", "", "Listen address, overrides server.addr")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging and gin debug mode")
)

const shutdownTimeout = 5 * time.Second

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "tween-server serves the easing curve catalog and animator simulations over HTTP")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
}

func init() {
	flag.Usage = usage
}

func main() {
	flag.Parse()

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if *addrFlag != "" {
		cfg.Server.Addr = *addrFlag
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}

	logger.SetLevel(cfg.Log.LogxiLevel())
	if !cfg.Log.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.NewServer(curve.Catalog, cfg.Server, logger)

	errC := make(chan error, 1)
	go func() {
		errC <- srv.ListenAndServe()
	}()

	quitC := make(chan os.Signal, 1)
	signal.Notify(quitC, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errC:
		if err != nil {
			logger.Fatal("server failed", "err", err)
		}
		return
	case sig := <-quitC:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
