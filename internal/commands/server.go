package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/api"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/health"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

// ServerCommand runs the HTTP API server with the health endpoints.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	bindAddr        string
	monitorInterval int
}

func CreateServerCommand() *ServerCommand {
	gc := &ServerCommand{
		fs: flag.NewFlagSet("server", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.bindAddr, "listen", "", "Address to bind the HTTP server (default: listen address from config)")
	gc.fs.IntVar(&gc.monitorInterval, "monitor-interval", 60, "Interval in seconds between background health evaluations (0 disables)")

	return gc
}

func (c *ServerCommand) Name() string {
	return c.fs.Name()
}

func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.bindAddr == "" {
		c.bindAddr = cfg.General.Listen
	}

	return nil
}

func (c *ServerCommand) Run() error {
	registry := health.BuildRegistry(c.cfg)
	gw := gateway.NewExecGateway(c.cfg.Gateway, false)

	handler := api.NewHandler(registry, gw, c.cfg.GetAbsProfileDir(), api.VersionInfo{
		Version: c.ctx.Version,
		Date:    c.ctx.BuildDate,
		Commit:  c.ctx.Commit,
	})
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         c.bindAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var monitorRunner *RestartableRunner
	if c.monitorInterval > 0 {
		monitor := health.NewMonitor(registry, gw, time.Duration(c.monitorInterval)*time.Second)
		monitorRunner = NewRestartableRunner(RunnerConfig{Name: "health-monitor"}, monitor.Run)
		if err := monitorRunner.Start(context.Background()); err != nil {
			return fmt.Errorf("failed to start health monitor: %w", err)
		}
	}

	stopMonitor := func() {
		if monitorRunner == nil {
			return
		}
		if err := monitorRunner.Stop(); err != nil {
			log.Errorf("Failed to stop health monitor: %v", err)
		}
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infof("API server listening on http://%s", c.bindAddr)
		log.Infof("Health endpoints: /health /health/detailed /ready /live")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			stopMonitor()
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		stopMonitor()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
			if err := server.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
