// Command kolaw-server provides an HTTP REST API for drafting amendment
// statements and searching statutes.
//
// Usage:
//
//	kolaw-server --port 8080
//	KOLAW_REGISTRY_OC=myid kolaw-server --host 0.0.0.0
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Alfex4936/kolaw/internal/config"
	"github.com/Alfex4936/kolaw/internal/net"
	"github.com/Alfex4936/kolaw/kolaw"
)

var (
	cfgFile string
	host    string
	port    string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kolaw-server",
	Short: "Serve the kolaw REST API",
	Long: `Start the kolaw HTTP server.

  POST /v1/amend     타법개정문 생성
  POST /v1/search    법률 본문 검색
  GET  /health       health check
  GET  /metrics      Prometheus metrics
  GET  /             Redoc UI

The config file is watched; registry settings are applied on save.`,
	SilenceUsage: true,
	RunE:         serve,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.kolaw/config.yaml)")
	rootCmd.Flags().StringVar(&host, "host", "", "host to bind to (overrides server.host)")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides server.port)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return err
	}
	cfg := cm.Get()

	zc := zap.NewProductionConfig()
	if verbose || cfg.Log.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := zc.Build()
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := newClient(cfg.Registry, log)
	if err != nil {
		return err
	}

	metrics := kolaw.NewMetrics()
	srv := kolaw.NewServer(client, log, metrics, cfg.Server.RequestTimeout())

	cm.OnChange(func(c *config.Config) {
		next, err := newClient(c.Registry, log)
		if err != nil {
			log.Error("config reload rejected", zap.Error(err))
			return
		}
		srv.SetRegistry(next)
		log.Info("registry reloaded", zap.String("file", cm.File()))
	})
	cm.WatchConfig()

	if host == "" {
		host = cfg.Server.Host
	}
	if port == "" {
		port = cfg.Server.Port
	}
	addr := fmt.Sprintf("%s:%s", host, port)

	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("kolaw server listening",
			zap.String("addr", addr),
			zap.String("docs", fmt.Sprintf("http://%s/", addr)))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}

func newClient(r config.Registry, log *zap.Logger) (*net.Client, error) {
	return net.New(net.Config{
		OC:            r.OC,
		BaseURL:       r.BaseURL,
		Display:       r.Display,
		Timeout:       r.Timeout(),
		RatePerSecond: r.RatePerSecond,
		Retries:       r.Retries,
		Logger:        log,
	})
}
