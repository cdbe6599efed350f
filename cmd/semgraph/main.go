package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	semgraph "github.com/vilterp/semgraph/pkg"
	"github.com/vilterp/semgraph/pkg/config"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

const version = "0.1.0"

type rootOptions struct {
	configPath string
	dataFile   string
	logLevel   string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "semgraph",
		Short: "Typed class/instance/terminal graph store",
		Long: `semgraph keeps classes, properties, instances, terminal values and
the triples linking them in a single bolt data file.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.dataFile, "data-file", "", "Data file (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	cmd.AddCommand(initCmd(opts))
	cmd.AddCommand(shellCmd(opts))
	cmd.AddCommand(serveCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("semgraph version %s\n", version)
		},
	})
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(o.configPath); err != nil {
			return nil, err
		}
	}
	if o.dataFile != "" {
		cfg.DataFile = o.dataFile
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}

// openStore opens and initializes the configured data file. Initialize is
// idempotent, so every command can call it.
func openStore(cfg *config.Config) (*semgraph.Store, *zap.Logger, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := semgraph.Open(cfg.DataFile, &semgraph.Options{Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	if err := store.Initialize(); err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, logger, nil
}

func initCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data file and its collections if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			store, logger, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer store.Close()

			storeID, err := store.StoreID()
			if err != nil {
				return err
			}
			fmt.Printf("initialized %s (store %s)\n", cfg.DataFile, storeID)
			return nil
		},
	}
}

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve prometheus metrics and pprof for the data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.MetricsAddr = addr
			}
			store, logger, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			server := semgraph.NewMetricsServer(store, cfg.MetricsAddr)

			// graceful shutdown on Ctrl-C
			ctrlCChan := make(chan os.Signal, 1)
			signal.Notify(ctrlCChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-ctrlCChan
				if err := server.Close(); err != nil {
					clog.Warn(store, "error closing metrics server", zap.Error(err))
				}
			}()

			err = server.ListenAndServe()
			if closeErr := store.Close(); closeErr != nil {
				clog.Warn(store, "error closing store", zap.Error(closeErr))
			}
			if err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
