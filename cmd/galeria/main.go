package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lewtec/galeria/gallery"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "galeria [folder|config.yaml]",
	Short: "Self-hosted photo gallery with tags",
	Long: strings.TrimSpace(`
Upload photos, tag them with free text labels and browse them by tag.

If you provide a folder, a default config.yaml and a gallery.db are created
inside it. If you provide a config file, it is used as is. Without arguments
the --config flag is used, falling back to a gallery.db in the current
directory.
    `),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, configFile, created, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			config.Server.Addr = addr
		}

		logger, err := gallery.NewLogger(config.Log)
		if err != nil {
			return err
		}
		defer logger.Sync()
		if created {
			logger.Info("created default config", zap.String("config", configFile))
		}

		app, closer, err := gallery.Open(cmd.Context(), config, logger)
		if err != nil {
			return fmt.Errorf("failed to open gallery: %w", err)
		}
		defer closer.Close()

		logger.Info("starting server",
			zap.String("config", configFile),
			zap.String("backend", config.Storage.Backend),
			zap.String("storage", config.Storage.Path),
			zap.String("addr", config.Server.Addr),
		)
		return serve(cmd.Context(), config.Server.Addr, app.GetHTTPHandler())
	},
}

// serve runs the server until ctx is done
func serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// loadConfig resolves the configuration from the positional argument or the
// --config flag. A folder argument is initialized with a default config,
// reported through created.
func loadConfig(cmd *cobra.Command, args []string) (config *gallery.Config, configFile string, created bool, err error) {
	if len(args) == 1 {
		arg := args[0]
		if stat, err := os.Stat(arg); err == nil && stat.IsDir() {
			configFile = filepath.Join(arg, "config.yaml")
			if _, err := os.Stat(configFile); os.IsNotExist(err) {
				if err := createSampleConfig(configFile); err != nil {
					return nil, "", false, fmt.Errorf("failed to create config: %w", err)
				}
				created = true
			}
		} else {
			configFile = arg
		}
	} else {
		configFile, _ = cmd.Flags().GetString("config")
	}

	if configFile == "" {
		config = gallery.DefaultConfig()
	} else {
		config, err = gallery.LoadConfig(configFile)
		if err != nil {
			return nil, "", false, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if database, _ := cmd.Flags().GetString("database"); database != "" {
		config.Storage.Backend = gallery.BackendSQLite
		config.Storage.Path = database
	}
	return config, configFile, created, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file of the gallery")
	rootCmd.PersistentFlags().StringP("database", "d", "", "SQLite database path, overrides the configured storage")
	rootCmd.Flags().StringP("addr", "a", "", "Address to bind the webserver (default from config, :8080)")
}
