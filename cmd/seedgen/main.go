package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/casasbr/seedgen/config"
	"github.com/casasbr/seedgen/internal/catalog"
	"github.com/casasbr/seedgen/internal/random"
	"github.com/casasbr/seedgen/pkg/logger"
	"github.com/casasbr/seedgen/pkg/metrics"
	"github.com/casasbr/seedgen/pkg/storage"

	// Import migrations so their init() funcs run and register themselves.
	_ "github.com/casasbr/seedgen/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seedgen:", err)
		os.Exit(1)
	}
}

var (
	catalogFlag  string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:           "seedgen",
	Short:         "Synthetic property listings for the CasasBR rental app",
	Long:          "seedgen generates synthetic property listings, swaps their placeholder images for local photos, checks them and loads them into the database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "YAML catalog replacing the built-in tables (env CATALOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")

	// Data
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(patchImagesCmd)
	rootCmd.AddCommand(validateCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}

// boot loads config, applies global flag overrides and starts logging and storage.
func boot() error {
	if err := config.Load(); err != nil {
		return err
	}
	if catalogFlag != "" {
		config.Set("CATALOG_FILE", catalogFlag)
	}
	if logLevelFlag != "" {
		config.Set("LOG_LEVEL", logLevelFlag)
	}
	if err := logger.Setup(); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	return storage.Connect()
}

// track runs fn as the named command, then records and flushes run metrics.
func track(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.ObserveRun(name, start, err)

	sink := metrics.Sink{
		Textfile:       config.MetricsTextfile(),
		PushgatewayURL: config.MetricsPushgatewayURL(),
		Job:            "seedgen",
	}
	if ferr := metrics.Flush(sink); ferr != nil {
		logger.Warn("metrics flush failed", "error", ferr)
	}
	// main reports err on stderr; the log only records the outcome.
	logger.Debug("command finished", "command", name, "ok", err == nil, "duration", time.Since(start))
	logger.Close()
	return err
}

func loadCatalog() (*catalog.Catalog, error) {
	return catalog.LoadOrDefault(config.CatalogFile())
}

// resolveSeed prefers --seed, then SEED_RANDOM_SEED, then a fresh random seed.
func resolveSeed(cmd *cobra.Command, flagValue uint64) (uint64, error) {
	if cmd.Flags().Changed("seed") {
		return flagValue, nil
	}
	s, ok, err := config.RandomSeed()
	if err != nil {
		return 0, err
	}
	if ok {
		return s, nil
	}
	return random.NewSeed(), nil
}

// seedFilePath prefers the command's flag over SEED_FILE.
func seedFilePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.SeedFile()
}
