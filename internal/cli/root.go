package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/factory"
	redisstorage "github.com/Ch1mpleo/ninjaorigin-go/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "ninjaorigin",
		Short: "Account and save-data tool for the NinjaOrigin client",
		Long: `ninjaorigin manages the local account registry and player save data
used by the game client: registering accounts, verifying logins, and
inspecting or resetting player profiles.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			factoryCfg := factory.Config{
				Logger:      logger,
				StorageType: cfg.StorageType,
				SaveDir:     cfg.SaveDir,
			}
			if cfg.StorageType == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				if cfg.RedisURL != "" {
					redisCfg.URL = cfg.RedisURL
				}
				factoryCfg.RedisConfig = &redisCfg
			}
			if cfg.SeedAccount {
				factoryCfg.Seed = &factory.SeedAccount{Username: "admin", Password: "admin123"}
			}

			var err error
			app, err = factory.New(cmd.Context(), factoryCfg)
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: file, memory, redis (env: NORIGIN_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "Save-data directory for file storage (env: NORIGIN_SAVE_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for redis storage (env: NORIGIN_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.SeedAccount, "seed-dev-account", cfg.SeedAccount, "Create the development account (admin/admin123) if missing")

	// Add subcommands
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newProfileCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
