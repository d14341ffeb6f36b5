package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/equipment-insights/pkg/server"
	"github.com/de-tools/equipment-insights/pkg/services/config"
	"github.com/de-tools/equipment-insights/pkg/services/insights"
	"github.com/de-tools/equipment-insights/pkg/store/cache"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb"
	"github.com/de-tools/equipment-insights/pkg/store/duckdb/inventory"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for equipment insights",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the application config file (defaults and INSIGHTS_* variables otherwise)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	settings, err := config.ResolveSettings(ctx, cfg.Analytics.ProfilesPath, cfg.Analytics.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve analytics profile: %w", err)
	}
	if cfg.Analytics.ProfilesPath != "" {
		logger.Info().Msgf("Analytics profile `%s` loaded from `%s`.", cfg.Analytics.Profile, cfg.Analytics.ProfilesPath)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.Store.DbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	store, err := inventory.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create inventory store: %w", err)
	}

	var responses cache.Cache
	if cfg.Cache.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("redis unreachable, responses will be recomputed")
		}
		responses = redisCache
	} else {
		memoryCache, err := cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.MaxEntries)
		if err != nil {
			return err
		}
		responses = memoryCache
	}

	svc := insights.NewService(insights.NewStoreRepository(store), settings, insights.WithCache(responses))

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	web := server.NewWebAPI(server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Insights: svc,
			Logger:   logger,
		},
	})

	return web.Start(ctx)
}
