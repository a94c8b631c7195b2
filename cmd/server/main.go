package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"habit-tracker-go/internal/config"
	"habit-tracker-go/internal/database"
	httpserver "habit-tracker-go/internal/http"
	"habit-tracker-go/internal/logger"
	"habit-tracker-go/internal/tracker"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "habits",
	Short: "Habit tracker HTTP server",
	Long: `Serves the habit tracker API: habits, daily completions, monthly
dashboards and a friends leaderboard.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and the default user, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db)
		logger.Info("schema up to date", "driver", cfg.DBDriver)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// open loads configuration, connects to the store and bootstraps it.
func open(ctx context.Context) (*config.Config, *gorm.DB, error) {
	_ = godotenv.Load(envFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Bootstrap(ctx, db); err != nil {
		database.Close(db)
		return nil, nil, err
	}
	return cfg, db, nil
}

func serve(ctx context.Context) error {
	cfg, db, err := open(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db)

	loc, err := time.LoadLocation(cfg.TZDefault)
	if err != nil {
		logger.Warn("unknown TZ_DEFAULT, using UTC", "tz", cfg.TZDefault)
		loc = time.UTC
	}

	gin.SetMode(cfg.GinMode)
	svc := tracker.NewService(db, tracker.WithLocation(loc))
	r := httpserver.NewServer(cfg, svc)

	logger.Info("listening", "port", cfg.Port)
	return r.Run(":" + cfg.Port)
}
