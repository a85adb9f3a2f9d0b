package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sushihentaime/blogtasks/internal/blogservice"
	"github.com/sushihentaime/blogtasks/internal/common"
)

type application struct {
	config   *Config
	logger   *slog.Logger
	blogs    blogservice.BlogRepository
	limiters *common.Cache
}

func newApplication(cfg *Config, logger *slog.Logger, blogs blogservice.BlogRepository) *application {
	return &application{
		config:   cfg,
		logger:   logger,
		blogs:    blogs,
		limiters: common.NewCache(3*time.Minute, time.Minute),
	}
}

func newLogger(cfg *Config) *slog.Logger {
	level, _ := cfg.level()
	opts := &slog.HandlerOptions{Level: level}

	if cfg.isDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func main() {
	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("application stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run owns the database pool, so it is closed on every return path.
func run(cfg *Config, logger *slog.Logger) error {
	// Initialize the database
	db, err := common.NewDB(cfg.DatabaseURL, common.DBOptions{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		MaxIdleTime:  cfg.DBMaxIdleTime,
	})
	if err != nil {
		return fmt.Errorf("connect to the database: %w", err)
	}
	defer func() {
		if err := common.CloseDB(db); err != nil {
			logger.Error("failed to close the database", slog.String("error", err.Error()))
		}
	}()

	if !cfg.isDevelopment() {
		applied, err := common.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations checked", slog.Bool("applied", applied))
	}

	app := newApplication(cfg, logger, blogservice.NewBlogModel(db))

	if cfg.SeedBlog {
		if err := app.seed(); err != nil {
			return fmt.Errorf("seed blog: %w", err)
		}
	}

	// Start the HTTP server
	if err := app.serve(cfg.Port); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}

// seed stores one blog owned by a random user.
func (app *application) seed() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	blog, err := app.blogs.CreateOne(ctx, blogservice.CreateBlog{
		UserID: uuid.New(),
		Name:   "New blog",
	})
	if err != nil {
		return err
	}

	app.logger.Debug("seeded blog", slog.String("blog_id", blog.BlogID.String()), slog.String("user_id", blog.UserID.String()))
	return nil
}
