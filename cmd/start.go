package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ingredient-manager/core/journal"
	"ingredient-manager/core/loader"
	"ingredient-manager/core/logger"
	"ingredient-manager/core/middleware/auth"
	"ingredient-manager/core/middleware/rayid"
	"ingredient-manager/core/objectstore"

	"ingredient-manager/feature/containers"
	"ingredient-manager/feature/integrity"
	"ingredient-manager/feature/transfer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ingredient-manager/docs/swagger"
)

// @title Ingredient Manager API
// @version 1.0
// @description API for storing item stacks in containers and transferring them between containers.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ingredient manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and container store
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		cfg, logg := rt.cfg, rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := rt.containers.Repository().CheckSchema(context.Background()); err != nil {
			logg.Fatal("Container schema check failed", zap.Error(err))
		}
		logg.Info("Connected to container database", zap.String("driver", cfg.Database.Driver))

		// 2. Object store and journal (Optional)
		store, err := objectstore.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		var j *journal.Journal
		if cfg.Journal.Enabled {
			if err := objectstore.EnsureBucket(context.Background(), store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Journal bucket unavailable, journaling disabled", zap.Error(err))
			} else {
				j = journal.New(store, cfg.Storage.Bucket, cfg.Journal)
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 3. Features
		mgr := loader.NewManager(logg)
		mgr.Register(containers.NewFeature(rt.containers))
		mgr.Register(transfer.NewFeature(transfer.NewService(rt.containers.Repository(), j, logg)))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.Region, []string{cfg.Journal.Prefix}, rt.db, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 4. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 5. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			logg.Warn("Shutdown did not complete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
