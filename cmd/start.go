package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"deposit-desk/core/config"
	"deposit-desk/core/database"
	"deposit-desk/core/loader"
	"deposit-desk/core/logger"
	"deposit-desk/core/middleware/auth"
	"deposit-desk/core/middleware/rayid"
	"deposit-desk/core/storage"

	"deposit-desk/feature/deposits"
	depositmodels "deposit-desk/feature/deposits/models"
	"deposit-desk/feature/deposits/recognition"
	"deposit-desk/feature/orders"
	ordermodels "deposit-desk/feature/orders/models"
	"deposit-desk/feature/products"
	productmodels "deposit-desk/feature/products/models"
	"deposit-desk/feature/reconcile"
	reconcilemodels "deposit-desk/feature/reconcile/models"
	"deposit-desk/feature/templates"
	templatemodels "deposit-desk/feature/templates/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "deposit-desk/docs/swagger"
)

// @title Deposit Desk API
// @version 1.0
// @description Back-office API for live-commerce sellers: orders, deposits and reconciliation.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the deposit desk server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := migrate(db, logg); err != nil {
			logg.Fatal("Failed to migrate database", zap.Error(err))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 6. Initialize Feature Loader
		recognizer := recognition.NewClient(cfg.Recognition)
		sellerHeader := cfg.Server.SellerHeader

		mgr := loader.NewManager()
		mgr.Register(orders.NewFeature(db, logg, sellerHeader))
		mgr.Register(deposits.NewFeature(db, store, cfg.Storage.Bucket, recognizer, logg, sellerHeader))
		mgr.Register(reconcile.NewFeature(db, logg, sellerHeader))
		mgr.Register(products.NewFeature(db, logg, sellerHeader))
		mgr.Register(templates.NewFeature(db, logg, sellerHeader))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// migrate creates the schema and verifies the columns the features depend
// on actually exist.
func migrate(db *gorm.DB, logg *zap.Logger) error {
	err := db.AutoMigrate(
		&ordermodels.Order{},
		&ordermodels.OrderItem{},
		&depositmodels.Deposit{},
		&reconcilemodels.Run{},
		&productmodels.Product{},
		&templatemodels.Template{},
	)
	if err != nil {
		return err
	}

	checks := map[string][]string{
		ordermodels.Order{}.TableName():       ordermodels.Columns(),
		depositmodels.Deposit{}.TableName():   depositmodels.Columns(),
		reconcilemodels.Run{}.TableName():     reconcilemodels.Columns(),
		productmodels.Product{}.TableName():   productmodels.Columns(),
		templatemodels.Template{}.TableName(): templatemodels.Columns(),
	}
	for table, expected := range checks {
		missing, err := database.VerifyColumns(db, table, expected)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			logg.Fatal("Schema verification failed",
				zap.String("table", table),
				zap.Strings("missing", missing),
			)
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
