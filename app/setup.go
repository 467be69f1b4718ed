package app

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sahilchouksey/college-connect/api"
	"github.com/sahilchouksey/college-connect/config"
	"github.com/sahilchouksey/college-connect/router"
	"github.com/sahilchouksey/college-connect/services/cron"
	"github.com/sahilchouksey/college-connect/services/mirror"
	"github.com/sahilchouksey/college-connect/store"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// In-memory entity store, seeded from fixtures. Everything resets
	// on restart.
	st := store.NewMemoryStore()
	st.Seed()

	// Best-effort webhook mirror (spreadsheet sync)
	webhookMirror := mirror.NewWebhookMirror(getEnv.MIRROR_WEBHOOK_URL)

	// Cron jobs (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(st, webhookMirror)
		if err := cronManager.Start(); err != nil {
			print("Warning: Failed to start cron jobs\n")
			print("Error: ", err.Error(), "\n")
			// Don't fail the app, just log the warning
		}
	}

	// Defer closing the store and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		st.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Setup Routes
	router.SetupRoutes(app, st, getEnv, webhookMirror)

	// Get the PORT & Start the Server
	return server.Run()
}
