package main

import (
	"log"
	"time"

	config "github.com/campuskit/college_admin/configs"
	"github.com/campuskit/college_admin/handlers"
	"github.com/campuskit/college_admin/jobs"
	"github.com/campuskit/college_admin/routes"
	"github.com/campuskit/college_admin/services"
	"github.com/campuskit/college_admin/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	st := store.New()
	st.SeedCatalog()
	st.SeedAdmin()

	registry := services.NewStudentRegistry(st)
	ledger := services.NewFeeLedger(st, services.LedgerConfigFromEnv())
	occupancy := services.NewOccupancyManager(st)
	desk := services.NewAdmissionDesk(st)
	reporting := services.NewReporting(st)

	sweep := &jobs.OverdueSweep{Ledger: ledger}
	c := cron.New()
	c.AddFunc("*/10 * * * *", sweep.Run)
	go c.Start()
	log.Println("✅ Cron job for overdue fees scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "College Admin",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to College Admin API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(st))
	routes.StudentRoutes(app, handlers.NewStudentHandler(registry, ledger))
	routes.FeeRoutes(app, handlers.NewFeeHandler(ledger))
	routes.HostelRoutes(app, handlers.NewHostelHandler(occupancy))
	routes.AdmissionRoutes(app, handlers.NewAdmissionHandler(desk))
	routes.DashboardRoutes(app, handlers.NewDashboardHandler(reporting))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigDefault("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	err := app.Listen(":" + port)
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
