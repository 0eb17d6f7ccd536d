package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/physiosync/physiosync-server/clinic"
	"github.com/physiosync/physiosync-server/controllers"
	"github.com/physiosync/physiosync-server/cron"
	"github.com/physiosync/physiosync-server/gemini"
	"github.com/physiosync/physiosync-server/redisdb"
	"github.com/physiosync/physiosync-server/routes"
	"github.com/physiosync/physiosync-server/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	ctx := context.Background()

	client, err := redisdb.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	svc := clinic.NewService(store.New(client))
	if err := svc.Load(ctx); err != nil {
		log.Fatal("Failed to load collections: ", err)
	}

	var parser controllers.MessageParser
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		p, err := gemini.NewParser(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatal("Failed to create gemini parser: ", err)
		}
		defer p.Close()
		parser = p
	} else {
		log.Println("GEMINI_API_KEY not set, message extraction disabled")
	}

	h := controllers.NewHandler(svc, parser)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("PhysioSync API")
	})

	routes.SetupAuthRoutes(app, h, svc)
	routes.SetupAppointmentRoutes(app, h, svc)
	routes.SetupPatientRoutes(app, h, svc)
	routes.SetupAdminRoutes(app, h, svc)

	cron.StartReminderJob(svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
