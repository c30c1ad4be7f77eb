package main

import (
	"log"
	"os"
	"strings"

	"tokopos/controllers"
	"tokopos/routes"
	"tokopos/storedb"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	store, err := storedb.OpenFromEnv()
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}
	defer store.Close()

	ctrl := controllers.NewSet(store)
	if err := ctrl.Auth.Seed(); err != nil {
		log.Fatalf("seeding bootstrap owner: %v", err)
	}

	app := fiber.New()
	app.Use(logger.New())

	allow := os.Getenv("ALLOW_ORIGINS")
	if strings.TrimSpace(allow) == "" {
		allow = "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(app, ctrl)

	addr := os.Getenv("POS_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Fatal(app.Listen(addr))
}
