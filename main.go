package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/configs"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/middlewares"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/routes"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve the register UI
	r.Static("/app", "./web")

	// Change-event hub must run before any mutating route is served
	hub := ws.NewHub()
	go hub.Run()

	routes.RegisterRoutes(r, configs.DB(), hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("POS server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
