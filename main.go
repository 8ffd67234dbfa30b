package main

import (
	"context"
	"fmt"
	"onboarding-backend/config"
	apiv1 "onboarding-backend/controllers/v1"
	"onboarding-backend/db"
	"onboarding-backend/fiberlog"
	"onboarding-backend/initializers"
	"onboarding-backend/middleware"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimitMb * 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-role",
		AllowMethods: "GET, POST, PATCH, OPTIONS",
	}))
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	apiv1.InitHealthRouters(app, db.PingDB)

	//api
	api := fiber.New()
	app.Mount("/api", api)
	api.Use(middleware.ResolveRole(config.Conf.Auth.JWTSecret, *config.Conf.Auth.TrustClientRole))
	apiv1.InitAuthApiRouters(api)
	apiv1.InitCandidateApiRouters(api)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
