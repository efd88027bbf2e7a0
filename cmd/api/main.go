package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"kitchenadmin/internal/config"
	"kitchenadmin/internal/database"
	"kitchenadmin/internal/kitchenapi"
	"kitchenadmin/internal/middleware"
	"kitchenadmin/internal/modules/auth"
	"kitchenadmin/internal/modules/booking"
	"kitchenadmin/internal/modules/invoice"
	"kitchenadmin/internal/modules/reports"
	jwtsvc "kitchenadmin/internal/pkg/jwt"
	"kitchenadmin/internal/render"
	"kitchenadmin/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	api := kitchenapi.New(cfg.APIBaseURL)
	sessionRepo := repository.NewSessionRepository(db)
	signer := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	authService := auth.NewService(api, sessionRepo, signer)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(api)
	bookingHandler := booking.NewHandler(bookingService)

	renderer := render.NewPDFRenderer(cfg.LogoPath)
	invoiceService := invoice.NewService(api, renderer)
	invoiceHandler := invoice.NewHandler(invoiceService)

	reportsService := reports.NewService(api)
	reportsHandler := reports.NewHandler(reportsService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// everything else needs a live session
		protected := v1.Group("/")
		protected.Use(middleware.SessionAuth(authService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
			reportsHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
