package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/application"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/config"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/email"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/infrastructure/client"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/infrastructure/repository"
	handlers "github.com/jhalaharsh71/hotel-frontend-sub001/internal/interfaces/http"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/scheduler"
	services "github.com/jhalaharsh71/hotel-frontend-sub001/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length,Content-Disposition",
		MaxAge:           86400,
	}))

	// Booking platform clients
	apiClient := client.NewClient(cfg.BookingAPIBaseURL, cfg.BookingAPITimeout)
	bookingClient := client.NewBookingClient(apiClient)
	availabilityClient := client.NewAvailabilityClient(apiClient)
	reviewClient := client.NewReviewClient(apiClient)
	guestClient := client.NewGuestDirectoryClient(apiClient)

	guestCache := application.NewKnownGuestCache(guestClient, cfg.KnownGuestCacheTTL)

	// Email client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil
	}
	var mailer application.ConfirmationMailer
	if emailClient != nil {
		mailer = emailClient
	}

	// Receipts
	receiptRepo := repository.NewReceiptRepository(db)
	receiptArchive, err := services.NewReceiptArchive()
	if err != nil {
		log.Printf("Warning: receipt archive disabled: %v", err)
		receiptArchive = nil
	}
	receiptHandler := handlers.NewReceiptHandler(receiptRepo, receiptArchive)

	retentionScheduler := scheduler.NewReceiptRetentionScheduler(
		receiptRepo,
		time.Duration(cfg.ReceiptRetentionDays)*24*time.Hour,
	)
	retentionScheduler.Start()
	defer retentionScheduler.Stop()

	// Drafts
	draftHandler := handlers.NewDraftHandler(guestCache)

	// Bookings
	orchestrator := application.NewBookingSubmissionOrchestrator(
		bookingClient,
		receiptRepo,
		mailer,
		application.RandomOutcome{SuccessRate: cfg.PaymentSuccessRate},
		cfg.PaymentProcessingDelay,
		cfg.PaymentSuccessDelay,
	)
	bookingActions := application.NewBookingActionsService(bookingClient, reviewClient)
	submitLimiter := application.NewSubmissionLimiter(cfg.SubmitRateWindow, cfg.SubmitRateLimit)
	bookingHandler := handlers.NewBookingHandler(orchestrator, bookingActions, submitLimiter)

	// Reviews
	reviewWorkflow := application.NewReviewWorkflow(bookingClient, reviewClient)
	reviewHandler := handlers.NewReviewHandler(reviewWorkflow, reviewClient)

	// Availability
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityClient)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Use(handlers.BearerAuth(cfg.JWTSecret))

	drafts := api.Group("/drafts")
	drafts.Post("/resize", draftHandler.Resize)
	drafts.Post("/guest-field", draftHandler.UpdateGuestField)
	drafts.Post("/known-guest", draftHandler.ApplyKnownGuest)
	drafts.Post("/known-guest/clear", draftHandler.ClearKnownGuest)
	drafts.Post("/known-guest/options", draftHandler.SelectableKnownGuests)
	drafts.Post("/quote", draftHandler.Quote)

	api.Get("/availability", availabilityHandler.Search)

	bookings := api.Group("/bookings")
	bookings.Post("/", bookingHandler.SubmitBooking)
	bookings.Get("/:id", bookingHandler.GetBooking)
	bookings.Patch("/:id/contact", bookingHandler.UpdateContact)
	bookings.Post("/:id/cancel", bookingHandler.CancelBooking)
	bookings.Get("/:id/receipt", receiptHandler.GetBookingReceipt)
	bookings.Get("/:id/review", reviewHandler.GetReview)
	bookings.Post("/:id/review", reviewHandler.CreateReview)

	reviews := api.Group("/reviews")
	reviews.Put("/:id", reviewHandler.UpdateReview)
	reviews.Delete("/:id", reviewHandler.DeleteReview)

	receipts := api.Group("/receipts")
	receipts.Get("/:id", receiptHandler.GetReceipt)
	receipts.Get("/:id/pdf", receiptHandler.DownloadPDF)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
