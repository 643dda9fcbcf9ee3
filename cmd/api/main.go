package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/santaan/crm-api/internal/config"
	"github.com/santaan/crm-api/internal/infra/auth"
	"github.com/santaan/crm-api/internal/infra/database"
	"github.com/santaan/crm-api/internal/infra/http/handlers"
	"github.com/santaan/crm-api/internal/infra/http/middleware"
	"github.com/santaan/crm-api/internal/infra/mail"
	"github.com/santaan/crm-api/internal/infra/queue"
	"github.com/santaan/crm-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	contactRepo := database.NewContactRepository(db)
	adminRepo := database.NewAdminUserRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.CareTeamEmail)
	sessions := auth.NewSessionManager(cfg.SessionSecret)
	google := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL)

	// 3. Worker (consumes captured contacts, alerts the care team)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	subscribeUC := usecase.NewSubscribeNewsletterUseCase(contactRepo, producer)
	seminarUC := usecase.NewRegisterSeminarUseCase(contactRepo, producer)
	trackCallUC := usecase.NewTrackCallUseCase(contactRepo)
	authorizeUC := usecase.NewAuthorizeAdminUseCase(cfg.AdminAllowlist, adminRepo)

	// 5. Handlers
	intakeLimiter := handlers.NewRateLimiter(10, time.Minute) // 10 req/min per IP
	newsletterHandler := handlers.NewNewsletterHandler(subscribeUC, intakeLimiter)
	seminarHandler := handlers.NewSeminarHandler(seminarUC, intakeLimiter)
	callHandler := handlers.NewCallHandler(trackCallUC, intakeLimiter)
	authHandler := handlers.NewAuthHandler(sessions, google, authorizeUC, cfg.FrontendURL)
	adminHandler := handlers.NewAdminHandler(contactRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RouteGate(sessions, authorizeUC))

	r.Post("/newsletter/subscribe", newsletterHandler.Subscribe)
	r.Post("/seminar/register", seminarHandler.Register)
	r.Post("/track-call", callHandler.Track)

	r.Get("/auth/google/login", authHandler.Login)
	r.Get("/auth/google/callback", authHandler.Callback)
	r.Get("/auth/logout", authHandler.Logout)
	r.Get("/auth/me", authHandler.Me)

	r.Get("/admin/contacts", adminHandler.ListContacts)
	r.Get("/admin/stats", adminHandler.Stats)
	r.Get("/profile", authHandler.Me)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 Santaan CRM API listening on %s", addr)
	http.ListenAndServe(addr, r)
}
