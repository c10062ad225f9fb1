package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/genieops/leadmagnet-api/internal/generation"
	"github.com/genieops/leadmagnet-api/internal/infra/assets"
	"github.com/genieops/leadmagnet-api/internal/infra/database"
	"github.com/genieops/leadmagnet-api/internal/infra/http/handlers"
	"github.com/genieops/leadmagnet-api/internal/infra/http/middleware"
	"github.com/genieops/leadmagnet-api/internal/infra/integration/hfrouter"
	"github.com/genieops/leadmagnet-api/internal/infra/mail"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
	"github.com/genieops/leadmagnet-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("❌ Falha ao criar schema: %v", err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no RabbitMQ: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	magnetRepo := database.NewLeadMagnetRepository(db)
	leadRepo := database.NewLeadRepository(db)
	landingRepo := database.NewLandingPageRepository(db)
	templateRepo := database.NewEmailTemplateRepository(db)
	offerRepo := database.NewUpgradeOfferRepository(db)

	// 2. Integrações e Adapters
	llm := hfrouter.NewClient(os.Getenv("HF_API_KEY"), os.Getenv("HF_BASE_URL"), os.Getenv("HF_MODEL"))
	generator := generation.NewService(llm)
	renderer := assets.NewRenderer()
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("SMTP_HOST"), envOrInt("SMTP_PORT", 587),
		os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"),
		os.Getenv("FROM_EMAIL"),
	)

	// 3. Worker (consome a fila de entrega e dispara os emails)
	deliveryUC := usecase.NewDeliveryUseCase(leadRepo, magnetRepo, templateRepo, mailSender, renderer)
	worker := queue.NewWorker(rabbitMQ.Ch, deliveryUC)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	magnetUC := usecase.NewLeadMagnetUseCase(magnetRepo, generator, renderer)
	landingUC := usecase.NewLandingPageUseCase(landingRepo, magnetRepo, generator)
	templateUC := usecase.NewEmailTemplateUseCase(templateRepo, magnetRepo, leadRepo, generator, producer)
	leadUC := usecase.NewLeadUseCase(leadRepo, magnetRepo, producer, mailSender, renderer)
	offerUC := usecase.NewUpgradeOfferUseCase(offerRepo, leadRepo, mailSender)

	// 5. Handlers
	magnetHandler := handlers.NewLeadMagnetHandler(magnetUC)
	landingHandler := handlers.NewLandingPageHandler(landingUC)
	templateHandler := handlers.NewEmailTemplateHandler(templateUC)
	leadHandler := handlers.NewLeadHandler(leadUC)
	offerHandler := handlers.NewUpgradeOfferHandler(offerUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/lead-magnets", func(r chi.Router) {
		r.Post("/generate-ideas", magnetHandler.GenerateIdeas)
		r.Post("/", magnetHandler.Create)
		r.Get("/", magnetHandler.List)
		r.Get("/{id}", magnetHandler.Get)
		r.Put("/{id}", magnetHandler.Update)
		r.Delete("/{id}", magnetHandler.Delete)
		r.Post("/{id}/generate-content", magnetHandler.GenerateContent)
		r.Get("/{id}/download", magnetHandler.Download)
	})

	r.Route("/landing-pages", func(r chi.Router) {
		r.Post("/", landingHandler.Create)
		r.Get("/", landingHandler.List)
		r.Get("/{id}", landingHandler.Get)
		r.Get("/by-lead-magnet/{lead_magnet_id}", landingHandler.GetByLeadMagnet)
		r.Put("/{id}", landingHandler.Update)
		r.Delete("/{id}", landingHandler.Delete)
		r.Post("/{lead_magnet_id}/generate", landingHandler.Generate)
	})

	r.Route("/email-templates", func(r chi.Router) {
		r.Post("/", templateHandler.Create)
		r.Get("/", templateHandler.List)
		r.Get("/{id}", templateHandler.Get)
		r.Get("/by-lead-magnet/{lead_magnet_id}", templateHandler.ListByLeadMagnet)
		r.Put("/{id}", templateHandler.Update)
		r.Delete("/{id}", templateHandler.Delete)
		r.Post("/{lead_magnet_id}/generate-sequence", templateHandler.GenerateSequence)
		r.Post("/{id}/send-to-leads", templateHandler.SendToLeads)
		r.Post("/send-sequence-to-lead/{lead_id}", templateHandler.SendSequenceToLead)
	})

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", leadHandler.Create)
		r.Get("/", leadHandler.List)
		r.Get("/{id}", leadHandler.Get)
		r.Get("/by-lead-magnet/{lead_magnet_id}", leadHandler.ListByLeadMagnet)
		r.Put("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
		r.Post("/{id}/send-welcome-email", leadHandler.SendWelcomeEmail)
	})

	r.Route("/upgrade-offers", func(r chi.Router) {
		r.Post("/", offerHandler.Create)
		r.Get("/{id}", offerHandler.Get)
		r.Get("/by-lead-magnet/{lead_magnet_id}", offerHandler.ListByLeadMagnet)
		r.Delete("/{id}", offerHandler.Delete)
		r.Post("/{id}/send-to-lead/{lead_id}", offerHandler.SendToLead)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 LeadMagnet API rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
