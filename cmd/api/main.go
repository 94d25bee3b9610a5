package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pixelforge/studio-api/internal/config"
	"github.com/pixelforge/studio-api/internal/infra/http/handlers"
	"github.com/pixelforge/studio-api/internal/infra/http/middleware"
	"github.com/pixelforge/studio-api/internal/infra/integration/bedrock"
	"github.com/pixelforge/studio-api/internal/infra/mail"
	"github.com/pixelforge/studio-api/internal/infra/queue"
	"github.com/pixelforge/studio-api/internal/infra/sheets"
	"github.com/pixelforge/studio-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Lead store
	sheetsClient, err := sheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}
	store := sheets.NewRowStore(sheetsClient, cfg.Sheets.SheetName)

	// 2. Notification pipeline (optional)
	var producer usecase.LeadEventPublisher
	var rabbitConn *amqp.Connection
	if cfg.Rabbit.Enabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.Rabbit.User, cfg.Rabbit.Pass, cfg.Rabbit.Host, cfg.Rabbit.Port)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Ch)

		alertSender := mail.NewEmailSender(
			cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass,
			cfg.SMTP.From, cfg.AlertRecipient,
		)
		worker := queue.NewWorker(rabbitMQ.Ch, alertSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("RABBITMQ_HOST not set, lead alerts disabled")
	}

	// 3. Use cases
	createUC := usecase.NewCreateLeadUseCase(store, producer)
	listUC := usecase.NewListLeadsUseCase(store)
	updateStatusUC := usecase.NewUpdateStatusUseCase(store)
	appendNoteUC := usecase.NewAppendNoteUseCase(store)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(createUC, listUC, updateStatusUC, appendNoteUC)
	healthHandler := handlers.NewHealthHandler(sheetsClient.SpreadsheetID(), rabbitConn, cfg.Bedrock.ModelID)

	var contentHandler *handlers.ContentHandler
	if cfg.Bedrock.Enabled() {
		generator, err := bedrock.NewClient(ctx, cfg.Bedrock.Region, cfg.Bedrock.ModelID)
		if err != nil {
			log.Fatalf("bedrock client: %v", err)
		}
		contentHandler = handlers.NewContentHandler(generator)
	} else {
		log.Println("BEDROCK_MODEL_ID not set, content endpoints disabled")
	}

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Metrics)

	r.Route("/api/leads", func(r chi.Router) {
		r.Post("/", leadHandler.HandleCreate)
		r.Get("/", leadHandler.HandleList)
		r.Post("/{id}/status", leadHandler.HandleUpdateStatus)
		r.Post("/{id}/notes", leadHandler.HandleAppendNote)
	})

	if contentHandler != nil {
		r.Post("/api/content/blog", contentHandler.HandleBlogCopy)
		r.Post("/api/content/social", contentHandler.HandleSocialCopy)
	}

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("studio-api listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
