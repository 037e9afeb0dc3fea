package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vendapro/crm-api/internal/infra/database"
	"github.com/vendapro/crm-api/internal/infra/http/handlers"
	appmiddleware "github.com/vendapro/crm-api/internal/infra/http/middleware"
	"github.com/vendapro/crm-api/internal/infra/mail"
	"github.com/vendapro/crm-api/internal/infra/queue"
	"github.com/vendapro/crm-api/internal/usecase"
	"github.com/vendapro/crm-api/pkg/logger"
)

func main() {
	godotenv.Load()

	log := logger.New(logger.Config{
		Env:   os.Getenv("APP_ENV"),
		Level: os.Getenv("LOG_LEVEL"),
	})

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no Postgres")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no RabbitMQ")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	companyRepo := database.NewCompanyRepository(db)
	leadTaskRepo := database.NewLeadTaskRepository(db)
	clientRepo := database.NewClientRepository(db)
	clientTaskRepo := database.NewClientTaskRepository(db)
	promotionRepo := database.NewPromotionAttemptRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	mailPort, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if err != nil {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 3. Worker: consome promoções e manda as boas-vindas
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.PromotionsQueue)

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, companyRepo)
	archiveLeadUC := usecase.NewArchiveLeadUseCase(leadRepo)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo, companyRepo, leadTaskRepo, promotionRepo)
	promoteLeadUC := usecase.NewPromoteLeadUseCase(leadRepo, companyRepo, promotionRepo, producer)
	createTaskUC := usecase.NewCreateLeadTaskUseCase(leadTaskRepo, leadRepo, producer)
	updateTaskUC := usecase.NewUpdateLeadTaskUseCase(leadTaskRepo, producer)
	transitionTaskUC := usecase.NewTransitionLeadTaskUseCase(leadTaskRepo, producer)
	deleteTaskUC := usecase.NewDeleteLeadTaskUseCase(leadTaskRepo)
	clientTaskUC := usecase.NewClientTaskUseCase(clientTaskRepo, clientRepo)
	notificationsUC := usecase.NewNotificationsUseCase(leadRepo, leadTaskRepo)

	jwtSecret := os.Getenv("JWT_SECRET")
	authUC := usecase.NewAuthUseCase(userRepo, jwtSecret)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, archiveLeadUC, promoteLeadUC, deleteLeadUC, leadRepo)
	taskHandler := handlers.NewLeadTaskHandler(createTaskUC, updateTaskUC, transitionTaskUC, deleteTaskUC, leadTaskRepo)
	clientHandler := handlers.NewClientHandler(clientRepo, clientTaskUC)
	notificationHandler := handlers.NewNotificationHandler(notificationsUC)
	authHandler := handlers.NewAuthHandler(authUC)
	healthHandler := handlers.NewHealthHandler(db)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{os.Getenv("FRONTEND_ORIGIN"), "http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/register", authHandler.HandleRegister)
	r.Post("/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(jwtSecret))

		r.Post("/leads", leadHandler.HandleCreate)
		r.Get("/leads", leadHandler.HandleList)
		r.Get("/leads/{id}", leadHandler.HandleGet)
		r.Delete("/leads/{id}", leadHandler.HandleDelete)
		r.Post("/leads/{id}/archive", leadHandler.HandleArchive)
		r.Post("/leads/{id}/promote", leadHandler.HandlePromote)
		r.Post("/leads/{id}/promote/resume", leadHandler.HandleResumePromotion)

		r.Post("/lead-tasks", taskHandler.HandleCreate)
		r.Get("/lead-tasks", taskHandler.HandleList)
		r.Put("/lead-tasks/{id}", taskHandler.HandleUpdate)
		r.Delete("/lead-tasks/{id}", taskHandler.HandleDelete)
		r.Post("/lead-tasks/{id}/transition", taskHandler.HandleTransition)

		r.Get("/clients", clientHandler.HandleList)
		r.Get("/clients/{id}", clientHandler.HandleGet)
		r.Post("/client-tasks", clientHandler.HandleCreateTask)
		r.Get("/client-tasks", clientHandler.HandleListTasks)
		r.Put("/client-tasks/{id}", clientHandler.HandleUpdateTask)
		r.Delete("/client-tasks/{id}", clientHandler.HandleDeleteTask)

		r.Get("/notifications", notificationHandler.HandleGet)
		r.Post("/notifications/ack", notificationHandler.HandleAcknowledge)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("API do funil de vendas no ar")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal().Err(err).Msg("servidor caiu")
	}
}
