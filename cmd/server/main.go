package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/auth"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/db"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/handlers"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/insight"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/middleware"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/notify"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/telemetry"
)

func newPersister() (db.Persister, error) {
	if os.Getenv("MONGO_URI") != "" {
		client, err := db.ConnectMongo()
		if err != nil {
			return nil, err
		}
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "fleetflow"
		}
		log.WithField("database", dbName).Info("Using MongoDB persistence")
		return db.NewMongoPersister(client.Database(dbName).Collection("snapshots")), nil
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	log.WithField("dir", dataDir).Info("Using file persistence")
	return db.NewFilePersister(dataDir)
}

func newInsightClient(ctx context.Context) insight.Client {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Info("GEMINI_API_KEY not set, using offline insight client")
		return insight.Static{}
	}
	client, err := insight.NewGemini(ctx, apiKey)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize Gemini client, using offline insight client")
		return insight.Static{}
	}
	return client
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	persister, err := newPersister()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize persistence")
	}

	fleetStore, err := store.New(persister)
	if err != nil {
		log.WithError(err).Fatal("Failed to load fleet data")
	}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	insightClient := newInsightClient(ctx)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, fleetStore)
	vehicleHandler := handlers.NewVehicleHandler(fleetStore)
	driverHandler := handlers.NewDriverHandler(fleetStore)
	tripHandler := handlers.NewTripHandler(fleetStore)
	maintenanceHandler := handlers.NewMaintenanceHandler(fleetStore)
	fineHandler := handlers.NewFineHandler(fleetStore)
	occurrenceHandler := handlers.NewOccurrenceHandler(fleetStore)
	reportHandler := handlers.NewReportHandler(fleetStore)
	insightHandler := handlers.NewInsightHandler(insightClient, reportHandler)
	adminHandler := handlers.NewAdminHandler(authService, fleetStore)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)
	mux.HandleFunc("/api/auth/profile", authHandler.Profile)
	mux.HandleFunc("/api/auth/change-password", authHandler.ChangePassword)

	mux.HandleFunc("/api/vehicles", vehicleHandler.Collection)
	mux.HandleFunc("/api/vehicles/", vehicleHandler.Item)
	mux.HandleFunc("/api/drivers", driverHandler.Collection)
	mux.HandleFunc("/api/drivers/", driverHandler.Item)

	mux.HandleFunc("/api/trips/active", tripHandler.Active)
	mux.HandleFunc("/api/trips/completed", tripHandler.Completed)
	mux.HandleFunc("/api/trips/start", tripHandler.Start)
	mux.HandleFunc("/api/trips/end", tripHandler.End)
	mux.HandleFunc("/api/trips/cancel", tripHandler.Cancel)
	mux.HandleFunc("/api/trips/update", tripHandler.Update)
	mux.HandleFunc("/api/trips/scheduled", tripHandler.Scheduled)
	mux.HandleFunc("/api/trips/scheduled/", tripHandler.ScheduledItem)
	mux.HandleFunc("/api/checklists", tripHandler.Checklists)

	mux.HandleFunc("/api/maintenance", maintenanceHandler.Collection)
	mux.HandleFunc("/api/maintenance/resolve", maintenanceHandler.Resolve)
	mux.HandleFunc("/api/fines", fineHandler.Collection)
	mux.HandleFunc("/api/fines/", fineHandler.Item)
	mux.HandleFunc("/api/occurrences", occurrenceHandler.Collection)
	mux.HandleFunc("/api/notifications", occurrenceHandler.Notifications)
	mux.HandleFunc("/api/notifications/read", occurrenceHandler.MarkNotificationRead)

	mux.HandleFunc("/api/reports/summary", reportHandler.Summary)
	mux.HandleFunc("/api/insights/route", insightHandler.Route)
	mux.HandleFunc("/api/insights/optimize", insightHandler.Optimize)
	mux.HandleFunc("/api/insights/fleet", insightHandler.Fleet)
	mux.HandleFunc("/api/navigation/link", insightHandler.NavigationLink)
	mux.HandleFunc("/api/rodizio", insightHandler.Rodizio)

	mux.HandleFunc("/api/admin/reset", adminHandler.Reset)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := rateLimiter.RateLimit(300, 60)(
		authMiddleware.Authenticate(
			authMiddleware.RequirePasswordChanged(mux)))

	// Optional MQTT telemetry ingest
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		ingestor := telemetry.NewIngestor(fleetStore, broker, "fleetflow-server")
		if err := ingestor.Start(telemetry.DefaultTopic); err != nil {
			log.WithError(err).Error("Failed to start telemetry ingest")
		} else {
			defer ingestor.Stop()
		}
	}

	notifier := notify.New(fleetStore, 0)
	go notifier.Run(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Fatal("Server failed")
	}
}
