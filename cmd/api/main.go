package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"taacheck/internal/adapter/api"
	"taacheck/internal/adapter/api/handler"
	apimiddleware "taacheck/internal/adapter/api/middleware"
	"taacheck/internal/adapter/api/router"
	"taacheck/internal/adapter/repository"
	"taacheck/internal/infrastructure/firebase"
	"taacheck/internal/infrastructure/storage"
	"taacheck/internal/infrastructure/websocket"
	"taacheck/internal/usecase"
	"taacheck/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		if cfg.ServiceAccountPath == "" {
			log.Fatalf("No Firebase service account configured")
		}
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.ServiceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	postRepo := repository.NewFirestorePostRepository(firestoreClient)
	serviceRequestRepo := repository.NewFirestoreServiceRequestRepository(firestoreClient)
	providerRequestRepo := repository.NewFirestoreProviderRequestRepository(firestoreClient)
	acceptanceRepo := repository.NewFirestoreAcceptanceRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	sessionUseCase := usecase.NewSessionUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, messageRepo, storageClient)
	postUseCase := usecase.NewPostUseCase(postRepo)
	serviceRequestUseCase := usecase.NewServiceRequestUseCase(serviceRequestRepo)
	providerUseCase := usecase.NewProviderUseCase(userRepo)
	acceptanceUseCase := usecase.NewAcceptanceUseCase(userRepo, acceptanceRepo, providerRequestRepo, messageRepo, wsManager)

	handler.Setup(authUseCase, sessionUseCase, userUseCase, postUseCase, serviceRequestUseCase, providerUseCase, acceptanceUseCase)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	providerMiddleware := apimiddleware.NewProviderMiddleware(userRepo)

	wsHandler := handler.NewWebSocketHandler(wsManager, authClient)

	router.Setup(e, authMiddleware, providerMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
