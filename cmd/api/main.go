package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"subleasehub/internal/adapter/api"
	"subleasehub/internal/adapter/api/handler"
	apimiddleware "subleasehub/internal/adapter/api/middleware"
	"subleasehub/internal/adapter/api/router"
	"subleasehub/internal/adapter/repository"
	"subleasehub/internal/infrastructure/document"
	"subleasehub/internal/infrastructure/geocoding"
	"subleasehub/internal/infrastructure/storage"
	"subleasehub/internal/usecase"
	"subleasehub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.GoogleProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.GoogleProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	agreementRepo := repository.NewFirestoreAgreementRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	geocoder := geocoding.NewGoogleGeocodingClient(cfg.GeocodeURL, cfg.GeocodeAPIKey)
	templater := document.NewDocxTemplater()
	converter := document.NewLibreOfficeConverter(cfg.ConverterBinary)

	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userUseCase := usecase.NewUserUseCase(userRepo, listingRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, userRepo, geocoder)
	agreementUseCase := usecase.NewAgreementUseCase(agreementRepo, listingRepo, userRepo)
	contractUseCase := usecase.NewContractUseCase(agreementRepo, listingRepo, userRepo, templater, converter, cfg.ContractTemplatePath)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, userRepo)
	fileUseCase := usecase.NewFileUseCase(fileMetadataRepo, userRepo, listingRepo, storageClient)

	handler.Setup(authUseCase, userUseCase, listingUseCase, agreementUseCase, contractUseCase, messageUseCase, fileUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
