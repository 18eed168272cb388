package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/umar/yourkhata/pkg/handlers"
	"github.com/umar/yourkhata/pkg/kvstore"
	dynamostore "github.com/umar/yourkhata/pkg/kvstore/dynamodb"
	"github.com/umar/yourkhata/pkg/kvstore/memory"
	"github.com/umar/yourkhata/pkg/reminders"
	"github.com/umar/yourkhata/pkg/storage/khata"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, nil))

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	adapter, notifier, err := buildBackend(logger)
	if err != nil {
		logger.Error("failed to build storage backend", "error", err)
		os.Exit(1)
	}

	store := khata.New(adapter, logger)

	// Make sure a profile exists before the first request arrives.
	if _, err := store.InitializeDefaultProfile(context.Background()); err != nil {
		logger.Error("failed to initialize default profile", "error", err)
		os.Exit(1)
	}

	router := handlers.NewRouter(store, notifier, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	logger.Info("starting server", "port", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// buildBackend selects the persistence and reminder backends. The default is
// DynamoDB plus SQS; STORAGE_DRIVER=memory keeps everything in process for
// local runs.
func buildBackend(logger *slog.Logger) (kvstore.Adapter, reminders.Notifier, error) {
	if os.Getenv("STORAGE_DRIVER") == "memory" {
		logger.Info("using in-memory storage")
		return memory.New(), &reminders.NoOpNotifier{}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, nil, err
	}

	tableName := os.Getenv("DYNAMODB_TABLE_NAME")
	if tableName == "" {
		return nil, nil, errors.New("DYNAMODB_TABLE_NAME environment variable not set")
	}
	adapter := dynamostore.New(dynamodb.NewFromConfig(cfg), tableName)

	queueURL := os.Getenv("SQS_REMINDERS_QUEUE_URL")
	if queueURL == "" {
		logger.Info("SQS_REMINDERS_QUEUE_URL not set, payment reminders disabled")
		return adapter, &reminders.NoOpNotifier{}, nil
	}
	notifier := reminders.NewSQSNotifier(sqs.NewFromConfig(cfg), queueURL)

	return adapter, notifier, nil
}
