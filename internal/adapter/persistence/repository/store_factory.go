package repository

import (
	"context"
	"fmt"
	"log"

	"torchline_portal/internal/infrastructure/config"
	"torchline_portal/internal/infrastructure/database"
	"torchline_portal/internal/usecase/interfaces"
)

// NewDocumentStore builds the store selected by STORE_BACKEND.
func NewDocumentStore(ctx context.Context, cfg *config.Config) (interfaces.IDocumentStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendHTTP:
		log.Printf("[store] backend=http base_url=%s project_id=%s", cfg.StoreBaseURL, cfg.StoreProjectID)
		return NewHTTPDocumentStore(NewHTTPClient(cfg.StoreTimeout), cfg.StoreBaseURL, cfg.StoreProjectID), nil
	case config.StoreBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("[store] backend=dynamodb table=%s endpoint=%s", cfg.DocumentsTable, cfg.DynamoDBEndpoint)
		return NewDynamoDocumentStore(ddb, cfg.DocumentsTable, cfg.StoreProjectID), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
