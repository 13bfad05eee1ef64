package usecase

import (
	"encoding/json"
	"testing"

	"torchline_portal/internal/domain/entities"
)

func newDoc(t *testing.T, id, collection string, v any) entities.Document {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %T: %v", v, err)
	}
	return entities.Document{
		ID:         id,
		Collection: collection,
		Data:       raw,
		Metadata:   entities.DocumentMetadata{Version: 1},
	}
}

func fixedForecast() []entities.RevenueForecast {
	return []entities.RevenueForecast{{Month: "Jan", Projected: 1, Actual: 1, Confidence: 90}}
}
