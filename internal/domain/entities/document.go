package entities

import (
	"encoding/json"
	"time"
)

// Document is one schema-less record of a remote store collection.
//
// Data is kept raw; callers decode it into the collection's entity.
type Document struct {
	ID         string           `json:"id"`
	ProjectID  string           `json:"projectId"`
	Collection string           `json:"collection"`
	Data       json.RawMessage  `json:"data"`
	Metadata   DocumentMetadata `json:"metadata"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

type DocumentMetadata struct {
	CreatedBy string   `json:"createdBy"`
	UpdatedBy string   `json:"updatedBy"`
	Tags      []string `json:"tags"`
	Version   int      `json:"version"`
	IsDeleted bool     `json:"isDeleted"`
}

// ReadQuery selects documents. Empty fields are not sent.
type ReadQuery struct {
	Collection string
	ID         string
	Limit      int
	Skip       int
}

type CollectionInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StoreStats struct {
	TotalDocuments   int            `json:"totalDocuments"`
	DeletedDocuments int            `json:"deletedDocuments"`
	Collections      int            `json:"collections"`
	ByCollection     map[string]int `json:"byCollection,omitempty"`
}
