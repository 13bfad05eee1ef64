package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultDocumentsTableName = "documents"
	collectionIndexName       = "collection-index"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the document store.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type documentItem struct {
	ID         string   `dynamodbav:"id"`
	ProjectID  string   `dynamodbav:"project_id"`
	Collection string   `dynamodbav:"collection"`
	Data       string   `dynamodbav:"data"`
	CreatedBy  string   `dynamodbav:"created_by"`
	UpdatedBy  string   `dynamodbav:"updated_by"`
	Tags       []string `dynamodbav:"tags,omitempty"`
	Version    int      `dynamodbav:"version"`
	IsDeleted  bool     `dynamodbav:"is_deleted"`
	CreatedAt  string   `dynamodbav:"created_at"`
	UpdatedAt  string   `dynamodbav:"updated_at"`
}

// DynamoDocumentStore keeps portal documents in a single DynamoDB table, as
// a self-hosted alternative to the project-db service.
//
// Table requirements:
//   - PK: id (string)
//   - GSI "collection-index": PK collection (string), SK created_at (string)
//
// Data is stored as a JSON string. Update merges the given fields into the
// stored object; the merge is guarded by the version it was read at.
type DynamoDocumentStore struct {
	ddb       DynamoDBAPI
	tableName string
	projectID string
	now       func() time.Time
}

var _ interfaces.IDocumentStore = (*DynamoDocumentStore)(nil)

func NewDynamoDocumentStore(ddb DynamoDBAPI, tableName, projectID string) *DynamoDocumentStore {
	if tableName == "" {
		tableName = defaultDocumentsTableName
	}
	return &DynamoDocumentStore{
		ddb:       ddb,
		tableName: tableName,
		projectID: projectID,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *DynamoDocumentStore) Create(ctx context.Context, owner string, collection string, data any, tags []string) (entities.Document, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return entities.Document{}, fmt.Errorf("encode document: %w", err)
	}
	now := r.now().Format(time.RFC3339Nano)
	it := documentItem{
		ID:         uuid.NewString(),
		ProjectID:  r.projectID,
		Collection: collection,
		Data:       string(raw),
		CreatedBy:  owner,
		UpdatedBy:  owner,
		Tags:       tags,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DynamoDocumentStore) Read(ctx context.Context, owner string, query entities.ReadQuery) ([]entities.Document, error) {
	if query.ID != "" {
		it, ok, err := r.get(ctx, query.ID)
		if err != nil {
			return nil, err
		}
		if !ok || it.IsDeleted || (query.Collection != "" && it.Collection != query.Collection) {
			return []entities.Document{}, nil
		}
		return []entities.Document{fromDocumentItem(it)}, nil
	}

	want := 0
	if query.Limit > 0 {
		want = query.Skip + query.Limit
	}
	var items []documentItem
	var err error
	if query.Collection != "" {
		items, err = r.queryCollection(ctx, query.Collection, want)
	} else {
		items, err = r.scanLive(ctx, want)
	}
	if err != nil {
		return nil, err
	}

	if query.Skip >= len(items) {
		return []entities.Document{}, nil
	}
	items = items[query.Skip:]
	if query.Limit > 0 && len(items) > query.Limit {
		items = items[:query.Limit]
	}
	out := make([]entities.Document, 0, len(items))
	for _, it := range items {
		out = append(out, fromDocumentItem(it))
	}
	return out, nil
}

func (r *DynamoDocumentStore) Update(ctx context.Context, owner string, id string, data any, tags []string, incrementVersion bool) (entities.Document, error) {
	current, ok, err := r.get(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if !ok || current.IsDeleted {
		return entities.Document{}, interfaces.ErrDocumentNotFound
	}
	merged, err := mergeData(current.Data, data)
	if err != nil {
		return entities.Document{}, err
	}
	var tagsAV types.AttributeValue
	if len(tags) > 0 {
		if tagsAV, err = attributevalue.Marshal(tags); err != nil {
			return entities.Document{}, err
		}
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #data = :data, #updated_by = :updated_by, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":data":       &types.AttributeValueMemberS{Value: merged},
			":updated_by": &types.AttributeValueMemberS{Value: owner},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":expected":   &types.AttributeValueMemberN{Value: strconv.Itoa(current.Version)},
		}
		names := map[string]string{
			"#data":       "data",
			"#updated_by": "updated_by",
			"#updated_at": "updated_at",
			"#version":    "version",
		}
		if tagsAV != nil {
			expr += ", #tags = :tags"
			vals[":tags"] = tagsAV
			names["#tags"] = "tags"
		}
		if incrementVersion {
			expr += " ADD #version :one"
			vals[":one"] = &types.AttributeValueMemberN{Value: "1"}
		}
		return expr, vals, names
	}, "#version = :expected")
}

func (r *DynamoDocumentStore) Delete(ctx context.Context, owner string, id string, hardDelete bool) error {
	if hardDelete {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		})
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentNotFound
		}
		return err
	}

	_, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_deleted = :deleted, #updated_by = :updated_by, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":deleted":    &types.AttributeValueMemberBOOL{Value: true},
			":updated_by": &types.AttributeValueMemberS{Value: owner},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_deleted": "is_deleted",
			"#updated_by": "updated_by",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	}, "")
	return err
}

func (r *DynamoDocumentStore) Collections(ctx context.Context, owner string) ([]entities.CollectionInfo, error) {
	stats, err := r.Stats(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CollectionInfo, 0, len(stats.ByCollection))
	for name, count := range stats.ByCollection {
		out = append(out, entities.CollectionInfo{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *DynamoDocumentStore) Stats(ctx context.Context, owner string) (entities.StoreStats, error) {
	stats := entities.StoreStats{ByCollection: map[string]int{}}
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			ProjectionExpression:     aws.String("#collection, #is_deleted"),
			ExpressionAttributeNames: map[string]string{"#collection": "collection", "#is_deleted": "is_deleted"},
			ExclusiveStartKey:        start,
		})
		if err != nil {
			return entities.StoreStats{}, err
		}
		var page []documentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return entities.StoreStats{}, err
		}
		for _, it := range page {
			if it.IsDeleted {
				stats.DeletedDocuments++
				continue
			}
			stats.TotalDocuments++
			stats.ByCollection[it.Collection]++
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}
	stats.Collections = len(stats.ByCollection)
	return stats, nil
}

func (r *DynamoDocumentStore) get(ctx context.Context, id string) (documentItem, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return documentItem{}, false, err
	}
	if len(out.Item) == 0 {
		return documentItem{}, false, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return documentItem{}, false, err
	}
	return it, true, nil
}

// queryCollection pages through the collection index in creation order and
// stops once want live items are collected (want 0 reads everything).
func (r *DynamoDocumentStore) queryCollection(ctx context.Context, collection string, want int) ([]documentItem, error) {
	var items []documentItem
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(collectionIndexName),
			KeyConditionExpression: aws.String("#collection = :collection"),
			FilterExpression:       aws.String("#is_deleted = :false"),
			ExpressionAttributeNames: map[string]string{
				"#collection": "collection",
				"#is_deleted": "is_deleted",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":collection": &types.AttributeValueMemberS{Value: collection},
				":false":      &types.AttributeValueMemberBOOL{Value: false},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		var page []documentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if (want > 0 && len(items) >= want) || len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *DynamoDocumentStore) scanLive(ctx context.Context, want int) ([]documentItem, error) {
	var items []documentItem
	var start map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String("#is_deleted = :false"),
			ExpressionAttributeNames:  map[string]string{"#is_deleted": "is_deleted"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":false": &types.AttributeValueMemberBOOL{Value: false}},
			ExclusiveStartKey:         start,
		})
		if err != nil {
			return nil, err
		}
		var page []documentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if (want > 0 && len(items) >= want) || len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r *DynamoDocumentStore) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
	extraCondition string,
) (entities.Document, error) {
	now := r.now().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	if extraCondition != "" {
		cond += " AND " + extraCondition
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if extraCondition != "" {
				return entities.Document{}, fmt.Errorf("%w: document %s changed concurrently", ErrVersionConflict, id)
			}
			return entities.Document{}, interfaces.ErrDocumentNotFound
		}
		return entities.Document{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Document{}, interfaces.ErrDocumentNotFound
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

// ErrVersionConflict is returned when a document changed between the read
// and the write of an Update.
var ErrVersionConflict = errors.New("document version conflict")

func fromDocumentItem(it documentItem) entities.Document {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return entities.Document{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		Collection: it.Collection,
		Data:       json.RawMessage(it.Data),
		Metadata: entities.DocumentMetadata{
			CreatedBy: it.CreatedBy,
			UpdatedBy: it.UpdatedBy,
			Tags:      tags,
			Version:   it.Version,
			IsDeleted: it.IsDeleted,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
