package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/umar/yourkhata/pkg/kvstore"
)

// DynamoDBAPI captures the subset of the DynamoDB client used by the adapter,
// so tests can substitute a mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Store implements kvstore.Adapter on a single DynamoDB table: one item per
// collection key, the serialized collection in a blob attribute.
type Store struct {
	Client    DynamoDBAPI
	TableName string
}

// item is the table row shape: k is the partition key, v the raw value.
type item struct {
	K string `dynamodbav:"k"`
	V []byte `dynamodbav:"v"`
}

// New creates a new Store.
func New(client DynamoDBAPI, tableName string) *Store {
	return &Store{Client: client, TableName: tableName}
}

// Make sure we conform to the interface
var _ kvstore.Adapter = (*Store)(nil)

// Get retrieves the raw value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"k": key})
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal key %q: %w", key, err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName),
		Key:       keyAV,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %q from DynamoDB: %w", key, err)
	}

	if result.Item == nil {
		return nil, false, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(result.Item, &it); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal %q: %w", key, err)
	}

	return it.V, true, nil
}

// Set writes the raw value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	itemAV, err := attributevalue.MarshalMap(item{K: key, V: value})
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      itemAV,
	})
	if err != nil {
		return fmt.Errorf("failed to put %q to DynamoDB: %w", key, err)
	}

	return nil
}

// Remove deletes the value under key. Deleting an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"k": key})
	if err != nil {
		return fmt.Errorf("failed to marshal key %q: %w", key, err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.TableName),
		Key:       keyAV,
	})
	if err != nil {
		return fmt.Errorf("failed to delete %q from DynamoDB: %w", key, err)
	}

	return nil
}

// batchWriteLimit is the DynamoDB cap on requests per BatchWriteItem call.
const batchWriteLimit = 25

// RemoveMany deletes every given key using batched writes.
func (s *Store) RemoveMany(ctx context.Context, keys []string) error {
	for start := 0; start < len(keys); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(keys) {
			end = len(keys)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			keyAV, err := attributevalue.MarshalMap(map[string]string{"k": key})
			if err != nil {
				return fmt.Errorf("failed to marshal key %q: %w", key, err)
			}
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: keyAV},
			})
		}

		_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.TableName: requests,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to batch-delete from DynamoDB: %w", err)
		}
	}

	return nil
}
