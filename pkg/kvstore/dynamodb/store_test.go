package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/umar/yourkhata/pkg/kvstore/dynamodb/mocks"
)

func TestGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		itemAV, _ := attributevalue.MarshalMap(item{K: "customers", V: []byte(`[]`)})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)

		store := New(mockClient, "khata")
		value, ok, err := store.Get(context.Background(), "customers")

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`[]`), value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Absent Key", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, "khata")
		value, ok, err := store.Get(context.Background(), "customers")

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "khata")
		_, _, err := store.Get(context.Background(), "customers")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get \"customers\" from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestSet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			var it item
			if err := attributevalue.UnmarshalMap(input.Item, &it); err != nil {
				return false
			}
			return it.K == "profiles" && string(it.V) == `[{"id":"p1"}]`
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "khata")
		err := store.Set(context.Background(), "profiles", []byte(`[{"id":"p1"}]`))

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "khata")
		err := store.Set(context.Background(), "profiles", []byte(`[]`))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to put \"profiles\" to DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestRemove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil)

		store := New(mockClient, "khata")
		err := store.Remove(context.Background(), "active_profile")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "khata")
		err := store.Remove(context.Background(), "active_profile")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete \"active_profile\" from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestRemoveMany(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("BatchWriteItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.BatchWriteItemInput) bool {
			return len(input.RequestItems["khata"]) == 3
		})).Return(&dynamodb.BatchWriteItemOutput{}, nil)

		store := New(mockClient, "khata")
		err := store.RemoveMany(context.Background(), []string{"customers", "transactions", "profiles"})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Chunks Large Batches", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("BatchWriteItem", mock.Anything, mock.Anything).Return(&dynamodb.BatchWriteItemOutput{}, nil).Times(2)

		keys := make([]string, 30)
		for i := range keys {
			keys[i] = "key"
		}

		store := New(mockClient, "khata")
		err := store.RemoveMany(context.Background(), keys)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("BatchWriteItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "khata")
		err := store.RemoveMany(context.Background(), []string{"customers"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to batch-delete from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}
