package resultstore

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDDB emulates the conditional-write semantics DynamoStore relies on.
type fakeDDB struct {
	items    map[string]map[string]types.AttributeValue
	putCalls int
	getCalls int
}

func newFakeDDB() *fakeDDB {
	return &fakeDDB{items: make(map[string]map[string]types.AttributeValue)}
}

func itemKey(item map[string]types.AttributeValue) string {
	return item["n"].(*types.AttributeValueMemberN).Value
}

func (f *fakeDDB) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putCalls++

	key := itemKey(params.Item)
	if _, exists := f.items[key]; exists {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDDB) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getCalls++

	item, ok := f.items[itemKey(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func TestDynamoStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDDB(), "sievego-results")

	rec := testRecord(1_000_000, 78498)
	require.NoError(t, store.Put(ctx, rec))

	got, err := store.Get(ctx, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, rec.N, got.N)
	assert.Equal(t, rec.Count, got.Count)
	assert.Equal(t, rec.SegmentWidth, got.SegmentWidth)
	assert.Equal(t, rec.Workers, got.Workers)
	assert.Equal(t, rec.ElapsedSec, got.ElapsedSec)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestDynamoStoreGetMissing(t *testing.T) {
	store := NewDynamoStore(newFakeDDB(), "sievego-results")

	_, err := store.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDynamoStorePutIdempotent(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDDB()
	store := NewDynamoStore(ddb, "sievego-results")

	require.NoError(t, store.Put(ctx, testRecord(1000, 168)))

	// The second write loses the conditional check and is verified against
	// the stored count instead.
	require.NoError(t, store.Put(ctx, testRecord(1000, 168)))
	assert.Equal(t, 2, ddb.putCalls)
	assert.Equal(t, 1, ddb.getCalls)

	got, err := store.Get(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(168), got.Count)
}

func TestDynamoStorePutMismatch(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDDB(), "sievego-results")

	require.NoError(t, store.Put(ctx, testRecord(1000, 168)))

	err := store.Put(ctx, testRecord(1000, 167))
	var mismatch *ErrCountMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint64(168), mismatch.Existing)
	assert.Equal(t, uint64(167), mismatch.New)
}

func TestRecordFromItemInvalid(t *testing.T) {
	_, err := recordFromItem(map[string]types.AttributeValue{
		"n": &types.AttributeValueMemberS{Value: "not-a-number"},
	})
	assert.Error(t, err)
}
