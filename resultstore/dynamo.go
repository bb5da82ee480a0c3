package resultstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DDBClient is the interface for DynamoDB operations used by DynamoStore.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoStore implements Store on a DynamoDB table, for publishing results
// from multiple machines. Conditional writes give the first writer for an n
// the win; later writers are verified against the stored count.
//
// Table schema:
//   - Partition key: n (number)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name sievego-results \
//	  --attribute-definitions AttributeName=n,AttributeType=N \
//	  --key-schema AttributeName=n,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
type DynamoStore struct {
	client    DDBClient
	tableName string
}

// NewDynamoStore creates a ledger over the given DynamoDB table.
func NewDynamoStore(client DDBClient, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName}
}

// Put records a result with a conditional write.
func (s *DynamoStore) Put(ctx context.Context, rec Record) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"n":             &types.AttributeValueMemberN{Value: strconv.FormatUint(rec.N, 10)},
			"count":         &types.AttributeValueMemberN{Value: strconv.FormatUint(rec.Count, 10)},
			"segment_width": &types.AttributeValueMemberN{Value: strconv.FormatUint(rec.SegmentWidth, 10)},
			"workers":       &types.AttributeValueMemberN{Value: strconv.Itoa(rec.Workers)},
			"elapsed_sec":   &types.AttributeValueMemberN{Value: strconv.FormatFloat(rec.ElapsedSec, 'f', -1, 64)},
			"created_at":    &types.AttributeValueMemberS{Value: rec.CreatedAt.UTC().Format(time.RFC3339Nano)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#n)"),
		ExpressionAttributeNames: map[string]string{
			"#n": "n",
		},
	})
	if err == nil {
		return nil
	}

	var ccf *types.ConditionalCheckFailedException
	if !errors.As(err, &ccf) {
		return err
	}

	// A record already exists; idempotent if the counts agree.
	existing, getErr := s.Get(ctx, rec.N)
	if getErr != nil {
		return getErr
	}
	if existing.Count != rec.Count {
		return &ErrCountMismatch{N: rec.N, Existing: existing.Count, New: rec.Count}
	}
	return nil
}

// Get returns the stored result for n.
func (s *DynamoStore) Get(ctx context.Context, n uint64) (Record, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"n": &types.AttributeValueMemberN{Value: strconv.FormatUint(n, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return Record{}, err
	}
	if len(out.Item) == 0 {
		return Record{}, ErrNotFound
	}

	return recordFromItem(out.Item)
}

func recordFromItem(item map[string]types.AttributeValue) (Record, error) {
	var rec Record
	var err error

	if rec.N, err = numAttr(item, "n"); err != nil {
		return Record{}, err
	}
	if rec.Count, err = numAttr(item, "count"); err != nil {
		return Record{}, err
	}
	if rec.SegmentWidth, err = numAttr(item, "segment_width"); err != nil {
		return Record{}, err
	}

	workers, err := numAttr(item, "workers")
	if err != nil {
		return Record{}, err
	}
	rec.Workers = int(workers)

	if attr, ok := item["elapsed_sec"].(*types.AttributeValueMemberN); ok {
		if rec.ElapsedSec, err = strconv.ParseFloat(attr.Value, 64); err != nil {
			return Record{}, err
		}
	}
	if attr, ok := item["created_at"].(*types.AttributeValueMemberS); ok {
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, attr.Value); err != nil {
			return Record{}, err
		}
	}

	return rec, nil
}

func numAttr(item map[string]types.AttributeValue, name string) (uint64, error) {
	attr, ok := item[name].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("invalid " + name + " attribute in DynamoDB item")
	}
	return strconv.ParseUint(attr.Value, 10, 64)
}
