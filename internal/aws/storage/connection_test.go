package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
	"github.com/trek-vn/sltrek/internal/domains/entities"
)

// fakeDynamoDB replays canned query pages and records the inputs it
// was called with.
type fakeDynamoDB struct {
	pages   []*dynamodb.QueryOutput
	queries []*dynamodb.QueryInput
}

func (f *fakeDynamoDB) Query(
	ctx context.Context,
	params *dynamodb.QueryInput,
	optFns ...func(*dynamodb.Options),
) (*dynamodb.QueryOutput, error) {
	input := *params
	f.queries = append(f.queries, &input)
	return f.pages[len(f.queries)-1], nil
}

func (f *fakeDynamoDB) GetItem(
	ctx context.Context,
	params *dynamodb.GetItemInput,
	optFns ...func(*dynamodb.Options),
) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoDB) PutItem(
	ctx context.Context,
	params *dynamodb.PutItemInput,
	optFns ...func(*dynamodb.Options),
) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) UpdateItem(
	ctx context.Context,
	params *dynamodb.UpdateItemInput,
	optFns ...func(*dynamodb.Options),
) (*dynamodb.UpdateItemOutput, error) {
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamoDB) DeleteItem(
	ctx context.Context,
	params *dynamodb.DeleteItemInput,
	optFns ...func(*dynamodb.Options),
) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func marshalConnection(t *testing.T, connection entities.Connection) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(connection)
	require.NoError(t, err)
	return av
}

func TestListConnectionsFollowsPagination(t *testing.T) {
	first := entities.Connection{
		ConnectionId: "conn-1",
		RequesterId:  "user-2",
		RecipientId:  "user-1",
		Status:       entities.ConnectionStatusPending,
	}
	second := entities.Connection{
		ConnectionId: "conn-2",
		RequesterId:  "user-3",
		RecipientId:  "user-1",
		Status:       entities.ConnectionStatusPending,
	}
	lastKey := map[string]types.AttributeValue{
		"ConnectionId": &types.AttributeValueMemberS{Value: "conn-1"},
	}
	fake := &fakeDynamoDB{
		pages: []*dynamodb.QueryOutput{
			{
				Items:            []map[string]types.AttributeValue{marshalConnection(t, first)},
				LastEvaluatedKey: lastKey,
			},
			{
				Items: []map[string]types.AttributeValue{marshalConnection(t, second)},
			},
		},
	}
	client := NewClient(fake)

	connections, err := client.ListConnectionsByRecipient(
		context.Background(),
		"user-1",
		entities.ConnectionStatusPending,
	)
	require.NoError(t, err)
	require.Len(t, connections, 2)
	require.Equal(t, "conn-1", connections[0].ConnectionId)
	require.Equal(t, "conn-2", connections[1].ConnectionId)

	require.Len(t, fake.queries, 2)
	require.Nil(t, fake.queries[0].ExclusiveStartKey)
	require.Equal(t, lastKey, fake.queries[1].ExclusiveStartKey)
}
