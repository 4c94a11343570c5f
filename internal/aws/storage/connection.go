package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/trek-vn/sltrek/internal/domains/entities"
	"github.com/trek-vn/sltrek/internal/domains/interfaces"
)

// Secondary indexes on the Connections table.
const (
	pairKeyIndexName   = "PairKeyIndex"
	recipientIndexName = "RecipientIndex"
	requesterIndexName = "RequesterIndex"
)

func (client *Client) GetConnection(
	ctx context.Context,
	connectionId string,
) (
	entities.Connection,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Key: map[string]types.AttributeValue{
			"ConnectionId": &types.AttributeValueMemberS{
				Value: connectionId,
			},
		},
	})
	if err != nil {
		return entities.Connection{}, err
	}
	if output.Item == nil {
		return entities.Connection{}, interfaces.ErrConnectionNotFound
	}
	var connection entities.Connection
	if err := attributevalue.UnmarshalMap(output.Item, &connection); err != nil {
		return entities.Connection{}, err
	}
	return connection, nil
}

// GetConnectionByPair looks up the single connection between two users,
// regardless of which side initiated it.
func (client *Client) GetConnectionByPair(
	ctx context.Context,
	userId1,
	userId2 string,
) (
	entities.Connection,
	error,
) {
	output, err := client.dynamodb.Query(ctx, &dynamodb.QueryInput{
		TableName:              client.cfg.ConnectionsTableName,
		IndexName:              aws.String(pairKeyIndexName),
		KeyConditionExpression: aws.String("PairKey = :pairKey"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pairKey": &types.AttributeValueMemberS{
				Value: entities.ConnectionPairKey(userId1, userId2),
			},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Connection{}, err
	}
	if len(output.Items) == 0 {
		return entities.Connection{}, interfaces.ErrConnectionNotFound
	}
	var connection entities.Connection
	if err := attributevalue.UnmarshalMap(output.Items[0], &connection); err != nil {
		return entities.Connection{}, err
	}
	return connection, nil
}

func (client *Client) ListConnectionsByRecipient(
	ctx context.Context,
	userId,
	status string,
) (
	[]entities.Connection,
	error,
) {
	return client.listConnections(ctx, recipientIndexName, "RecipientId", userId, status)
}

func (client *Client) ListConnectionsByRequester(
	ctx context.Context,
	userId,
	status string,
) (
	[]entities.Connection,
	error,
) {
	return client.listConnections(ctx, requesterIndexName, "RequesterId", userId, status)
}

func (client *Client) listConnections(
	ctx context.Context,
	indexName,
	keyName,
	userId,
	status string,
) (
	[]entities.Connection,
	error,
) {
	input := &dynamodb.QueryInput{
		TableName:              client.cfg.ConnectionsTableName,
		IndexName:              aws.String(indexName),
		KeyConditionExpression: aws.String(keyName + " = :userId"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "Status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userId},
			":status": &types.AttributeValueMemberS{Value: status},
		},
		ScanIndexForward: aws.Bool(false),
	}
	// The filter is applied after the 1 MB read limit, so follow
	// LastEvaluatedKey until the query is exhausted.
	var connections []entities.Connection
	for {
		output, err := client.dynamodb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []entities.Connection
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		connections = append(connections, page...)
		if len(output.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = output.LastEvaluatedKey
	}
	return connections, nil
}

func (client *Client) PutConnection(ctx context.Context, connection entities.Connection) error {
	av, err := attributevalue.MarshalMap(connection)
	if err != nil {
		return fmt.Errorf("failed to marshal connection map: %w", err)
	}

	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put connection: %w", err)
	}
	return nil
}

func (client *Client) UpdateConnectionStatus(
	ctx context.Context,
	connectionId,
	status string,
	updatedAt time.Time,
) error {
	_, err := client.dynamodb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Key: map[string]types.AttributeValue{
			"ConnectionId": &types.AttributeValueMemberS{
				Value: connectionId,
			},
		},
		UpdateExpression: aws.String("SET #status = :status, UpdatedAt = :updatedAt"),
		ExpressionAttributeNames: map[string]string{
			"#status": "Status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{
				Value: status,
			},
			":updatedAt": &types.AttributeValueMemberS{
				Value: updatedAt.Format(time.RFC3339Nano),
			},
		},
	})
	if err != nil {
		return err
	}
	return nil
}

func (client *Client) DeleteConnection(ctx context.Context, connectionId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.ConnectionsTableName,
		Key: map[string]types.AttributeValue{
			"ConnectionId": &types.AttributeValueMemberS{Value: connectionId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}
