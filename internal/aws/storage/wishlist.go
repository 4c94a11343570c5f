package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/trek-vn/sltrek/internal/domains/entities"
)

var ErrWishlistItemNotFound = fmt.Errorf("wishlist item not found")

func (client *Client) GetWishlistItem(
	ctx context.Context,
	userId,
	itemId string,
) (
	entities.WishlistItem,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.WishlistsTableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{
				Value: userId,
			},
			"ItemId": &types.AttributeValueMemberS{
				Value: itemId,
			},
		},
	})
	if err != nil {
		return entities.WishlistItem{}, err
	}
	if output.Item == nil {
		return entities.WishlistItem{}, ErrWishlistItemNotFound
	}
	var item entities.WishlistItem
	if err := attributevalue.UnmarshalMap(output.Item, &item); err != nil {
		return entities.WishlistItem{}, err
	}
	return item, nil
}

func (client *Client) FetchWishlist(
	ctx context.Context,
	userId string,
) (
	[]entities.WishlistItem,
	error,
) {
	input := &dynamodb.QueryInput{
		TableName:              client.cfg.WishlistsTableName,
		KeyConditionExpression: aws.String("UserId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userId},
		},
		ScanIndexForward: aws.Bool(true),
	}
	var items []entities.WishlistItem
	for {
		output, err := client.dynamodb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []entities.WishlistItem
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(output.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = output.LastEvaluatedKey
	}
	return items, nil
}

func (client *Client) PutWishlistItem(ctx context.Context, item entities.WishlistItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist item map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.WishlistsTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put wishlist item: %w", err)
	}
	return nil
}

func (client *Client) DeleteWishlistItem(ctx context.Context, userId, itemId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.WishlistsTableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{Value: userId},
			"ItemId": &types.AttributeValueMemberS{Value: itemId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}
