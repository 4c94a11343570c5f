package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/trek-vn/sltrek/internal/domains/entities"
	"github.com/trek-vn/sltrek/internal/domains/interfaces"
)

func (client *Client) GetUserProfile(
	ctx context.Context,
	userId string,
) (
	entities.UserProfile,
	error,
) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.UserProfilesTableName,
		Key: map[string]types.AttributeValue{
			"UserId": &types.AttributeValueMemberS{
				Value: userId,
			},
		},
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if output.Item == nil {
		return entities.UserProfile{}, interfaces.ErrUserProfileNotFound
	}
	var userProfile entities.UserProfile
	if err := attributevalue.UnmarshalMap(output.Item, &userProfile); err != nil {
		return entities.UserProfile{}, err
	}
	return userProfile, nil
}

func (client *Client) PutUserProfile(ctx context.Context, userProfile entities.UserProfile) error {
	av, err := attributevalue.MarshalMap(userProfile)
	if err != nil {
		return fmt.Errorf("failed to marshal user profile map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.UserProfilesTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put user profile: %w", err)
	}
	return nil
}
