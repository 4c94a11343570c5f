package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/trek-vn/sltrek/internal/aws/storage"
	"github.com/trek-vn/sltrek/internal/domains/entities"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	attributes := event.Request.UserAttributes

	// Default user profile
	userProfile := entities.UserProfile{
		UserId:    attributes["sub"],
		Username:  event.UserName,
		Email:     attributes["email"],
		FullName:  attributes["name"],
		Locale:    attributes["locale"],
		CreatedAt: time.Now(),
	}
	if err := storageClient.PutUserProfile(ctx, userProfile); err != nil {
		logging.Fatal("Failed to save user profile", zap.Error(err))
	}

	return event, nil
}

func main() {
	lambda.Start(handler)
}
