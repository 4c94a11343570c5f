package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/trek-vn/sltrek/internal/aws/auth"
	"github.com/trek-vn/sltrek/internal/aws/storage"
	"github.com/trek-vn/sltrek/internal/domains/dtos"
	"github.com/trek-vn/sltrek/internal/domains/interfaces"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (
	events.APIGatewayProxyResponse,
	error,
) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)
	targetId := event.PathParameters["id"]
	if targetId == "" {
		targetId = userId
	}

	profile, err := storageClient.GetUserProfile(ctx, targetId)
	if err != nil {
		if errors.Is(err, interfaces.ErrUserProfileNotFound) {
			body, _ := json.Marshal(dtos.MessageResponse{Message: "User not found"})
			return events.APIGatewayProxyResponse{StatusCode: http.StatusNotFound, Body: string(body)}, nil
		}
		logging.Error("Failed to get user profile", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	// If users request their own information, return in full
	var getFull bool
	if userId == targetId {
		getFull = true
	}
	user := dtos.UserResponseFromEntity(profile, getFull)
	userJson, err := json.Marshal(user)
	if err != nil {
		logging.Error("Failed to marshal user", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(userJson)}, nil
}

func main() {
	lambda.Start(handler)
}
