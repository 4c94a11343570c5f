package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/trek-vn/sltrek/internal/aws/auth"
	"github.com/trek-vn/sltrek/internal/aws/notification"
	"github.com/trek-vn/sltrek/internal/aws/storage"
	"github.com/trek-vn/sltrek/internal/domains/dtos"
	"github.com/trek-vn/sltrek/internal/domains/entities"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

var (
	storageClient *storage.Client
	notiClient    *notification.Client
)

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
	notiClient = notification.NewClient(sns.NewFromConfig(cfg))
}

type deviceTokenRequest struct {
	DeviceToken string `json:"deviceToken"`
}

func handler(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (
	events.APIGatewayProxyResponse,
	error,
) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)

	var req deviceTokenRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil || req.DeviceToken == "" {
		body, _ := json.Marshal(dtos.MessageResponse{Message: "Missing device token"})
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: string(body)}, nil
	}

	endpointArn, err := notiClient.RegisterDevice(ctx, req.DeviceToken)
	if err != nil {
		logging.Error("Failed to register device", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	endpoint := entities.ApplicationEndpoint{
		UserId:      userId,
		EndpointArn: endpointArn,
		DeviceToken: req.DeviceToken,
	}
	if err := storageClient.PutApplicationEndpoint(ctx, endpoint); err != nil {
		logging.Error("Failed to save application endpoint", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

func main() {
	lambda.Start(handler)
}
