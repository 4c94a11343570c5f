package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/trek-vn/sltrek/internal/aws/auth"
	"github.com/trek-vn/sltrek/internal/aws/storage"
	"github.com/trek-vn/sltrek/internal/domains/dtos"
	"github.com/trek-vn/sltrek/internal/usecases"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

var connectionUsecase *usecases.ConnectionUsecase

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient := storage.NewClient(dynamodb.NewFromConfig(cfg))
	connectionUsecase = usecases.NewConnectionUsecase(storageClient, storageClient)
}

func handler(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (
	events.APIGatewayProxyResponse,
	error,
) {
	userId := auth.MustAuth(event.RequestContext.Authorizer)

	pendingRequests, err := connectionUsecase.GetPendingRequests(ctx, userId)
	if err != nil {
		logging.Error("Failed to fetch pending requests", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	resp := dtos.PendingRequestListResponse{
		PendingRequests: pendingRequests,
		Count:           len(pendingRequests),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(respJson)}, nil
}

func main() {
	lambda.Start(handler)
}
