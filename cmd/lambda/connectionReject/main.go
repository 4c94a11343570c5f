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
	connectionId := event.PathParameters["connectionId"]

	connection, err := connectionUsecase.RejectConnectionRequest(ctx, userId, connectionId)
	if err != nil {
		return errorResponse(err), nil
	}

	resp := dtos.ConnectionUpdatedResponse{
		Message:    "Connection request rejected",
		Connection: dtos.ConnectionResponseFromEntity(connection),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: string(respJson)}, nil
}

func errorResponse(err error) events.APIGatewayProxyResponse {
	status := usecases.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.Error("Failed to reject connection request", zap.Error(err))
		message = "server error"
	}
	body, _ := json.Marshal(dtos.MessageResponse{Message: message})
	return events.APIGatewayProxyResponse{StatusCode: status, Body: string(body)}
}

func main() {
	lambda.Start(handler)
}
