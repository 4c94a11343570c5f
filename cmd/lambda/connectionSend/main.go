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
	"github.com/trek-vn/sltrek/internal/usecases"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

var (
	storageClient     *storage.Client
	notiClient        *notification.Client
	connectionUsecase *usecases.ConnectionUsecase
)

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
	notiClient = notification.NewClient(sns.NewFromConfig(cfg))
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

	var req dtos.ConnectionSendRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return errorResponse(usecases.ErrRecipientRequired), nil
	}

	connection, err := connectionUsecase.SendConnectionRequest(ctx, userId, req.RecipientId)
	if err != nil {
		return errorResponse(err), nil
	}

	// Best effort: the recipient may have no registered device.
	notifyRecipient(ctx, connection.RecipientId)

	resp := dtos.ConnectionCreatedResponse{
		Message:    "Connection request sent successfully",
		Connection: dtos.ConnectionResponseFromEntity(connection),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: http.StatusCreated, Body: string(respJson)}, nil
}

func notifyRecipient(ctx context.Context, recipientId string) {
	endpoint, err := storageClient.GetApplicationEndpoint(ctx, recipientId)
	if err != nil {
		return
	}
	err = notiClient.SendPushNotification(ctx, endpoint.EndpointArn, "You have a new connection request")
	if err != nil {
		logging.Error("Failed to send push notification", zap.Error(err))
	}
}

func errorResponse(err error) events.APIGatewayProxyResponse {
	status := usecases.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.Error("Failed to send connection request", zap.Error(err))
		message = "server error"
	}
	body, _ := json.Marshal(dtos.MessageResponse{Message: message})
	return events.APIGatewayProxyResponse{StatusCode: status, Body: string(body)}
}

func main() {
	lambda.Start(handler)
}
