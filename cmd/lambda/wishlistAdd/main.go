package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/trek-vn/sltrek/internal/aws/auth"
	"github.com/trek-vn/sltrek/internal/aws/storage"
	"github.com/trek-vn/sltrek/internal/domains/dtos"
	"github.com/trek-vn/sltrek/internal/domains/entities"
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

	var req dtos.WishlistAddRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil || req.ItemId == "" || req.Title == "" {
		body, _ := json.Marshal(dtos.MessageResponse{Message: "Missing itemId or title"})
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: string(body)}, nil
	}

	// Adding an item already on the list is a no-op.
	_, err := storageClient.GetWishlistItem(ctx, userId, req.ItemId)
	status := http.StatusOK
	if err != nil {
		if !errors.Is(err, storage.ErrWishlistItemNotFound) {
			logging.Error("Failed to check wishlist item", zap.Error(err))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
		}
		item := entities.WishlistItem{
			UserId:   userId,
			ItemId:   req.ItemId,
			Title:    req.Title,
			Image:    req.Img,
			Duration: req.Duration,
			Price:    req.Price,
			AddedAt:  time.Now(),
		}
		if err := storageClient.PutWishlistItem(ctx, item); err != nil {
			logging.Error("Failed to put wishlist item", zap.Error(err))
			return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
		}
		status = http.StatusCreated
	}

	items, err := storageClient.FetchWishlist(ctx, userId)
	if err != nil {
		logging.Error("Failed to fetch wishlist", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	respJson, err := json.Marshal(dtos.WishlistResponseFromEntities(items))
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}
	return events.APIGatewayProxyResponse{StatusCode: status, Body: string(respJson)}, nil
}

func main() {
	lambda.Start(handler)
}
