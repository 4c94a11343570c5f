package server

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsAuth "github.com/trek-vn/sltrek/internal/aws/auth"
	"github.com/trek-vn/sltrek/internal/aws/storage"
	"github.com/trek-vn/sltrek/internal/usecases"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

// server exposes the REST api in a single process for local and
// self-hosted deployments. Production runs the same operations as
// individual lambdas behind API Gateway.
type server struct {
	address string

	config Config

	cognitoPublicKeys map[string]*rsa.PublicKey
	storageClient     *storage.Client
	connectionUsecase *usecases.ConnectionUsecase
}

func NewServer() *server {
	cfg := NewConfig()
	tokenSigningKeyUrl := fmt.Sprintf(
		"https://cognito-idp.%s.amazonaws.com/%s/.well-known/jwks.json",
		cfg.AwsRegion,
		cfg.CognitoUserPoolId,
	)
	cognitoPublicKeys, err := awsAuth.LoadCognitoPublicKeys(tokenSigningKeyUrl)
	if err != nil {
		panic(err)
	}
	awsCfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient := storage.NewClient(dynamodb.NewFromConfig(awsCfg))
	srv := &server{
		address:           "0.0.0.0:" + cfg.Port,
		config:            cfg,
		cognitoPublicKeys: cognitoPublicKeys,
		storageClient:     storageClient,
		connectionUsecase: usecases.NewConnectionUsecase(storageClient, storageClient),
	}
	return srv
}

type authedHandler func(w http.ResponseWriter, r *http.Request, userId string)

func (s *server) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userId, err := s.auth(r)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}
		next(w, r, userId)
	}
}

// Start method    starts the api server
func (s *server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /connections/send", s.requireAuth(s.handleConnectionSend))
	mux.HandleFunc("PUT /connections/accept/{connectionId}", s.requireAuth(s.handleConnectionAccept))
	mux.HandleFunc("PUT /connections/reject/{connectionId}", s.requireAuth(s.handleConnectionReject))
	mux.HandleFunc("DELETE /connections/cancel/{connectionId}", s.requireAuth(s.handleConnectionCancel))
	mux.HandleFunc("GET /connections/pending", s.requireAuth(s.handlePendingRequests))
	mux.HandleFunc("GET /connections/sent", s.requireAuth(s.handleSentRequests))
	mux.HandleFunc("GET /connections/friends", s.requireAuth(s.handleFriends))
	mux.HandleFunc("DELETE /connections/friend/{friendId}", s.requireAuth(s.handleFriendRemove))
	mux.HandleFunc("GET /connections/status/{otherUserId}", s.requireAuth(s.handleConnectionStatus))

	mux.HandleFunc("GET /users/{id}", s.requireAuth(s.handleUserGet))
	mux.HandleFunc("GET /users/me", s.requireAuth(s.handleUserGet))

	mux.HandleFunc("GET /wishlist", s.requireAuth(s.handleWishlistList))
	mux.HandleFunc("POST /wishlist", s.requireAuth(s.handleWishlistAdd))
	mux.HandleFunc("DELETE /wishlist/{id}", s.requireAuth(s.handleWishlistRemove))

	logging.Info("api server started", zap.String("address", s.address))

	httpServer := &http.Server{
		Addr:        s.address,
		Handler:     mux,
		IdleTimeout: s.config.IdleTimeout,
	}
	return httpServer.ListenAndServe()
}
