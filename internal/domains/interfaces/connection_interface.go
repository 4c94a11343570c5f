package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/trek-vn/sltrek/internal/domains/entities"
)

var (
	ErrConnectionNotFound  = errors.New("connection not found")
	ErrUserProfileNotFound = errors.New("user profile not found")
)

type (
	IConnectionRepository interface {
		GetConnection(ctx context.Context, connectionId string) (entities.Connection, error)
		GetConnectionByPair(ctx context.Context, userId1, userId2 string) (entities.Connection, error)
		ListConnectionsByRecipient(ctx context.Context, userId, status string) ([]entities.Connection, error)
		ListConnectionsByRequester(ctx context.Context, userId, status string) ([]entities.Connection, error)
		PutConnection(ctx context.Context, connection entities.Connection) error
		UpdateConnectionStatus(ctx context.Context, connectionId, status string, updatedAt time.Time) error
		DeleteConnection(ctx context.Context, connectionId string) error
	}

	IUserRepository interface {
		GetUserProfile(ctx context.Context, userId string) (entities.UserProfile, error)
	}
)
