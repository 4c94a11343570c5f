package usecases

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/trek-vn/sltrek/internal/domains/dtos"
	"github.com/trek-vn/sltrek/internal/domains/entities"
	"github.com/trek-vn/sltrek/internal/domains/interfaces"
)

// ConnectionUsecase implements the connection request protocol: at most one
// connection per unordered user pair, accept/reject only by the recipient,
// cancel only by the requester.
type ConnectionUsecase struct {
	connRepo interfaces.IConnectionRepository
	userRepo interfaces.IUserRepository
}

func NewConnectionUsecase(
	connRepo interfaces.IConnectionRepository,
	userRepo interfaces.IUserRepository,
) *ConnectionUsecase {
	return &ConnectionUsecase{
		connRepo: connRepo,
		userRepo: userRepo,
	}
}

func (u *ConnectionUsecase) SendConnectionRequest(
	ctx context.Context,
	requesterId,
	recipientId string,
) (
	entities.Connection,
	error,
) {
	if recipientId == "" {
		return entities.Connection{}, ErrRecipientRequired
	}
	if requesterId == recipientId {
		return entities.Connection{}, ErrSelfRequest
	}
	if _, err := u.userRepo.GetUserProfile(ctx, recipientId); err != nil {
		return entities.Connection{}, err
	}

	existing, err := u.connRepo.GetConnectionByPair(ctx, requesterId, recipientId)
	switch {
	case err == nil:
		switch existing.Status {
		case entities.ConnectionStatusAccepted:
			return entities.Connection{}, ErrAlreadyConnected
		case entities.ConnectionStatusPending:
			return entities.Connection{}, ErrRequestAlreadySent
		default:
			// A rejected record does not block a fresh request.
			// Replace it so the pair never holds more than one record.
			if err := u.connRepo.DeleteConnection(ctx, existing.ConnectionId); err != nil {
				return entities.Connection{}, err
			}
		}
	case !errors.Is(err, interfaces.ErrConnectionNotFound):
		return entities.Connection{}, err
	}

	now := time.Now()
	connection := entities.Connection{
		ConnectionId: uuid.NewString(),
		PairKey:      entities.ConnectionPairKey(requesterId, recipientId),
		RequesterId:  requesterId,
		RecipientId:  recipientId,
		Status:       entities.ConnectionStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.connRepo.PutConnection(ctx, connection); err != nil {
		return entities.Connection{}, err
	}
	return connection, nil
}

func (u *ConnectionUsecase) AcceptConnectionRequest(
	ctx context.Context,
	userId,
	connectionId string,
) (
	entities.Connection,
	error,
) {
	return u.resolveConnectionRequest(ctx, userId, connectionId, entities.ConnectionStatusAccepted)
}

func (u *ConnectionUsecase) RejectConnectionRequest(
	ctx context.Context,
	userId,
	connectionId string,
) (
	entities.Connection,
	error,
) {
	return u.resolveConnectionRequest(ctx, userId, connectionId, entities.ConnectionStatusRejected)
}

// resolveConnectionRequest transitions a pending request to its terminal
// status. Only the recipient may resolve, and only once.
func (u *ConnectionUsecase) resolveConnectionRequest(
	ctx context.Context,
	userId,
	connectionId,
	status string,
) (
	entities.Connection,
	error,
) {
	connection, err := u.connRepo.GetConnection(ctx, connectionId)
	if err != nil {
		return entities.Connection{}, err
	}
	if connection.RecipientId != userId {
		return entities.Connection{}, ErrNotAuthorized
	}
	if connection.Status != entities.ConnectionStatusPending {
		return entities.Connection{}, ErrRequestNotPending
	}

	now := time.Now()
	if err := u.connRepo.UpdateConnectionStatus(ctx, connectionId, status, now); err != nil {
		return entities.Connection{}, err
	}
	connection.Status = status
	connection.UpdatedAt = now
	return connection, nil
}

func (u *ConnectionUsecase) CancelConnectionRequest(
	ctx context.Context,
	userId,
	connectionId string,
) error {
	connection, err := u.connRepo.GetConnection(ctx, connectionId)
	if err != nil {
		return err
	}
	if connection.RequesterId != userId {
		return ErrNotAuthorized
	}
	if connection.Status != entities.ConnectionStatusPending {
		return ErrRequestNotPending
	}
	return u.connRepo.DeleteConnection(ctx, connection.ConnectionId)
}

func (u *ConnectionUsecase) GetPendingRequests(
	ctx context.Context,
	userId string,
) (
	[]dtos.PendingRequestResponse,
	error,
) {
	connections, err := u.connRepo.ListConnectionsByRecipient(ctx, userId, entities.ConnectionStatusPending)
	if err != nil {
		return nil, err
	}
	sort.Slice(connections, func(i, j int) bool {
		return connections[i].CreatedAt.After(connections[j].CreatedAt)
	})

	requests := []dtos.PendingRequestResponse{}
	for _, connection := range connections {
		profile, err := u.userRepo.GetUserProfile(ctx, connection.RequesterId)
		if err != nil {
			if errors.Is(err, interfaces.ErrUserProfileNotFound) {
				continue
			}
			return nil, err
		}
		requests = append(requests, dtos.PendingRequestResponse{
			Id:        connection.ConnectionId,
			Requester: dtos.UserSummaryFromEntity(profile),
			CreatedAt: connection.CreatedAt,
		})
	}
	return requests, nil
}

func (u *ConnectionUsecase) GetSentRequests(
	ctx context.Context,
	userId string,
) (
	[]dtos.SentRequestResponse,
	error,
) {
	connections, err := u.connRepo.ListConnectionsByRequester(ctx, userId, entities.ConnectionStatusPending)
	if err != nil {
		return nil, err
	}
	sort.Slice(connections, func(i, j int) bool {
		return connections[i].CreatedAt.After(connections[j].CreatedAt)
	})

	requests := []dtos.SentRequestResponse{}
	for _, connection := range connections {
		profile, err := u.userRepo.GetUserProfile(ctx, connection.RecipientId)
		if err != nil {
			if errors.Is(err, interfaces.ErrUserProfileNotFound) {
				continue
			}
			return nil, err
		}
		requests = append(requests, dtos.SentRequestResponse{
			Id:        connection.ConnectionId,
			Recipient: dtos.UserSummaryFromEntity(profile),
			CreatedAt: connection.CreatedAt,
		})
	}
	return requests, nil
}

func (u *ConnectionUsecase) GetFriends(
	ctx context.Context,
	userId string,
) (
	[]dtos.UserSummary,
	error,
) {
	asRequester, err := u.connRepo.ListConnectionsByRequester(ctx, userId, entities.ConnectionStatusAccepted)
	if err != nil {
		return nil, err
	}
	asRecipient, err := u.connRepo.ListConnectionsByRecipient(ctx, userId, entities.ConnectionStatusAccepted)
	if err != nil {
		return nil, err
	}

	connections := append(asRequester, asRecipient...)
	sort.Slice(connections, func(i, j int) bool {
		return connections[i].UpdatedAt.After(connections[j].UpdatedAt)
	})

	friends := []dtos.UserSummary{}
	for _, connection := range connections {
		profile, err := u.userRepo.GetUserProfile(ctx, connection.OtherParty(userId))
		if err != nil {
			if errors.Is(err, interfaces.ErrUserProfileNotFound) {
				continue
			}
			return nil, err
		}
		friends = append(friends, dtos.UserSummaryFromEntity(profile))
	}
	return friends, nil
}

func (u *ConnectionUsecase) RemoveFriend(ctx context.Context, userId, friendId string) error {
	connection, err := u.connRepo.GetConnectionByPair(ctx, userId, friendId)
	if err != nil {
		if errors.Is(err, interfaces.ErrConnectionNotFound) {
			return ErrFriendshipNotFound
		}
		return err
	}
	if connection.Status != entities.ConnectionStatusAccepted {
		return ErrFriendshipNotFound
	}
	return u.connRepo.DeleteConnection(ctx, connection.ConnectionId)
}

func (u *ConnectionUsecase) GetConnectionStatus(
	ctx context.Context,
	userId,
	otherUserId string,
) (
	dtos.ConnectionStatusResponse,
	error,
) {
	connection, err := u.connRepo.GetConnectionByPair(ctx, userId, otherUserId)
	if err != nil {
		if errors.Is(err, interfaces.ErrConnectionNotFound) {
			return dtos.ConnectionStatusResponse{Status: "none"}, nil
		}
		return dtos.ConnectionStatusResponse{}, err
	}
	isRequester := connection.RequesterId == userId
	return dtos.ConnectionStatusResponse{
		Status:       connection.Status,
		IsRequester:  &isRequester,
		ConnectionId: connection.ConnectionId,
	}, nil
}
