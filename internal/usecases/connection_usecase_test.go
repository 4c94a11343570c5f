package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trek-vn/sltrek/internal/domains/entities"
	"github.com/trek-vn/sltrek/internal/domains/interfaces"
)

type fakeConnectionRepo struct {
	connections map[string]entities.Connection
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{connections: make(map[string]entities.Connection)}
}

func (f *fakeConnectionRepo) GetConnection(_ context.Context, connectionId string) (entities.Connection, error) {
	connection, ok := f.connections[connectionId]
	if !ok {
		return entities.Connection{}, interfaces.ErrConnectionNotFound
	}
	return connection, nil
}

func (f *fakeConnectionRepo) GetConnectionByPair(_ context.Context, userId1, userId2 string) (entities.Connection, error) {
	pairKey := entities.ConnectionPairKey(userId1, userId2)
	for _, connection := range f.connections {
		if connection.PairKey == pairKey {
			return connection, nil
		}
	}
	return entities.Connection{}, interfaces.ErrConnectionNotFound
}

func (f *fakeConnectionRepo) ListConnectionsByRecipient(_ context.Context, userId, status string) ([]entities.Connection, error) {
	var connections []entities.Connection
	for _, connection := range f.connections {
		if connection.RecipientId == userId && connection.Status == status {
			connections = append(connections, connection)
		}
	}
	return connections, nil
}

func (f *fakeConnectionRepo) ListConnectionsByRequester(_ context.Context, userId, status string) ([]entities.Connection, error) {
	var connections []entities.Connection
	for _, connection := range f.connections {
		if connection.RequesterId == userId && connection.Status == status {
			connections = append(connections, connection)
		}
	}
	return connections, nil
}

func (f *fakeConnectionRepo) PutConnection(_ context.Context, connection entities.Connection) error {
	f.connections[connection.ConnectionId] = connection
	return nil
}

func (f *fakeConnectionRepo) UpdateConnectionStatus(_ context.Context, connectionId, status string, updatedAt time.Time) error {
	connection, ok := f.connections[connectionId]
	if !ok {
		return interfaces.ErrConnectionNotFound
	}
	connection.Status = status
	connection.UpdatedAt = updatedAt
	f.connections[connectionId] = connection
	return nil
}

func (f *fakeConnectionRepo) DeleteConnection(_ context.Context, connectionId string) error {
	delete(f.connections, connectionId)
	return nil
}

type fakeUserRepo struct {
	profiles map[string]entities.UserProfile
}

func (f *fakeUserRepo) GetUserProfile(_ context.Context, userId string) (entities.UserProfile, error) {
	profile, ok := f.profiles[userId]
	if !ok {
		return entities.UserProfile{}, interfaces.ErrUserProfileNotFound
	}
	return profile, nil
}

func newTestUsecase(userIds ...string) (*ConnectionUsecase, *fakeConnectionRepo) {
	connRepo := newFakeConnectionRepo()
	userRepo := &fakeUserRepo{profiles: make(map[string]entities.UserProfile)}
	for _, userId := range userIds {
		userRepo.profiles[userId] = entities.UserProfile{
			UserId:   userId,
			Username: userId,
			Email:    userId + "@example.com",
			FullName: "User " + userId,
		}
	}
	return NewConnectionUsecase(connRepo, userRepo), connRepo
}

func TestSendConnectionRequest(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", connection.RequesterId)
	assert.Equal(t, "bob", connection.RecipientId)
	assert.Equal(t, entities.ConnectionStatusPending, connection.Status)
	assert.NotEmpty(t, connection.ConnectionId)

	status, err := u.GetConnectionStatus(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusPending, status.Status)
	require.NotNil(t, status.IsRequester)
	assert.True(t, *status.IsRequester)
	assert.Equal(t, connection.ConnectionId, status.ConnectionId)

	status, err = u.GetConnectionStatus(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusPending, status.Status)
	require.NotNil(t, status.IsRequester)
	assert.False(t, *status.IsRequester)
}

func TestSendConnectionRequestValidation(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob")
	ctx := context.Background()

	_, err := u.SendConnectionRequest(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrRecipientRequired)

	_, err = u.SendConnectionRequest(ctx, "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfRequest)

	_, err = u.SendConnectionRequest(ctx, "alice", "nobody")
	assert.ErrorIs(t, err, interfaces.ErrUserProfileNotFound)
}

func TestSendConnectionRequestDuplicate(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = u.SendConnectionRequest(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrRequestAlreadySent)

	// Same pair, opposite direction
	_, err = u.SendConnectionRequest(ctx, "bob", "alice")
	assert.ErrorIs(t, err, ErrRequestAlreadySent)

	_, err = u.AcceptConnectionRequest(ctx, "bob", connection.ConnectionId)
	require.NoError(t, err)

	_, err = u.SendConnectionRequest(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrAlreadyConnected)
	_, err = u.SendConnectionRequest(ctx, "bob", "alice")
	assert.ErrorIs(t, err, ErrAlreadyConnected)
}

func TestAcceptAuthorization(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob", "carol")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = u.AcceptConnectionRequest(ctx, "alice", connection.ConnectionId)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = u.RejectConnectionRequest(ctx, "carol", connection.ConnectionId)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = u.AcceptConnectionRequest(ctx, "bob", "no-such-id")
	assert.ErrorIs(t, err, interfaces.ErrConnectionNotFound)
}

func TestAcceptNonPending(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = u.AcceptConnectionRequest(ctx, "bob", connection.ConnectionId)
	require.NoError(t, err)

	_, err = u.AcceptConnectionRequest(ctx, "bob", connection.ConnectionId)
	assert.ErrorIs(t, err, ErrRequestNotPending)
	_, err = u.RejectConnectionRequest(ctx, "bob", connection.ConnectionId)
	assert.ErrorIs(t, err, ErrRequestNotPending)
}

func TestAcceptThenRemoveFriend(t *testing.T) {
	u, connRepo := newTestUsecase("alice", "bob")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	accepted, err := u.AcceptConnectionRequest(ctx, "bob", connection.ConnectionId)
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusAccepted, accepted.Status)

	status, err := u.GetConnectionStatus(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusAccepted, status.Status)
	status, err = u.GetConnectionStatus(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusAccepted, status.Status)

	aliceFriends, err := u.GetFriends(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "bob", aliceFriends[0].Id)

	bobFriends, err := u.GetFriends(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, "alice", bobFriends[0].Id)

	require.NoError(t, u.RemoveFriend(ctx, "bob", "alice"))

	aliceFriends, err = u.GetFriends(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)
	bobFriends, err = u.GetFriends(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobFriends)

	// Record is gone entirely
	assert.Empty(t, connRepo.connections)
	status, err = u.GetConnectionStatus(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "none", status.Status)
	assert.Nil(t, status.IsRequester)
}

func TestRemoveFriendRequiresAcceptedConnection(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob")
	ctx := context.Background()

	err := u.RemoveFriend(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrFriendshipNotFound)

	_, err = u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	// Still pending, not a friendship yet
	err = u.RemoveFriend(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrFriendshipNotFound)
}

func TestCancelConnectionRequest(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	err = u.CancelConnectionRequest(ctx, "bob", connection.ConnectionId)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, u.CancelConnectionRequest(ctx, "alice", connection.ConnectionId))

	status, err := u.GetConnectionStatus(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "none", status.Status)
}

func TestCancelNonPending(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = u.AcceptConnectionRequest(ctx, "bob", connection.ConnectionId)
	require.NoError(t, err)

	err = u.CancelConnectionRequest(ctx, "alice", connection.ConnectionId)
	assert.ErrorIs(t, err, ErrRequestNotPending)
}

func TestRejectThenResend(t *testing.T) {
	u, connRepo := newTestUsecase("alice", "bob")
	ctx := context.Background()

	connection, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	rejected, err := u.RejectConnectionRequest(ctx, "bob", connection.ConnectionId)
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusRejected, rejected.Status)

	status, err := u.GetConnectionStatus(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusRejected, status.Status)

	// The rejected record does not block a fresh request and is replaced by it.
	resent, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.NotEqual(t, connection.ConnectionId, resent.ConnectionId)
	assert.Len(t, connRepo.connections, 1)

	status, err = u.GetConnectionStatus(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, entities.ConnectionStatusPending, status.Status)
}

func TestPendingAndSentRequests(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob", "carol")
	ctx := context.Background()

	first, err := u.SendConnectionRequest(ctx, "alice", "carol")
	require.NoError(t, err)
	second, err := u.SendConnectionRequest(ctx, "bob", "carol")
	require.NoError(t, err)

	pending, err := u.GetPendingRequests(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Newest first
	assert.Equal(t, second.ConnectionId, pending[0].Id)
	assert.Equal(t, first.ConnectionId, pending[1].Id)
	assert.Equal(t, "User bob", pending[0].Requester.Name)
	assert.Equal(t, "bob@example.com", pending[0].Requester.Email)

	sent, err := u.GetSentRequests(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, first.ConnectionId, sent[0].Id)
	assert.Equal(t, "carol", sent[0].Recipient.Id)

	// Accepting removes the request from both lists
	_, err = u.AcceptConnectionRequest(ctx, "carol", first.ConnectionId)
	require.NoError(t, err)

	pending, err = u.GetPendingRequests(ctx, "carol")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
	sent, err = u.GetSentRequests(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, sent)
}

func TestGetFriendsOrdering(t *testing.T) {
	u, _ := newTestUsecase("alice", "bob", "carol")
	ctx := context.Background()

	toBob, err := u.SendConnectionRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	fromCarol, err := u.SendConnectionRequest(ctx, "carol", "alice")
	require.NoError(t, err)

	_, err = u.AcceptConnectionRequest(ctx, "bob", toBob.ConnectionId)
	require.NoError(t, err)
	_, err = u.AcceptConnectionRequest(ctx, "alice", fromCarol.ConnectionId)
	require.NoError(t, err)

	friends, err := u.GetFriends(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, friends, 2)
	// Most recently accepted first, regardless of direction
	assert.Equal(t, "carol", friends[0].Id)
	assert.Equal(t, "bob", friends[1].Id)
}
