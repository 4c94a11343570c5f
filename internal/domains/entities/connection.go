package entities

import "time"

const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusRejected = "rejected"
)

type Connection struct {
	ConnectionId string    `dynamodbav:"ConnectionId"`
	PairKey      string    `dynamodbav:"PairKey"`
	RequesterId  string    `dynamodbav:"RequesterId"`
	RecipientId  string    `dynamodbav:"RecipientId"`
	Status       string    `dynamodbav:"Status"`
	CreatedAt    time.Time `dynamodbav:"CreatedAt"`
	UpdatedAt    time.Time `dynamodbav:"UpdatedAt"`
}

// ConnectionPairKey builds the unordered pair key for two user ids.
// Both directions of a request map to the same key.
func ConnectionPairKey(userId1, userId2 string) string {
	if userId1 > userId2 {
		userId1, userId2 = userId2, userId1
	}
	return userId1 + "#" + userId2
}

// OtherParty returns the user on the opposite side of the connection.
func (c Connection) OtherParty(userId string) string {
	if c.RequesterId == userId {
		return c.RecipientId
	}
	return c.RequesterId
}
