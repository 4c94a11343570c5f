package dtos

import (
	"time"

	"github.com/trek-vn/sltrek/internal/domains/entities"
)

type ConnectionSendRequest struct {
	RecipientId string `json:"recipientId"`
}

type ConnectionResponse struct {
	Id          string    `json:"id"`
	RequesterId string    `json:"requesterId"`
	RecipientId string    `json:"recipientId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ConnectionResponseFromEntity(connection entities.Connection) ConnectionResponse {
	return ConnectionResponse{
		Id:          connection.ConnectionId,
		RequesterId: connection.RequesterId,
		RecipientId: connection.RecipientId,
		Status:      connection.Status,
		CreatedAt:   connection.CreatedAt,
		UpdatedAt:   connection.UpdatedAt,
	}
}

type ConnectionCreatedResponse struct {
	Message    string             `json:"message"`
	Connection ConnectionResponse `json:"connection"`
}

type ConnectionUpdatedResponse struct {
	Message    string             `json:"message"`
	Connection ConnectionResponse `json:"connection"`
}

type PendingRequestResponse struct {
	Id        string      `json:"id"`
	Requester UserSummary `json:"requester"`
	CreatedAt time.Time   `json:"createdAt"`
}

type PendingRequestListResponse struct {
	PendingRequests []PendingRequestResponse `json:"pendingRequests"`
	Count           int                      `json:"count"`
}

type SentRequestResponse struct {
	Id        string      `json:"id"`
	Recipient UserSummary `json:"recipient"`
	CreatedAt time.Time   `json:"createdAt"`
}

type SentRequestListResponse struct {
	SentRequests []SentRequestResponse `json:"sentRequests"`
	Count        int                   `json:"count"`
}

type FriendListResponse struct {
	Friends []UserSummary `json:"friends"`
	Count   int           `json:"count"`
}

type ConnectionStatusResponse struct {
	Status       string `json:"status"`
	IsRequester  *bool  `json:"isRequester,omitempty"`
	ConnectionId string `json:"connectionId,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
