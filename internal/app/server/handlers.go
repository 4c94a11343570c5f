package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/trek-vn/sltrek/internal/aws/storage"
	"github.com/trek-vn/sltrek/internal/domains/dtos"
	"github.com/trek-vn/sltrek/internal/domains/entities"
	"github.com/trek-vn/sltrek/internal/domains/interfaces"
	"github.com/trek-vn/sltrek/internal/usecases"
	"github.com/trek-vn/sltrek/pkg/logging"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to write response", zap.Error(err))
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dtos.MessageResponse{Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	status := usecases.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logging.Error("request failed", zap.Error(err))
		writeMessage(w, status, "server error")
		return
	}
	writeMessage(w, status, err.Error())
}

func (s *server) handleConnectionSend(w http.ResponseWriter, r *http.Request, userId string) {
	var req dtos.ConnectionSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, usecases.ErrRecipientRequired)
		return
	}
	connection, err := s.connectionUsecase.SendConnectionRequest(r.Context(), userId, req.RecipientId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dtos.ConnectionCreatedResponse{
		Message:    "Connection request sent successfully",
		Connection: dtos.ConnectionResponseFromEntity(connection),
	})
}

func (s *server) handleConnectionAccept(w http.ResponseWriter, r *http.Request, userId string) {
	connection, err := s.connectionUsecase.AcceptConnectionRequest(r.Context(), userId, r.PathValue("connectionId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.ConnectionUpdatedResponse{
		Message:    "Connection request accepted",
		Connection: dtos.ConnectionResponseFromEntity(connection),
	})
}

func (s *server) handleConnectionReject(w http.ResponseWriter, r *http.Request, userId string) {
	connection, err := s.connectionUsecase.RejectConnectionRequest(r.Context(), userId, r.PathValue("connectionId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.ConnectionUpdatedResponse{
		Message:    "Connection request rejected",
		Connection: dtos.ConnectionResponseFromEntity(connection),
	})
}

func (s *server) handleConnectionCancel(w http.ResponseWriter, r *http.Request, userId string) {
	err := s.connectionUsecase.CancelConnectionRequest(r.Context(), userId, r.PathValue("connectionId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Connection request cancelled successfully")
}

func (s *server) handlePendingRequests(w http.ResponseWriter, r *http.Request, userId string) {
	pendingRequests, err := s.connectionUsecase.GetPendingRequests(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.PendingRequestListResponse{
		PendingRequests: pendingRequests,
		Count:           len(pendingRequests),
	})
}

func (s *server) handleSentRequests(w http.ResponseWriter, r *http.Request, userId string) {
	sentRequests, err := s.connectionUsecase.GetSentRequests(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.SentRequestListResponse{
		SentRequests: sentRequests,
		Count:        len(sentRequests),
	})
}

func (s *server) handleFriends(w http.ResponseWriter, r *http.Request, userId string) {
	friends, err := s.connectionUsecase.GetFriends(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.FriendListResponse{
		Friends: friends,
		Count:   len(friends),
	})
}

func (s *server) handleFriendRemove(w http.ResponseWriter, r *http.Request, userId string) {
	err := s.connectionUsecase.RemoveFriend(r.Context(), userId, r.PathValue("friendId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Friend removed successfully")
}

func (s *server) handleConnectionStatus(w http.ResponseWriter, r *http.Request, userId string) {
	status, err := s.connectionUsecase.GetConnectionStatus(r.Context(), userId, r.PathValue("otherUserId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *server) handleUserGet(w http.ResponseWriter, r *http.Request, userId string) {
	targetId := r.PathValue("id")
	if targetId == "" {
		targetId = userId
	}
	profile, err := s.storageClient.GetUserProfile(r.Context(), targetId)
	if err != nil {
		if errors.Is(err, interfaces.ErrUserProfileNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.UserResponseFromEntity(profile, targetId == userId))
}

func (s *server) handleWishlistList(w http.ResponseWriter, r *http.Request, userId string) {
	items, err := s.storageClient.FetchWishlist(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.WishlistResponseFromEntities(items))
}

func (s *server) handleWishlistAdd(w http.ResponseWriter, r *http.Request, userId string) {
	var req dtos.WishlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemId == "" || req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "Missing itemId or title")
		return
	}

	status := http.StatusOK
	_, err := s.storageClient.GetWishlistItem(r.Context(), userId, req.ItemId)
	if err != nil {
		if !errors.Is(err, storage.ErrWishlistItemNotFound) {
			writeError(w, err)
			return
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
		if err := s.storageClient.PutWishlistItem(r.Context(), item); err != nil {
			writeError(w, err)
			return
		}
		status = http.StatusCreated
	}

	items, err := s.storageClient.FetchWishlist(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, dtos.WishlistResponseFromEntities(items))
}

func (s *server) handleWishlistRemove(w http.ResponseWriter, r *http.Request, userId string) {
	if err := s.storageClient.DeleteWishlistItem(r.Context(), userId, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	items, err := s.storageClient.FetchWishlist(r.Context(), userId)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos.WishlistResponseFromEntities(items))
}
