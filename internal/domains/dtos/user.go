package dtos

import (
	"time"

	"github.com/trek-vn/sltrek/internal/domains/entities"
)

type UserSummary struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func UserSummaryFromEntity(profile entities.UserProfile) UserSummary {
	name := profile.FullName
	if name == "" {
		name = profile.Username
	}
	return UserSummary{
		Id:    profile.UserId,
		Name:  name,
		Email: profile.Email,
	}
}

type UserResponse struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"fullName"`
	Picture   string    `json:"picture"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"createdAt"`
}

func UserResponseFromEntity(profile entities.UserProfile, full bool) UserResponse {
	user := UserResponse{
		Id:        profile.UserId,
		Username:  profile.Username,
		FullName:  profile.FullName,
		Picture:   profile.Picture,
		Locale:    profile.Locale,
		CreatedAt: profile.CreatedAt,
	}
	if full {
		user.Email = profile.Email
	}
	return user
}
