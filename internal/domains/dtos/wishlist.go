package dtos

import (
	"time"

	"github.com/trek-vn/sltrek/internal/domains/entities"
)

type WishlistAddRequest struct {
	ItemId   string `json:"itemId"`
	Title    string `json:"title"`
	Img      string `json:"img"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
}

type WishlistItemResponse struct {
	ItemId   string    `json:"itemId"`
	Title    string    `json:"title"`
	Img      string    `json:"img"`
	Duration string    `json:"duration"`
	Price    string    `json:"price"`
	AddedAt  time.Time `json:"addedAt"`
}

type WishlistResponse struct {
	Wishlist []WishlistItemResponse `json:"wishlist"`
}

func WishlistResponseFromEntities(items []entities.WishlistItem) WishlistResponse {
	resp := WishlistResponse{Wishlist: []WishlistItemResponse{}}
	for _, item := range items {
		resp.Wishlist = append(resp.Wishlist, WishlistItemResponse{
			ItemId:   item.ItemId,
			Title:    item.Title,
			Img:      item.Image,
			Duration: item.Duration,
			Price:    item.Price,
			AddedAt:  item.AddedAt,
		})
	}
	return resp
}
