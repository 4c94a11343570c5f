package entities

import "time"

type WishlistItem struct {
	UserId   string    `dynamodbav:"UserId"`
	ItemId   string    `dynamodbav:"ItemId"`
	Title    string    `dynamodbav:"Title"`
	Image    string    `dynamodbav:"Image"`
	Duration string    `dynamodbav:"Duration"`
	Price    string    `dynamodbav:"Price"`
	AddedAt  time.Time `dynamodbav:"AddedAt"`
}
