package entities

import "time"

type UserProfile struct {
	UserId    string    `dynamodbav:"UserId"`
	Username  string    `dynamodbav:"Username"`
	Email     string    `dynamodbav:"Email"`
	FullName  string    `dynamodbav:"FullName"`
	Picture   string    `dynamodbav:"Picture"`
	Locale    string    `dynamodbav:"Locale"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
}
