package entities

type ApplicationEndpoint struct {
	UserId      string `dynamodbav:"UserId"`
	EndpointArn string `dynamodbav:"EndpointArn"`
	DeviceToken string `dynamodbav:"DeviceToken"`
}
