package notification

import (
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/spf13/viper"
)

type Client struct {
	sns *sns.Client
	cfg config
}

type config struct {
	PlatformApplicationArn string
}

func NewClient(snsClient *sns.Client) *Client {
	return &Client{
		sns: snsClient,
		cfg: loadConfig(),
	}
}

func loadConfig() config {
	var cfg config

	viper.AutomaticEnv()
	cfg.PlatformApplicationArn = viper.GetString("PLATFORM_APPLICATION_ARN")

	return cfg
}
