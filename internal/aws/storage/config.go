package storage

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/viper"
)

type config struct {
	ConnectionsTableName          *string
	UserProfilesTableName         *string
	WishlistsTableName            *string
	ApplicationEndpointsTableName *string
}

func loadConfig() config {
	viper.AutomaticEnv()
	viper.SetDefault("CONNECTIONS_TABLE_NAME", "Connections")
	viper.SetDefault("USER_PROFILES_TABLE_NAME", "UserProfiles")
	viper.SetDefault("WISHLISTS_TABLE_NAME", "Wishlists")
	viper.SetDefault("APPLICATION_ENDPOINTS_TABLE_NAME", "ApplicationEndpoints")

	return config{
		ConnectionsTableName:          aws.String(viper.GetString("CONNECTIONS_TABLE_NAME")),
		UserProfilesTableName:         aws.String(viper.GetString("USER_PROFILES_TABLE_NAME")),
		WishlistsTableName:            aws.String(viper.GetString("WISHLISTS_TABLE_NAME")),
		ApplicationEndpointsTableName: aws.String(viper.GetString("APPLICATION_ENDPOINTS_TABLE_NAME")),
	}
}
