package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// pushPayload wraps a message in the envelope sns requires when
// MessageStructure is "json": a json object with a "default" key.
func pushPayload(message string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"default": message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal push payload: %w", err)
	}
	return string(payload), nil
}

func (client *Client) SendPushNotification(
	ctx context.Context,
	endpointArn,
	message string,
) error {
	payload, err := pushPayload(message)
	if err != nil {
		return err
	}
	_, err = client.sns.Publish(ctx, &sns.PublishInput{
		Message:          aws.String(payload),
		MessageStructure: aws.String("json"),
		TargetArn:        aws.String(endpointArn),
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// RegisterDevice creates a platform endpoint for a device token and
// returns its arn.
func (client *Client) RegisterDevice(
	ctx context.Context,
	deviceToken string,
) (
	string,
	error,
) {
	output, err := client.sns.CreatePlatformEndpoint(ctx, &sns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(client.cfg.PlatformApplicationArn),
		Token:                  aws.String(deviceToken),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create platform endpoint: %w", err)
	}
	return aws.ToString(output.EndpointArn), nil
}
