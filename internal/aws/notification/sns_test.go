package notification

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPayload(t *testing.T) {
	payload, err := pushPayload(`New request from "An"`)
	require.NoError(t, err)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(payload), &envelope))
	require.Equal(t, `New request from "An"`, envelope["default"])
}
