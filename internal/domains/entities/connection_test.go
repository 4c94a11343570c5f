package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionPairKey(t *testing.T) {
	assert.Equal(t, ConnectionPairKey("alice", "bob"), ConnectionPairKey("bob", "alice"))
	assert.Equal(t, "alice#bob", ConnectionPairKey("bob", "alice"))
	assert.NotEqual(t, ConnectionPairKey("alice", "bob"), ConnectionPairKey("alice", "carol"))
}

func TestConnectionOtherParty(t *testing.T) {
	connection := Connection{RequesterId: "alice", RecipientId: "bob"}
	assert.Equal(t, "bob", connection.OtherParty("alice"))
	assert.Equal(t, "alice", connection.OtherParty("bob"))
}
