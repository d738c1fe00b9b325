package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentity(t *testing.T) {
	id, err := ParseIdentity("alice@mail")
	require.NoError(t, err)
	assert.Equal(t, Identity("alice@mail"), id)

	_, err = ParseIdentity("")
	assert.ErrorIs(t, err, ErrIdentityEmpty)

	_, err = ParseIdentity(strings.Repeat("a", MaxIdentityLen+1))
	assert.ErrorIs(t, err, ErrIdentityTooLong)
}

func TestClampRoomID(t *testing.T) {
	assert.Equal(t, RoomID("r1"), ClampRoomID("r1"))

	long := strings.Repeat("r", MaxRoomIDLen+5)
	assert.Equal(t, RoomID(long[:MaxRoomIDLen]), ClampRoomID(long))
}
