package domain

const MaxRoomIDLen = 36

// RoomID names a room. Rooms exist implicitly: the first join creates one.
type RoomID string

// ClampRoomID trims oversized room names instead of rejecting them so a
// sloppy client still lands somewhere deterministic.
func ClampRoomID(raw string) RoomID {
	if len(raw) > MaxRoomIDLen {
		raw = raw[:MaxRoomIDLen]
	}
	return RoomID(raw)
}
