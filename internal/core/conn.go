package core

import "github.com/dkeye/Signal/internal/domain"

// Frame is a raw wire payload (marshaled signaling event).
type Frame []byte

// ConnID identifies one live transport endpoint. A participant that
// reconnects gets a new ConnID but keeps its Identity.
type ConnID string

// Conn abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it. TrySend never blocks:
// a full send buffer is reported as an error and the frame is dropped.
type Conn interface {
	ID() ConnID
	TrySend(Frame) error
	Close()
}

// RoomInfo is a read-only view for APIs (no transport fields).
type RoomInfo struct {
	ID          domain.RoomID `json:"roomId"`
	MemberCount int           `json:"client_count"`
}
