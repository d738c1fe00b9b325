package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Signal/internal/core"
	"github.com/dkeye/Signal/internal/domain"
)

// Rooms tracks which identities are in which room. Rooms are created on
// first join and pruned as soon as the last member leaves; a pruned room
// re-created by a later join is indistinguishable from a new one.
type Rooms struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]map[domain.Identity]struct{}
}

func NewRooms() *Rooms {
	return &Rooms{rooms: make(map[domain.RoomID]map[domain.Identity]struct{})}
}

// Join adds identity to the room and returns the members that were already
// there. Joining twice is idempotent and returns the same peers.
func (r *Rooms) Join(roomID domain.RoomID, identity domain.Identity) []domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()
	members, ok := r.rooms[roomID]
	if !ok {
		members = make(map[domain.Identity]struct{})
		r.rooms[roomID] = members
	}
	others := make([]domain.Identity, 0, len(members))
	for id := range members {
		if id != identity {
			others = append(others, id)
		}
	}
	members[identity] = struct{}{}
	log.Info().Str("module", "app.rooms").Str("room", string(roomID)).Str("identity", string(identity)).Int("count", len(members)).Msg("joined room")
	return others
}

// Leave reports whether the identity was a member. An emptied room is
// deleted on the spot.
func (r *Rooms) Leave(roomID domain.RoomID, identity domain.Identity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	members, ok := r.rooms[roomID]
	if !ok {
		return false
	}
	if _, present := members[identity]; !present {
		return false
	}
	delete(members, identity)
	if len(members) == 0 {
		delete(r.rooms, roomID)
	}
	log.Info().Str("module", "app.rooms").Str("room", string(roomID)).Str("identity", string(identity)).Msg("left room")
	return true
}

func (r *Rooms) MembersExcept(roomID domain.RoomID, identity domain.Identity) []domain.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members := r.rooms[roomID]
	out := make([]domain.Identity, 0, len(members))
	for id := range members {
		if id != identity {
			out = append(out, id)
		}
	}
	return out
}

// RoomsOf returns every room the identity is currently in. Disconnect
// cleanup walks this list before the directory entry goes away.
func (r *Rooms) RoomsOf(identity domain.Identity) []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.RoomID
	for roomID, members := range r.rooms {
		if _, ok := members[identity]; ok {
			out = append(out, roomID)
		}
	}
	return out
}

func (r *Rooms) List() []core.RoomInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(r.rooms))
	for roomID, members := range r.rooms {
		out = append(out, core.RoomInfo{ID: roomID, MemberCount: len(members)})
	}
	return out
}
