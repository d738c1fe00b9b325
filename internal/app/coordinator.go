package app

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Signal/internal/core"
	"github.com/dkeye/Signal/internal/domain"
)

// Coordinator routes signaling events between participants. It holds no
// state of its own; everything lives in the two registries. Each registry
// call is its own critical section and recipient sets come out as
// snapshots, so no TrySend ever runs under a registry lock.
type Coordinator struct {
	Directory *Directory
	Rooms     *Rooms
}

// Join binds the identity to its connection (superseding any previous
// binding, directory-then-rooms order), tells the joiner who is already in
// the room and announces it to them.
func (c *Coordinator) Join(conn core.Conn, roomID domain.RoomID, identity domain.Identity) {
	c.Directory.Bind(identity, conn)
	others := c.Rooms.Join(roomID, identity)

	c.send(conn, joinedRoomEvent{Type: evJoinedRoom, RoomID: roomID, Participants: others})

	ev := userJoinedEvent{Type: evUserJoined, EmailID: identity}
	for _, peer := range others {
		if pc, ok := c.Directory.Conn(peer); ok {
			c.send(pc, ev)
		}
	}
}

// CallOffer relays an offer to one peer. The "from" field always comes
// from the sender's directory binding, never from the payload.
func (c *Coordinator) CallOffer(conn core.Conn, to domain.Identity, offer webrtc.SessionDescription) {
	from, ok := c.Directory.Identity(conn.ID())
	if !ok {
		log.Warn().Str("module", "app.coordinator").Str("cid", string(conn.ID())).Msg("offer from unbound connection")
		return
	}
	target, ok := c.Directory.Conn(to)
	if !ok {
		log.Debug().Str("module", "app.coordinator").Str("to", string(to)).Msg("offer target not bound, dropped")
		return
	}
	c.send(target, incomingCallEvent{Type: evIncomingCall, From: from, Offer: offer})
}

// CallAnswer relays the answer back to the caller.
func (c *Coordinator) CallAnswer(conn core.Conn, to domain.Identity, ans webrtc.SessionDescription) {
	from, ok := c.Directory.Identity(conn.ID())
	if !ok {
		log.Warn().Str("module", "app.coordinator").Str("cid", string(conn.ID())).Msg("answer from unbound connection")
		return
	}
	target, ok := c.Directory.Conn(to)
	if !ok {
		log.Debug().Str("module", "app.coordinator").Str("to", string(to)).Msg("answer target not bound, dropped")
		return
	}
	c.send(target, callAcceptedEvent{Type: evCallAccepted, From: from, Ans: ans})
}

// Candidate relays an ICE candidate. With "to" set it goes to that one
// peer; without it, to everyone in the room but the sender. Both modes are
// needed: broadcast before the endpoints know each other, unicast after.
func (c *Coordinator) Candidate(conn core.Conn, to domain.Identity, roomID domain.RoomID, cand webrtc.ICECandidateInit) {
	from, ok := c.Directory.Identity(conn.ID())
	if !ok {
		log.Warn().Str("module", "app.coordinator").Str("cid", string(conn.ID())).Msg("candidate from unbound connection")
		return
	}
	ev := iceCandidateEvent{Type: evIceCandidate, From: from, Candidate: cand}
	if to != "" {
		if target, ok := c.Directory.Conn(to); ok {
			c.send(target, ev)
		}
		return
	}
	for _, peer := range c.Rooms.MembersExcept(roomID, from) {
		if pc, ok := c.Directory.Conn(peer); ok {
			c.send(pc, ev)
		}
	}
}

// Leave takes the sender out of one room without touching its binding; the
// connection stays usable for joining elsewhere.
func (c *Coordinator) Leave(conn core.Conn, roomID domain.RoomID) {
	identity, ok := c.Directory.Identity(conn.ID())
	if !ok {
		log.Warn().Str("module", "app.coordinator").Str("cid", string(conn.ID())).Msg("leave from unbound connection")
		return
	}
	if !c.Rooms.Leave(roomID, identity) {
		return
	}
	c.notifyLeft(roomID, identity)
}

// Disconnect cleans up after a closed connection: resolve the identity,
// leave every room it was in (notifying the rest), then drop the binding.
// Rooms must be collected before Unbind or the identity is unresolvable.
// Safe to call twice; the second call finds no binding and stops.
func (c *Coordinator) Disconnect(cid core.ConnID) {
	identity, ok := c.Directory.Identity(cid)
	if !ok {
		return
	}
	for _, roomID := range c.Rooms.RoomsOf(identity) {
		if c.Rooms.Leave(roomID, identity) {
			c.notifyLeft(roomID, identity)
		}
	}
	c.Directory.Unbind(cid)
	log.Info().Str("module", "app.coordinator").Str("identity", string(identity)).Str("cid", string(cid)).Msg("disconnected")
}

func (c *Coordinator) notifyLeft(roomID domain.RoomID, identity domain.Identity) {
	ev := userLeftEvent{Type: evUserLeft, EmailID: identity}
	for _, peer := range c.Rooms.MembersExcept(roomID, identity) {
		if pc, ok := c.Directory.Conn(peer); ok {
			c.send(pc, ev)
		}
	}
}

func (c *Coordinator) send(conn core.Conn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.coordinator").Msg("marshal event")
		return
	}
	if err := conn.TrySend(core.Frame(b)); err != nil {
		log.Debug().Err(err).Str("module", "app.coordinator").Str("cid", string(conn.ID())).Msg("send dropped")
	}
}
