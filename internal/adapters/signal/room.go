package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Signal/internal/domain"
)

func (ctl *SignalWSController) handleJoin(
	conn *wsSignalConn,
	data []byte,
) {
	if !ctl.limiter.Allow(conn.id) {
		log.Warn().Str("module", "signal").Str("cid", string(conn.id)).Msg("join rate limited")
		ctl.sendError(conn, "too_many_joins")
		return
	}

	type joinPayload struct {
		Type    string `json:"type"`
		RoomID  string `json:"roomId"`
		EmailID string `json:"emailId"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendError(conn, "bad_payload")
		return
	}

	identity, err := domain.ParseIdentity(p.EmailID)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(conn.id)).Msg("join with bad identity")
		ctl.sendError(conn, "bad_identity")
		return
	}
	roomID := domain.ClampRoomID(p.RoomID)
	if roomID == "" {
		ctl.sendError(conn, "bad_room")
		return
	}

	log.Info().Str("module", "signal").Str("cid", string(conn.id)).Str("identity", string(identity)).Str("room", string(roomID)).Msg("join")
	ctl.Coord.Join(conn, roomID, identity)
}

func (ctl *SignalWSController) handleLeave(
	conn *wsSignalConn,
	data []byte,
) {
	type leavePayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
	}
	var p leavePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave payload")
		ctl.sendError(conn, "bad_payload")
		return
	}

	log.Info().Str("module", "signal").Str("cid", string(conn.id)).Str("room", p.RoomID).Msg("leave")
	ctl.Coord.Leave(conn, domain.ClampRoomID(p.RoomID))
}
