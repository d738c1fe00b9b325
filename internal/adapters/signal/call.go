package signal

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Signal/internal/domain"
)

func (ctl *SignalWSController) handleCallUser(
	conn *wsSignalConn,
	data []byte,
) {
	type callPayload struct {
		Type    string                    `json:"type"`
		EmailID string                    `json:"emailId"`
		Offer   webrtc.SessionDescription `json:"offer"`
	}
	var p callPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad call payload")
		return
	}
	if p.EmailID == "" {
		log.Warn().Str("module", "signal").Str("cid", string(conn.id)).Msg("call without target")
		return
	}

	ctl.Coord.CallOffer(conn, domain.Identity(p.EmailID), p.Offer)
}

func (ctl *SignalWSController) handleCallAccepted(
	conn *wsSignalConn,
	data []byte,
) {
	type acceptPayload struct {
		Type string                    `json:"type"`
		To   string                    `json:"to"`
		Ans  webrtc.SessionDescription `json:"ans"`
	}
	var p acceptPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad accept payload")
		return
	}
	if p.To == "" {
		log.Warn().Str("module", "signal").Str("cid", string(conn.id)).Msg("accept without target")
		return
	}

	ctl.Coord.CallAnswer(conn, domain.Identity(p.To), p.Ans)
}

func (ctl *SignalWSController) handleCandidate(
	conn *wsSignalConn,
	data []byte,
) {
	type candidatePayload struct {
		Type      string                  `json:"type"`
		To        string                  `json:"to"`
		RoomID    string                  `json:"roomId"`
		Candidate webrtc.ICECandidateInit `json:"candidate"`
	}
	var p candidatePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad candidate payload")
		return
	}
	if p.To == "" && p.RoomID == "" {
		log.Warn().Str("module", "signal").Str("cid", string(conn.id)).Msg("candidate without target or room")
		return
	}

	ctl.Coord.Candidate(conn, domain.Identity(p.To), domain.ClampRoomID(p.RoomID), p.Candidate)
}
