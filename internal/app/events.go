package app

import (
	"github.com/pion/webrtc/v4"

	"github.com/dkeye/Signal/internal/domain"
)

// Outbound event names. "incomming-call" keeps its historical spelling;
// deployed clients match on it.
const (
	evJoinedRoom   = "joined-room"
	evUserJoined   = "user-joined"
	evIncomingCall = "incomming-call"
	evCallAccepted = "call-accepted"
	evIceCandidate = "ice-candidate"
	evUserLeft     = "user-left"
)

type joinedRoomEvent struct {
	Type         string            `json:"type"`
	RoomID       domain.RoomID     `json:"roomId"`
	Participants []domain.Identity `json:"participants"`
}

type userJoinedEvent struct {
	Type    string          `json:"type"`
	EmailID domain.Identity `json:"emailId"`
}

type incomingCallEvent struct {
	Type  string                    `json:"type"`
	From  domain.Identity           `json:"from"`
	Offer webrtc.SessionDescription `json:"offer"`
}

type callAcceptedEvent struct {
	Type string                    `json:"type"`
	From domain.Identity           `json:"from"`
	Ans  webrtc.SessionDescription `json:"ans"`
}

type iceCandidateEvent struct {
	Type      string                  `json:"type"`
	From      domain.Identity         `json:"from"`
	Candidate webrtc.ICECandidateInit `json:"candidate"`
}

type userLeftEvent struct {
	Type    string          `json:"type"`
	EmailID domain.Identity `json:"emailId"`
}
