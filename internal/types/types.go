// Package types defines the JSON envelopes exchanged over the websocket.
package types

import (
	"encoding/json"

	"github.com/midlaj581/AUCTION-S7/internal/auction"
	"github.com/midlaj581/AUCTION-S7/internal/config"
	"github.com/midlaj581/AUCTION-S7/internal/store"
)

// ClientMessage is any inbound command. Type selects which of the optional
// fields matter. Player stays raw JSON so edits can be merged onto the
// stored record, keeping every field the frame leaves out.
type ClientMessage struct {
	Type     string          `json:"type"`
	Password string          `json:"password,omitempty"`
	PlayerID int             `json:"playerId,omitempty"`
	TeamID   string          `json:"teamId,omitempty"`
	Amount   int             `json:"amount,omitempty"`
	Player   json.RawMessage `json:"player,omitempty"`
	Team     *store.Team     `json:"team,omitempty"`
	Config   *config.Patch   `json:"config,omitempty"`
}

// Client message types. Admin ones require a verified connection.
const (
	MsgVerifyPassword = "verifyPassword"
	MsgPlaceBid       = "placeBid"
	MsgStartAuction   = "startAuction"
	MsgUndoBid        = "undoBid"
	MsgSold           = "sold"
	MsgUnsold         = "unsold"
	MsgIdle           = "idle"
	MsgResetAllTeams  = "resetAllTeams"
	MsgAddPlayer      = "addPlayer"
	MsgEditPlayer     = "editPlayer"
	MsgRemovePlayer   = "removePlayer"
	MsgResetPlayer    = "resetPlayer"
	MsgSaveTeam       = "saveTeam"
	MsgRemoveTeam     = "removeTeam"
	MsgUpdateConfig   = "updateConfig"
)

// FullState is the consistent snapshot every client receives after each
// mutation. The admin password never appears in it. BidIncrement is the
// suggested next bid step for the current price, advisory only.
type FullState struct {
	Auction      auction.State  `json:"auctionState"`
	Teams        []store.Team   `json:"teams"`
	Players      []store.Player `json:"players"`
	Config       config.Public  `json:"config"`
	BidIncrement int            `json:"bidIncrement"`
}

// ServerMessage is any outbound frame: a state snapshot, a narrow event
// notice, a bid rejection, or an auth reply.
type ServerMessage struct {
	Type    string           `json:"type"`
	Version int              `json:"version,omitempty"`
	State   *FullState       `json:"state,omitempty"`
	Team    *auction.TeamRef `json:"team,omitempty"`
	Player  *store.Player    `json:"player,omitempty"`
	Amount  int              `json:"amount,omitempty"`
	Code    string           `json:"code,omitempty"`
	Error   string           `json:"error,omitempty"`
	OK      bool             `json:"ok,omitempty"`
}

// Server message types.
const (
	MsgState        = "state"
	MsgAuth         = "auth"
	MsgBidError     = "bidError"
	MsgBadRequest   = "error"
	MsgBidAccepted  = "bidAccepted"
	MsgBidUndone    = "bidUndone"
	MsgPlayerSold   = "playerSold"
	MsgPlayerUnsold = "playerUnsold"
)
