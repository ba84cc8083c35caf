package auction

import "github.com/midlaj581/AUCTION-S7/internal/store"

type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseLive   Phase = "live"
	PhaseSold   Phase = "sold"
	PhaseUnsold Phase = "unsold"
)

// TeamRef is a value snapshot of a team's identity taken at bid/sale time.
// Historical records keep these, not live Team references, so renaming or
// recoloring a team later never rewrites the past.
type TeamRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Logo  string `json:"logo"`
}

// Bid is one accepted bid in the current round's history.
type Bid struct {
	Team   string `json:"team"`
	Color  string `json:"color"`
	Logo   string `json:"logo"`
	Amount int    `json:"amount"`
	TS     int64  `json:"ts"`
}

// Sale is one completed purchase in the soldPlayers ledger.
type Sale struct {
	Player    store.Player `json:"player"`
	Team      string       `json:"team"`
	TeamColor string       `json:"teamColor"`
	TeamLogo  string       `json:"teamLogo"`
	Price     int          `json:"price"`
}

// State is the full auction view broadcast to every client.
type State struct {
	Phase         Phase         `json:"phase"`
	CurrentPlayer *store.Player `json:"currentPlayer"`
	CurrentBid    int           `json:"currentBid"`
	LeadingTeam   *TeamRef      `json:"leadingTeam"`
	BidHistory    []Bid         `json:"bidHistory"`
	SoldPlayers   []Sale        `json:"soldPlayers"`
}

func newIdleState() State {
	return State{Phase: PhaseIdle, BidHistory: []Bid{}, SoldPlayers: []Sale{}}
}

// clone returns a State whose slices and pointers are independent of the
// receiver. Broadcast snapshots must not alias engine-owned memory.
func (s State) clone() State {
	c := s
	if s.CurrentPlayer != nil {
		p := *s.CurrentPlayer
		c.CurrentPlayer = &p
	}
	if s.LeadingTeam != nil {
		t := *s.LeadingTeam
		c.LeadingTeam = &t
	}
	c.BidHistory = make([]Bid, len(s.BidHistory))
	copy(c.BidHistory, s.BidHistory)
	c.SoldPlayers = make([]Sale, len(s.SoldPlayers))
	copy(c.SoldPlayers, s.SoldPlayers)
	return c
}

type CommandType string

const (
	CmdStartAuction CommandType = "StartAuction"
	CmdPlaceBid     CommandType = "PlaceBid"
	CmdUndoBid      CommandType = "UndoBid"
	CmdSold         CommandType = "Sold"
	CmdUnsold       CommandType = "Unsold"
	CmdIdle         CommandType = "Idle"
	CmdResetAll     CommandType = "ResetAll"
)

type Command struct {
	Type     CommandType
	PlayerID int
	TeamID   string
	Amount   int
}

type EventType string

const (
	EvtBidAccepted  EventType = "bidAccepted"
	EvtBidUndone    EventType = "bidUndone"
	EvtPlayerSold   EventType = "playerSold"
	EvtPlayerUnsold EventType = "playerUnsold"
)

// Event is a narrow notification emitted alongside the full-state broadcast,
// consumed by the presentation layers for flashes and animations.
type Event struct {
	Type   EventType
	Team   *TeamRef
	Player *store.Player
	Amount int
}
