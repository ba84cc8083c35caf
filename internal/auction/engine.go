// Package auction is the heart of the server: the round state machine, bid
// validation against the budget reserve policy, and the one-level undo.
//
// The engine is not safe for concurrent use. The room actor owns the single
// instance and feeds it one command at a time.
package auction

import (
	"fmt"
	"time"

	"github.com/midlaj581/AUCTION-S7/internal/store"
)

// undoSnapshot captures the bid state right before the most recently
// accepted bid. At most one exists; it never chains.
type undoSnapshot struct {
	currentBid  int
	leadingTeam *TeamRef
	bidHistory  []Bid
}

type Engine struct {
	state  State
	undo   *undoSnapshot
	roster store.RosterStore
	teams  store.TeamStore

	minPlayersPerTeam func() int
	now               func() time.Time
}

// New builds an engine in the idle phase. minPlayersPerTeam is read on every
// bid so admin config changes take effect immediately.
func New(roster store.RosterStore, teams store.TeamStore, minPlayersPerTeam func() int) *Engine {
	return &Engine{
		state:             newIdleState(),
		roster:            roster,
		teams:             teams,
		minPlayersPerTeam: minPlayersPerTeam,
		now:               time.Now,
	}
}

// State returns a copy safe to hand to other goroutines.
func (e *Engine) State() State { return e.state.clone() }

// Apply runs one command against the machine. It returns the narrow events
// to announce, or an error: a *BidRejection to report to the bidder, any
// other error is a silent no-op. State is unchanged on every error path.
func (e *Engine) Apply(cmd Command) ([]Event, error) {
	switch cmd.Type {
	case CmdStartAuction:
		return e.startAuction(cmd.PlayerID)
	case CmdPlaceBid:
		return e.placeBid(cmd.TeamID, cmd.Amount)
	case CmdUndoBid:
		return e.undoBid()
	case CmdSold:
		return e.sold()
	case CmdUnsold:
		return e.unsold()
	case CmdIdle:
		return e.idle()
	case CmdResetAll:
		return e.resetAll()
	default:
		return nil, ErrUnsupportedCommand
	}
}

func (e *Engine) startAuction(playerID int) ([]Event, error) {
	player, ok := e.roster.Find(playerID)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if player.Status != store.StatusAvailable {
		return nil, ErrPlayerNotAvailable
	}

	e.undo = nil
	e.state = State{
		Phase:         PhaseLive,
		CurrentPlayer: &player,
		CurrentBid:    player.BasePrice,
		LeadingTeam:   nil,
		BidHistory:    []Bid{},
		SoldPlayers:   e.state.SoldPlayers, // ledger carries over
	}
	return nil, nil
}

func (e *Engine) placeBid(teamID string, amount int) ([]Event, error) {
	if e.state.Phase != PhaseLive {
		return nil, ErrNotLive
	}
	team, ok := e.teams.Find(teamID)
	if !ok {
		return nil, ErrUnknownTeam
	}

	basePrice := e.state.CurrentPlayer.BasePrice
	if amount < basePrice {
		return nil, &BidRejection{
			Code:    RejectBelowBase,
			Message: fmt.Sprintf("Bid must be at least base price %d", basePrice),
		}
	}
	if amount > team.Remaining() {
		return nil, &BidRejection{
			Code:    RejectBudget,
			Message: fmt.Sprintf("%s has no budget (%d left)", team.Name, team.Remaining()),
		}
	}
	minPerTeam := e.minPlayersPerTeam()
	if maxBid := MaxBid(team, e.roster.All(), e.state.CurrentPlayer.ID, minPerTeam); amount > maxBid {
		need := minPerTeam - len(team.Players) - 1
		plural := "s"
		if need == 1 {
			plural = ""
		}
		return nil, &BidRejection{
			Code:    RejectReserve,
			Message: fmt.Sprintf("%s must keep budget for %d more player%s. Max bid: %d", team.Name, need, plural, maxBid),
		}
	}
	if amount <= e.state.CurrentBid {
		return nil, &BidRejection{
			Code:    RejectStale,
			Message: fmt.Sprintf("Bid %d must exceed %d", amount, e.state.CurrentBid),
		}
	}

	history := make([]Bid, len(e.state.BidHistory))
	copy(history, e.state.BidHistory)
	e.undo = &undoSnapshot{
		currentBid:  e.state.CurrentBid,
		leadingTeam: e.state.LeadingTeam,
		bidHistory:  history,
	}

	leader := TeamRef{ID: team.ID, Name: team.Name, Color: team.Color, Logo: team.Logo}
	e.state.CurrentBid = amount
	e.state.LeadingTeam = &leader
	e.state.BidHistory = append([]Bid{{
		Team:   team.Name,
		Color:  team.Color,
		Logo:   team.Logo,
		Amount: amount,
		TS:     e.now().UnixMilli(),
	}}, e.state.BidHistory...)

	return []Event{{Type: EvtBidAccepted, Team: &leader, Amount: amount}}, nil
}

func (e *Engine) undoBid() ([]Event, error) {
	if e.state.Phase != PhaseLive || e.undo == nil {
		return nil, ErrNothingToUndo
	}
	e.state.CurrentBid = e.undo.currentBid
	e.state.LeadingTeam = e.undo.leadingTeam
	e.state.BidHistory = e.undo.bidHistory
	e.undo = nil
	return []Event{{Type: EvtBidUndone}}, nil
}

func (e *Engine) sold() ([]Event, error) {
	if e.state.Phase != PhaseLive {
		return nil, ErrNotLive
	}
	if e.state.LeadingTeam == nil {
		return nil, ErrNoLeadingBid
	}
	team, ok := e.teams.Find(e.state.LeadingTeam.ID)
	if !ok {
		return nil, ErrUnknownTeam
	}

	price := e.state.CurrentBid
	player := *e.state.CurrentPlayer
	player.Status = store.StatusSold
	player.SoldTo = team.Name
	player.SoldPrice = price

	e.roster.SetStatus(player.ID, store.StatusSold, team.Name, price)
	e.teams.AddSpend(team.ID, price)
	e.teams.AppendPlayer(team.ID, player)

	e.state.CurrentPlayer = &player
	e.state.Phase = PhaseSold
	e.state.SoldPlayers = append(e.state.SoldPlayers, Sale{
		Player:    player,
		Team:      team.Name,
		TeamColor: team.Color,
		TeamLogo:  team.Logo,
		Price:     price,
	})
	e.undo = nil

	leader := *e.state.LeadingTeam
	return []Event{{Type: EvtPlayerSold, Team: &leader, Player: &player, Amount: price}}, nil
}

// unsold voids the round no matter what: an outstanding leading bid is
// discarded and nobody is charged.
func (e *Engine) unsold() ([]Event, error) {
	if e.state.Phase != PhaseLive {
		return nil, ErrNotLive
	}

	player := *e.state.CurrentPlayer
	player.Status = store.StatusUnsold
	player.SoldTo = ""
	player.SoldPrice = 0
	e.roster.SetStatus(player.ID, store.StatusUnsold, "", 0)

	e.state.CurrentPlayer = &player
	e.state.Phase = PhaseUnsold
	e.undo = nil

	return []Event{{Type: EvtPlayerUnsold, Player: &player}}, nil
}

func (e *Engine) idle() ([]Event, error) {
	e.state = State{
		Phase:       PhaseIdle,
		BidHistory:  []Bid{},
		SoldPlayers: e.state.SoldPlayers,
	}
	e.undo = nil
	return nil, nil
}

// resetAll wipes the whole league back to the pre-auction state: every squad
// emptied, every spend zeroed, every sold/unsold player available again, and
// the sales ledger cleared. The only operation besides sold that touches the
// stores.
func (e *Engine) resetAll() ([]Event, error) {
	e.teams.ResetAll()
	for _, p := range e.roster.All() {
		if p.Status == store.StatusSold || p.Status == store.StatusUnsold {
			e.roster.SetStatus(p.ID, store.StatusAvailable, "", 0)
		}
	}
	e.state = newIdleState()
	e.undo = nil
	return nil, nil
}
