// Package room hosts the single auction room: one goroutine owning the
// engine, the stores, and the subscriber list. Every mutation comes through
// the inbox, so commands are processed strictly one at a time.
package room

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/midlaj581/AUCTION-S7/internal/auction"
	"github.com/midlaj581/AUCTION-S7/internal/config"
	"github.com/midlaj581/AUCTION-S7/internal/store"
	"github.com/midlaj581/AUCTION-S7/internal/types"
)

type Msg interface{ isRoomMsg() }

type Join struct {
	ClientID string
	Outbox   chan types.ServerMessage
}

type Leave struct{ ClientID string }

// Command is a decoded client frame. ClientID routes bid rejections back to
// the sender and nobody else.
type Command struct {
	ClientID string
	Msg      types.ClientMessage
}

type GetState struct {
	Reply chan types.FullState
}

type Shutdown struct{}

func (Join) isRoomMsg()     {}
func (Leave) isRoomMsg()    {}
func (Command) isRoomMsg()  {}
func (GetState) isRoomMsg() {}
func (Shutdown) isRoomMsg() {}

type Room struct {
	inbox   chan Msg
	clients map[string]chan types.ServerMessage
	version int

	engine *auction.Engine
	roster store.RosterStore
	teams  store.TeamStore
	cfg    *config.Config

	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(parent context.Context, roster store.RosterStore, teams store.TeamStore, cfg *config.Config, log *zap.Logger) *Room {
	ctx, cancel := context.WithCancel(parent)
	r := &Room{
		inbox:   make(chan Msg, 64),
		clients: make(map[string]chan types.ServerMessage),
		engine:  auction.New(roster, teams, cfg.MinPlayersPerTeam),
		roster:  roster,
		teams:   teams,
		cfg:     cfg,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				r.clients[msg.ClientID] = msg.Outbox
				snap := r.snapshot()
				msg.Outbox <- types.ServerMessage{Type: types.MsgState, Version: r.version, State: &snap}

			case Leave:
				delete(r.clients, msg.ClientID)

			case Command:
				r.handle(msg)

			case GetState:
				msg.Reply <- r.snapshot()

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) handle(c Command) {
	m := c.Msg
	switch m.Type {
	case types.MsgStartAuction:
		r.apply(c.ClientID, auction.Command{Type: auction.CmdStartAuction, PlayerID: m.PlayerID})
	case types.MsgPlaceBid:
		r.apply(c.ClientID, auction.Command{Type: auction.CmdPlaceBid, TeamID: m.TeamID, Amount: m.Amount})
	case types.MsgUndoBid:
		r.apply(c.ClientID, auction.Command{Type: auction.CmdUndoBid})
	case types.MsgSold:
		r.apply(c.ClientID, auction.Command{Type: auction.CmdSold})
	case types.MsgUnsold:
		r.apply(c.ClientID, auction.Command{Type: auction.CmdUnsold})
	case types.MsgIdle:
		r.apply(c.ClientID, auction.Command{Type: auction.CmdIdle})
	case types.MsgResetAllTeams:
		r.apply(c.ClientID, auction.Command{Type: auction.CmdResetAll})
		r.log.Info("league reset")

	case types.MsgAddPlayer:
		var p store.Player
		if len(m.Player) == 0 || json.Unmarshal(m.Player, &p) != nil {
			return
		}
		r.roster.Add(p)
		r.broadcastState()
	case types.MsgEditPlayer:
		merged, ok := r.mergePlayerPatch(m.Player)
		if !ok || !r.roster.Update(merged) {
			return
		}
		r.broadcastState()
	case types.MsgRemovePlayer:
		r.roster.Remove(m.PlayerID)
		r.broadcastState()
	case types.MsgResetPlayer:
		if !r.roster.SetStatus(m.PlayerID, store.StatusAvailable, "", 0) {
			return
		}
		r.broadcastState()
	case types.MsgSaveTeam:
		if m.Team == nil {
			return
		}
		r.teams.Save(*m.Team)
		r.broadcastState()
	case types.MsgRemoveTeam:
		r.teams.Remove(m.TeamID)
		r.broadcastState()
	case types.MsgUpdateConfig:
		if m.Config == nil {
			return
		}
		r.cfg.Apply(*m.Config)
		r.broadcastState()
	}
}

// apply runs one engine command. Rejections go back to the sender only;
// silent no-op errors are dropped. Anything accepted bumps the version and
// broadcasts the new state plus the narrow event notices.
func (r *Room) apply(clientID string, cmd auction.Command) {
	events, err := r.engine.Apply(cmd)
	if err != nil {
		if rej, ok := auction.AsRejection(err); ok {
			r.sendTo(clientID, types.ServerMessage{
				Type:  types.MsgBidError,
				Code:  string(rej.Code),
				Error: rej.Message,
			})
			r.log.Info("bid rejected", zap.String("code", string(rej.Code)), zap.String("reason", rej.Message))
			return
		}
		r.log.Debug("command ignored", zap.String("cmd", string(cmd.Type)), zap.Error(err))
		return
	}

	r.broadcastState()
	for _, ev := range events {
		r.broadcast(eventMessage(ev))
		r.logEvent(ev)
	}
}

func eventMessage(ev auction.Event) types.ServerMessage {
	return types.ServerMessage{
		Type:   string(ev.Type),
		Team:   ev.Team,
		Player: ev.Player,
		Amount: ev.Amount,
	}
}

func (r *Room) logEvent(ev auction.Event) {
	switch ev.Type {
	case auction.EvtBidAccepted:
		r.log.Info("bid accepted", zap.String("team", ev.Team.Name), zap.Int("amount", ev.Amount))
	case auction.EvtBidUndone:
		r.log.Info("bid undone")
	case auction.EvtPlayerSold:
		r.log.Info("player sold", zap.String("player", ev.Player.Name), zap.String("team", ev.Team.Name), zap.Int("price", ev.Amount))
	case auction.EvtPlayerUnsold:
		r.log.Info("player unsold", zap.String("player", ev.Player.Name))
	}
}

// mergePlayerPatch decodes an edit frame on top of a copy of the stored
// record, so fields the frame leaves out keep their current values. The id
// itself cannot be changed this way.
func (r *Room) mergePlayerPatch(raw json.RawMessage) (store.Player, bool) {
	var ref struct {
		ID int `json:"id"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &ref) != nil {
		return store.Player{}, false
	}
	merged, ok := r.roster.Find(ref.ID)
	if !ok {
		return store.Player{}, false
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return store.Player{}, false
	}
	merged.ID = ref.ID
	return merged, true
}

func (r *Room) snapshot() types.FullState {
	st := r.engine.State()
	return types.FullState{
		Auction:      st,
		Teams:        r.teams.All(),
		Players:      r.roster.All(),
		Config:       r.cfg.Public(),
		BidIncrement: r.cfg.Increment(st.CurrentBid),
	}
}

func (r *Room) broadcastState() {
	r.version++
	snap := r.snapshot()
	r.broadcast(types.ServerMessage{Type: types.MsgState, Version: r.version, State: &snap})
}

func (r *Room) broadcast(msg types.ServerMessage) {
	for id, ch := range r.clients {
		select {
		case ch <- msg:
		default:
			// Slow or stuck client, drop it.
			close(ch)
			delete(r.clients, id)
		}
	}
}

func (r *Room) sendTo(clientID string, msg types.ServerMessage) {
	ch, ok := r.clients[clientID]
	if !ok {
		return
	}
	select {
	case ch <- msg:
	default:
		close(ch)
		delete(r.clients, clientID)
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.clients {
		close(ch)
		delete(r.clients, id)
	}
	r.cancel()
}
