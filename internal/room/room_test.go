package room

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midlaj581/AUCTION-S7/internal/config"
	"github.com/midlaj581/AUCTION-S7/internal/store"
	"github.com/midlaj581/AUCTION-S7/internal/types"
)

func newTestRoom(t *testing.T) *Room {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	roster := store.NewMemoryRoster(store.SeedPlayers())
	teams := store.NewMemoryTeams(store.SeedTeams())
	return New(ctx, roster, teams, config.Default(), zap.NewNop())
}

func join(t *testing.T, rm *Room, clientID string) chan types.ServerMessage {
	t.Helper()
	out := make(chan types.ServerMessage, 16)
	rm.Inbox() <- Join{ClientID: clientID, Outbox: out}

	first := recv(t, out)
	require.Equal(t, types.MsgState, first.Type)
	require.NotNil(t, first.State)
	return out
}

func recv(t *testing.T, ch chan types.ServerMessage) types.ServerMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return types.ServerMessage{}
	}
}

func assertSilent(t *testing.T, ch chan types.ServerMessage) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("expected no message, got %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestJoinReceivesCurrentState(t *testing.T) {
	rm := newTestRoom(t)
	out := make(chan types.ServerMessage, 16)
	rm.Inbox() <- Join{ClientID: "c1", Outbox: out}

	msg := recv(t, out)
	assert.Equal(t, types.MsgState, msg.Type)
	require.NotNil(t, msg.State)
	assert.Equal(t, "idle", string(msg.State.Auction.Phase))
	assert.Len(t, msg.State.Players, 40)
	assert.Len(t, msg.State.Teams, 4)
}

func TestAcceptedBidBroadcastsToEveryone(t *testing.T) {
	rm := newTestRoom(t)
	admin := join(t, rm, "admin")
	viewer := join(t, rm, "viewer")

	rm.Inbox() <- Command{ClientID: "admin", Msg: types.ClientMessage{Type: types.MsgStartAuction, PlayerID: 1}}
	for _, ch := range []chan types.ServerMessage{admin, viewer} {
		msg := recv(t, ch)
		require.Equal(t, types.MsgState, msg.Type)
		assert.Equal(t, "live", string(msg.State.Auction.Phase))
	}

	rm.Inbox() <- Command{ClientID: "viewer", Msg: types.ClientMessage{Type: types.MsgPlaceBid, TeamID: "T1", Amount: 150}}
	for _, ch := range []chan types.ServerMessage{admin, viewer} {
		state := recv(t, ch)
		require.Equal(t, types.MsgState, state.Type)
		assert.Equal(t, 150, state.State.Auction.CurrentBid)

		flash := recv(t, ch)
		assert.Equal(t, types.MsgBidAccepted, flash.Type)
		require.NotNil(t, flash.Team)
		assert.Equal(t, "T1", flash.Team.ID)
		assert.Equal(t, 150, flash.Amount)
	}
}

func TestRejectionGoesOnlyToSender(t *testing.T) {
	rm := newTestRoom(t)
	bidder := join(t, rm, "bidder")
	viewer := join(t, rm, "viewer")

	rm.Inbox() <- Command{ClientID: "bidder", Msg: types.ClientMessage{Type: types.MsgStartAuction, PlayerID: 1}}
	recv(t, bidder)
	recv(t, viewer)

	rm.Inbox() <- Command{ClientID: "bidder", Msg: types.ClientMessage{Type: types.MsgPlaceBid, TeamID: "T1", Amount: 10}}

	msg := recv(t, bidder)
	assert.Equal(t, types.MsgBidError, msg.Type)
	assert.Equal(t, "below-base-price", msg.Code)
	assert.NotEmpty(t, msg.Error)

	assertSilent(t, viewer)
}

func TestImpossibleCommandIsSilent(t *testing.T) {
	rm := newTestRoom(t)
	client := join(t, rm, "c1")

	// Bid while idle: not even the sender hears about it.
	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgPlaceBid, TeamID: "T1", Amount: 150}}
	assertSilent(t, client)
}

func TestVersionIncreasesPerMutation(t *testing.T) {
	rm := newTestRoom(t)
	client := join(t, rm, "c1")

	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgStartAuction, PlayerID: 1}}
	v1 := recv(t, client).Version

	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgPlaceBid, TeamID: "T1", Amount: 150}}
	v2 := recv(t, client).Version

	assert.Greater(t, v2, v1)
}

func TestRosterCRUDBroadcasts(t *testing.T) {
	rm := newTestRoom(t)
	client := join(t, rm, "c1")

	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{
		Type:   types.MsgAddPlayer,
		Player: json.RawMessage(`{"name":"New Signing","position":"ST","rating":70,"basePrice":100}`),
	}}
	msg := recv(t, client)
	require.Equal(t, types.MsgState, msg.Type)
	require.Len(t, msg.State.Players, 41)
	added := msg.State.Players[40]
	assert.Equal(t, 41, added.ID, "ids are max+1")
	assert.Equal(t, store.StatusAvailable, added.Status)
	assert.NotEmpty(t, added.Photo, "blank photos get the avatar fallback")
}

func TestEditPlayerMergesOntoStoredRecord(t *testing.T) {
	rm := newTestRoom(t)
	client := join(t, rm, "c1")

	// Sell player 1 to Thunder FC for 150.
	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgStartAuction, PlayerID: 1}}
	recv(t, client)
	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgPlaceBid, TeamID: "T1", Amount: 150}}
	recv(t, client)
	recv(t, client)
	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgSold}}
	recv(t, client)
	recv(t, client)

	// A partial edit frame must leave every omitted field alone.
	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{
		Type:   types.MsgEditPlayer,
		Player: json.RawMessage(`{"id":1,"name":"Arjun M.","rating":90}`),
	}}
	msg := recv(t, client)
	require.Equal(t, types.MsgState, msg.Type)

	var edited store.Player
	for _, p := range msg.State.Players {
		if p.ID == 1 {
			edited = p
		}
	}
	assert.Equal(t, "Arjun M.", edited.Name)
	assert.Equal(t, 90, edited.Rating)
	assert.Equal(t, "GK", edited.Position)
	assert.Equal(t, 100, edited.BasePrice)
	assert.Equal(t, store.StatusSold, edited.Status)
	assert.Equal(t, "Thunder FC", edited.SoldTo)
	assert.Equal(t, 150, edited.SoldPrice)
}

func TestEditUnknownPlayerIsSilent(t *testing.T) {
	rm := newTestRoom(t)
	client := join(t, rm, "c1")

	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{
		Type:   types.MsgEditPlayer,
		Player: json.RawMessage(`{"id":999,"name":"Ghost"}`),
	}}
	assertSilent(t, client)
}

func TestSnapshotCarriesBidIncrement(t *testing.T) {
	rm := newTestRoom(t)
	client := join(t, rm, "c1")

	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgStartAuction, PlayerID: 1}}
	msg := recv(t, client)
	assert.Equal(t, 20, msg.State.BidIncrement, "big steps below the threshold")

	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgPlaceBid, TeamID: "T1", Amount: 250}}
	msg = recv(t, client)
	assert.Equal(t, 10, msg.State.BidIncrement, "small steps at or above it")
}

func TestSnapshotOmitsAdminPassword(t *testing.T) {
	rm := newTestRoom(t)

	reply := make(chan types.FullState, 1)
	rm.Inbox() <- GetState{Reply: reply}
	snap := <-reply

	// Public config carries the league knobs and nothing secret.
	assert.Equal(t, 10, snap.Config.MinPlayersPerTeam)
	assert.Equal(t, "Premier Player League", snap.Config.LeagueName)
}

func TestConfigUpdateTightensBudgetPolicy(t *testing.T) {
	rm := newTestRoom(t)
	client := join(t, rm, "c1")

	minPlayers := 40
	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{
		Type:   types.MsgUpdateConfig,
		Config: &config.Patch{MinPlayersPerTeam: &minPlayers},
	}}
	msg := recv(t, client)
	require.Equal(t, types.MsgState, msg.Type)
	assert.Equal(t, 40, msg.State.Config.MinPlayersPerTeam)

	// With 39 more players to reserve for, an 8000-budget team cannot put
	// everything on one player anymore.
	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgStartAuction, PlayerID: 1}}
	recv(t, client)

	rm.Inbox() <- Command{ClientID: "c1", Msg: types.ClientMessage{Type: types.MsgPlaceBid, TeamID: "T1", Amount: 8000}}
	rej := recv(t, client)
	assert.Equal(t, types.MsgBidError, rej.Type)
	assert.Equal(t, "reserve-violation", rej.Code)
}
