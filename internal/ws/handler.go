package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/midlaj581/AUCTION-S7/internal/config"
	"github.com/midlaj581/AUCTION-S7/internal/room"
	"github.com/midlaj581/AUCTION-S7/internal/types"
)

// adminOnly lists the commands dropped unless the connection has verified
// the admin password. Bidding stays open to every manager client.
var adminOnly = map[string]bool{
	types.MsgStartAuction:  true,
	types.MsgUndoBid:       true,
	types.MsgSold:          true,
	types.MsgUnsold:        true,
	types.MsgIdle:          true,
	types.MsgResetAllTeams: true,
	types.MsgAddPlayer:     true,
	types.MsgEditPlayer:    true,
	types.MsgRemovePlayer:  true,
	types.MsgResetPlayer:   true,
	types.MsgSaveTeam:      true,
	types.MsgRemoveTeam:    true,
	types.MsgUpdateConfig:  true,
}

// Handler upgrades the connection, joins the room, and shuttles frames: a
// writer goroutine drains the room outbox while the request goroutine reads
// client commands.
func Handler(rm *room.Room, cfg *config.Config, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		out := make(chan types.ServerMessage, 32)

		rm.Inbox() <- room.Join{ClientID: clientID, Outbox: out}
		defer func() { rm.Inbox() <- room.Leave{ClientID: clientID} }()
		log.Info("client connected", zap.String("client", clientID))
		defer log.Info("client disconnected", zap.String("client", clientID))

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		isAdmin := false
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				reply(r.Context(), conn, types.ServerMessage{Type: types.MsgBadRequest, Error: "bad json"})
				continue
			}

			if cm.Type == types.MsgVerifyPassword {
				ok := cfg.CheckPassword(cm.Password)
				isAdmin = isAdmin || ok
				reply(r.Context(), conn, types.ServerMessage{Type: types.MsgAuth, OK: ok})
				continue
			}
			if adminOnly[cm.Type] && !isAdmin {
				continue
			}

			rm.Inbox() <- room.Command{ClientID: clientID, Msg: cm}
		}
	}
}

func reply(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	wctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}
