package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/midlaj581/AUCTION-S7/internal/config"
	"github.com/midlaj581/AUCTION-S7/internal/images"
	"github.com/midlaj581/AUCTION-S7/internal/room"
	"github.com/midlaj581/AUCTION-S7/internal/ws"
)

// SetupRoutes wires the API, the websocket endpoint, and the static admin/
// projector/manager pages.
func SetupRoutes(rm *room.Room, imgs *images.Store, cfg *config.Config, staticDir string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/ws", ws.Handler(rm, cfg, log))
	r.Get("/healthz", Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", Upload(imgs))
		r.Get("/img/{id}", ServeImage(imgs))
		r.Get("/state", State(rm))
	})

	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}
	return r
}
