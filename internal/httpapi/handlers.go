package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/midlaj581/AUCTION-S7/internal/images"
	"github.com/midlaj581/AUCTION-S7/internal/room"
	"github.com/midlaj581/AUCTION-S7/internal/types"
)

// maxUploadBytes caps the JSON body of an image upload. Base64 inflates the
// raw image by about a third, so this allows photos around 11 MB.
const maxUploadBytes = 15 << 20

// Upload accepts {"data": "data:image/...;base64,..."} and answers with the
// URL the image is served from.
func Upload(imgs *images.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		var body struct {
			Data string `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id, err := imgs.Put(body.Data)
		if err != nil {
			if errors.Is(err, images.ErrBadDataURL) {
				writeError(w, http.StatusBadRequest, "Invalid image data")
				return
			}
			writeError(w, http.StatusInternalServerError, "upload failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			URL string `json:"url"`
		}{URL: "/api/img/" + id})
	}
}

func ServeImage(imgs *images.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, ok := imgs.Get(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", img.ContentType)
		_, _ = w.Write(img.Data)
	}
}

// State returns the same full snapshot the websocket broadcasts, fetched
// through the room actor so it is consistent with in-flight commands.
func State(rm *room.Room) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan types.FullState, 1)
		rm.Inbox() <- room.GetState{Reply: reply}

		select {
		case snap := <-reply:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(snap)
		case <-r.Context().Done():
		}
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
}
