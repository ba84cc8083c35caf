// Package images is the in-memory backing for the photo upload endpoint.
// Uploads live for the process lifetime only.
package images

import (
	"encoding/base64"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrBadDataURL = errors.New("invalid image data url")

type Image struct {
	ContentType string
	Data        []byte
}

// Store is written by HTTP handlers directly, outside the room actor, so it
// locks.
type Store struct {
	mu     sync.RWMutex
	images map[string]Image
}

func NewStore() *Store {
	return &Store{images: make(map[string]Image)}
}

// Put decodes a data:image/...;base64,... URL and returns the assigned id.
func (s *Store) Put(dataURL string) (string, error) {
	if !strings.HasPrefix(dataURL, "data:image") {
		return "", ErrBadDataURL
	}
	rest := strings.TrimPrefix(dataURL, "data:")
	contentType, encoded, ok := strings.Cut(rest, ";base64,")
	if !ok || contentType == "" {
		return "", ErrBadDataURL
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrBadDataURL
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.images[id] = Image{ContentType: contentType, Data: data}
	s.mu.Unlock()
	return id, nil
}

func (s *Store) Get(id string) (Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	return img, ok
}
