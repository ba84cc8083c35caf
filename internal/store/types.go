package store

import (
	"fmt"
	"net/url"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusUnsold    Status = "unsold"
)

type Player struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Rating    int    `json:"rating"`
	BasePrice int    `json:"basePrice"`
	Photo     string `json:"photo"`
	Status    Status `json:"status"`
	SoldTo    string `json:"soldTo,omitempty"`
	SoldPrice int    `json:"soldPrice,omitempty"`
}

type Team struct {
	ID      string   `json:"id" gorm:"primaryKey"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Logo    string   `json:"logo"`
	Budget  int      `json:"budget"`
	Spent   int      `json:"spent"`
	Players []Player `json:"players" gorm:"serializer:json"`
}

// Remaining is the budget the team has not yet committed.
func (t Team) Remaining() int { return t.Budget - t.Spent }

// clone returns a copy whose squad slice is independent of the original.
func (t Team) clone() Team {
	c := t
	c.Players = make([]Player, len(t.Players))
	copy(c.Players, t.Players)
	return c
}

// AvatarURL is the placeholder photo used when a player has none.
func AvatarURL(name string) string {
	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=0d1117&color=00e87a&size=400&bold=true&font-size=0.35",
		url.QueryEscape(name),
	)
}
