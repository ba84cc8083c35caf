// Package config holds the league settings. The room actor writes them on
// admin updates while websocket handlers read the admin password, hence the
// lock.
package config

import (
	"os"
	"sync"
)

type Config struct {
	mu sync.RWMutex
	s  Settings
}

// Settings are the mutable league knobs. AdminPassword never leaves the
// process; Public() strips it from every outbound snapshot.
type Settings struct {
	LeagueName        string
	LeagueSeason      string
	LeagueLogo        string
	MinPlayersPerTeam int
	ThresholdBid      int
	HighIncrement     int
	LowIncrement      int
	AdminPassword     string
}

// Public is the password-free view broadcast to clients.
type Public struct {
	LeagueName        string `json:"leagueName"`
	LeagueSeason      string `json:"leagueSeason"`
	LeagueLogo        string `json:"leagueLogo"`
	MinPlayersPerTeam int    `json:"minPlayersPerTeam"`
	ThresholdBid      int    `json:"thresholdBid"`
	HighIncrement     int    `json:"highIncrement"`
	LowIncrement      int    `json:"lowIncrement"`
}

// Patch is a partial admin update; nil fields are left unchanged.
type Patch struct {
	LeagueName        *string `json:"leagueName"`
	LeagueSeason      *string `json:"leagueSeason"`
	LeagueLogo        *string `json:"leagueLogo"`
	MinPlayersPerTeam *int    `json:"minPlayersPerTeam"`
	ThresholdBid      *int    `json:"thresholdBid"`
	HighIncrement     *int    `json:"highIncrement"`
	LowIncrement      *int    `json:"lowIncrement"`
	AdminPassword     *string `json:"adminPassword"`
}

func Default() *Config {
	c := &Config{s: Settings{
		LeagueName:        "Premier Player League",
		LeagueSeason:      "Season 7",
		MinPlayersPerTeam: 10,
		ThresholdBid:      200,
		HighIncrement:     20,
		LowIncrement:      10,
		AdminPassword:     "ppl2024",
	}}
	if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
		c.s.AdminPassword = pw
	}
	return c
}

func (c *Config) MinPlayersPerTeam() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.s.MinPlayersPerTeam
}

// Increment suggests the next bid step for the current price. Advisory for
// clients only, bid validation does not enforce it.
func (c *Config) Increment(currentBid int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if currentBid < c.s.ThresholdBid {
		return c.s.HighIncrement
	}
	return c.s.LowIncrement
}

func (c *Config) CheckPassword(pw string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return pw != "" && pw == c.s.AdminPassword
}

func (c *Config) Apply(p Patch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.LeagueName != nil {
		c.s.LeagueName = *p.LeagueName
	}
	if p.LeagueSeason != nil {
		c.s.LeagueSeason = *p.LeagueSeason
	}
	if p.LeagueLogo != nil {
		c.s.LeagueLogo = *p.LeagueLogo
	}
	if p.MinPlayersPerTeam != nil {
		c.s.MinPlayersPerTeam = *p.MinPlayersPerTeam
	}
	if p.ThresholdBid != nil {
		c.s.ThresholdBid = *p.ThresholdBid
	}
	if p.HighIncrement != nil {
		c.s.HighIncrement = *p.HighIncrement
	}
	if p.LowIncrement != nil {
		c.s.LowIncrement = *p.LowIncrement
	}
	if p.AdminPassword != nil && *p.AdminPassword != "" {
		c.s.AdminPassword = *p.AdminPassword
	}
}

func (c *Config) Public() Public {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Public{
		LeagueName:        c.s.LeagueName,
		LeagueSeason:      c.s.LeagueSeason,
		LeagueLogo:        c.s.LeagueLogo,
		MinPlayersPerTeam: c.s.MinPlayersPerTeam,
		ThresholdBid:      c.s.ThresholdBid,
		HighIncrement:     c.s.HighIncrement,
		LowIncrement:      c.s.LowIncrement,
	}
}
