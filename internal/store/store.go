// Package store holds the roster and team records the auction runs against.
// The auction core only sees these interfaces; the engine behind them is
// either the seeded in-memory store or the gorm-backed one.
package store

// RosterStore owns player records and their lifecycle status.
type RosterStore interface {
	Find(id int) (Player, bool)
	All() []Player
	// SetStatus moves a player between available/sold/unsold. soldTo and
	// soldPrice are recorded only when status is StatusSold and cleared
	// otherwise.
	SetStatus(id int, status Status, soldTo string, soldPrice int) bool
	// Add assigns the next free id, forces status to available, and returns
	// the stored record.
	Add(p Player) Player
	Update(p Player) bool
	Remove(id int)
}

// TeamStore owns team identity, budget, spend, and acquired players.
type TeamStore interface {
	Find(id string) (Team, bool)
	All() []Team
	AddSpend(id string, amount int)
	// AppendPlayer records an acquired player. The stored entry is a copy,
	// later edits to the roster record must not touch it.
	AppendPlayer(id string, snapshot Player)
	// Save inserts a new team (zero spend, empty squad) or updates the
	// identity and budget of an existing one, leaving spend and squad alone.
	Save(t Team) Team
	Remove(id string)
	// ResetAll zeroes every team's spend and clears every squad.
	ResetAll()
}
