package store

// In-memory stores. All mutation goes through the room actor, which
// processes one command at a time, so these carry no locks.

type MemoryRoster struct {
	players []Player
}

func NewMemoryRoster(seed []Player) *MemoryRoster {
	r := &MemoryRoster{players: make([]Player, len(seed))}
	copy(r.players, seed)
	for i := range r.players {
		if r.players[i].Photo == "" {
			r.players[i].Photo = AvatarURL(r.players[i].Name)
		}
	}
	return r
}

func (r *MemoryRoster) Find(id int) (Player, bool) {
	for _, p := range r.players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

func (r *MemoryRoster) All() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

func (r *MemoryRoster) SetStatus(id int, status Status, soldTo string, soldPrice int) bool {
	for i := range r.players {
		if r.players[i].ID != id {
			continue
		}
		r.players[i].Status = status
		if status == StatusSold {
			r.players[i].SoldTo = soldTo
			r.players[i].SoldPrice = soldPrice
		} else {
			r.players[i].SoldTo = ""
			r.players[i].SoldPrice = 0
		}
		return true
	}
	return false
}

func (r *MemoryRoster) Add(p Player) Player {
	maxID := 0
	for _, q := range r.players {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	p.ID = maxID + 1
	p.Status = StatusAvailable
	p.SoldTo = ""
	p.SoldPrice = 0
	if p.Photo == "" {
		p.Photo = AvatarURL(p.Name)
	}
	r.players = append(r.players, p)
	return p
}

func (r *MemoryRoster) Update(p Player) bool {
	for i := range r.players {
		if r.players[i].ID == p.ID {
			if p.Photo == "" {
				p.Photo = AvatarURL(p.Name)
			}
			r.players[i] = p
			return true
		}
	}
	return false
}

func (r *MemoryRoster) Remove(id int) {
	for i := range r.players {
		if r.players[i].ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return
		}
	}
}

type MemoryTeams struct {
	teams []Team
}

func NewMemoryTeams(seed []Team) *MemoryTeams {
	s := &MemoryTeams{teams: make([]Team, 0, len(seed))}
	for _, t := range seed {
		s.teams = append(s.teams, t.clone())
	}
	return s
}

func (s *MemoryTeams) Find(id string) (Team, bool) {
	for _, t := range s.teams {
		if t.ID == id {
			return t.clone(), true
		}
	}
	return Team{}, false
}

func (s *MemoryTeams) All() []Team {
	out := make([]Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t.clone())
	}
	return out
}

func (s *MemoryTeams) AddSpend(id string, amount int) {
	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams[i].Spent += amount
			return
		}
	}
}

func (s *MemoryTeams) AppendPlayer(id string, snapshot Player) {
	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams[i].Players = append(s.teams[i].Players, snapshot)
			return
		}
	}
}

func (s *MemoryTeams) Save(t Team) Team {
	for i := range s.teams {
		if s.teams[i].ID == t.ID {
			s.teams[i].Name = t.Name
			s.teams[i].Color = t.Color
			s.teams[i].Logo = t.Logo
			s.teams[i].Budget = t.Budget
			return s.teams[i].clone()
		}
	}
	t.Spent = 0
	t.Players = []Player{}
	s.teams = append(s.teams, t.clone())
	return t
}

func (s *MemoryTeams) Remove(id string) {
	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return
		}
	}
}

func (s *MemoryTeams) ResetAll() {
	for i := range s.teams {
		s.teams[i].Spent = 0
		s.teams[i].Players = []Player{}
	}
}
