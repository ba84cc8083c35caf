package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenPostgres connects, migrates, and seeds the league tables when they are
// empty. Both returned stores share the one connection.
func OpenPostgres(dsn string) (*PostgresRoster, *PostgresTeams, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&Player{}, &Team{}); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	var n int64
	db.Model(&Player{}).Count(&n)
	if n == 0 {
		seed := SeedPlayers()
		for i := range seed {
			if seed[i].Photo == "" {
				seed[i].Photo = AvatarURL(seed[i].Name)
			}
		}
		if err := db.Create(&seed).Error; err != nil {
			return nil, nil, fmt.Errorf("seed players: %w", err)
		}
	}
	db.Model(&Team{}).Count(&n)
	if n == 0 {
		seed := SeedTeams()
		if err := db.Create(&seed).Error; err != nil {
			return nil, nil, fmt.Errorf("seed teams: %w", err)
		}
	}

	return &PostgresRoster{db: db}, &PostgresTeams{db: db}, nil
}

type PostgresRoster struct {
	db *gorm.DB
}

func (r *PostgresRoster) Find(id int) (Player, bool) {
	var p Player
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return Player{}, false
	}
	return p, true
}

func (r *PostgresRoster) All() []Player {
	var out []Player
	r.db.Order("id").Find(&out)
	return out
}

func (r *PostgresRoster) SetStatus(id int, status Status, soldTo string, soldPrice int) bool {
	if status != StatusSold {
		soldTo = ""
		soldPrice = 0
	}
	res := r.db.Model(&Player{}).Where("id = ?", id).Updates(map[string]any{
		"status":     status,
		"sold_to":    soldTo,
		"sold_price": soldPrice,
	})
	return res.RowsAffected > 0
}

func (r *PostgresRoster) Add(p Player) Player {
	var maxID int
	r.db.Model(&Player{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID)
	p.ID = maxID + 1
	p.Status = StatusAvailable
	p.SoldTo = ""
	p.SoldPrice = 0
	if p.Photo == "" {
		p.Photo = AvatarURL(p.Name)
	}
	r.db.Create(&p)
	return p
}

func (r *PostgresRoster) Update(p Player) bool {
	if p.Photo == "" {
		p.Photo = AvatarURL(p.Name)
	}
	res := r.db.Model(&Player{}).Where("id = ?", p.ID).Select("*").Updates(&p)
	return res.RowsAffected > 0
}

func (r *PostgresRoster) Remove(id int) {
	r.db.Delete(&Player{}, "id = ?", id)
}

type PostgresTeams struct {
	db *gorm.DB
}

func (s *PostgresTeams) Find(id string) (Team, bool) {
	var t Team
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return Team{}, false
	}
	if t.Players == nil {
		t.Players = []Player{}
	}
	return t, true
}

func (s *PostgresTeams) All() []Team {
	var out []Team
	s.db.Order("id").Find(&out)
	for i := range out {
		if out[i].Players == nil {
			out[i].Players = []Player{}
		}
	}
	return out
}

func (s *PostgresTeams) AddSpend(id string, amount int) {
	s.db.Model(&Team{}).Where("id = ?", id).
		Update("spent", gorm.Expr("spent + ?", amount))
}

func (s *PostgresTeams) AppendPlayer(id string, snapshot Player) {
	t, ok := s.Find(id)
	if !ok {
		return
	}
	t.Players = append(t.Players, snapshot)
	s.db.Save(&t)
}

func (s *PostgresTeams) Save(t Team) Team {
	existing, ok := s.Find(t.ID)
	if ok {
		s.db.Model(&Team{}).Where("id = ?", t.ID).Updates(map[string]any{
			"name":   t.Name,
			"color":  t.Color,
			"logo":   t.Logo,
			"budget": t.Budget,
		})
		existing.Name, existing.Color, existing.Logo, existing.Budget = t.Name, t.Color, t.Logo, t.Budget
		return existing
	}
	t.Spent = 0
	t.Players = []Player{}
	s.db.Create(&t)
	return t
}

func (s *PostgresTeams) Remove(id string) {
	s.db.Delete(&Team{}, "id = ?", id)
}

func (s *PostgresTeams) ResetAll() {
	for _, t := range s.All() {
		t.Spent = 0
		t.Players = []Player{}
		s.db.Save(&t)
	}
}
