package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/skill-runner/internal/runner"
)

// LoadProfile returns the saved context record for name, or a fresh one
// when the profile has never been saved. Mugen timers are per session and
// never persisted.
func (s *Store) LoadProfile(name string) (*runner.GameData, error) {
	if name == "" {
		name = DefaultProfile
	}

	var (
		skin       string
		extraScore bool
	)
	data := runner.NewGameData()
	err := s.db.QueryRow(
		`SELECT skin, money, high_score, shotgun, extra_score
		 FROM profiles WHERE name = ?`,
		name,
	).Scan(&skin, &data.Money, &data.HighScore, &data.PlayerSkills.ShotgunSkill, &extraScore)

	if errors.Is(err, sql.ErrNoRows) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load profile %q: %w", name, err)
	}

	if skin != "" {
		data.Skin = runner.Sprite(skin)
	}
	data.PlayerSkills.ExtraScore = extraScore
	return data, nil
}

// SaveProfile upserts the persistent part of data under name.
func (s *Store) SaveProfile(name string, data *runner.GameData) error {
	if name == "" {
		name = DefaultProfile
	}
	if data == nil {
		return fmt.Errorf("storage: cannot save profile %q: no data", name)
	}

	_, err := s.db.Exec(
		`INSERT INTO profiles (name, skin, money, high_score, shotgun, extra_score, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   skin = excluded.skin,
		   money = excluded.money,
		   high_score = excluded.high_score,
		   shotgun = excluded.shotgun,
		   extra_score = excluded.extra_score,
		   updated_at = excluded.updated_at`,
		name,
		string(data.Skin),
		data.Money,
		data.HighScore,
		data.PlayerSkills.ShotgunSkill,
		data.PlayerSkills.ExtraScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %q: %w", name, err)
	}
	return nil
}

// Profiles lists saved profile names in alphabetical order.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return names, nil
}
